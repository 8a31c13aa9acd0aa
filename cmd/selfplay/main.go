package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/magefree/gwent-engine-go/internal/catalog"
	"github.com/magefree/gwent-engine-go/internal/config"
	"github.com/magefree/gwent-engine-go/internal/game"
	"github.com/magefree/gwent-engine-go/internal/logging"
	"github.com/magefree/gwent-engine-go/internal/random"
	"github.com/magefree/gwent-engine-go/internal/tournament"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "", "path to configuration file (defaults and GWENT_* env when empty)")
	seedFlag   = flag.Int64("seed", 0, "tournament seed, overrides match.seed")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := cfg.Match.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	seed, err = random.Resolve(seed)
	if err != nil {
		logger.Fatal("failed to generate seed", zap.Error(err))
	}

	logger.Info("starting self-play",
		zap.String("version", version),
		zap.Int64("seed", seed),
		zap.Strings("agents", cfg.Tournament.Agents),
	)

	cards, err := catalog.Load(ctx, cfg.Catalog, logger)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}
	logger.Info("catalog loaded", zap.Int("templates", cards.Len()))

	manager := tournament.NewManager(cards, tournament.Settings{
		Match: game.Config{
			HandSize:     cfg.Match.HandSize,
			StartingLife: cfg.Match.StartingLife,
			FirstPlayer:  cfg.Match.FirstPlayer,
		},
		MaxConcurrent:   cfg.Tournament.MaxConcurrent,
		CheckInvariants: cfg.Tournament.CheckInvariants,
		ReplayDir:       cfg.Tournament.ReplayDir,
	}, logger)

	cup := manager.CreateTournament("self-play", seed, cfg.Tournament.MatchesPerPair)
	for i, kind := range cfg.Tournament.Agents {
		entry := tournament.Entry{
			Name:    fmt.Sprintf("%s-%d", kind, i+1),
			Agent:   kind,
			Faction: entryFaction(cfg.Match.Factions, i),
		}
		if err := cup.AddEntry(entry); err != nil {
			logger.Fatal("failed to add entry", zap.String("entry", entry.Name), zap.Error(err))
		}
	}

	if err := manager.Run(ctx, cup); err != nil {
		logger.Fatal("tournament failed", zap.Error(err))
	}

	printStandings(cup.Snapshot())
}

// entryFaction cycles through the configured factions; none means every
// entry plays the whole catalog.
func entryFaction(factions []string, i int) string {
	if len(factions) == 0 {
		return ""
	}
	return factions[i%len(factions)]
}

func printStandings(snap tournament.Snapshot) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Tournament %s (seed %d)\n", snap.ID, snap.Seed)
	fmt.Fprintln(w, "ENTRY\tPOINTS\tW\tL\tD")
	for _, s := range snap.Standings {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", s.Name, s.Points, s.Wins, s.Losses, s.Draws)
	}
	fmt.Fprintln(w)
	for _, p := range snap.Pairings {
		fmt.Fprintf(w, "%s vs %s\t%d-%d-%d\n", p.Entry1, p.Entry2, p.Entry1Wins, p.Entry2Wins, p.Draws)
	}
	w.Flush()
}
