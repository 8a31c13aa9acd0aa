// Package config loads engine, tournament and demo settings from YAML with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	Match      MatchConfig      `mapstructure:"match"`
	Tournament TournamentConfig `mapstructure:"tournament"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Demo       DemoConfig       `mapstructure:"demo"`
}

// MatchConfig sets up every match.
type MatchConfig struct {
	// Seed fixes deck order. 0 picks a fresh random seed at startup.
	Seed         int64    `mapstructure:"seed"`
	HandSize     int      `mapstructure:"hand_size"`
	StartingLife int      `mapstructure:"starting_life"`
	FirstPlayer  int      `mapstructure:"first_player"`
	Factions     []string `mapstructure:"factions"`
}

// TournamentConfig controls self-play runs.
type TournamentConfig struct {
	Agents          []string `mapstructure:"agents"`
	MatchesPerPair  int      `mapstructure:"matches_per_pair"`
	MaxConcurrent   int      `mapstructure:"max_concurrent"`
	CheckInvariants bool     `mapstructure:"check_invariants"`
	ReplayDir       string   `mapstructure:"replay_dir"`
}

// CatalogConfig selects where card templates come from. With neither a
// path nor a database URL the built-in standard set is used.
type CatalogConfig struct {
	Path        string `mapstructure:"path"`
	DatabaseURL string `mapstructure:"database_url"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DemoConfig configures the websocket demo.
type DemoConfig struct {
	Addr     string `mapstructure:"addr"`
	Opponent string `mapstructure:"opponent"`
}

// Load reads configuration from path. An empty path uses defaults and
// GWENT_* environment variables only (GWENT_MATCH_SEED, GWENT_LOGGING_LEVEL,
// ...).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("gwent")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("match.seed", 0)
	v.SetDefault("match.hand_size", 10)
	v.SetDefault("match.starting_life", 2)
	v.SetDefault("match.first_player", 0)
	v.SetDefault("match.factions", []string{})

	v.SetDefault("tournament.agents", []string{"random", "greedy"})
	v.SetDefault("tournament.matches_per_pair", 10)
	v.SetDefault("tournament.max_concurrent", 4)
	v.SetDefault("tournament.check_invariants", false)
	v.SetDefault("tournament.replay_dir", "")

	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.database_url", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("demo.addr", ":8080")
	v.SetDefault("demo.opponent", "greedy")
}

// Validate rejects settings no match could be played with.
func (c *Config) Validate() error {
	var errs []error
	if c.Match.HandSize < 0 {
		errs = append(errs, fmt.Errorf("match.hand_size must not be negative"))
	}
	if c.Match.StartingLife <= 0 {
		errs = append(errs, fmt.Errorf("match.starting_life must be positive"))
	}
	if c.Match.FirstPlayer != 0 && c.Match.FirstPlayer != 1 {
		errs = append(errs, fmt.Errorf("match.first_player must be 0 or 1"))
	}
	if len(c.Match.Factions) > 2 {
		errs = append(errs, fmt.Errorf("match.factions takes at most two entries"))
	}
	if c.Tournament.MatchesPerPair < 1 {
		errs = append(errs, fmt.Errorf("tournament.matches_per_pair must be at least 1"))
	}
	if c.Tournament.MaxConcurrent < 1 {
		errs = append(errs, fmt.Errorf("tournament.max_concurrent must be at least 1"))
	}
	if c.Catalog.Path != "" && c.Catalog.DatabaseURL != "" {
		errs = append(errs, fmt.Errorf("catalog.path and catalog.database_url are mutually exclusive"))
	}
	return errors.Join(errs...)
}

// Faction returns the configured faction for player, or "" for the whole
// catalog.
func (m MatchConfig) Faction(player int) string {
	if player < len(m.Factions) {
		return m.Factions[player]
	}
	return ""
}
