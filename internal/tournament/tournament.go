package tournament

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// State represents the state of a tournament
type State int

const (
	StateWaiting State = iota
	StateInProgress
	StateFinished
)

var stateNames = map[State]string{
	StateWaiting:    "WAITING",
	StateInProgress: "IN_PROGRESS",
	StateFinished:   "FINISHED",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Entry is a tournament participant: an agent kind playing one faction.
type Entry struct {
	Name    string
	Agent   string
	Faction string
}

// Standing tracks an entry's record.
type Standing struct {
	Name   string
	Points int
	Wins   int
	Losses int
	Draws  int
}

// MatchRecord is the outcome of one played match.
type MatchRecord struct {
	MatchID  string
	Seed     int64
	Winner   string // entry name, empty for a draw
	Rounds   int
	Checksum string
}

// Pairing is one head-to-head series between two entries.
type Pairing struct {
	Entry1     string
	Entry2     string
	Entry1Wins int
	Entry2Wins int
	Draws      int
	Matches    []MatchRecord
}

// PairingSnapshot captures pairing data for external use.
type PairingSnapshot struct {
	Entry1     string
	Entry2     string
	Entry1Wins int
	Entry2Wins int
	Draws      int
	Matches    []MatchRecord
}

// Snapshot captures a consistent view of a tournament.
type Snapshot struct {
	ID             string
	Name           string
	State          State
	Seed           int64
	MatchesPerPair int
	Standings      []Standing
	Pairings       []PairingSnapshot
	CreateTime     time.Time
	StartTime      *time.Time
	EndTime        *time.Time
}

// Tournament is a round robin in which every pair of entries plays
// MatchesPerPair matches.
type Tournament struct {
	ID             string
	Name           string
	State          State
	Seed           int64
	MatchesPerPair int
	Entries        map[string]*Entry
	EntryOrder     []string // Maintains insertion order
	Standings      map[string]*Standing
	Pairings       []*Pairing
	CreateTime     time.Time
	StartTime      *time.Time
	EndTime        *time.Time
	mu             sync.RWMutex
}

// NewTournament creates a new tournament. seed drives every match seed.
func NewTournament(name string, seed int64, matchesPerPair int) *Tournament {
	return &Tournament{
		ID:             uuid.New().String(),
		Name:           name,
		State:          StateWaiting,
		Seed:           seed,
		MatchesPerPair: matchesPerPair,
		Entries:        make(map[string]*Entry),
		EntryOrder:     make([]string, 0),
		Standings:      make(map[string]*Standing),
		Pairings:       make([]*Pairing, 0),
		CreateTime:     time.Now(),
	}
}

// AddEntry registers a participant before the tournament starts.
func (t *Tournament) AddEntry(entry Entry) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.State != StateWaiting {
		return fmt.Errorf("tournament already started")
	}
	if entry.Name == "" {
		return fmt.Errorf("entry needs a name")
	}
	if _, exists := t.Entries[entry.Name]; exists {
		return fmt.Errorf("entry %q already joined", entry.Name)
	}

	t.Entries[entry.Name] = &entry
	t.Standings[entry.Name] = &Standing{Name: entry.Name}
	t.EntryOrder = append(t.EntryOrder, entry.Name)
	return nil
}

// Entry returns a copy of the named entry.
func (t *Tournament) Entry(name string) (Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entry, ok := t.Entries[name]
	if !ok {
		return Entry{}, false
	}
	return *entry, true
}

// GetState returns the current tournament state
func (t *Tournament) GetState() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.State
}

// Start pairs every entry with every other entry and moves the tournament
// into progress.
func (t *Tournament) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.State != StateWaiting {
		return fmt.Errorf("tournament already started")
	}
	if len(t.Entries) < 2 {
		return fmt.Errorf("not enough entries")
	}

	for i := 0; i < len(t.EntryOrder); i++ {
		for j := i + 1; j < len(t.EntryOrder); j++ {
			t.Pairings = append(t.Pairings, &Pairing{
				Entry1:  t.EntryOrder[i],
				Entry2:  t.EntryOrder[j],
				Matches: make([]MatchRecord, 0, t.MatchesPerPair),
			})
		}
	}

	now := time.Now()
	t.StartTime = &now
	t.State = StateInProgress
	return nil
}

// Finish marks the tournament finished.
func (t *Tournament) Finish() {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.EndTime = &now
	t.State = StateFinished
}

// RecordMatchResult adds a finished match to a pairing and updates the
// standings: three points for a win, one each for a draw.
func (t *Tournament) RecordMatchResult(pairingIndex int, record MatchRecord) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.State != StateInProgress {
		return fmt.Errorf("tournament is not in progress")
	}
	if pairingIndex < 0 || pairingIndex >= len(t.Pairings) {
		return fmt.Errorf("invalid pairing %d", pairingIndex)
	}

	pairing := t.Pairings[pairingIndex]
	first, second := t.Standings[pairing.Entry1], t.Standings[pairing.Entry2]

	switch record.Winner {
	case pairing.Entry1:
		pairing.Entry1Wins++
		first.Wins++
		first.Points += 3
		second.Losses++
	case pairing.Entry2:
		pairing.Entry2Wins++
		second.Wins++
		second.Points += 3
		first.Losses++
	case "":
		pairing.Draws++
		first.Draws++
		first.Points++
		second.Draws++
		second.Points++
	default:
		return fmt.Errorf("winner %q is not part of pairing %d", record.Winner, pairingIndex)
	}

	pairing.Matches = append(pairing.Matches, record)
	return nil
}

// Snapshot returns a consistent copy of the tournament state. Standings
// are ordered by points, then wins, then name.
func (t *Tournament) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	standings := make([]Standing, 0, len(t.EntryOrder))
	for _, name := range t.EntryOrder {
		standings = append(standings, *t.Standings[name])
	}
	sort.SliceStable(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.Name < b.Name
	})

	pairings := make([]PairingSnapshot, 0, len(t.Pairings))
	for _, p := range t.Pairings {
		matches := make([]MatchRecord, len(p.Matches))
		copy(matches, p.Matches)
		pairings = append(pairings, PairingSnapshot{
			Entry1:     p.Entry1,
			Entry2:     p.Entry2,
			Entry1Wins: p.Entry1Wins,
			Entry2Wins: p.Entry2Wins,
			Draws:      p.Draws,
			Matches:    matches,
		})
	}

	return Snapshot{
		ID:             t.ID,
		Name:           t.Name,
		State:          t.State,
		Seed:           t.Seed,
		MatchesPerPair: t.MatchesPerPair,
		Standings:      standings,
		Pairings:       pairings,
		CreateTime:     t.CreateTime,
		StartTime:      cloneTime(t.StartTime),
		EndTime:        cloneTime(t.EndTime),
	}
}

func cloneTime(src *time.Time) *time.Time {
	if src == nil {
		return nil
	}
	cp := *src
	return &cp
}
