package game

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/magefree/gwent-engine-go/internal/card"
	"go.uber.org/zap"
)

const transcriptVersion = 1

// Transcript records everything needed to reproduce a match: its setup and
// the sequence of action indices taken.
type Transcript struct {
	MatchID string
	Config  Config
	Actions []int
}

type transcriptHeader struct {
	Version   int
	MatchID   string
	Timestamp time.Time
}

// Replay re-runs a transcript from scratch. Because draws come from the
// seeded sources, the resulting match is identical to the recorded one.
func Replay(catalog *card.Catalog, space *ActionSpace, t Transcript, logger *zap.Logger) (*Match, error) {
	m, err := NewMatch(catalog, space, t.Config, WithID(t.MatchID), WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	for i, index := range t.Actions {
		if _, err := m.Step(index); err != nil {
			return nil, fmt.Errorf("replay diverged at step %d (action %d): %w", i, index, err)
		}
	}
	return m, nil
}

func transcriptPath(directory, matchID string) string {
	return filepath.Join(directory, matchID+".replay")
}

// SaveTranscript writes t as a gzipped gob file named after its match ID,
// creating directory if needed. It returns the file path.
func SaveTranscript(directory string, t Transcript) (string, error) {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	filename := transcriptPath(directory, t.MatchID)
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	zw := gzip.NewWriter(file)
	enc := gob.NewEncoder(zw)
	header := transcriptHeader{Version: transcriptVersion, MatchID: t.MatchID, Timestamp: time.Now()}
	if err := enc.Encode(&header); err != nil {
		return "", fmt.Errorf("failed to encode header: %w", err)
	}
	if err := enc.Encode(&t); err != nil {
		return "", fmt.Errorf("failed to encode transcript: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("failed to flush transcript: %w", err)
	}
	return filename, nil
}

// LoadTranscript reads the transcript SaveTranscript wrote for matchID.
func LoadTranscript(directory, matchID string) (Transcript, error) {
	file, err := os.Open(transcriptPath(directory, matchID))
	if err != nil {
		return Transcript{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	zr, err := gzip.NewReader(file)
	if err != nil {
		return Transcript{}, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer zr.Close()

	dec := gob.NewDecoder(zr)
	var header transcriptHeader
	if err := dec.Decode(&header); err != nil {
		return Transcript{}, fmt.Errorf("failed to decode header: %w", err)
	}
	if header.Version != transcriptVersion {
		return Transcript{}, fmt.Errorf("unsupported transcript version: %d", header.Version)
	}

	var t Transcript
	if err := dec.Decode(&t); err != nil {
		return Transcript{}, fmt.Errorf("failed to decode transcript: %w", err)
	}
	return t, nil
}
