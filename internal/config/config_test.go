package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Match.HandSize)
	assert.Equal(t, 2, cfg.Match.StartingLife)
	assert.Equal(t, int64(0), cfg.Match.Seed)
	assert.Equal(t, []string{"random", "greedy"}, cfg.Tournament.Agents)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, ":8080", cfg.Demo.Addr)
	assert.Equal(t, "", cfg.Match.Faction(0))
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
match:
  seed: 1234
  hand_size: 8
  factions: [northern, monsters]
tournament:
  agents: [greedy, greedy]
  matches_per_pair: 3
logging:
  level: debug
  format: json
`), 0o600))

	t.Setenv("GWENT_MATCH_STARTING_LIFE", "3")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(1234), cfg.Match.Seed)
	assert.Equal(t, 8, cfg.Match.HandSize)
	assert.Equal(t, 3, cfg.Match.StartingLife)
	assert.Equal(t, "northern", cfg.Match.Faction(0))
	assert.Equal(t, "monsters", cfg.Match.Faction(1))
	assert.Equal(t, 3, cfg.Tournament.MatchesPerPair)
	assert.Equal(t, 4, cfg.Tournament.MaxConcurrent)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("match:\n  starting_life: 0\n  first_player: 4\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "starting_life")
	assert.Contains(t, err.Error(), "first_player")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
