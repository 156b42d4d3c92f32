package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skypath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "dijkstra", cfg.Algorithm)
	assert.Equal(t, Bench{Airports: 10000, Fanout: 3, Seed: 42, Runs: 10, Backend: "adjacency"}, cfg.Bench)
	assert.Contains(t, cfg.String(), "bench.airports: 10000")
}

func TestFileThenEnv(t *testing.T) {
	path := writeFile(t, `
log:
  format: json
network: europe.yaml
bench:
  airports: 500
  backend: compact
`)
	t.Setenv("SKYPATH_BENCH_AIRPORTS", "700")
	t.Setenv("SKYPATH_ALGORITHM", "astar")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "europe.yaml", cfg.Network)
	assert.Equal(t, "compact", cfg.Bench.Backend)
	assert.Equal(t, 700, cfg.Bench.Airports, "environment wins over file")
	assert.Equal(t, "astar", cfg.Algorithm)
	assert.Equal(t, 3, cfg.Bench.Fanout, "untouched keys keep defaults")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "algorithm: bellman-ford\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeFile(t, "bench:\n  backend: matrix\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeFile(t, "bench:\n  runs: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
