package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"PUZZLEBOOK_DATA_DIR", "PUZZLEBOOK_WORDLIST", "PUZZLEBOOK_WORKERS",
		"PUZZLEBOOK_LOG_LEVEL", "PUZZLEBOOK_SOLVER_NODES", "PUZZLEBOOK_SOLVER_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
	cfg, err := ParseEnv()
	require.NoError(t, err)
	require.Equal(t, "./data", cfg.DataDir)
	require.Empty(t, cfg.WordList)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 200000, cfg.SolverNodes)
	require.Equal(t, 2*time.Second, cfg.SolverTimeout)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("PUZZLEBOOK_DATA_DIR", "/tmp/records")
	t.Setenv("PUZZLEBOOK_WORKERS", "8")
	t.Setenv("PUZZLEBOOK_SOLVER_TIMEOUT", "500ms")

	cfg, err := ParseEnv()
	require.NoError(t, err)
	require.Equal(t, "/tmp/records", cfg.DataDir)
	require.Equal(t, 8, cfg.Workers)
	require.Equal(t, 500*time.Millisecond, cfg.SolverTimeout)
}

func TestParseEnvRejectsBadValue(t *testing.T) {
	t.Setenv("PUZZLEBOOK_WORKERS", "lots")
	_, err := ParseEnv()
	require.Error(t, err)
}
