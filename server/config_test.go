package server_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/server"
)

// clearEnv unsets every variable LoadConfig reads for the test's duration.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{server.EnvAddr, server.EnvMaxCells, server.EnvMaxExpansions, server.EnvReadTimeout} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := server.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, server.DefaultConfig(), cfg)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"TILEPATH_ADDR=127.0.0.1:9090\nTILEPATH_MAX_CELLS=400\nTILEPATH_MAX_EXPANSIONS=50\nTILEPATH_READ_TIMEOUT=3s\n",
	), 0o600))

	cfg, err := server.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, server.Config{
		Addr:          "127.0.0.1:9090",
		MaxCells:      400,
		MaxExpansions: 50,
		ReadTimeout:   3 * time.Second,
	}, cfg)
}

func TestLoadConfig_EnvWinsOverFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TILEPATH_MAX_CELLS=400\n"), 0o600))
	t.Setenv(server.EnvMaxCells, "900")

	cfg, err := server.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 900, cfg.MaxCells)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]string{
		server.EnvMaxCells:      "0",
		server.EnvMaxExpansions: "-3",
		server.EnvReadTimeout:   "soon",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := server.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
			assert.ErrorIs(t, err, server.ErrBadConfig)
		})
	}
}
