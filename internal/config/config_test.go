package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/otonaba/otonaba-cli/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
	require.Contains(t, cfg.CredentialsFile, "otonaba")
	require.Equal(t, 3, cfg.PageLimit)
	require.Equal(t, 30*time.Second, cfg.PollInterval)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("OTONABA_API_URL", "https://board.example.com/api")
	t.Setenv("OTONABA_PAGE_LIMIT", "10")
	t.Setenv("OTONABA_POLL_INTERVAL", "5s")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "https://board.example.com/api", cfg.APIBaseURL)
	require.Equal(t, 10, cfg.PageLimit)
	require.Equal(t, 5*time.Second, cfg.PollInterval)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("OTONABA_PAGE_LIMIT", "0")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoadRejectsSubSecondPollInterval(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("OTONABA_POLL_INTERVAL", "100ms")

	_, err := config.Load()
	require.Error(t, err)
}
