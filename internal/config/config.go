// Package config loads client configuration from an optional config file and
// the environment using Viper.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds everything the client needs to talk to the backend.
type Config struct {
	// APIBaseURL is the backend REST root, including the /api prefix.
	APIBaseURL string `mapstructure:"OTONABA_API_URL"`
	// CredentialsFile is where the session token and user are persisted.
	CredentialsFile string `mapstructure:"OTONABA_CREDENTIALS_FILE"`
	// PageLimit is the posts-per-page used for listings.
	PageLimit int `mapstructure:"OTONABA_PAGE_LIMIT"`
	// PollInterval is how often `notif watch` refetches the unread count.
	PollInterval time.Duration `mapstructure:"OTONABA_POLL_INTERVAL"`
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `mapstructure:"OTONABA_LOG_LEVEL"`
}

// Load reads the config file at <user config dir>/otonaba/config.env when
// present, then applies env overrides and defaults. A missing file is fine;
// invalid values are not.
func Load() (*Config, error) {
	v := viper.New()

	dir := configDir()
	v.SetConfigFile(filepath.Join(dir, "config.env"))
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore a missing config file

	v.AutomaticEnv()

	v.SetDefault("OTONABA_API_URL", "http://localhost:5000/api")
	v.SetDefault("OTONABA_CREDENTIALS_FILE", filepath.Join(dir, "credentials.json"))
	v.SetDefault("OTONABA_PAGE_LIMIT", 3)
	v.SetDefault("OTONABA_POLL_INTERVAL", 30*time.Second)
	v.SetDefault("OTONABA_LOG_LEVEL", "warn")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "[config.Load] unmarshal")
	}

	if cfg.APIBaseURL == "" {
		return nil, errors.New("[config.Load] OTONABA_API_URL must be set")
	}
	if cfg.PageLimit < 1 {
		return nil, errors.New("[config.Load] OTONABA_PAGE_LIMIT must be at least 1")
	}
	if cfg.PollInterval < time.Second {
		return nil, errors.New("[config.Load] OTONABA_POLL_INTERVAL must be at least 1s")
	}

	return &cfg, nil
}

func configDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "otonaba")
	}
	return ".otonaba"
}
