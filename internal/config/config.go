package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	DefaultServerURL    = "http://localhost:3001"
	DefaultPageSize     = 10
	DefaultPollInterval = 5 * time.Second
	DefaultLogLevel     = "info"
)

type Config struct {
	ServerURL    string        `env:"ADMIN_SERVER_URL"`
	TokenFile    string        `env:"ADMIN_TOKEN_FILE"`
	DownloadDir  string        `env:"ADMIN_DOWNLOAD_DIR"`
	PageSize     int           `env:"ADMIN_PAGE_SIZE"`
	PollInterval time.Duration `env:"ADMIN_POLL_INTERVAL"`
	LogLevel     string        `env:"ADMIN_LOG_LEVEL"`
}

// New loads configuration from an optional .env file and the process
// environment. Flag registration stays in main so subcommands can share
// the flag set.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerURL:    DefaultServerURL,
		TokenFile:    defaultTokenFile(),
		DownloadDir:  ".",
		PageSize:     DefaultPageSize,
		PollInterval: DefaultPollInterval,
		LogLevel:     DefaultLogLevel,
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".adminctl-token"
	}
	return filepath.Join(home, ".adminctl", "token")
}
