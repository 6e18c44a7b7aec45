package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const MaxGitHubPageSize = 100

type Config struct {
	HTTPPort           string        `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort        string        `env:"METRICS_PORT" envDefault:"9100"`
	SubmitRateLimit    float64       `env:"SUBMIT_RATE_LIMIT" envDefault:"0"`
	SessionTTL         time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	GitHub             GitHub
	PyroscopeEnabled   bool   `env:"PYROSCOPE_ENABLED" envDefault:"false"`
	PyroscopeAddress   string `env:"PYROSCOPE_SERVER_ADDRESS" envDefault:"http://pyroscope:4040"`
	JaegerCollectorURL string `env:"JAEGER_COLLECTOR_URL"`
}

type GitHub struct {
	APIURL   string        `env:"GITHUB_API_URL" envDefault:"https://api.github.com/"`
	PageSize int           `env:"GITHUB_PAGE_SIZE" envDefault:"100"`
	MaxPages int           `env:"GITHUB_MAX_PAGES" envDefault:"0"`
	Timeout  time.Duration `env:"GITHUB_TIMEOUT" envDefault:"0s"`
}

// Load reads the environment, after an optional .env file in the working directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("can not load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("can not parse env config: %w", err)
	}

	// GitHub serves at most 100 items per page; a larger size would look like a short last page.
	if cfg.GitHub.PageSize <= 0 || cfg.GitHub.PageSize > MaxGitHubPageSize {
		return nil, fmt.Errorf("GITHUB_PAGE_SIZE must be in 1..%d, got %d", MaxGitHubPageSize, cfg.GitHub.PageSize)
	}
	if cfg.GitHub.MaxPages < 0 {
		return nil, fmt.Errorf("GITHUB_MAX_PAGES must not be negative, got %d", cfg.GitHub.MaxPages)
	}

	return cfg, nil
}
