package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Mode int

const (
	ModeDev Mode = iota
	ModeProd
)

type Config struct {
	Addr        string `env:"SHOWCASE_ADDR" envDefault:":4002"`
	ContentPath string `env:"SHOWCASE_CONTENT"`
	Dev         bool   `env:"SHOWCASE_DEV" envDefault:"false"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Markdown    bool   `env:"SHOWCASE_MARKDOWN" envDefault:"false"`
	ExportDir   string `env:"SHOWCASE_EXPORT_DIR" envDefault:"dist"`

	// Zero keeps rendered pages for the process lifetime.
	CacheTTL time.Duration `env:"SHOWCASE_CACHE_TTL" envDefault:"0s"`

	ReadTimeout     time.Duration `env:"SHOWCASE_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SHOWCASE_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"SHOWCASE_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHOWCASE_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads the optional dotenv files first; variables already set in the
// environment win over them.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, file := range dotenvFiles {
		_ = godotenv.Load(file)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Addr != "" && !strings.Contains(cfg.Addr, ":") {
		cfg.Addr = ":" + cfg.Addr
	}
	return cfg, nil
}

func (c *Config) Mode() Mode {
	if c.Dev {
		return ModeDev
	}
	return ModeProd
}
