// Package config loads runtime settings for the portfolio server and static
// builder from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	GinMode   string `env:"GIN_MODE" envDefault:"release"`
	StaticDir string `env:"PORTFOLIO_STATIC_DIR" envDefault:"./static"`
	OutDir    string `env:"PORTFOLIO_OUT_DIR" envDefault:"./dist"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	LogFile   string `env:"LOG_FILE"`

	// HashSalt salts visitor IP hashes. A random salt is generated at startup
	// when unset, so hashes are only comparable within one process.
	HashSalt string `env:"PORTFOLIO_HASH_SALT"`

	Stylesheets []string `env:"PORTFOLIO_STYLESHEETS" envSeparator:","`
	Scripts     []string `env:"PORTFOLIO_SCRIPTS" envSeparator:","`
}

// Load reads .env files when present, then parses the environment.
// Variables already set in the process win over .env values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return Parse()
}

// Parse loads configuration from environment variables only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return Config{}, fmt.Errorf("parse env: GIN_MODE %q is not one of %s, %s, %s",
			cfg.GinMode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
	return cfg, nil
}
