// Package config loads engine defaults from environment variables.
// Flags override the parsed values at the CLI layer.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DataDir       string        `env:"PUZZLEBOOK_DATA_DIR" envDefault:"./data"`
	WordList      string        `env:"PUZZLEBOOK_WORDLIST"`
	Workers       int           `env:"PUZZLEBOOK_WORKERS" envDefault:"4"`
	LogLevel      string        `env:"PUZZLEBOOK_LOG_LEVEL" envDefault:"info"`
	SolverNodes   int           `env:"PUZZLEBOOK_SOLVER_NODES" envDefault:"200000"`
	SolverTimeout time.Duration `env:"PUZZLEBOOK_SOLVER_TIMEOUT" envDefault:"2s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
