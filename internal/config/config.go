// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"fairdice/internal/game"
)

// Config holds settings shared by the play and serve commands. Command-line
// flags override these after Load.
type Config struct {
	Addr     string `env:"FAIRDICE_ADDR" envDefault:":8080"`
	Policy   string `env:"FAIRDICE_POLICY" envDefault:"fixed"`
	LogLevel string `env:"FAIRDICE_LOG_LEVEL" envDefault:"info"`
	DiceFile string `env:"FAIRDICE_DICE_FILE"`
	MaxGames int    `env:"FAIRDICE_MAX_GAMES" envDefault:"1000"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// GamePolicy validates and returns the configured assignment policy.
func (c Config) GamePolicy() (game.Policy, error) {
	return game.ParsePolicy(c.Policy)
}
