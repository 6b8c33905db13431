package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ratel-online/uno/consts"
)

// Config controls the terminal game. Every field is read from the environment; a .env file in
// the working directory is loaded first by main.
type Config struct {
	PlayerName  string        `env:"UNO_PLAYER_NAME"`
	PlayerCount int           `env:"UNO_PLAYER_COUNT" envDefault:"4"`
	BotNames    []string      `env:"UNO_BOT_NAMES"    envSeparator:","`
	Seed        int64         `env:"UNO_SEED"`
	Delay       time.Duration `env:"UNO_DELAY"        envDefault:"1s"`
}

// Load parses the environment and checks the table size.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.PlayerCount < consts.MinPlayers || cfg.PlayerCount > consts.MaxPlayers {
		return Config{}, fmt.Errorf("UNO_PLAYER_COUNT=%d: %w", cfg.PlayerCount, consts.ErrorsGamePlayersInvalid)
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	return cfg, nil
}

// SeedOrNow returns the configured seed, or the current time when none is set.
func (c Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
