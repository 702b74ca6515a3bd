// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"pony/internal/store"
)

// AppDir is the directory under the home directory that holds the save and log
const AppDir = ".config/pony"

var engines = []string{store.EngineJSON, store.EngineSQLite, store.EngineMemory, store.EnginePostgres}

// Config holds every runtime setting
type Config struct {
	Store         string        `env:"PONY_STORE" envDefault:"json"`
	DataFile      string        `env:"PONY_DATA_FILE"`
	DatabaseURL   string        `env:"PONY_DATABASE_URL"`
	LogFile       string        `env:"PONY_LOG_FILE"`
	Seed          int64         `env:"PONY_SEED"`
	IdleInterval  time.Duration `env:"PONY_IDLE_INTERVAL" envDefault:"8s"`
	DecayInterval time.Duration `env:"PONY_DECAY_INTERVAL" envDefault:"1m"`
}

// Load reads dotenvPath if it exists, then parses the environment. Values
// already set in the environment win over the file.
func Load(dotenvPath string) (Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Ignoring %s: %v", dotenvPath, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Resolve fills in file paths under home and validates the result
func (c *Config) Resolve(home string) error {
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	if c.Store == "" {
		c.Store = store.EngineJSON
	}
	if !slices.Contains(engines, c.Store) {
		return fmt.Errorf("unknown store %q (want one of %s)", c.Store, strings.Join(engines, ", "))
	}
	if c.Store == store.EnginePostgres && c.DatabaseURL == "" {
		return errors.New("PONY_DATABASE_URL is required for the postgres store")
	}

	dir := filepath.Join(home, AppDir)
	if c.DataFile == "" {
		switch c.Store {
		case store.EngineSQLite:
			c.DataFile = filepath.Join(dir, "pony.db")
		case store.EngineJSON:
			c.DataFile = filepath.Join(dir, "pony.json")
		}
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(dir, "pony.log")
	}

	if c.IdleInterval <= 0 {
		return fmt.Errorf("idle interval must be positive, got %s", c.IdleInterval)
	}
	if c.DecayInterval <= 0 {
		return fmt.Errorf("decay interval must be positive, got %s", c.DecayInterval)
	}
	return nil
}

// EnsureDirs creates the directories the data and log files live in
func (c Config) EnsureDirs() error {
	for _, path := range []string{c.DataFile, c.LogFile} {
		if path == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
	}
	return nil
}
