// Package config loads the settings shared by both programs.
//
// Sources, lowest priority first:
//  1. Defaults from the env-default struct tags
//  2. An optional YAML file named by CONFIG_PATH or --config
//  3. Environment variables (env:"..." tags)
//
// Unlike a server, the programs must start with no setup at all, so a
// missing config path falls back to defaults instead of failing.
package config

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the root configuration structure.
type Config struct {
	// Env selects the log format and level: "dev", "staging" or "prod".
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// LogFile receives the structured log. Empty means stderr, which keeps
	// log lines off the menu on stdout.
	LogFile string `yaml:"log_file" env:"LOG_FILE"`

	Storage `yaml:"storage"`
}

// Storage selects where records are persisted.
type Storage struct {
	// Backend is "file" (delimited text files) or "sqlite".
	Backend string `yaml:"backend" env:"STORAGE_BACKEND" env-default:"file"`

	InventoryPath string `yaml:"inventory_path" env:"INVENTORY_PATH" env-default:"inventory.txt"`
	RecordsPath   string `yaml:"records_path" env:"RECORDS_PATH" env-default:"records.txt"`

	// SQLitePath is used only by the sqlite backend; both programs share it.
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"records.db"`
}

// Load reads the config file at path (if path is non-empty), then the
// environment, and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config.Load: %w", err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad resolves the config path from CONFIG_PATH or the --config flag
// and loads it, exiting the process on any error.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Backend {
	case BackendFile:
		if c.InventoryPath == "" || c.RecordsPath == "" {
			return fmt.Errorf("config: inventory_path and records_path must be set")
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("config: sqlite_path must be set")
		}
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Backend)
	}
	return nil
}
