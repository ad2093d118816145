package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"idlepoker-server/internal/util"
)

// store drivers
const (
	StoreMemory   = "memory"
	StoreFile     = "file"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config provides configuration for the idle poker server
type Config struct {
	loaded           bool
	Addr             string        `yaml:"addr" envconfig:"addr"`
	Seed             int64         `yaml:"seed" envconfig:"seed"`
	TickInterval     time.Duration `yaml:"tickInterval" envconfig:"tick_interval"`
	AutosaveInterval time.Duration `yaml:"autosaveInterval" envconfig:"autosave_interval"`
	SaveTimeout      time.Duration `yaml:"saveTimeout" envconfig:"save_timeout"`
	PGDSN            string        `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath   string        `yaml:"migrationsPath" envconfig:"migrations_path"`
	Store            struct {
		Driver string `yaml:"driver"`
		Path   string `yaml:"path"`
		Slot   string `yaml:"slot"`
	} `yaml:"store"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Log struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		Addr:             ":5000",
		TickInterval:     time.Second,
		AutosaveInterval: time.Second * 30,
		SaveTimeout:      time.Second * 5,
		PGDSN:            "postgres://postgres@localhost:5432/postgres?sslmode=disable",
		MigrationsPath:   "./sql",
	}

	cfg.Store.Driver = StoreFile
	cfg.Store.Path = "idlepoker-save.json"
	cfg.Store.Slot = "default"
	cfg.Redis.Addr = "localhost:6379"
	cfg.Log.Level = "info"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The file is optional, environment variables prefixed with IDLE_ take precedence
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("IDLE_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("idle", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate ensures the configuration is usable
func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory, StoreFile, StorePostgres, StoreRedis:
	default:
		return fmt.Errorf("unknown store driver: %s", c.Store.Driver)
	}

	if c.TickInterval <= 0 {
		return fmt.Errorf("tickInterval must be positive")
	}

	if c.AutosaveInterval <= 0 {
		return fmt.Errorf("autosaveInterval must be positive")
	}

	return nil
}
