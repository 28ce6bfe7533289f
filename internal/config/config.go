// Package config loads clipd configuration from ~/.clipd/config.yaml
// with environment variable overrides (CLIPD_*).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete clipd configuration.
type Config struct {
	Watch    WatchConfig    `mapstructure:"watch"`
	History  HistoryConfig  `mapstructure:"history"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// WatchConfig controls the watch pipeline.
type WatchConfig struct {
	// PollIntervalMs is how often the clipboard is sampled (in milliseconds)
	PollIntervalMs int `mapstructure:"poll_interval_ms"`
	// RelayCapacity is the number of pending changes the relay holds before
	// the poller blocks
	RelayCapacity int `mapstructure:"relay_capacity"`
	// ThrottleMs is the delay after handling each change before the worker
	// pulls the next one (in milliseconds)
	ThrottleMs int `mapstructure:"throttle_ms"`
}

// HistoryConfig controls history queries.
type HistoryConfig struct {
	// Limit is the default number of entries returned by history queries
	// and emitted as the initial batch
	Limit int `mapstructure:"limit"`
}

// DatabaseConfig controls storage.
type DatabaseConfig struct {
	// Path is the SQLite database file; empty means ~/.clipd/history.db
	Path string `mapstructure:"path"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	// Level is the minimum log level: DEBUG, INFO, WARN, ERROR
	Level string `mapstructure:"level"`
	// Dir is where the log file lives; empty means stderr
	Dir string `mapstructure:"dir"`
}

// DefaultConfig returns the configuration with all default values.
func DefaultConfig() *Config {
	return &Config{
		Watch: WatchConfig{
			PollIntervalMs: 1000,
			RelayCapacity:  10,
			ThrottleMs:     200,
		},
		History: HistoryConfig{
			Limit: 20,
		},
		Database: DatabaseConfig{
			Path: "",
		},
		Logging: LoggingConfig{
			Level: "INFO",
			Dir:   "",
		},
	}
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	defaults := DefaultConfig()

	viper.SetDefault("watch.poll_interval_ms", defaults.Watch.PollIntervalMs)
	viper.SetDefault("watch.relay_capacity", defaults.Watch.RelayCapacity)
	viper.SetDefault("watch.throttle_ms", defaults.Watch.ThrottleMs)

	viper.SetDefault("history.limit", defaults.History.Limit)

	viper.SetDefault("database.path", defaults.Database.Path)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration, applying defaults, the config file (if
// present), and CLIPD_* environment overrides, in that order.
func Load() (*Config, error) {
	SetDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".clipd"))
	}

	viper.SetEnvPrefix("CLIPD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// PollInterval returns the clipboard sampling period.
func (c *WatchConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// Throttle returns the post-message delay of the persistence worker.
func (c *WatchConfig) Throttle() time.Duration {
	return time.Duration(c.ThrottleMs) * time.Millisecond
}
