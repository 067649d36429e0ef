package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Store settings
	DBPath        string `mapstructure:"db_path"`
	ForeignKeys   bool   `mapstructure:"foreign_keys"`
	BusyTimeoutMS int    `mapstructure:"busy_timeout_ms"`

	// Optional logging settings
	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level"`

	// Presentation
	Output          string `mapstructure:"output"`
	TopClientsLimit int    `mapstructure:"top_clients_limit"`

	// ConfigPath is the file that was read, empty when none was.
	ConfigPath string `mapstructure:"-"`
}

const (
	DefaultConfigPath      = "orderdesk.yml"
	DefaultDBPath          = "orders.db"
	DefaultLogLevel        = "info"
	DefaultOutput          = "table"
	DefaultTopClientsLimit = 5
	DefaultBusyTimeoutMS   = 5000

	EnvPrefix = "ORDERDESK"
)

var (
	validLogLevels = []string{"debug", "info", "warn", "error"}
	validOutputs   = []string{"table", "json", "yaml"}
)

// Load reads configuration from configPath, the environment and defaults,
// in that order of precedence after the environment. An explicit configPath
// must exist; the default one is only read if present.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("db_path", DefaultDBPath)
	v.SetDefault("foreign_keys", false)
	v.SetDefault("busy_timeout_ms", DefaultBusyTimeoutMS)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("top_clients_limit", DefaultTopClientsLimit)

	// Allow environment variable overrides
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	readPath := configPath
	if readPath == "" {
		if _, err := os.Stat(DefaultConfigPath); err == nil {
			readPath = DefaultConfigPath
		}
	}

	if readPath != "" {
		v.SetConfigFile(readPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ConfigPath = readPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("db_path is required")
	}

	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("log_level must be one of %s", strings.Join(validLogLevels, ", "))
	}

	if !contains(validOutputs, c.Output) {
		return fmt.Errorf("output must be one of %s", strings.Join(validOutputs, ", "))
	}

	if c.TopClientsLimit < 1 {
		return fmt.Errorf("top_clients_limit must be at least 1")
	}

	if c.BusyTimeoutMS < 0 {
		return fmt.Errorf("busy_timeout_ms must not be negative")
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
