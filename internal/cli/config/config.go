// Package config loads tagresolve configuration from tagresolve.yml (or
// .yaml) with environment variable overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the tagresolve configuration
type Config struct {
	Schema string       `mapstructure:"schema"`
	Server ServerConfig `mapstructure:"server"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// CacheConfig controls the optional resolution result cache
type CacheConfig struct {
	Size int `mapstructure:"size"` // 0 disables caching
}

// LogConfig controls logging output
type LogConfig struct {
	Development bool `mapstructure:"development"`
}

// Load loads the configuration from tagresolve.yml or tagresolve.yaml in the
// working directory, falling back to defaults. Environment variables with
// the TAGRESOLVE_ prefix override file values (TAGRESOLVE_SERVER_PORT, ...).
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("schema", "schema.json")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 7410)
	v.SetDefault("cache.size", 0)
	v.SetDefault("log.development", false)

	v.SetConfigName("tagresolve")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TAGRESOLVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validate(c *Config) error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("invalid cache size: %d", c.Cache.Size)
	}
	return nil
}
