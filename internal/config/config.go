// Package config holds the seeding CLI configuration: store endpoints,
// credentials and logger settings, resolved through viper with the usual
// flag > env > file > default precedence.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Surreal   SurrealConfig   `mapstructure:"surrealdb" yaml:"surrealdb"`
	Dragonfly DragonflyConfig `mapstructure:"dragonfly" yaml:"dragonfly"`
	Logger    LoggerConfig    `mapstructure:"logger" yaml:"logger"`
}

// SurrealConfig holds the SurrealDB connection details.
type SurrealConfig struct {
	URL       string        `mapstructure:"url" yaml:"url"`
	User      string        `mapstructure:"user" yaml:"user"`
	Pass      string        `mapstructure:"pass" yaml:"-"`
	Namespace string        `mapstructure:"namespace" yaml:"namespace"`
	Database  string        `mapstructure:"database" yaml:"database"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
	// RPS throttles seeding statements; 0 disables the throttle.
	RPS float64 `mapstructure:"rps" yaml:"rps"`
}

// DragonflyConfig holds the Dragonfly (Redis protocol) connection details.
type DragonflyConfig struct {
	URL  string `mapstructure:"url" yaml:"url"`
	Pass string `mapstructure:"pass" yaml:"-"`
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// SetDefaults initializes default values. The store defaults point at the
// local development stack.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("surrealdb.url", "http://localhost:8000")
	v.SetDefault("surrealdb.user", "root")
	v.SetDefault("surrealdb.pass", "veds_dev_password")
	v.SetDefault("surrealdb.namespace", "veds")
	v.SetDefault("surrealdb.database", "production")
	v.SetDefault("surrealdb.timeout", "30s")
	v.SetDefault("surrealdb.rps", 0.0)

	v.SetDefault("dragonfly.url", "redis://localhost:6379")
	v.SetDefault("dragonfly.pass", "veds_dev_password")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "seedctl")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
}

// NewDefaultConfig creates a configuration populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Defaults are static; this only fires on a programming error.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// NewConfigFromViper creates a configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if c.Surreal.URL == "" {
		return fmt.Errorf("surrealdb.url is a required configuration field")
	}
	if c.Surreal.Namespace == "" || c.Surreal.Database == "" {
		return fmt.Errorf("surrealdb.namespace and surrealdb.database are required")
	}
	if c.Surreal.Timeout <= 0 {
		return fmt.Errorf("surrealdb.timeout must be a positive duration")
	}
	if c.Surreal.RPS < 0 {
		return fmt.Errorf("surrealdb.rps must not be negative")
	}
	if c.Dragonfly.URL == "" {
		return fmt.Errorf("dragonfly.url is a required configuration field")
	}
	return nil
}
