package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/dmitrymomot/adminkit/pkg/logger"
	"github.com/dmitrymomot/adminkit/pkg/slug"
)

// Config holds all command configuration.
type Config struct {
	Slug SlugConfig    `mapstructure:"slug"`
	Log  logger.Config `mapstructure:"log"`
}

// SlugConfig selects the slug variant used by the slug command.
type SlugConfig struct {
	ASCII     bool `mapstructure:"ascii"`
	FoldMarks bool `mapstructure:"fold_marks"`
	MaxLength int  `mapstructure:"max_length"`
}

// Options converts the configuration into slug.Make options.
func (c SlugConfig) Options() []slug.Option {
	opts := []slug.Option{slug.MaxLength(c.MaxLength)}
	if c.ASCII {
		opts = append(opts, slug.ASCIIOnly())
	}
	if c.FoldMarks {
		opts = append(opts, slug.FoldMarks())
	}
	return opts
}

// LoadConfig reads defaults, then the optional config file, then ADMINKIT_* environment variables.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("slug.ascii", false)
	v.SetDefault("slug.fold_marks", false)
	v.SetDefault("slug.max_length", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.sentry_dsn", "")
	v.SetDefault("log.sentry_environment", "production")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var parseErr viper.ConfigParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("ADMINKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Slug.MaxLength < 0 {
		return nil, fmt.Errorf("slug.max_length must not be negative, got %d", cfg.Slug.MaxLength)
	}

	return &cfg, nil
}
