// Package config loads the settings of the sgs tool.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Backends names the supported storage backends.
var Backends = []string{"file", "sqlite", "memory"}

type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

type DefaultConfig struct {
	Currency  string `mapstructure:"currency"`
	IconColor string `mapstructure:"icon_color"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Default DefaultConfig `mapstructure:"default"`
	Log     LogConfig     `mapstructure:"log"`
}

// LogLevel returns the configured log level, warn if unknown.
func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil || c.Log.Level == "" {
		return zerolog.WarnLevel
	}
	return lvl
}

func defaults(v *viper.Viper) {
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.path", ".savings")
	v.SetDefault("default.currency", "USD")
	v.SetDefault("default.icon_color", "#3B82F6")
	v.SetDefault("log.level", "warn")
}

// Load reads the configuration file at path, if any, and applies the
// environment overrides (e.g. SGS_STORAGE_BACKEND=sqlite).
//
// If path is empty "sgs.yaml" is looked up in the current directory, and its
// absence is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	defaults(v)

	if path == "" {
		v.SetConfigName("sgs")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("SGS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case "file", "sqlite", "memory":
	default:
		return fmt.Errorf("unknown storage backend %q, want one of %s", c.Storage.Backend, strings.Join(Backends, ", "))
	}
	if c.Storage.Backend != "memory" && c.Storage.Path == "" {
		return errors.New("storage path is required")
	}
	return nil
}
