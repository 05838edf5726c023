// Package config loads core2 settings from a YAML file and CORE2_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Dialect names accepted in store.dialect.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// Config is the resolved core2 configuration.
type Config struct {
	Store     StoreConfig `mapstructure:"store" yaml:"store"`
	Auth      AuthConfig  `mapstructure:"auth" yaml:"auth"`
	OwnerID   string      `mapstructure:"owner_id" yaml:"owner_id"` // offline owner when auth.url is empty
	StatePath string      `mapstructure:"state_path" yaml:"state_path"`
	Log       LogConfig   `mapstructure:"log" yaml:"log"`
}

// StoreConfig selects the entity store.
type StoreConfig struct {
	Dialect string `mapstructure:"dialect" yaml:"dialect"`
	DSN     string `mapstructure:"dsn" yaml:"dsn"`
	Migrate bool   `mapstructure:"migrate" yaml:"migrate"`
}

// AuthConfig points at the store's session API.
type AuthConfig struct {
	URL     string `mapstructure:"url" yaml:"url"`
	AnonKey string `mapstructure:"anon_key" yaml:"anon_key"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// HomeDir returns ~/.core2.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".core2"), nil
}

// Default returns the configuration used when no file or environment is set.
func Default() (*Config, error) {
	dir, err := HomeDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		Store: StoreConfig{
			Dialect: DialectSQLite,
			DSN:     filepath.Join(dir, "core2.db"),
			Migrate: true,
		},
		StatePath: filepath.Join(dir, "state.json"),
		Log:       LogConfig{Level: "info", Format: "text"},
	}, nil
}

// Load reads the configuration. An explicit path must exist; otherwise
// ./.core2/config.yaml and ~/.core2/config.yaml are tried and a missing file
// is not an error.
func Load(path string) (*Config, error) {
	def, err := Default()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("store.dialect", def.Store.Dialect)
	v.SetDefault("store.dsn", def.Store.DSN)
	v.SetDefault("store.migrate", def.Store.Migrate)
	v.SetDefault("auth.url", "")
	v.SetDefault("auth.anon_key", "")
	v.SetDefault("owner_id", "")
	v.SetDefault("state_path", def.StatePath)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".core2")
		v.AddConfigPath("$HOME/.core2")
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CORE2")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	switch c.Store.Dialect {
	case DialectSQLite, DialectPostgres:
	default:
		return fmt.Errorf("invalid store.dialect %q: must be %s or %s", c.Store.Dialect, DialectSQLite, DialectPostgres)
	}
	if c.Store.DSN == "" {
		return fmt.Errorf("store.dsn is required")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log.format %q: must be text or json", c.Log.Format)
	}
	return nil
}

// Offline reports whether no auth service is configured.
func (c *Config) Offline() bool {
	return c.Auth.URL == ""
}

// YAML renders the configuration as a config file.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// WriteDefault writes the default configuration to path, creating parent
// directories. An existing file is left alone unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists at %s", path)
		}
	}
	cfg, err := Default()
	if err != nil {
		return err
	}
	data, err := cfg.YAML()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
