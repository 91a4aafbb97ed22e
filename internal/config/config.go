// Package config loads themekit configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. THEMEKIT_THEME_ACTIVE.
const EnvPrefix = "THEMEKIT"

// Config is the application configuration.
type Config struct {
	Theme   ThemeConfig   `mapstructure:"theme"`
	Logging LoggingConfig `mapstructure:"logging"`

	// Source is the config file that was read, empty when none was found.
	Source string `mapstructure:"-"`
}

// ThemeConfig selects and locates themes.
type ThemeConfig struct {
	// Active is the theme selected at startup.
	Active string `mapstructure:"active"`

	// Strict makes undefined attributes an error instead of #000000.
	Strict bool `mapstructure:"strict"`

	// Dirs are searched for theme files before the default search paths.
	Dirs []string `mapstructure:"dirs"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			Active: "dark",
			Dirs:   []string{},
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/themekit or ~/.config/themekit.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "themekit")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "themekit")
	}
	return filepath.Join(home, ".config", "themekit")
}

// Load reads configuration. An explicit path must exist; otherwise
// config.yaml in DefaultConfigDir is used when present.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("theme.active", def.Theme.Active)
	v.SetDefault("theme.strict", def.Theme.Strict)
	v.SetDefault("theme.dirs", def.Theme.Dirs)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
}

// Validate checks option values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logging.format %q (want console or json)", c.Logging.Format)
	}
	if strings.TrimSpace(c.Theme.Active) == "" {
		return fmt.Errorf("theme.active is required")
	}
	return nil
}
