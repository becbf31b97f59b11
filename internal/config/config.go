// ABOUTME: Configuration for the notes CLI.
// ABOUTME: Merges flags, NOTES_* environment, an optional YAML file, and XDG defaults via viper.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/harper/notes/internal/store"
)

const (
	KeyFile       = "file"
	KeyIDStrategy = "id_strategy"
	KeyLogLevel   = "log_level"
	KeyStyle      = "style"
	KeyWordWrap   = "word_wrap"

	envPrefix = "NOTES"
)

// Config holds the effective settings after all sources are merged.
type Config struct {
	File       string `mapstructure:"file" yaml:"file"`
	IDStrategy string `mapstructure:"id_strategy" yaml:"id_strategy"`
	LogLevel   string `mapstructure:"log_level" yaml:"log_level"`
	Style      string `mapstructure:"style" yaml:"style"`
	WordWrap   int    `mapstructure:"word_wrap" yaml:"word_wrap"`
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "notes")
}

// ConfigPath returns the default path of the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DefaultFile returns the default notes file under XDG_DATA_HOME.
func DefaultFile() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "notes", "notes.json")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyFile, DefaultFile())
	v.SetDefault(KeyIDStrategy, string(store.IDStrategyLength))
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyStyle, "auto")
	v.SetDefault(KeyWordWrap, 80)
}

// Load resolves the configuration. configFile may be empty, in which case
// the default path is used if it exists. flags may be nil; otherwise any
// flag named like a config key overrides the other sources when set.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{KeyFile, KeyIDStrategy, KeyLogLevel, KeyStyle} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	explicit := configFile != ""
	if !explicit {
		configFile = ConfigPath()
	}
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		if explicit || !missing {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.File == "" {
		return errors.New("config: file must not be empty")
	}
	if _, err := store.ParseIDStrategy(c.IDStrategy); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.WordWrap < 0 {
		return fmt.Errorf("config: word_wrap must be >= 0, got %d", c.WordWrap)
	}
	return nil
}

// Strategy returns the parsed id strategy. Validate has already checked it.
func (c *Config) Strategy() store.IDStrategy {
	s, _ := store.ParseIDStrategy(c.IDStrategy)
	return s
}
