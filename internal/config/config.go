// Package config provides configuration for the inboxiq demo: the
// user's display name, the chat response delay, and the intent rule
// table. Values come from defaults, then an optional yaml file, then
// INBOXIQ_* environment variables, last writer wins.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/inboxiq/inboxiq/internal/intent"
)

type Config struct {
	User UserConfig `yaml:"user"`
	Chat ChatConfig `yaml:"chat"`
	Log  LogConfig  `yaml:"log"`
}

type UserConfig struct {
	// Name is shown in the title bar greeting.
	Name string `yaml:"name"`
}

type ChatConfig struct {
	// ResponseDelay is the simulated assistant latency as a
	// time.ParseDuration string, e.g. "1500ms" or "0s".
	ResponseDelay string `yaml:"response_delay"`
	// Fallback overrides the response used when no rule matches.
	Fallback string `yaml:"fallback"`
	// Rules overrides the built-in rule table. Order in the file is
	// the evaluation order.
	Rules []intent.Rule `yaml:"rules"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func defaults() Config {
	return Config{
		Chat: ChatConfig{
			ResponseDelay: "1500ms",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the default config file location,
// $XDG_CONFIG_HOME/inboxiq/config.yaml.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "inboxiq", "config.yaml")
}

// Load reads configuration. With an empty path the default location is
// used and a missing file just means defaults; an explicitly given
// path must exist. Environment variables override file values.
func Load(path string) (Config, error) {
	cfg := defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
			// No file at the default location: defaults apply.
		default:
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Router builds the intent router from the configured table, falling
// back to the built-ins where the config is silent.
func (c Config) Router() *intent.Router {
	return intent.NewRouter(c.Chat.Rules, c.Chat.Fallback)
}
