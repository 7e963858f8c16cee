// Package config handles loading the taskhub config.toml file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"taskhub/internal/paths"
	"taskhub/task"
)

// Config represents the taskhub config file.
type Config struct {
	// DataPath overrides the directory holding the task database.
	DataPath string `toml:"data-path"`

	View          View          `toml:"view"`
	Notifications Notifications `toml:"notifications"`
}

// View contains default view parameters.
type View struct {
	// Period is the window shown when no --period flag is given.
	Period string `toml:"period"`

	// Sort is the order used when no --sort flag is given.
	Sort string `toml:"sort"`
}

// Notifications contains notification-check configuration.
type Notifications struct {
	// Enabled turns desktop notifications on. Defaults to true.
	Enabled bool `toml:"enabled"`

	// AppName labels notifications. Defaults to "Task Hub".
	AppName string `toml:"app-name"`
}

// Load reads the config file from the default location. A missing file
// yields the defaults.
func Load() (*Config, error) {
	path, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads a config file from an explicit path. A missing file yields
// the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	// A bool field can't distinguish "false" from "absent"; only honor an
	// explicit setting.
	if !meta.IsDefined("notifications", "enabled") {
		cfg.Notifications.Enabled = true
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		View: View{
			Period: string(task.DefaultPeriod),
			Sort:   string(task.DefaultSortMode),
		},
		Notifications: Notifications{
			Enabled: true,
			AppName: "Task Hub",
		},
	}
}

func validate(cfg *Config) error {
	if !task.Period(cfg.View.Period).IsValid() {
		return fmt.Errorf("unknown view.period %q", cfg.View.Period)
	}
	if _, err := task.ParseSortMode(cfg.View.Sort); err != nil {
		return err
	}
	return nil
}

// DataDir returns the configured data directory, falling back to the
// default.
func (c *Config) DataDir() (string, error) {
	if c.DataPath != "" {
		return c.DataPath, nil
	}
	return paths.DefaultDataDir()
}
