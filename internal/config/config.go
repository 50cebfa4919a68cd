// Package config handles configuration loading and management for gigasecond.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/ShayCichocki/gigasecond/internal/milestone"
	"github.com/ShayCichocki/gigasecond/pkg/models"
)

const appName = "gigasecond"

// Config holds all configuration for gigasecond.
type Config struct {
	// Birth is the birth date or date-time, parsed with milestone.ParseBirth.
	Birth string `mapstructure:"birth"`
	// Timezone is an IANA zone name used for dates without an offset.
	// Empty means the system local zone.
	Timezone   string    `mapstructure:"timezone"`
	Milestones []string  `mapstructure:"milestones"`
	TUI        TUIConfig `mapstructure:"tui"`
	Log        LogConfig `mapstructure:"log"`
}

// TUIConfig holds TUI display settings.
type TUIConfig struct {
	RefreshRate   time.Duration `mapstructure:"refresh_rate"`
	ShowAge       bool          `mapstructure:"show_age"`
	ShowCountdown bool          `mapstructure:"show_countdown"`
}

// LogConfig holds diagnostic log settings.
type LogConfig struct {
	// File is where logs are written. "-" disables logging.
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (GIGASECOND_BIRTH, GIGASECOND_MILESTONES, GIGASECOND_TZ)
// 2. Project config (.gigasecond.yaml in current directory or parent)
// 3. User config (~/.config/gigasecond/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading project config %s: %w", projectConfig, err)
		}
		if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	bindEnv(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path, on top of the defaults.
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	bindEnv(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Save writes the current configuration to the user config file.
func Save(cfg *Config) error {
	return SaveTo(cfg, GetUserConfigPath())
}

// SaveTo writes the configuration to path, creating parent directories.
func SaveTo(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("birth", cfg.Birth)
	v.Set("timezone", cfg.Timezone)
	v.Set("milestones", cfg.Milestones)
	v.Set("tui.refresh_rate", cfg.TUI.RefreshRate.String())
	v.Set("tui.show_age", cfg.TUI.ShowAge)
	v.Set("tui.show_countdown", cfg.TUI.ShowCountdown)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.level", cfg.Log.Level)

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// DefaultLogPath returns the XDG state path for the log file.
func DefaultLogPath() string {
	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return filepath.Join(xdgState, appName, appName+".log")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", appName+".log")
	}
	return filepath.Join(home, ".local", "state", appName, appName+".log")
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, &milestone.InputError{Field: "timezone", Value: c.Timezone, Reason: "unknown time zone"}
	}
	return loc, nil
}

// BirthTime parses the configured birth in the configured timezone.
// A zero time with a nil error means no birth is configured.
func (c *Config) BirthTime() (time.Time, error) {
	if c.Birth == "" {
		return time.Time{}, nil
	}
	loc, err := c.Location()
	if err != nil {
		return time.Time{}, err
	}
	return milestone.ParseBirth(c.Birth, loc)
}

// ParsedMilestones parses the configured milestones, falling back to the
// defaults when none are set.
func (c *Config) ParsedMilestones() ([]models.Milestone, error) {
	if len(c.Milestones) == 0 {
		return models.DefaultMilestones(), nil
	}
	return milestone.ParseMilestones(c.Milestones)
}

func bindEnv(v *viper.Viper) {
	v.BindEnv("birth", "GIGASECOND_BIRTH")
	v.BindEnv("milestones", "GIGASECOND_MILESTONES")
	v.BindEnv("timezone", "GIGASECOND_TZ")
	v.BindEnv("log.file", "GIGASECOND_LOG_FILE")
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("birth", "")
	v.SetDefault("timezone", "")
	v.SetDefault("milestones", []string{"1000000000", "2000000000", "3000000000"})

	v.SetDefault("tui.refresh_rate", "1s")
	v.SetDefault("tui.show_age", true)
	v.SetDefault("tui.show_countdown", true)

	v.SetDefault("log.file", DefaultLogPath())
	v.SetDefault("log.level", "info")
}

// getUserConfigDir returns the XDG config directory for gigasecond.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, appName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", appName)
	}
	return filepath.Join(home, ".config", appName)
}

// findProjectConfig searches for .gigasecond.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, "."+appName+".yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Milestones: []string{"1000000000", "2000000000", "3000000000"},
		TUI: TUIConfig{
			RefreshRate:   time.Second,
			ShowAge:       true,
			ShowCountdown: true,
		},
		Log: LogConfig{
			File:  DefaultLogPath(),
			Level: "info",
		},
	}
}
