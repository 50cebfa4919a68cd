package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ShayCichocki/gigasecond/internal/milestone"
)

// Keys lists the dot-notation keys accepted by Get and Set, in display order.
var Keys = []string{
	"birth",
	"timezone",
	"milestones",
	"tui.refresh_rate",
	"tui.show_age",
	"tui.show_countdown",
	"log.file",
	"log.level",
}

// Get returns a configuration value by dot-notation key.
func Get(cfg *Config, key string) (string, error) {
	switch strings.ToLower(key) {
	case "birth":
		if cfg.Birth == "" {
			return "(not set)", nil
		}
		return cfg.Birth, nil
	case "timezone":
		if cfg.Timezone == "" {
			return "Local", nil
		}
		return cfg.Timezone, nil
	case "milestones":
		return strings.Join(cfg.Milestones, ","), nil
	case "tui.refresh_rate":
		return cfg.TUI.RefreshRate.String(), nil
	case "tui.show_age":
		return strconv.FormatBool(cfg.TUI.ShowAge), nil
	case "tui.show_countdown":
		return strconv.FormatBool(cfg.TUI.ShowCountdown), nil
	case "log.file":
		return cfg.Log.File, nil
	case "log.level":
		return cfg.Log.Level, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// Set validates value and stores it under a dot-notation key.
func Set(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "birth":
		loc, err := cfg.Location()
		if err != nil {
			return err
		}
		if _, err := milestone.ParseBirth(value, loc); err != nil {
			return err
		}
		cfg.Birth = strings.TrimSpace(value)
	case "timezone":
		prev := cfg.Timezone
		cfg.Timezone = value
		if _, err := cfg.Location(); err != nil {
			cfg.Timezone = prev
			return err
		}
	case "milestones":
		values := strings.Split(value, ",")
		if _, err := milestone.ParseMilestones(values); err != nil {
			return err
		}
		for i := range values {
			values[i] = strings.TrimSpace(values[i])
		}
		cfg.Milestones = values
	case "tui.refresh_rate":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for refresh_rate: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("invalid duration for refresh_rate: must be positive")
		}
		cfg.TUI.RefreshRate = d
	case "tui.show_age":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for tui.show_age: %w", err)
		}
		cfg.TUI.ShowAge = b
	case "tui.show_countdown":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for tui.show_countdown: %w", err)
		}
		cfg.TUI.ShowCountdown = b
	case "log.file":
		cfg.Log.File = value
	case "log.level":
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "error":
			cfg.Log.Level = strings.ToLower(value)
		default:
			return fmt.Errorf("invalid log level %q: want debug, info, warn or error", value)
		}
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}
