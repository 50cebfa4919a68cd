package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/gigasecond/internal/config"
	"github.com/ShayCichocki/gigasecond/internal/milestone"
	"github.com/ShayCichocki/gigasecond/pkg/models"
)

// settings is the resolved startup input: config file values overridden by flags.
type settings struct {
	Birth         time.Time
	Milestones    []models.Milestone
	Location      *time.Location
	RefreshRate   time.Duration
	ShowAge       bool
	ShowCountdown bool
	LogFile       string
	LogLevel      string
}

// addInputFlags registers the flags shared by the live display and report.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("birth", "b", "", `Birth date, e.g. 1990-01-01 or "1990-01-01 08:30"`)
	cmd.Flags().StringSliceP("milestone", "m", nil, "Milestone in seconds or billions (repeatable, e.g. 1e9, 1.5b)")
	cmd.Flags().String("tz", "", "Time zone for dates without an offset (default local)")
}

// loadConfig reads --config if given, otherwise the standard locations.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// resolveSettings merges configuration and flags, and parses every input.
// All parse failures wrap milestone.ErrInvalidInput.
func resolveSettings(cmd *cobra.Command) (*settings, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("tz") {
		cfg.Timezone, _ = flags.GetString("tz")
	}
	if flags.Changed("birth") {
		cfg.Birth, _ = flags.GetString("birth")
	}
	if flags.Changed("milestone") {
		cfg.Milestones, _ = flags.GetStringSlice("milestone")
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	birth, err := cfg.BirthTime()
	if err != nil {
		return nil, err
	}
	milestones, err := cfg.ParsedMilestones()
	if err != nil {
		return nil, err
	}

	s := &settings{
		Birth:         birth,
		Milestones:    milestones,
		Location:      loc,
		RefreshRate:   cfg.TUI.RefreshRate,
		ShowAge:       cfg.TUI.ShowAge,
		ShowCountdown: cfg.TUI.ShowCountdown,
		LogFile:       cfg.Log.File,
		LogLevel:      cfg.Log.Level,
	}

	// Flags only present on the root command.
	if flags.Lookup("refresh") != nil && flags.Changed("refresh") {
		s.RefreshRate, _ = flags.GetDuration("refresh")
		if s.RefreshRate <= 0 {
			return nil, fmt.Errorf("invalid --refresh %s: must be positive", s.RefreshRate)
		}
	}
	if flags.Lookup("no-age") != nil {
		if hide, _ := flags.GetBool("no-age"); hide {
			s.ShowAge = false
		}
	}
	if flags.Lookup("no-countdown") != nil {
		if hide, _ := flags.GetBool("no-countdown"); hide {
			s.ShowCountdown = false
		}
	}
	if flags.Lookup("log-file") != nil && flags.Changed("log-file") {
		s.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Lookup("log-level") != nil && flags.Changed("log-level") {
		s.LogLevel, _ = flags.GetString("log-level")
	}

	return s, nil
}

// timer validates the settings as a complete startup input: the birth must
// be set and not in the future, and every milestone positive.
func (s *settings) timer(now time.Time) (*milestone.Timer, error) {
	if s.Birth.IsZero() {
		return nil, &milestone.InputError{Field: "birth", Reason: "no birth date given; use --birth or set birth in the config"}
	}
	return milestone.NewTimer(s.Birth, now, s.Milestones)
}
