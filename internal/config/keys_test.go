package config

import (
	"errors"
	"testing"
	"time"

	"github.com/ShayCichocki/gigasecond/internal/milestone"
)

func TestGet(t *testing.T) {
	cfg := Default()
	cfg.Log.File = "/tmp/g.log"

	tests := []struct {
		key  string
		want string
	}{
		{"birth", "(not set)"},
		{"timezone", "Local"},
		{"milestones", "1000000000,2000000000,3000000000"},
		{"tui.refresh_rate", "1s"},
		{"TUI.Show_Age", "true"},
		{"tui.show_countdown", "true"},
		{"log.file", "/tmp/g.log"},
		{"log.level", "info"},
	}

	for _, tt := range tests {
		got, err := Get(cfg, tt.key)
		if err != nil {
			t.Errorf("Get(%q) error: %v", tt.key, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}

	if _, err := Get(cfg, "anthropic.api_key"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestGet_CoversAllKeys(t *testing.T) {
	cfg := Default()
	for _, key := range Keys {
		if _, err := Get(cfg, key); err != nil {
			t.Errorf("Get(%q) error: %v", key, err)
		}
	}
}

func TestSet(t *testing.T) {
	cfg := Default()

	steps := []struct {
		key   string
		value string
	}{
		{"timezone", "UTC"},
		{"birth", " 1990-01-01 12:00 "},
		{"milestones", "1b, 1.5b"},
		{"tui.refresh_rate", "250ms"},
		{"tui.show_age", "false"},
		{"tui.show_countdown", "false"},
		{"log.file", "-"},
		{"log.level", "DEBUG"},
	}
	for _, s := range steps {
		if err := Set(cfg, s.key, s.value); err != nil {
			t.Fatalf("Set(%q, %q) error: %v", s.key, s.value, err)
		}
	}

	if cfg.Birth != "1990-01-01 12:00" {
		t.Errorf("birth = %q", cfg.Birth)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("timezone = %q", cfg.Timezone)
	}
	if len(cfg.Milestones) != 2 || cfg.Milestones[1] != "1.5b" {
		t.Errorf("milestones = %v", cfg.Milestones)
	}
	if cfg.TUI.RefreshRate != 250*time.Millisecond {
		t.Errorf("refresh_rate = %v", cfg.TUI.RefreshRate)
	}
	if cfg.TUI.ShowAge || cfg.TUI.ShowCountdown {
		t.Errorf("show flags = %v/%v, want false/false", cfg.TUI.ShowAge, cfg.TUI.ShowCountdown)
	}
	if cfg.Log.File != "-" || cfg.Log.Level != "debug" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestSet_Invalid(t *testing.T) {
	tests := []struct {
		key      string
		value    string
		wantUser bool
	}{
		{"birth", "not a date", true},
		{"milestones", "1b,-3", true},
		{"timezone", "Nowhere/Special", true},
		{"tui.refresh_rate", "soon", false},
		{"tui.refresh_rate", "-1s", false},
		{"tui.show_age", "maybe", false},
		{"log.level", "loud", false},
		{"unknown.key", "x", false},
	}

	for _, tt := range tests {
		cfg := Default()
		err := Set(cfg, tt.key, tt.value)
		if err == nil {
			t.Errorf("Set(%q, %q) expected error", tt.key, tt.value)
			continue
		}
		if got := errors.Is(err, milestone.ErrInvalidInput); got != tt.wantUser {
			t.Errorf("Set(%q, %q) errors.Is(ErrInvalidInput) = %v, want %v", tt.key, tt.value, got, tt.wantUser)
		}
	}
}

func TestSet_InvalidTimezoneKeepsPrevious(t *testing.T) {
	cfg := Default()
	cfg.Timezone = "UTC"

	if err := Set(cfg, "timezone", "Nowhere/Special"); err == nil {
		t.Fatal("expected error")
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("timezone = %q, want UTC", cfg.Timezone)
	}
}
