package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/ShayCichocki/gigasecond/internal/milestone"
	"github.com/ShayCichocki/gigasecond/pkg/models"
)

var (
	testBirth = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	testNow   = time.Date(2021, 9, 9, 1, 46, 40, 0, time.UTC)
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newLiveApp(t *testing.T, clock clockwork.Clock) *App {
	t.Helper()
	app, err := NewApp(Options{
		Birth:         testBirth,
		Clock:         clock,
		Location:      time.UTC,
		ShowAge:       true,
		ShowCountdown: true,
	})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	return app
}

func newPromptApp(t *testing.T, clock clockwork.Clock) *App {
	t.Helper()
	app, err := NewApp(Options{
		Clock:         clock,
		Location:      time.UTC,
		ShowAge:       true,
		ShowCountdown: true,
	})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	return app
}

func TestNewApp_Defaults(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testNow)
	app := newLiveApp(t, clock)

	if app.refresh != time.Second {
		t.Errorf("refresh = %v, want 1s", app.refresh)
	}
	if len(app.milestones) != 3 {
		t.Errorf("milestones = %v, want defaults", app.milestones)
	}
	if app.Prompting() {
		t.Error("app with a birth should not be prompting")
	}

	snap := app.Snapshot()
	if snap.Elapsed != 1_000_000_000 {
		t.Errorf("Elapsed = %d, want 1000000000", snap.Elapsed)
	}
	if snap.Statuses[0].Remaining != 0 {
		t.Errorf("Remaining(1e9) = %d, want 0", snap.Statuses[0].Remaining)
	}
}

func TestNewApp_InvalidInput(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testNow)

	tests := []struct {
		name string
		opts Options
	}{
		{"future birth", Options{Birth: testNow.Add(time.Minute), Clock: clock}},
		{"zero milestone", Options{Birth: testBirth, Clock: clock, Milestones: []models.Milestone{0}}},
		{"negative milestone on prompt", Options{Clock: clock, Milestones: []models.Milestone{-1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewApp(tt.opts)
			if !errors.Is(err, milestone.ErrInvalidInput) {
				t.Errorf("NewApp() error = %v, want ErrInvalidInput", err)
			}
			if app != nil {
				t.Error("NewApp() returned an app for invalid input")
			}
		})
	}
}

func TestApp_TickRecomputesAndReschedules(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testNow)
	app := newLiveApp(t, clock)

	clock.Advance(10 * time.Second)
	_, cmd := app.Update(tickMsg{})

	if got := app.Snapshot().Elapsed; got != 1_000_000_010 {
		t.Errorf("Elapsed after tick = %d, want 1000000010", got)
	}
	if got := app.Snapshot().Statuses[0].Remaining; got != -10 {
		t.Errorf("Remaining after tick = %d, want -10", got)
	}
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
}

func TestApp_TickFiresOnClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testNow)
	app := newLiveApp(t, clock)

	cmd := app.Init()
	if cmd == nil {
		t.Fatal("Init should schedule a tick")
	}

	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- cmd() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := clock.BlockUntilContext(ctx, 1); err != nil {
		t.Fatalf("tick never waited on the clock: %v", err)
	}

	select {
	case <-msgs:
		t.Fatal("tick fired before the refresh interval elapsed")
	default:
	}

	clock.Advance(time.Second)

	select {
	case msg := <-msgs:
		if _, ok := msg.(tickMsg); !ok {
			t.Errorf("got %T, want tickMsg", msg)
		}
	case <-ctx.Done():
		t.Fatal("tick did not fire after advancing the clock")
	}
}

func TestApp_ElapsedNonDecreasingAcrossTicks(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testNow)
	app := newLiveApp(t, clock)

	prev := app.Snapshot().Elapsed
	for i := 0; i < 5; i++ {
		clock.Advance(700 * time.Millisecond)
		app.Update(tickMsg{})
		got := app.Snapshot().Elapsed
		if got < prev {
			t.Fatalf("tick %d: elapsed went from %d to %d", i, prev, got)
		}
		prev = got
	}
	if prev != 1_000_000_003 {
		t.Errorf("elapsed after 3.5s = %d, want 1000000003", prev)
	}
}

func TestApp_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyCtrlC}} {
		app := newLiveApp(t, clockwork.NewFakeClockAt(testNow))

		_, cmd := app.Update(key)
		if !app.quitting {
			t.Errorf("%s: quitting should be true", key)
		}
		if cmd == nil {
			t.Fatalf("%s: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", key)
		}
		if app.View() != "" {
			t.Errorf("%s: View after quit should be empty", key)
		}
	}
}

func TestApp_TogglePanels(t *testing.T) {
	app := newLiveApp(t, clockwork.NewFakeClockAt(testNow))

	app.Update(keyRunes("a"))
	if app.ShowAge() {
		t.Error("a should hide the age panel")
	}
	if strings.Contains(app.View(), "Live Age Counter") {
		t.Error("hidden age panel still rendered")
	}

	app.Update(keyRunes("c"))
	if app.ShowCountdown() {
		t.Error("c should hide the countdowns")
	}
	if !strings.Contains(app.View(), "All panels hidden") {
		t.Error("expected hint when every panel is hidden")
	}

	app.Update(keyRunes("a"))
	app.Update(keyRunes("c"))
	if !app.ShowAge() || !app.ShowCountdown() {
		t.Error("second press should show the panels again")
	}
}

func TestApp_View_Live(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testNow)
	app := newLiveApp(t, clock)
	app.Update(tea.WindowSizeMsg{Width: 130, Height: 40})

	view := app.View()
	wants := []string{
		"Born January 01, 1990 at 00:00 UTC",
		"Live Age Counter",
		"11,574",
		"01:46:40",
		"1,000,000,000 seconds old",
		"Milestone achieved!",
		"2 billion",
		"(1,000,000,000 seconds remaining)",
		"q quit",
	}
	for _, want := range wants {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestApp_PromptSubmitValid(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testNow)
	app := newPromptApp(t, clock)

	if !app.Prompting() {
		t.Fatal("app without a birth should prompt")
	}
	if !strings.Contains(app.View(), "Enter your date & time of birth") {
		t.Error("prompt not rendered")
	}

	app.Update(BirthSubmittedMsg{Value: "1990-01-01"})

	if app.Prompting() {
		t.Fatalf("valid birth should leave the prompt (error: %q)", app.ErrorMessage())
	}
	if got := app.Snapshot().Elapsed; got != 1_000_000_000 {
		t.Errorf("Elapsed = %d, want 1000000000", got)
	}
}

func TestApp_PromptTypingAndEnter(t *testing.T) {
	app := newPromptApp(t, clockwork.NewFakeClockAt(testNow))

	for _, r := range "1990-01-01 00:00" {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if app.quitting {
		t.Fatal("typing at the prompt must not trigger shortcuts")
	}

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should emit a submit command")
	}
	msg, ok := cmd().(BirthSubmittedMsg)
	if !ok {
		t.Fatalf("expected BirthSubmittedMsg, got %T", msg)
	}
	if msg.Value != "1990-01-01 00:00" {
		t.Errorf("submitted %q", msg.Value)
	}

	app.Update(msg)
	if app.Prompting() {
		t.Errorf("app still prompting: %q", app.ErrorMessage())
	}
}

func TestApp_PromptRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", "please enter your date of birth"},
		{"garbage", "someday", "use YYYY-MM-DD or YYYY-MM-DD HH:MM"},
		{"future", "2099-01-01", "is in the future"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newPromptApp(t, clockwork.NewFakeClockAt(testNow))

			app.Update(BirthSubmittedMsg{Value: tt.value})

			if !app.Prompting() {
				t.Fatal("invalid birth should keep the prompt")
			}
			if app.ErrorMessage() != tt.want {
				t.Errorf("ErrorMessage() = %q, want %q", app.ErrorMessage(), tt.want)
			}
			if !strings.Contains(app.View(), tt.want) {
				t.Error("error not rendered")
			}
		})
	}
}

func TestApp_ErrorDismissal(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testNow)
	app := newPromptApp(t, clock)

	app.Update(BirthSubmittedMsg{Value: "nope"})
	if app.ErrorMessage() == "" {
		t.Fatal("expected an error")
	}

	clock.Advance(4 * time.Second)
	app.Update(tickMsg{})
	if app.ErrorMessage() == "" {
		t.Error("error dismissed too early")
	}

	clock.Advance(time.Second)
	app.Update(tickMsg{})
	if app.ErrorMessage() != "" {
		t.Error("error should clear after five seconds")
	}

	app.Update(BirthSubmittedMsg{Value: "nope"})
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if app.ErrorMessage() != "" {
		t.Error("esc should clear the error")
	}
}

func TestApp_Reset(t *testing.T) {
	app := newLiveApp(t, clockwork.NewFakeClockAt(testNow))

	_, cmd := app.Update(keyRunes("r"))
	if !app.Prompting() {
		t.Fatal("r should return to the prompt")
	}
	if cmd == nil {
		t.Error("reset should focus the input")
	}

	// Shortcuts are text while prompting.
	app.Update(keyRunes("q"))
	if app.quitting {
		t.Error("q at the prompt should not quit")
	}
	if app.input.Value() != "q" {
		t.Errorf("input = %q, want %q", app.input.Value(), "q")
	}
}

func TestApp_WindowSize(t *testing.T) {
	app := newLiveApp(t, clockwork.NewFakeClockAt(testNow))

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if app.width != 100 || app.height != 30 {
		t.Errorf("size = %dx%d, want 100x30", app.width, app.height)
	}
	if app.input.width != 60 {
		t.Errorf("input width = %d, want capped at 60", app.input.width)
	}
	if app.layout.TotalWidth() != 100 {
		t.Errorf("layout width = %d, want 100", app.layout.TotalWidth())
	}
}
