package tui

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"

	"github.com/ShayCichocki/gigasecond/internal/milestone"
	"github.com/ShayCichocki/gigasecond/pkg/models"
)

// errorDismissAfter is how long an inline error stays on screen.
const errorDismissAfter = 5 * time.Second

// tickMsg fires once per refresh interval.
type tickMsg struct{}

// Options configures the App.
type Options struct {
	// Birth is the birth instant. A zero value starts the app at the birth prompt.
	Birth time.Time
	// Milestones defaults to models.DefaultMilestones when empty.
	Milestones []models.Milestone
	// Location is used to interpret dates typed at the prompt. Defaults to time.Local.
	Location *time.Location
	// RefreshRate is the redraw interval. Defaults to one second.
	RefreshRate   time.Duration
	ShowAge       bool
	ShowCountdown bool
	// Clock defaults to the real clock.
	Clock  clockwork.Clock
	Logger *slog.Logger
}

// App is the main bubbletea model for the gigasecond TUI.
type App struct {
	clock      clockwork.Clock
	logger     *slog.Logger
	location   *time.Location
	refresh    time.Duration
	milestones []models.Milestone

	// timer is nil while the birth prompt is shown.
	timer *milestone.Timer
	snap  milestone.Snapshot

	showAge       bool
	showCountdown bool

	errMsg string
	errAt  time.Time

	header *Header
	footer *Footer
	input  *InputField
	age    *AgePanel
	layout *LayoutManager

	width    int
	height   int
	quitting bool
}

// NewApp validates opts and creates an App. A non-zero birth that is in the
// future, or a non-positive milestone, returns milestone.ErrInvalidInput.
func NewApp(opts Options) (*App, error) {
	a := &App{
		clock:         opts.Clock,
		logger:        opts.Logger,
		location:      opts.Location,
		refresh:       opts.RefreshRate,
		milestones:    opts.Milestones,
		showAge:       opts.ShowAge,
		showCountdown: opts.ShowCountdown,
		header:        NewHeader(),
		footer:        NewFooter(),
		input:         NewInputField(),
		age:           NewAgePanel(),
		layout:        NewLayoutManager(80, 24),
		width:         80,
		height:        24,
	}
	if a.clock == nil {
		a.clock = clockwork.NewRealClock()
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if a.location == nil {
		a.location = time.Local
	}
	if a.refresh <= 0 {
		a.refresh = time.Second
	}
	if len(a.milestones) == 0 {
		a.milestones = models.DefaultMilestones()
	}
	for _, m := range a.milestones {
		if !m.Valid() {
			return nil, &milestone.InputError{Field: "milestone", Value: m.String(), Reason: "must be a positive number of seconds"}
		}
	}

	if opts.Birth.IsZero() {
		a.footer.SetPrompting(true)
		return a, nil
	}

	if err := a.start(opts.Birth); err != nil {
		return nil, err
	}
	return a, nil
}

// start validates birth, builds the timer and leaves the prompt.
func (a *App) start(birth time.Time) error {
	timer, err := milestone.NewTimer(birth, a.clock.Now(), a.milestones)
	if err != nil {
		return err
	}

	a.timer = timer
	a.header.SetBirth(birth)
	a.input.Blur()
	a.input.Reset()
	a.footer.SetPrompting(false)
	a.clearError()
	a.recompute()

	a.logger.Info("timer started",
		"birth", birth.Format(time.RFC3339),
		"milestones", len(timer.Milestones()),
		"refresh", a.refresh.String())
	return nil
}

// reset returns to the birth prompt.
func (a *App) reset() tea.Cmd {
	a.timer = nil
	a.snap = milestone.Snapshot{}
	a.header.SetBirth(time.Time{})
	a.footer.SetPrompting(true)
	a.clearError()
	a.logger.Info("timer reset")
	return a.input.Focus()
}

// recompute refreshes the snapshot from the clock.
func (a *App) recompute() {
	if a.timer == nil {
		return
	}
	a.snap = a.timer.Snapshot(a.clock.Now())
	a.age.SetSnapshot(a.snap)
}

func (a *App) setError(err error) {
	msg := err.Error()
	var inputErr *milestone.InputError
	if errors.As(err, &inputErr) {
		msg = inputErr.Reason
	}
	a.errMsg = msg
	a.errAt = a.clock.Now()
	a.footer.SetMessage(msg, true)
	a.logger.Warn("rejected input", "error", err)
}

func (a *App) clearError() {
	a.errMsg = ""
	a.errAt = time.Time{}
	a.footer.ClearMessage()
}

// tick schedules the next tickMsg on the app clock.
func (a *App) tick() tea.Cmd {
	clock, d := a.clock, a.refresh
	return func() tea.Msg {
		<-clock.After(d)
		return tickMsg{}
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	if a.Prompting() {
		return tea.Batch(a.tick(), a.input.Focus())
	}
	return a.tick()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		a.recompute()
		if a.errMsg != "" && a.clock.Since(a.errAt) >= errorDismissAfter {
			a.clearError()
		}
		if a.timer != nil {
			a.logger.Debug("tick", "elapsed", a.snap.Elapsed)
		}
		return a, a.tick()

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateSizes()
		return a, nil

	case BirthSubmittedMsg:
		birth, err := milestone.ParseBirth(msg.Value, a.location)
		if err == nil {
			err = a.start(birth)
		}
		if err != nil {
			a.setError(err)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		a.quitting = true
		return a, tea.Quit
	case "esc":
		a.clearError()
		return a, nil
	}

	if a.Prompting() {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "q":
		a.quitting = true
		return a, tea.Quit
	case "a":
		a.showAge = !a.showAge
	case "c":
		a.showCountdown = !a.showCountdown
	case "r":
		return a, a.reset()
	}
	return a, nil
}

// updateSizes updates the sizes of child components based on terminal size.
func (a *App) updateSizes() {
	a.layout.SetSize(a.width, a.height)
	a.layout.SetHeaderHeight(a.header.Height())
	a.header.SetWidth(a.width)
	a.footer.SetWidth(a.width)
	a.age.SetWidth(a.width)

	inputWidth := a.width
	if inputWidth > 60 {
		inputWidth = 60
	}
	a.input.SetWidth(inputWidth)
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var body []string
	if a.Prompting() {
		body = append(body, a.input.View())
	} else {
		if a.showAge {
			body = append(body, a.age.View())
		}
		if a.showCountdown {
			body = append(body, a.renderCards())
		}
		if !a.showAge && !a.showCountdown {
			body = append(body, lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Render("All panels hidden. Press a or c to show them."))
		}
	}

	// Pad the body so the footer stays on the last line.
	content := lipgloss.NewStyle().
		Height(a.layout.Calculate(len(a.snap.Statuses)).ContentHeight).
		Render(lipgloss.JoinVertical(lipgloss.Left, body...))

	return lipgloss.JoinVertical(lipgloss.Left, a.header.View(), content, a.footer.View())
}

// renderCards lays out one card per milestone in a grid.
func (a *App) renderCards() string {
	grid := a.layout.Calculate(len(a.snap.Statuses))

	var rows []string
	for start := 0; start < len(a.snap.Statuses); start += grid.Columns {
		end := start + grid.Columns
		if end > len(a.snap.Statuses) {
			end = len(a.snap.Statuses)
		}

		var cards []string
		for _, st := range a.snap.Statuses[start:end] {
			card := NewMilestoneCard()
			card.SetWidth(grid.CardWidth)
			card.SetStatus(st)
			cards = append(cards, card.View())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

// Prompting reports whether the birth prompt is shown.
func (a *App) Prompting() bool {
	return a.timer == nil
}

// Snapshot returns the values computed on the last tick.
func (a *App) Snapshot() milestone.Snapshot {
	return a.snap
}

// ShowAge reports whether the live age panel is visible.
func (a *App) ShowAge() bool {
	return a.showAge
}

// ShowCountdown reports whether the milestone cards are visible.
func (a *App) ShowCountdown() bool {
	return a.showCountdown
}

// ErrorMessage returns the inline error, if any.
func (a *App) ErrorMessage() string {
	return a.errMsg
}

// NewProgram creates a new Bubbletea program for the live display.
func NewProgram(opts Options) (*tea.Program, *App, error) {
	app, err := NewApp(opts)
	if err != nil {
		return nil, nil, err
	}
	p := tea.NewProgram(app, tea.WithAltScreen())
	return p, app, nil
}
