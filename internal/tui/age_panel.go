package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ShayCichocki/gigasecond/internal/milestone"
)

// AgePanel renders the live age counter.
type AgePanel struct {
	snap  milestone.Snapshot
	width int

	// Styles
	titleStyle lipgloss.Style
	daysStyle  lipgloss.Style
	clockStyle lipgloss.Style
	labelStyle lipgloss.Style
	dimStyle   lipgloss.Style
}

// NewAgePanel creates a new AgePanel instance.
func NewAgePanel() *AgePanel {
	return &AgePanel{
		width: 80,

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("34")),

		daysStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),

		clockStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("34")),

		labelStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		dimStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// SetSnapshot updates the values shown by the panel.
func (p *AgePanel) SetSnapshot(snap milestone.Snapshot) {
	p.snap = snap
}

// SetWidth sets the panel width.
func (p *AgePanel) SetWidth(width int) {
	p.width = width
}

// View renders the panel.
func (p *AgePanel) View() string {
	age := p.snap.Age

	var b strings.Builder
	b.WriteString(p.titleStyle.Render("⚡ Live Age Counter"))
	b.WriteString("\n")
	b.WriteString(p.daysStyle.Render(humanize.Comma(age.Days)))
	b.WriteString(p.labelStyle.Render(" days  "))
	b.WriteString(p.clockStyle.Render(fmt.Sprintf("%02d:%02d:%02d", age.Hours, age.Minutes, age.Seconds)))
	b.WriteString("\n")
	b.WriteString(p.labelStyle.Render(humanize.Comma(p.snap.Elapsed) + " seconds old"))

	if next, ok := p.snap.Next(); ok {
		b.WriteString(p.dimStyle.Render(fmt.Sprintf("  ·  next: %s on %s",
			next.Milestone.Label(), next.Target.Format("Jan 02, 2006"))))
	} else if len(p.snap.Statuses) > 0 {
		b.WriteString(p.dimStyle.Render("  ·  every milestone reached"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("34")).
		Padding(0, 1).
		Width(p.width - 2).
		Render(b.String())
}
