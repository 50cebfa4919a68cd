package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ShayCichocki/gigasecond/internal/milestone"
	"github.com/ShayCichocki/gigasecond/pkg/models"
)

// urgencyColors maps urgency to the card accent colour.
var urgencyColors = map[models.Urgency]lipgloss.Color{
	models.UrgencyDistant:  lipgloss.Color("34"),  // Green
	models.UrgencyNear:     lipgloss.Color("214"), // Orange
	models.UrgencyImminent: lipgloss.Color("196"), // Red
	models.UrgencyPassed:   lipgloss.Color("205"), // Pink
}

// urgencyIcons are shown next to the countdown title.
var urgencyIcons = map[models.Urgency]string{
	models.UrgencyDistant:  "●",
	models.UrgencyNear:     "◐",
	models.UrgencyImminent: "◉",
	models.UrgencyPassed:   "✓",
}

// MilestoneCard renders one milestone's countdown.
type MilestoneCard struct {
	status milestone.Status
	width  int

	// Styles
	titleStyle    lipgloss.Style
	labelStyle    lipgloss.Style
	valueStyle    lipgloss.Style
	dimStyle      lipgloss.Style
	progressEmpty lipgloss.Style
}

// NewMilestoneCard creates a new MilestoneCard instance.
func NewMilestoneCard() *MilestoneCard {
	return &MilestoneCard{
		width: 40,

		titleStyle: lipgloss.NewStyle().
			Bold(true),

		labelStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		valueStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true),

		dimStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		progressEmpty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// SetStatus updates the milestone state shown by the card.
func (c *MilestoneCard) SetStatus(status milestone.Status) {
	c.status = status
}

// SetWidth sets the outer card width.
func (c *MilestoneCard) SetWidth(width int) {
	c.width = width
}

// View renders the card.
func (c *MilestoneCard) View() string {
	st := c.status
	accent := urgencyColors[st.Urgency]
	if accent == "" {
		accent = lipgloss.Color("240")
	}

	var b strings.Builder

	title := fmt.Sprintf("%s %s", urgencyIcons[st.Urgency], st.Milestone.Label())
	b.WriteString(c.titleStyle.Foreground(accent).Render(title))
	b.WriteString(c.dimStyle.Render(fmt.Sprintf("  %s s", st.Milestone)))
	b.WriteString("\n")

	barWidth := c.width - 14
	if barWidth < 10 {
		barWidth = 10
	}
	b.WriteString(c.renderProgressBar(st.Progress, barWidth, accent))
	b.WriteString("\n\n")

	rem := milestone.Split(st.Remaining)
	if st.Passed() {
		b.WriteString(c.titleStyle.Foreground(accent).Render("Milestone achieved!"))
		b.WriteString("\n")
		b.WriteString(c.labelStyle.Render("Passed "))
		b.WriteString(c.valueStyle.Render(humanize.Comma(-st.Remaining)))
		b.WriteString(c.labelStyle.Render(" seconds ago"))
		b.WriteString("\n")
		b.WriteString(c.dimStyle.Render(fmt.Sprintf("reached %s days ago", humanize.Comma(rem.Days))))
	} else {
		b.WriteString(c.labelStyle.Render("Countdown "))
		b.WriteString(c.valueStyle.Render(fmt.Sprintf("%s days, %02d:%02d:%02d",
			humanize.Comma(rem.Days), rem.Hours, rem.Minutes, rem.Seconds)))
		b.WriteString("\n")
		b.WriteString(c.dimStyle.Render(fmt.Sprintf("(%s seconds remaining)", humanize.Comma(st.Remaining))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(c.labelStyle.Render("On "))
	b.WriteString(c.valueStyle.Render(st.Target.Format("Jan 02, 2006 at 15:04:05")))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(c.width - 2).
		Render(b.String())
}

// renderProgressBar renders a progress bar.
func (c *MilestoneCard) renderProgressBar(pct float64, width int, color lipgloss.Color) string {
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}

	filled := int(pct / 100 * float64(width))
	empty := width - filled

	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		c.progressEmpty.Render(strings.Repeat("░", empty))

	return fmt.Sprintf("%s %5.1f%%", bar, pct)
}
