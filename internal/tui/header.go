package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Header renders the title bar and the birth instant.
type Header struct {
	width int
	birth time.Time
}

// NewHeader creates a new Header.
func NewHeader() *Header {
	return &Header{
		width: 80,
	}
}

// SetWidth sets the header width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetBirth sets the birth instant shown under the title. A zero time hides it.
func (h *Header) SetBirth(birth time.Time) {
	h.birth = birth
}

// View renders the header.
func (h *Header) View() string {
	// Gradient colors for the title
	colors := []string{"#FF6B6B", "#FF8E53", "#FFC857", "#4ECDC4", "#45B7D1", "#96E6A1"}

	var title string
	for i, r := range []rune("G I G A S E C O N D") {
		color := colors[(i/2)%len(colors)]
		title += lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(string(r))
	}

	subtitle := "Your lifetime, one second at a time"
	if !h.birth.IsZero() {
		subtitle = "Born " + h.birth.Format("January 02, 2006 at 15:04 MST")
	}
	sub := lipgloss.NewStyle().
		Foreground(lipgloss.Color("243")).
		Italic(true).
		Render(subtitle)

	return lipgloss.NewStyle().
		Width(h.width).
		Align(lipgloss.Center).
		MarginTop(1).
		PaddingBottom(1).
		Render(lipgloss.JoinVertical(lipgloss.Center, title, sub))
}

// Height returns the header height in lines.
func (h *Header) Height() int {
	return 4 // 1 margin + title + subtitle + 1 padding
}
