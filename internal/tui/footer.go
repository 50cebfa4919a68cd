package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Footer renders the status bar and keyboard hints.
type Footer struct {
	message   string
	isError   bool
	prompting bool
	width     int

	// Styles
	errorStyle     lipgloss.Style
	hintStyle      lipgloss.Style
	separatorStyle lipgloss.Style
}

// NewFooter creates a new Footer instance.
func NewFooter() *Footer {
	return &Footer{
		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),

		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		separatorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("236")),
	}
}

// SetMessage sets the status message.
func (f *Footer) SetMessage(message string, isError bool) {
	f.message = message
	f.isError = isError
}

// ClearMessage removes the status message.
func (f *Footer) ClearMessage() {
	f.message = ""
	f.isError = false
}

// SetPrompting switches the key hints between prompt and live mode.
func (f *Footer) SetPrompting(prompting bool) {
	f.prompting = prompting
}

// SetWidth sets the footer width.
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// View renders the footer.
func (f *Footer) View() string {
	var left string
	if f.message != "" {
		if f.isError {
			left = f.errorStyle.Render("⚠ " + f.message)
		} else {
			left = f.hintStyle.Render(f.message)
		}
	}

	right := f.keyboardHints()

	if left != "" {
		return left + f.separatorStyle.Render(" │ ") + right
	}
	return right
}

// keyboardHints returns mode-sensitive keyboard hints.
func (f *Footer) keyboardHints() string {
	if f.prompting {
		return f.hintStyle.Render("enter start │ esc clear │ ctrl+c quit")
	}
	return f.hintStyle.Render("a age │ c countdown │ r reset │ q quit")
}
