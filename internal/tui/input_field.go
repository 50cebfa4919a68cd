package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BirthSubmittedMsg is sent when the user submits a birth date.
type BirthSubmittedMsg struct {
	Value string
}

// InputField is a text input component for entering the birth date.
type InputField struct {
	input textinput.Model
	width int
}

// NewInputField creates a new InputField.
func NewInputField() *InputField {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD or YYYY-MM-DD HH:MM"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	return &InputField{
		input: ti,
		width: 80,
	}
}

// SetWidth sets the width of the input field.
func (f *InputField) SetWidth(width int) {
	f.width = width
	f.input.Width = width - 4 // Account for prompt and padding
}

// Value returns the current text.
func (f *InputField) Value() string {
	return f.input.Value()
}

// Reset clears the text.
func (f *InputField) Reset() {
	f.input.Reset()
}

// Update handles messages for the input field.
func (f *InputField) Update(msg tea.Msg) (*InputField, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEnter {
		text := strings.TrimSpace(f.input.Value())
		return f, func() tea.Msg {
			return BirthSubmittedMsg{Value: text}
		}
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// View renders the input field.
func (f *InputField) View() string {
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Bold(true)

	promptStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Width(f.width - 2)

	label := labelStyle.Render("Enter your date & time of birth:")
	prompt := promptStyle.Render("> ")
	return lipgloss.JoinVertical(lipgloss.Left, label, boxStyle.Render(prompt+f.input.View()))
}

// Focus sets focus on the input field.
func (f *InputField) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur removes focus from the input field.
func (f *InputField) Blur() {
	f.input.Blur()
}
