// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/tui/styles"
)

// Field wraps a bubbles textinput with a label and a hint.
type Field struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	hint      string
}

// NewField creates a new labelled input.
func NewField(s *styles.Styles, label, hint, value string) *Field {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 32
	ti.Width = 12
	ti.SetValue(value)

	return &Field{
		textinput: ti,
		styles:    s,
		label:     label,
		hint:      hint,
	}
}

// Update handles input messages.
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the label, the input and the hint on one line.
func (f *Field) View() string {
	label := f.styles.Label.Render(f.label)
	if f.Focused() {
		label = f.styles.FocusedLabel.Render(f.label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		label, f.textinput.View(), "  ", f.styles.Muted.Render(f.hint))
}

// Label returns the field label.
func (f *Field) Label() string {
	return f.label
}

// Value returns the current input value.
func (f *Field) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value.
func (f *Field) SetValue(value string) {
	f.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (f *Field) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the input.
func (f *Field) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the input is focused.
func (f *Field) Focused() bool {
	return f.textinput.Focused()
}
