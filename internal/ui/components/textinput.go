package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/careercompass/compass/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with Compass styling.
type TextInput struct {
	Model textinput.Model
	Label string
}

// NewTextInput creates a new styled, unfocused text input.
func NewTextInput(label, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti, Label: label}
}

// Focus starts editing with value preloaded.
func (t *TextInput) Focus(value string) tea.Cmd {
	t.Model.SetValue(value)
	t.Model.CursorEnd()
	return t.Model.Focus()
}

// Blur stops editing.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input is being edited.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label and the input.
func (t TextInput) View() string {
	return theme.Focused.Render(t.Label+": ") + t.Model.View()
}

// Value returns the trimmed input value.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}
