package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/careercompass/compass/internal/ui/theme"
)

// MultiChoice renders a single-choice question with its options on one
// line. Selected is -1 while unanswered.
type MultiChoice struct {
	Question string
	Options  []string
	Selected int
	Focused  bool
}

// NewMultiChoice creates a multiple-choice row with no answer selected.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
		Selected: -1,
	}
}

// Cycle moves the selection by delta, wrapping around. An unanswered
// question starts at the first option going forward and the last going
// back.
func (m MultiChoice) Cycle(delta int) MultiChoice {
	n := len(m.Options)
	if n == 0 {
		return m
	}
	if m.Selected < 0 {
		if delta >= 0 {
			m.Selected = 0
		} else {
			m.Selected = n - 1
		}
		return m
	}
	m.Selected = ((m.Selected+delta)%n + n) % n
	return m
}

// Answered reports whether an option is selected.
func (m MultiChoice) Answered() bool {
	return m.Selected >= 0 && m.Selected < len(m.Options)
}

// View renders the question followed by the selected option.
func (m MultiChoice) View() string {
	prefix := "  "
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if m.Focused {
		prefix = "▸ "
		questionStyle = theme.Focused
	}

	var b strings.Builder
	b.WriteString(questionStyle.Render(prefix + m.Question))
	b.WriteString("\n    ")

	if !m.Answered() {
		hint := "not answered"
		if m.Focused {
			hint = "← → to choose"
		}
		b.WriteString(theme.Hint.Render(hint))
		return b.String()
	}

	choice := theme.Checked.Render("● " + m.Options[m.Selected])
	if m.Focused && len(m.Options) > 1 {
		choice = theme.Pending.Render("‹ ") + choice + theme.Pending.Render(" ›")
	}
	b.WriteString(choice)
	return b.String()
}
