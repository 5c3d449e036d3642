package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/careercompass/compass/internal/ui/theme"
)

// CheckItem is one toggleable entry of a CheckList.
type CheckItem struct {
	Label   string
	Icon    string
	Checked bool
}

// CheckList is a titled list of toggleable items. Cursor is the focused
// item, or -1 when the list does not have focus. A positive Limit shows a
// selection counter.
type CheckList struct {
	Title  string
	Items  []CheckItem
	Cursor int
	Limit  int
}

// Count returns the number of checked items.
func (c CheckList) Count() int {
	n := 0
	for _, it := range c.Items {
		if it.Checked {
			n++
		}
	}
	return n
}

// View renders the list.
func (c CheckList) View() string {
	var b strings.Builder

	title := theme.Subtitle.Render(c.Title)
	if c.Limit > 0 {
		title += theme.Pending.Render(fmt.Sprintf("  (%d/%d)", c.Count(), c.Limit))
	}
	b.WriteString(title)
	b.WriteString("\n")

	for i, it := range c.Items {
		box := "[ ]"
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if it.Checked {
			box = "[x]"
			style = theme.Checked
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
			style = theme.Focused
		}
		label := it.Label
		if it.Icon != "" {
			label = it.Icon + " " + label
		}
		b.WriteString(style.Render(prefix + box + " " + label))
		b.WriteString("\n")
	}
	return b.String()
}
