package components

import (
	"charm.land/lipgloss/v2"

	"github.com/careercompass/compass/internal/ui/theme"
)

// ContentWidth returns the inner width used for cards and lists so that
// every section lines up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 76 {
		w = 76
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card of the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Padding(0, 1).
		Render(content)
}

// Banner renders a one-line message in a colored rounded box.
func Banner(msg string, style lipgloss.Style, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.GetForeground()).
		Width(cw-2).
		Padding(0, 1).
		Render(style.Render(msg))
}
