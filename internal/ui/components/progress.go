package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/careercompass/compass/internal/ui/theme"
)

// ProgressBar displays a horizontal bar for a value in [0,100]. It renders
// both the wizard progress and skill rating sliders.
type ProgressBar struct {
	Label      string
	LabelWidth int
	Percent    int
	ShowValue  bool
	Focused    bool
	Width      int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent int, showValue bool, width int) ProgressBar {
	return ProgressBar{
		Label:     label,
		Percent:   percent,
		ShowValue: showValue,
		Width:     width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "  "
		if p.Focused {
			style = theme.Focused
			prefix = "▸ "
		}
		label := p.Label
		if pad := p.LabelWidth - lipgloss.Width(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		result += style.Render(prefix+label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	valueWidth := 0
	if p.ShowValue {
		valueWidth = 6 // "  100%"
	}

	barWidth := p.Width - labelWidth - valueWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * clampPercent(p.Percent) / 100
	empty := barWidth - filled

	fill := theme.Secondary
	if p.Focused {
		fill = theme.Primary
	}
	filledStr := lipgloss.NewStyle().
		Background(fill).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if p.ShowValue {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", clampPercent(p.Percent)))
	}

	return result
}

func clampPercent(v int) int {
	return min(max(v, 0), 100)
}
