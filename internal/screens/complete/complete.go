package complete

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/careercompass/compass/internal/assessment"
	"github.com/careercompass/compass/internal/screen"
	"github.com/careercompass/compass/internal/ui/components"
	"github.com/careercompass/compass/internal/ui/layout"
	"github.com/careercompass/compass/internal/ui/theme"
)

// CompleteScreen is shown after the assessment was submitted.
type CompleteScreen struct {
	answers  *assessment.Answers
	field    string
	sections int
	done     components.Button
}

var _ screen.Screen = (*CompleteScreen)(nil)
var _ screen.KeyHintProvider = (*CompleteScreen)(nil)

// New creates a CompleteScreen summarizing the submitted answers.
func New(answers *assessment.Answers, field string, sections int) *CompleteScreen {
	if answers == nil {
		answers = assessment.NewAnswers()
	}
	return &CompleteScreen{
		answers:  answers,
		field:    field,
		sections: sections,
		done:     components.NewButton("Done", true, func() tea.Cmd { return tea.Quit }),
	}
}

func (s *CompleteScreen) Init() tea.Cmd {
	return nil
}

func (s *CompleteScreen) Title() string {
	return "Assessment Complete"
}

func (s *CompleteScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *CompleteScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "q", "esc":
			return s, tea.Quit
		}
	}
	var cmd tea.Cmd
	s.done, cmd = s.done.Update(msg)
	return s, cmd
}

func (s *CompleteScreen) View(width, height int) string {
	var b strings.Builder
	center := func(str string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, str))
		b.WriteString("\n")
	}

	center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Assessment submitted!"))
	b.WriteString("\n")
	center(theme.Subtitle.Render("Your answers were sent for analysis. Career recommendations will be ready shortly."))
	b.WriteString("\n")

	field := s.field
	if field == "" {
		field = "Not specified"
	}
	stats := []string{
		fmt.Sprintf("Field of study     %s", field),
		fmt.Sprintf("Sections           %d", s.sections),
		fmt.Sprintf("Interests          %d", len(s.answers.SelectedInterests)),
		fmt.Sprintf("Domains            %d", len(s.answers.SelectedDomains)),
		fmt.Sprintf("Skills rated       %d", len(s.answers.SkillRatings)),
		fmt.Sprintf("Personality        %d", len(s.answers.Personality)),
		fmt.Sprintf("Work preferences   %d", len(s.answers.WorkStyle)),
		fmt.Sprintf("Career goals       %d", len(s.answers.Goals)),
	}
	cw := components.ContentWidth(width)
	center(components.Card(theme.Body.Render(strings.Join(stats, "\n")), min(cw, 48)))
	b.WriteString("\n")
	center(s.done.View())

	return b.String()
}
