package wizard

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/careercompass/compass/internal/assessment"
	"github.com/careercompass/compass/internal/catalog"
	"github.com/careercompass/compass/internal/quiz"
	"github.com/careercompass/compass/internal/ui/components"
	"github.com/careercompass/compass/internal/ui/layout"
	"github.com/careercompass/compass/internal/ui/theme"
	wiz "github.com/careercompass/compass/internal/wizard"
)

const notSpecified = "Not specified"

// render lays out the header block, the section body clipped to the
// remaining height, and the footer block.
func (s *WizardScreen) render(width, height int) string {
	st := s.ctrl.State()
	cw := components.ContentWidth(width)

	top := s.renderTop(st, width, cw)
	bottom := s.renderBottom(st, cw)

	lines, focus := s.renderBody(st, width, cw)
	avail := height - lipgloss.Height(top) - lipgloss.Height(bottom) - 2
	body := strings.Join(clip(lines, focus, avail), "\n")

	block := lipgloss.JoinVertical(lipgloss.Left, top, "", body, "", bottom)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

func (s *WizardScreen) renderTop(st wiz.State, width, cw int) string {
	sec := st.Section()

	var b strings.Builder
	b.WriteString(theme.Title.Render(sec.Icon + " " + sec.Title))
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("   Step %d of %d", st.Index+1, st.Sequence.Len())))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", st.Progress(), true, cw).View())
	b.WriteString("\n")
	b.WriteString(renderTabs(st, width))
	return b.String()
}

// renderTabs marks passed sections, the current one, and those ahead.
func renderTabs(st wiz.State, width int) string {
	compact := layout.IsCompactWidth(width)
	parts := make([]string, 0, st.Sequence.Len())
	for i := range st.Sequence.Len() {
		sec := st.Sequence.At(i)
		label := strconv.Itoa(i + 1)
		if !compact {
			label += " " + sec.Title
		}
		switch {
		case i == st.Index:
			parts = append(parts, theme.Focused.Render("● "+label))
		case st.Reached(i):
			parts = append(parts, theme.Done.Render("✓ "+label))
		default:
			parts = append(parts, theme.Pending.Render("○ "+label))
		}
	}
	return strings.Join(parts, "  ")
}

// renderBody returns the section body as lines, plus the index of the
// focused line so clipping can keep it visible.
func (s *WizardScreen) renderBody(st wiz.State, width, cw int) ([]string, int) {
	sec := st.Section()
	switch sec.ID {
	case assessment.SectionBackground:
		return s.renderBackground(st), 0
	case assessment.SectionInterests:
		return s.renderInterests(st, width)
	case assessment.SectionSkills:
		return s.renderSkills(st, cw)
	default:
		return s.renderChoices(st)
	}
}

func (s *WizardScreen) renderBackground(st wiz.State) []string {
	p := s.ctrl.Profile()
	rows := [][2]string{
		{"Education level", text(p, func(p *quiz.Profile) string { return p.EducationLevel })},
		{"Field of study", orNotSpecified(st.Field)},
		{"Institution", text(p, func(p *quiz.Profile) string { return p.Institution })},
		{"Graduation year", number(p, func(p *quiz.Profile) int { return p.GraduationYear })},
		{"Current role", text(p, func(p *quiz.Profile) string { return p.CurrentRole })},
		{"Years of experience", number(p, func(p *quiz.Profile) int { return p.YearsOfExperience })},
		{"Technical skills", list(p, func(p *quiz.Profile) []string { return p.TechnicalSkills })},
		{"Soft skills", list(p, func(p *quiz.Profile) []string { return p.SoftSkills })},
		{"Interests", list(p, func(p *quiz.Profile) []string { return p.Interests })},
	}

	lines := make([]string, 0, len(rows)+4)
	lines = append(lines, theme.Subtitle.Render("Your academic and professional background"), "")
	for _, r := range rows {
		valueStyle := theme.Body
		if r[1] == notSpecified {
			valueStyle = theme.Hint
		}
		lines = append(lines, theme.Pending.Render(fmt.Sprintf("  %-20s", r[0]))+valueStyle.Render(r[1]))
	}

	if s.fieldInput.Focused() {
		lines = append(lines, "", "  "+s.fieldInput.View())
	}
	return lines
}

func (s *WizardScreen) renderInterests(st wiz.State, width int) ([]string, int) {
	interests := s.ctrl.InterestOptions()
	domains := s.ctrl.DomainOptions()

	left := components.CheckList{Title: "What interests you?", Cursor: -1}
	for _, o := range interests {
		left.Items = append(left.Items, components.CheckItem{
			Label:   o.Label,
			Icon:    o.Icon,
			Checked: slices.Contains(st.Answers.SelectedInterests, o.ID),
		})
	}
	right := components.CheckList{Title: "Preferred domains", Cursor: -1, Limit: assessment.MaxDomains}
	for _, o := range domains {
		right.Items = append(right.Items, components.CheckItem{
			Label:   o.Label,
			Checked: slices.Contains(st.Answers.SelectedDomains, o.ID),
		})
	}

	focus := 0
	if s.cursor < len(interests) {
		left.Cursor = s.cursor
		focus = s.cursor + 1
	} else {
		right.Cursor = s.cursor - len(interests)
		focus = right.Cursor + 1
	}

	if layout.IsCompactWidth(width) {
		if right.Cursor >= 0 {
			focus += len(interests) + 2
		}
		block := lipgloss.JoinVertical(lipgloss.Left, left.View(), right.View())
		return strings.Split(block, "\n"), focus
	}
	block := lipgloss.JoinHorizontal(lipgloss.Top, left.View(), "    ", right.View())
	return strings.Split(block, "\n"), focus
}

func (s *WizardScreen) renderSkills(st wiz.State, cw int) ([]string, int) {
	skills := s.ctrl.Skills()
	labelWidth := 0
	for _, sk := range skills {
		labelWidth = max(labelWidth, lipgloss.Width(sk))
	}

	lines := []string{
		theme.Subtitle.Render(fmt.Sprintf("Rate your proficiency (at least %d skills)", assessment.MinSkillRatings)),
		"",
	}
	for i, sk := range skills {
		v, rated := st.Answers.Rating(sk)
		bar := components.NewProgressBar(sk, v, true, cw)
		bar.LabelWidth = labelWidth
		bar.Focused = i == s.cursor
		line := bar.View()
		if !rated {
			line += theme.Hint.Render("  unrated")
		}
		lines = append(lines, line)
	}
	return lines, s.cursor + 2
}

func (s *WizardScreen) renderChoices(st wiz.State) ([]string, int) {
	sec := st.Section()
	responses, _ := st.Answers.Responses(sec.ID)
	qs := catalog.Questions(string(sec.ID))

	lines := []string{
		theme.Subtitle.Render(fmt.Sprintf("%d of %d answered", assessment.AnsweredCount(sec.ID, st.Answers), len(qs))),
		"",
	}
	focus := 0
	for i, q := range qs {
		mc := choiceFor(q, responses[q.Key])
		mc.Focused = i == s.cursor
		if mc.Focused {
			focus = len(lines)
		}
		lines = append(lines, strings.Split(mc.View(), "\n")...)
	}
	return lines, focus
}

func (s *WizardScreen) renderBottom(st wiz.State, cw int) string {
	var b strings.Builder

	if v := s.ctrl.Verdict(); s.notice == "" && v.Warning != "" {
		b.WriteString(components.Banner(v.Warning, theme.Notice, cw))
		b.WriteString("\n")
	}
	if s.notice != "" {
		b.WriteString(components.Banner(s.notice, noticeStyle(s.noticeKind), cw))
		b.WriteString("\n")
	}
	if err := s.ctrl.LastError(); err != nil && s.noticeKind == noticeFailure {
		b.WriteString(theme.Hint.Render(err.Error()))
		b.WriteString("\n")
	}

	switch {
	case s.ctrl.Submitting():
		b.WriteString(s.spinner.View() + theme.Body.Render(" Submitting your assessment..."))
		b.WriteString("\n")
	case s.loadingProfile || s.loadingQuestions:
		b.WriteString(s.spinner.View() + theme.Hint.Render(" Loading your profile..."))
		b.WriteString("\n")
	}

	next := "Next"
	if st.IsLast() {
		next = "Submit"
	}
	back := components.NewButton("Back", st.Index > 0 && !s.ctrl.Submitting(), nil)
	fwd := components.NewButton(next, s.ctrl.Verdict().OK && !s.ctrl.Submitting(), nil)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, back.View(), "  ", fwd.View()))
	return b.String()
}

func noticeStyle(k noticeKind) lipgloss.Style {
	switch k {
	case noticeRejected, noticeFailure:
		return theme.Failure
	case noticeWarning:
		return theme.Notice
	default:
		return theme.Body
	}
}

// clip returns at most n lines of lines, scrolled so that focus stays
// visible.
func clip(lines []string, focus, n int) []string {
	if n <= 0 || len(lines) <= n {
		return lines
	}
	start := 0
	if focus >= n {
		start = focus - n + 1
	}
	start = min(start, len(lines)-n)
	return lines[start : start+n]
}

func orNotSpecified(v string) string {
	if strings.TrimSpace(v) == "" {
		return notSpecified
	}
	return v
}

func text(p *quiz.Profile, get func(*quiz.Profile) string) string {
	if p == nil {
		return notSpecified
	}
	return orNotSpecified(get(p))
}

func number(p *quiz.Profile, get func(*quiz.Profile) int) string {
	if p == nil || get(p) == 0 {
		return notSpecified
	}
	return strconv.Itoa(get(p))
}

func list(p *quiz.Profile, get func(*quiz.Profile) []string) string {
	if p == nil || len(get(p)) == 0 {
		return notSpecified
	}
	return strings.Join(get(p), ", ")
}
