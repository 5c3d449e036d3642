package wizard

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/careercompass/compass/internal/assessment"
	"github.com/careercompass/compass/internal/catalog"
	"github.com/careercompass/compass/internal/quiz"
	"github.com/careercompass/compass/internal/router"
	"github.com/careercompass/compass/internal/screen"
	"github.com/careercompass/compass/internal/screens/complete"
	"github.com/careercompass/compass/internal/ui/components"
	"github.com/careercompass/compass/internal/ui/layout"
	"github.com/careercompass/compass/internal/ui/theme"
	wiz "github.com/careercompass/compass/internal/wizard"
)

// ratingStep is how far one left/right press moves a skill slider.
const ratingStep = 10

// Outcome is how the wizard screen was left.
type Outcome int

const (
	OutcomeAbandoned Outcome = iota
	OutcomeSaved
	OutcomeSubmitted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeSubmitted:
		return "submitted"
	default:
		return "abandoned"
	}
}

type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeInfo
	noticeWarning
	noticeRejected
	noticeFailure
)

// WizardScreen drives a wizard.Controller from key presses.
type WizardScreen struct {
	ctx     context.Context
	ctrl    *wiz.Controller
	backend quiz.Backend

	index      int
	cursor     int
	notice     string
	noticeKind noticeKind

	fieldInput components.TextInput
	spinner    spinner.Model

	loadingQuestions bool
	loadingProfile   bool
	outcome          Outcome
}

var _ screen.Screen = (*WizardScreen)(nil)
var _ screen.KeyHintProvider = (*WizardScreen)(nil)
var _ screen.StatusProvider = (*WizardScreen)(nil)

// New creates a WizardScreen. backend is used to load the question catalog
// and the onboarding profile in the background; cat supplies the field
// names suggested when editing the field of study.
func New(ctx context.Context, ctrl *wiz.Controller, backend quiz.Backend, cat *catalog.Catalog) *WizardScreen {
	if cat == nil {
		cat = catalog.Builtin()
	}
	input := components.NewTextInput("Field of study", "e.g. Data Science", 64)
	input.Model.ShowSuggestions = true
	input.Model.SetSuggestions(cat.Fields())

	return &WizardScreen{
		ctx:        ctx,
		ctrl:       ctrl,
		backend:    backend,
		fieldInput: input,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(theme.Focused)),
	}
}

// Init mounts the controller and starts loading collaborators.
func (s *WizardScreen) Init() tea.Cmd {
	s.ctrl.Mount(s.ctx)
	s.index = s.ctrl.State().Index
	s.loadingQuestions = true
	s.loadingProfile = true
	return tea.Batch(
		s.loadQuestions(),
		s.loadProfile(),
		s.spinner.Tick,
	)
}

func (s *WizardScreen) Title() string {
	return s.ctrl.Section().Title
}

// Status shows the field of study and progress in the header.
func (s *WizardScreen) Status() string {
	st := s.ctrl.State()
	field := st.Field
	if field == "" {
		field = "No field"
	}
	return fmt.Sprintf("%s · %d%%  ", field, st.Progress())
}

// Outcome reports how the screen was left.
func (s *WizardScreen) Outcome() Outcome {
	return s.outcome
}

func (s *WizardScreen) KeyHints() []layout.KeyHint {
	if s.fieldInput.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Tab", Description: "Complete"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.ctrl.Submitting() {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	next := "Next"
	if s.ctrl.State().IsLast() {
		next = "Submit"
	}
	hints := []layout.KeyHint{{Key: "Enter", Description: next}}
	switch s.ctrl.Section().ID {
	case assessment.SectionBackground:
		hints = append(hints, layout.KeyHint{Key: "f", Description: "Field"})
	case assessment.SectionInterests:
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Toggle"})
	case assessment.SectionSkills:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Rate"})
	default:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Choose"})
	}
	return append(hints,
		layout.KeyHint{Key: "b", Description: "Back"},
		layout.KeyHint{Key: "1-9", Description: "Jump"},
		layout.KeyHint{Key: "Ctrl+S", Description: "Save & exit"},
	)
}

func (s *WizardScreen) View(width, height int) string {
	return s.render(width, height)
}

func (s *WizardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		s.loadingQuestions = false
		s.ctrl.ApplyQuestions(msg.Questions, msg.Err)
		return s, nil

	case profileLoadedMsg:
		s.loadingProfile = false
		before := s.ctrl.Field()
		s.ctrl.ApplyProfile(msg.Profile, msg.Err)
		if after := s.ctrl.Field(); after != before && before != "" {
			s.setNotice(noticeInfo, fmt.Sprintf("Field of study is %s; interest and domain choices were reset", after))
		}
		s.clampCursor()
		return s, nil

	case submitDoneMsg:
		return s, s.apply(s.ctrl.CompleteSubmit(s.ctx, msg.Result))

	case spinner.TickMsg:
		if !s.busy() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.fieldInput.Focused() {
		var cmd tea.Cmd
		s.fieldInput, cmd = s.fieldInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *WizardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.fieldInput.Focused() {
		switch key {
		case "enter":
			s.fieldInput.Blur()
			if v := s.fieldInput.Value(); v != "" && v != s.ctrl.Field() {
				s.ctrl.SetField(v)
				s.setNotice(noticeInfo, "Field of study set to "+v)
				s.clampCursor()
			}
			return s, nil
		case "esc":
			s.fieldInput.Blur()
			return s, nil
		}
		var cmd tea.Cmd
		s.fieldInput, cmd = s.fieldInput.Update(msg)
		return s, cmd
	}

	// One submission at a time; everything else waits for the outcome.
	if s.ctrl.Submitting() {
		return s, nil
	}

	switch key {
	case "enter":
		return s, s.apply(s.ctrl.Next(s.ctx))
	case "b", "backspace", "shift+tab":
		return s, s.apply(s.ctrl.Back(s.ctx))
	case "ctrl+s", "q":
		return s, s.apply(s.ctrl.SaveAndExit(s.ctx))
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil
	case "down", "j":
		if s.cursor < s.rows()-1 {
			s.cursor++
		}
		return s, nil
	case "space", "x":
		s.activate(0)
		return s, nil
	case "left", "h":
		s.activate(-1)
		return s, nil
	case "right", "l":
		s.activate(1)
		return s, nil
	case "f":
		if s.ctrl.Section().ID == assessment.SectionBackground {
			return s, s.fieldInput.Focus(s.ctrl.Field())
		}
		return s, nil
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 9 {
		return s, s.apply(s.ctrl.JumpTo(s.ctx, n-1))
	}
	return s, nil
}

// activate applies a toggle (delta 0) or an adjustment (delta ±1) to the
// focused row of the current section.
func (s *WizardScreen) activate(delta int) {
	sec := s.ctrl.Section()
	st := s.ctrl.State()

	var err error
	switch sec.ID {
	case assessment.SectionInterests:
		if delta != 0 {
			return
		}
		interests := s.ctrl.InterestOptions()
		if s.cursor < len(interests) {
			err = s.ctrl.ToggleInterest(interests[s.cursor].ID)
			break
		}
		domains := s.ctrl.DomainOptions()
		if i := s.cursor - len(interests); i < len(domains) {
			err = s.ctrl.ToggleDomain(domains[i].ID)
		}

	case assessment.SectionSkills:
		skills := s.ctrl.Skills()
		if s.cursor >= len(skills) {
			return
		}
		v, _ := st.Answers.Rating(skills[s.cursor])
		err = s.ctrl.RateSkill(skills[s.cursor], v+delta*ratingStep)

	default:
		qs := catalog.Questions(string(sec.ID))
		if s.cursor >= len(qs) {
			return
		}
		q := qs[s.cursor]
		responses, _ := st.Answers.Responses(sec.ID)
		mc := choiceFor(q, responses[q.Key])
		if delta == 0 {
			delta = 1
		}
		mc = mc.Cycle(delta)
		err = s.ctrl.SetResponse(sec.ID, q.Key, q.Choices[mc.Selected].Value)
	}

	switch {
	case errors.Is(err, assessment.ErrDomainLimit):
		s.setNotice(noticeRejected, fmt.Sprintf("You can select up to %d domains", assessment.MaxDomains))
	case err != nil:
		s.setNotice(noticeRejected, err.Error())
	default:
		if s.noticeKind == noticeRejected {
			s.setNotice(noticeNone, "")
		}
	}
}

// apply reacts to the effects of a controller step and returns the
// command that follows from them.
func (s *WizardScreen) apply(step wiz.Step) tea.Cmd {
	s.setNotice(noticeNone, "")

	leave := false
	submitted := false
	for _, e := range step.Effects {
		switch e.Kind {
		case wiz.EffectRejected:
			s.setNotice(noticeRejected, e.Message)
		case wiz.EffectWarned:
			s.setNotice(noticeWarning, e.Message)
		case wiz.EffectSubmissionFailed:
			s.setNotice(noticeFailure, e.Message)
		case wiz.EffectClearDraft:
			submitted = true
		case wiz.EffectLeave:
			leave = true
		}
	}

	if step.Submit != nil {
		return tea.Batch(s.submit(*step.Submit), s.spinner.Tick)
	}

	if leave {
		if submitted {
			s.outcome = OutcomeSubmitted
			st := s.ctrl.State()
			done := complete.New(st.Answers, st.Field, st.Sequence.Len())
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: done} }
		}
		s.outcome = OutcomeSaved
		return tea.Quit
	}

	if i := s.ctrl.State().Index; i != s.index {
		s.index = i
		s.cursor = 0
	}
	return nil
}

func (s *WizardScreen) setNotice(kind noticeKind, msg string) {
	s.noticeKind = kind
	s.notice = msg
}

func (s *WizardScreen) busy() bool {
	return s.loadingQuestions || s.loadingProfile || s.ctrl.Submitting()
}

// rows returns the number of focusable rows in the current section.
func (s *WizardScreen) rows() int {
	switch sec := s.ctrl.Section(); sec.ID {
	case assessment.SectionBackground:
		return 0
	case assessment.SectionInterests:
		return len(s.ctrl.InterestOptions()) + len(s.ctrl.DomainOptions())
	case assessment.SectionSkills:
		return len(s.ctrl.Skills())
	default:
		return len(catalog.Questions(string(sec.ID)))
	}
}

func (s *WizardScreen) clampCursor() {
	if n := s.rows(); s.cursor >= n {
		s.cursor = max(n-1, 0)
	}
}

func (s *WizardScreen) loadQuestions() tea.Cmd {
	ctx, backend := s.ctx, s.backend
	return func() tea.Msg {
		qs, err := backend.Questions(ctx)
		return questionsLoadedMsg{Questions: qs, Err: err}
	}
}

func (s *WizardScreen) loadProfile() tea.Cmd {
	ctx, backend := s.ctx, s.backend
	return func() tea.Msg {
		p, err := backend.Profile(ctx)
		return profileLoadedMsg{Profile: p, Err: err}
	}
}

func (s *WizardScreen) submit(req wiz.SubmitRequest) tea.Cmd {
	ctx, ctrl := s.ctx, s.ctrl
	return func() tea.Msg {
		return submitDoneMsg{Result: ctrl.Submit(ctx, req)}
	}
}

// choiceFor builds the multiple-choice row for q with value selected.
func choiceFor(q catalog.Question, value string) components.MultiChoice {
	labels := make([]string, len(q.Choices))
	for i, c := range q.Choices {
		labels[i] = c.Label
	}
	mc := components.NewMultiChoice(q.Prompt, labels)
	for i, c := range q.Choices {
		if c.Value == value {
			mc.Selected = i
		}
	}
	return mc
}
