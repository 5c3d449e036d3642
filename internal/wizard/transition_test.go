package wizard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercompass/compass/internal/assessment"
	"github.com/careercompass/compass/internal/quiz"
)

func stateAt(t *testing.T, index int, a *assessment.Answers) State {
	t.Helper()
	s, effects := Start(assessment.DefaultSequence(), "Data Science", a)
	require.Len(t, effects, 1)
	s.Index = index
	return s
}

func interestsIndex() int {
	return assessment.DefaultSequence().IndexOf(assessment.SectionInterests)
}

func TestStartReportsInProgress(t *testing.T) {
	s, effects := Start(assessment.DefaultSequence(), "", nil)
	assert.Equal(t, 0, s.Index)
	assert.Equal(t, PhaseInProgress, s.Phase)
	assert.NotNil(t, s.Answers)
	require.Len(t, effects, 1)
	assert.Equal(t, EffectReportStatus, effects[0].Kind)
	assert.Equal(t, quiz.StatusInProgress, effects[0].Status)
}

func TestNextFromInterests(t *testing.T) {
	i := interestsIndex()

	s := stateAt(t, i, assessment.NewAnswers())
	next, effects := Next(s)
	assert.Equal(t, i, next.Index, "rejected advance must not move")
	require.Len(t, effects, 1)
	assert.Equal(t, EffectRejected, effects[0].Kind)
	assert.Equal(t, "Please select at least one interest", effects[0].Message)

	a := assessment.NewAnswers()
	a.ToggleInterest("building")
	require.NoError(t, a.ToggleDomain("web"))
	next, effects = Next(stateAt(t, i, a))
	assert.Equal(t, i+1, next.Index)
	assert.True(t, Has(effects, EffectPersistDraft))
	assert.False(t, Has(effects, EffectRejected))
}

func TestNextFromSkillsNeedsFourRatings(t *testing.T) {
	i := assessment.DefaultSequence().IndexOf(assessment.SectionSkills)
	a := assessment.NewAnswers()
	for _, skill := range []string{"SQL", "Python/R", "Data Cleaning"} {
		a.RateSkill(skill, 70)
	}

	next, effects := Next(stateAt(t, i, a))
	assert.Equal(t, i, next.Index)
	assert.True(t, Has(effects, EffectRejected))

	a.RateSkill("Communication", 30)
	next, effects = Next(stateAt(t, i, a))
	assert.Equal(t, i+1, next.Index)
	assert.False(t, Has(effects, EffectRejected))
}

func TestNextFromBackgroundWarnsWithoutField(t *testing.T) {
	s, _ := Start(assessment.DefaultSequence(), "", nil)
	next, effects := Next(s)
	assert.Equal(t, 1, next.Index)
	assert.True(t, Has(effects, EffectWarned))
}

func TestBackNeverValidates(t *testing.T) {
	empty := assessment.NewAnswers()
	for i := 1; i < assessment.DefaultSequence().Len(); i++ {
		s := stateAt(t, i, empty)
		prev, effects := Back(s)
		assert.Equal(t, i-1, prev.Index)
		assert.Empty(t, effects)
		assert.Same(t, empty, prev.Answers)
	}

	first, effects := Back(stateAt(t, 0, empty))
	assert.Equal(t, 0, first.Index)
	assert.Empty(t, effects)
}

func TestJumpTo(t *testing.T) {
	s := stateAt(t, 0, assessment.NewAnswers())

	jumped, effects := JumpTo(s, 4)
	assert.Equal(t, 4, jumped.Index)
	assert.Empty(t, effects)

	for _, bad := range []int{-1, 6, 100} {
		got, _ := JumpTo(s, bad)
		assert.Equal(t, 0, got.Index)
	}
}

func TestSaveAndExitKeepsIndex(t *testing.T) {
	s := stateAt(t, 3, assessment.NewAnswers())
	got, effects := SaveAndExit(s)
	assert.Equal(t, 3, got.Index)
	require.Len(t, effects, 2)
	assert.Equal(t, EffectPersistDraft, effects[0].Kind)
	assert.Equal(t, EffectLeave, effects[1].Kind)
}

func TestChangeFieldResetsSelections(t *testing.T) {
	a := assessment.NewAnswers()
	a.ToggleInterest("ml")
	require.NoError(t, a.ToggleDomain("ai"))
	a.RateSkill("SQL", 60)
	s := stateAt(t, 2, a)

	same, _ := ChangeField(s, "Data Science")
	assert.Equal(t, []string{"ml"}, same.Answers.SelectedInterests)

	changed, _ := ChangeField(s, "Finance")
	assert.Equal(t, "Finance", changed.Field)
	assert.Empty(t, changed.Answers.SelectedInterests)
	assert.Empty(t, changed.Answers.SelectedDomains)
	assert.Equal(t, map[string]int{"SQL": 60}, changed.Answers.SkillRatings)
	assert.Equal(t, 2, changed.Index)

	// The original state is untouched.
	assert.Equal(t, []string{"ml"}, a.SelectedInterests)

	again, _ := ChangeField(changed, "Finance")
	assert.True(t, again.Answers.Equal(changed.Answers))
}

func TestChangeFieldIgnoredWhileSubmitting(t *testing.T) {
	a := assessment.NewAnswers()
	a.ToggleInterest("ml")
	require.NoError(t, a.ToggleDomain("ai"))
	s := stateAt(t, 5, a)
	s.Phase = PhaseSubmitting

	got, effects := ChangeField(s, "Finance")
	assert.Empty(t, effects)
	assert.Equal(t, "Data Science", got.Field)
	assert.Equal(t, []string{"ml"}, got.Answers.SelectedInterests)
	assert.Equal(t, []string{"ai"}, got.Answers.SelectedDomains)
}

func completeAnswers(t *testing.T) *assessment.Answers {
	t.Helper()
	a := assessment.NewAnswers()
	a.ToggleInterest("ml")
	require.NoError(t, a.ToggleDomain("ai"))
	for _, skill := range []string{"SQL", "Python/R", "Data Cleaning", "Communication"} {
		a.RateSkill(skill, 70)
	}
	require.NoError(t, a.SetResponse(assessment.SectionPersonality, "decisionMaking", "analytical"))
	require.NoError(t, a.SetResponse(assessment.SectionPersonality, "stressHandling", "calm"))
	require.NoError(t, a.SetResponse(assessment.SectionPersonality, "learningStyle", "visual"))
	require.NoError(t, a.SetResponse(assessment.SectionWorkStyle, "taskPreference", "structured"))
	require.NoError(t, a.SetResponse(assessment.SectionWorkStyle, "teamPreference", "team"))
	require.NoError(t, a.SetResponse(assessment.SectionWorkStyle, "workEnvironment", "remote"))
	require.NoError(t, a.SetResponse(assessment.SectionGoals, "shortTermGoal", "skills"))
	require.NoError(t, a.SetResponse(assessment.SectionGoals, "longTermGoal", "expert"))
	return a
}

func TestNextOnLastSectionSubmits(t *testing.T) {
	last := assessment.DefaultSequence().Last()

	rejected, effects := Next(stateAt(t, last, assessment.NewAnswers()))
	assert.Equal(t, PhaseInProgress, rejected.Phase)
	assert.True(t, Has(effects, EffectRejected))

	s := stateAt(t, last, completeAnswers(t))
	sub, effects := Next(s)
	assert.Equal(t, PhaseSubmitting, sub.Phase)
	assert.Equal(t, last, sub.Index)
	assert.True(t, Has(effects, EffectPersistDraft))
	assert.True(t, Has(effects, EffectSubmit))

	// Input is ignored while submitting.
	for _, step := range []func(State) (State, []Effect){
		Next, Back, SaveAndExit,
		func(s State) (State, []Effect) { return JumpTo(s, 0) },
	} {
		got, effects := step(sub)
		assert.Equal(t, sub, got)
		assert.Empty(t, effects)
	}
}

func TestSubmitOutcome(t *testing.T) {
	last := assessment.DefaultSequence().Last()
	sub, _ := Next(stateAt(t, last, completeAnswers(t)))

	ok, effects := SubmitSucceeded(sub)
	assert.Equal(t, PhaseInProgress, ok.Phase)
	require.Len(t, effects, 3)
	assert.Equal(t, EffectClearDraft, effects[0].Kind)
	assert.Equal(t, EffectReportStatus, effects[1].Kind)
	assert.Equal(t, quiz.StatusCompleted, effects[1].Status)
	assert.Equal(t, EffectLeave, effects[2].Kind)

	cause := errors.New("boom")
	failed, effects := SubmitFailed(sub, cause)
	assert.Equal(t, PhaseInProgress, failed.Phase)
	assert.Equal(t, last, failed.Index)
	require.Len(t, effects, 1)
	assert.Equal(t, EffectSubmissionFailed, effects[0].Kind)
	assert.ErrorIs(t, effects[0].Err, cause)
	assert.False(t, Has(effects, EffectClearDraft))

	// Outcomes outside a submission are ignored.
	idle := stateAt(t, last, completeAnswers(t))
	_, effects = SubmitSucceeded(idle)
	assert.Empty(t, effects)
	_, effects = SubmitFailed(idle, cause)
	assert.Empty(t, effects)
}

func TestProgress(t *testing.T) {
	s := stateAt(t, 0, nil)
	assert.Equal(t, 16, s.Progress())
	s.Index = 5
	assert.Equal(t, 100, s.Progress())
	assert.True(t, s.Reached(4))
	assert.False(t, s.Reached(5))
}
