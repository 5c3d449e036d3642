package wizard

import (
	"github.com/careercompass/compass/internal/assessment"
	"github.com/careercompass/compass/internal/quiz"
)

// SubmitFailedMessage is shown when the final submission fails.
const SubmitFailedMessage = "Failed to submit assessment. Press enter to retry."

// Next validates the current section and moves forward. From the last
// section an accepted Next enters PhaseSubmitting instead of moving.
func Next(s State) (State, []Effect) {
	if s.Phase == PhaseSubmitting {
		return s, nil
	}

	v := assessment.CanAdvance(s.Section().ID, s.Answers, assessment.ValidationContext{FieldOfStudy: s.Field})
	if !v.OK {
		return s, []Effect{{Kind: EffectRejected, Message: v.Reason}}
	}

	var effects []Effect
	if v.Warning != "" {
		effects = append(effects, Effect{Kind: EffectWarned, Message: v.Warning})
	}

	// The draft is written before submitting so a failed submission
	// leaves the final answers on disk.
	effects = append(effects, Effect{Kind: EffectPersistDraft})
	if s.IsLast() {
		s.Phase = PhaseSubmitting
		return s, append(effects, Effect{Kind: EffectSubmit})
	}
	s.Index++
	return s, effects
}

// Back moves to the previous section without validating. It is a no-op
// on the first section.
func Back(s State) (State, []Effect) {
	if s.Phase == PhaseSubmitting || s.Index == 0 {
		return s, nil
	}
	s.Index--
	return s, nil
}

// JumpTo moves to section i without validating. Out-of-range indexes are
// ignored.
func JumpTo(s State, i int) (State, []Effect) {
	if s.Phase == PhaseSubmitting || !s.Sequence.Valid(i) {
		return s, nil
	}
	s.Index = i
	return s, nil
}

// SaveAndExit writes the draft and leaves without moving.
func SaveAndExit(s State) (State, []Effect) {
	if s.Phase == PhaseSubmitting {
		return s, nil
	}
	return s, []Effect{{Kind: EffectPersistDraft}, {Kind: EffectLeave}}
}

// ChangeField switches the field of study. Interests and domains are
// cleared on any change since option ids are only meaningful per field;
// setting the current field again is a no-op, as is any change while a
// submission is in flight.
func ChangeField(s State, field string) (State, []Effect) {
	if field == s.Field || s.Phase == PhaseSubmitting {
		return s, nil
	}
	s.Field = field
	if len(s.Answers.SelectedInterests) > 0 || len(s.Answers.SelectedDomains) > 0 {
		a := s.Answers.Clone()
		a.ResetSelections()
		s.Answers = a
	}
	return s, nil
}

// SubmitSucceeded completes the flow: the draft is cleared and the quiz is
// reported completed.
func SubmitSucceeded(s State) (State, []Effect) {
	if s.Phase != PhaseSubmitting {
		return s, nil
	}
	s.Phase = PhaseInProgress
	return s, []Effect{
		{Kind: EffectClearDraft},
		reportStatus(quiz.StatusCompleted),
		{Kind: EffectLeave},
	}
}

// SubmitFailed returns to the final section with the draft kept so Next
// can retry.
func SubmitFailed(s State, err error) (State, []Effect) {
	if s.Phase != PhaseSubmitting {
		return s, nil
	}
	s.Phase = PhaseInProgress
	return s, []Effect{{Kind: EffectSubmissionFailed, Message: SubmitFailedMessage, Err: err}}
}
