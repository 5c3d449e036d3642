// Package wizard implements the section-by-section assessment flow: a pure
// state machine over the configured section sequence and the Controller
// that owns the answers and carries out the resulting side effects.
package wizard

import (
	"github.com/careercompass/compass/internal/assessment"
	"github.com/careercompass/compass/internal/quiz"
)

// Phase is the coarse state of the wizard.
type Phase int

const (
	PhaseInProgress Phase = iota // Answering sections
	PhaseSubmitting              // Final submission in flight
)

func (p Phase) String() string {
	switch p {
	case PhaseInProgress:
		return "in-progress"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// State is a snapshot of the wizard. Transitions take a State by value and
// return the next one; the Answers pointer is never mutated by a
// transition, only replaced.
type State struct {
	// Sequence is the ordered list of sections shown.
	Sequence assessment.Sequence

	// Index is the current position in Sequence.
	Index int

	// Phase is InProgress unless a submission is in flight.
	Phase Phase

	// Field is the field of study the option catalog is conditioned on.
	Field string

	// Answers is everything entered so far.
	Answers *assessment.Answers
}

// Start returns the Initial state and the effects of mounting the wizard.
func Start(seq assessment.Sequence, field string, answers *assessment.Answers) (State, []Effect) {
	if answers == nil {
		answers = assessment.NewAnswers()
	}
	s := State{
		Sequence: seq,
		Phase:    PhaseInProgress,
		Field:    field,
		Answers:  answers,
	}
	return s, []Effect{reportStatus(quiz.StatusInProgress)}
}

// Section returns the current section.
func (s State) Section() assessment.Section {
	return s.Sequence.At(s.Index)
}

// IsLast reports whether the current section is the final one.
func (s State) IsLast() bool {
	return s.Index == s.Sequence.Last()
}

// Progress returns completion as a percentage, counting the current
// section as reached.
func (s State) Progress() int {
	if s.Sequence.Len() == 0 {
		return 0
	}
	return (s.Index + 1) * 100 / s.Sequence.Len()
}

// Reached reports whether section i has been passed, for tab markers.
func (s State) Reached(i int) bool {
	return i < s.Index
}
