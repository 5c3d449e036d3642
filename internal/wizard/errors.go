package wizard

import (
	"errors"
	"fmt"
)

var (
	// ErrSubmitting is returned for input received while the final
	// submission is in flight.
	ErrSubmitting = errors.New("submission in progress")

	// ErrUnknownOption is returned when an interest or domain id is not
	// offered for the current field of study.
	ErrUnknownOption = errors.New("option not offered for this field")
)

// Submission stages reported by SubmitError.
const (
	StageQuestions = "questions"
	StageTransform = "transform"
	StagePost      = "post"
)

// SubmitError is a failed final submission. The draft is kept and the
// wizard stays on the last section.
type SubmitError struct {
	Stage string
	Err   error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("submit assessment (%s): %v", e.Stage, e.Err)
}

func (e *SubmitError) Unwrap() error { return e.Err }
