package wizard

import (
	"github.com/careercompass/compass/internal/quiz"
	wiz "github.com/careercompass/compass/internal/wizard"
)

// questionsLoadedMsg is sent when the question catalog request finishes.
type questionsLoadedMsg struct {
	Questions []quiz.Question
	Err       error
}

// profileLoadedMsg is sent when the onboarding profile request finishes.
type profileLoadedMsg struct {
	Profile *quiz.Profile
	Err     error
}

// submitDoneMsg carries the outcome of a submission run off the UI loop.
type submitDoneMsg struct {
	Result wiz.SubmitResult
}
