package wizard

import "github.com/careercompass/compass/internal/quiz"

// EffectKind enumerates the side effects a transition can request.
type EffectKind int

const (
	EffectPersistDraft     EffectKind = iota // Write the complete answers as the draft
	EffectSubmit                             // Start the final submission
	EffectClearDraft                         // Delete the stored draft
	EffectReportStatus                       // Publish the quiz status
	EffectRejected                           // Show a validation message; nothing changed
	EffectWarned                             // Show a non-blocking notice
	EffectLeave                              // Hand control back to the caller
	EffectSubmissionFailed                   // Show a retryable submission error
)

func (k EffectKind) String() string {
	switch k {
	case EffectPersistDraft:
		return "persist-draft"
	case EffectSubmit:
		return "submit"
	case EffectClearDraft:
		return "clear-draft"
	case EffectReportStatus:
		return "report-status"
	case EffectRejected:
		return "rejected"
	case EffectWarned:
		return "warned"
	case EffectLeave:
		return "leave"
	case EffectSubmissionFailed:
		return "submission-failed"
	default:
		return "unknown"
	}
}

// Effect is a side effect requested by a transition.
type Effect struct {
	Kind EffectKind

	// Status is set for EffectReportStatus.
	Status quiz.Status

	// Message is the user-facing text for EffectRejected, EffectWarned and
	// EffectSubmissionFailed.
	Message string

	// Err is the cause of EffectSubmissionFailed.
	Err error
}

func reportStatus(s quiz.Status) Effect {
	return Effect{Kind: EffectReportStatus, Status: s}
}

// Has reports whether effects contains an effect of kind k.
func Has(effects []Effect, k EffectKind) bool {
	return Find(effects, k) != nil
}

// Find returns the first effect of kind k, or nil.
func Find(effects []Effect, k EffectKind) *Effect {
	for i := range effects {
		if effects[i].Kind == k {
			return &effects[i]
		}
	}
	return nil
}
