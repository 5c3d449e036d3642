package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	Kind   string    // exact kind match ("" = any)
}

// Wizard event kinds.
const (
	WizardEventAdvanced     = "advanced"
	WizardEventRejected     = "rejected"
	WizardEventSaved        = "saved"
	WizardEventRestored     = "restored"
	WizardEventSubmitted    = "submitted"
	WizardEventSubmitFailed = "submit-failed"
	WizardEventDiscarded    = "draft-discarded"
)

// WizardEventData captures one step of a wizard run.
type WizardEventData struct {
	Kind    string
	Section string
	Index   int
	Detail  string
}

// WizardEvent is a stored wizard event.
type WizardEvent struct {
	WizardEventData
	ID        int64
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to the wizard event log.
type EventRepo interface {
	// AppendWizardEvent records a wizard event.
	AppendWizardEvent(ctx context.Context, data WizardEventData) error

	// QueryWizardEvents returns events newest first.
	QueryWizardEvents(ctx context.Context, opts QueryOpts) ([]WizardEvent, error)

	// PruneWizardEvents deletes all but the newest keep events.
	PruneWizardEvents(ctx context.Context, keep int) error
}
