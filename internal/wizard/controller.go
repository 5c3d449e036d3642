package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/careercompass/compass/internal/assessment"
	"github.com/careercompass/compass/internal/catalog"
	"github.com/careercompass/compass/internal/draft"
	"github.com/careercompass/compass/internal/quiz"
	"github.com/careercompass/compass/internal/store"
	"github.com/careercompass/compass/internal/submission"
)

// DefaultSubmitTimeout bounds the final submission, including a catalog
// refetch.
const DefaultSubmitTimeout = 30 * time.Second

// DraftStore is the draft persistence contract the controller needs.
type DraftStore interface {
	Save(ctx context.Context, d *draft.Draft) error
	LoadOnce(ctx context.Context) (*draft.Draft, error)
	Clear(ctx context.Context) error
}

// EventRecorder appends wizard events to the local event log.
type EventRecorder interface {
	AppendWizardEvent(ctx context.Context, data store.WizardEventData) error
}

// Context is read-only data supplied by the surrounding application.
type Context struct {
	// Profile is the onboarding profile, if already known at construction.
	Profile *quiz.Profile
}

// Deps are the collaborators of a Controller. Backend, Drafts and Status
// are required.
type Deps struct {
	Backend     quiz.Backend
	Drafts      DraftStore
	Status      quiz.StatusReporter
	Transformer submission.Transformer // default: submission.FirstOption
	Catalog     *catalog.Catalog       // default: catalog.Builtin()
	Sequence    assessment.Sequence    // default: assessment.DefaultSequence()
	Events      EventRecorder          // optional
	Logger      *slog.Logger
	Now         func() time.Time

	SubmitTimeout time.Duration // default: DefaultSubmitTimeout
}

// SubmitRequest is everything a submission needs. It holds copies, so it
// can be handed to another goroutine.
type SubmitRequest struct {
	Answers   *assessment.Answers
	Questions []quiz.Question

	// Refetch is set when the initial catalog load failed.
	Refetch bool
}

// SubmitResult is the outcome of Submit.
type SubmitResult struct {
	Receipt *quiz.SubmissionReceipt
	Err     error

	// Questions is the refetched catalog, when the request asked for one.
	Questions []quiz.Question
}

// Step is the outcome of one input. Effects have already been carried
// out; they are returned so the caller can render messages and react to
// EffectLeave. Submit is non-nil when the caller must run the submission.
type Step struct {
	Effects []Effect
	Submit  *SubmitRequest
}

// Controller owns the wizard State. All answer mutations go through its
// handlers. It is not safe for concurrent use; Submit is the one method
// that may run off the owning goroutine.
type Controller struct {
	deps  Deps
	wctx  Context
	log   *slog.Logger
	state State

	profile         *quiz.Profile
	questions       []quiz.Question
	questionsLoaded bool
	lastErr         error
	mounted         bool
}

// New builds a Controller in the Initial state.
func New(deps Deps, wctx Context) (*Controller, error) {
	if deps.Backend == nil {
		return nil, errors.New("wizard: backend is required")
	}
	if deps.Drafts == nil {
		return nil, errors.New("wizard: draft store is required")
	}
	if deps.Status == nil {
		return nil, errors.New("wizard: status reporter is required")
	}
	if deps.Transformer == nil {
		deps.Transformer = submission.FirstOption{}
	}
	if deps.Catalog == nil {
		deps.Catalog = catalog.Builtin()
	}
	if deps.Sequence.Len() == 0 {
		deps.Sequence = assessment.DefaultSequence()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.SubmitTimeout <= 0 {
		deps.SubmitTimeout = DefaultSubmitTimeout
	}

	c := &Controller{
		deps:    deps,
		wctx:    wctx,
		log:     deps.Logger.With("component", "wizard"),
		profile: wctx.Profile,
	}
	c.state, _ = Start(deps.Sequence, wctx.Profile.Field(), nil)
	return c, nil
}

// Mount reports the quiz in progress and restores the draft. It runs
// once; later calls do nothing.
func (c *Controller) Mount(ctx context.Context) []Effect {
	if c.mounted {
		return nil
	}
	c.mounted = true

	s, effects := Start(c.deps.Sequence, c.state.Field, nil)

	d, err := c.deps.Drafts.LoadOnce(ctx)
	switch {
	case err != nil:
		c.log.Warn("draft load failed", "error", err)
	case d != nil:
		s.Answers = d.Answers
		s.Field = d.Field
		// A profile known up front wins over the field the draft was
		// built for.
		if f := c.profile.Field(); f != "" {
			s, _ = ChangeField(s, f)
		}
		c.log.Info("draft restored", "draft_id", d.ID, "saved_at", d.SavedAt)
		c.record(ctx, store.WizardEventRestored, d.ID)
	}

	c.state = s
	c.run(ctx, effects)
	return effects
}

// ApplyQuestions installs the question catalog, or records that loading
// it failed. A failure never blocks the wizard.
func (c *Controller) ApplyQuestions(qs []quiz.Question, err error) {
	if err != nil {
		c.log.Warn("question catalog load failed", "error", err)
		return
	}
	c.questions = qs
	c.questionsLoaded = true
}

// ApplyProfile installs the onboarding profile. A profile for a different
// field of study clears interests and domains.
func (c *Controller) ApplyProfile(p *quiz.Profile, err error) {
	if err != nil {
		if errors.Is(err, quiz.ErrProfileNotFound) {
			c.log.Info("no onboarding profile")
		} else {
			c.log.Warn("onboarding profile load failed", "error", err)
		}
		return
	}
	c.profile = p
	if f := p.Field(); f != "" {
		c.state, _ = ChangeField(c.state, f)
	}
}

// SetField changes the field of study directly.
func (c *Controller) SetField(field string) {
	c.state, _ = ChangeField(c.state, field)
}

// ToggleInterest selects or deselects an interest offered for the current
// field.
func (c *Controller) ToggleInterest(id string) error {
	if c.submitting() {
		return ErrSubmitting
	}
	if !c.deps.Catalog.HasInterest(c.state.Field, id) {
		return fmt.Errorf("interest %q: %w", id, ErrUnknownOption)
	}
	c.state.Answers.ToggleInterest(id)
	return nil
}

// ToggleDomain selects or deselects a domain. Selecting a fourth domain
// returns assessment.ErrDomainLimit and changes nothing.
func (c *Controller) ToggleDomain(id string) error {
	if c.submitting() {
		return ErrSubmitting
	}
	if !c.deps.Catalog.HasDomain(c.state.Field, id) {
		return fmt.Errorf("domain %q: %w", id, ErrUnknownOption)
	}
	return c.state.Answers.ToggleDomain(id)
}

// RateSkill records a rating, clamped to the slider range.
func (c *Controller) RateSkill(skill string, value int) error {
	if c.submitting() {
		return ErrSubmitting
	}
	c.state.Answers.RateSkill(skill, value)
	return nil
}

// SetResponse records a single-choice answer.
func (c *Controller) SetResponse(section assessment.SectionID, key, value string) error {
	if c.submitting() {
		return ErrSubmitting
	}
	return c.state.Answers.SetResponse(section, key, value)
}

// Next validates the current section and advances. On the last section an
// accepted Next returns a SubmitRequest for the caller to run.
func (c *Controller) Next(ctx context.Context) Step {
	from := c.state.Section()
	s, effects := Next(c.state)
	c.state = s
	c.run(ctx, effects)

	if e := Find(effects, EffectRejected); e != nil {
		c.log.Debug("advance rejected", "section", from.ID, "reason", e.Message)
		c.record(ctx, store.WizardEventRejected, e.Message)
		return Step{Effects: effects}
	}
	if !Has(effects, EffectSubmit) {
		if len(effects) > 0 {
			c.record(ctx, store.WizardEventAdvanced, string(from.ID))
		}
		return Step{Effects: effects}
	}

	c.lastErr = nil
	req := &SubmitRequest{
		Answers:   c.state.Answers.Clone(),
		Questions: append([]quiz.Question(nil), c.questions...),
		Refetch:   !c.questionsLoaded,
	}
	return Step{Effects: effects, Submit: req}
}

// Back moves to the previous section.
func (c *Controller) Back(ctx context.Context) Step {
	s, effects := Back(c.state)
	c.state = s
	c.run(ctx, effects)
	return Step{Effects: effects}
}

// JumpTo moves to section i.
func (c *Controller) JumpTo(ctx context.Context, i int) Step {
	s, effects := JumpTo(c.state, i)
	c.state = s
	c.run(ctx, effects)
	return Step{Effects: effects}
}

// SaveAndExit writes the draft and returns an EffectLeave.
func (c *Controller) SaveAndExit(ctx context.Context) Step {
	s, effects := SaveAndExit(c.state)
	c.state = s
	c.run(ctx, effects)
	if len(effects) > 0 {
		c.record(ctx, store.WizardEventSaved, string(c.state.Section().ID))
	}
	return Step{Effects: effects}
}

// Submit transforms and posts the answers. It only reads req and the
// controller's immutable collaborators.
func (c *Controller) Submit(ctx context.Context, req SubmitRequest) SubmitResult {
	ctx, cancel := context.WithTimeout(ctx, c.deps.SubmitTimeout)
	defer cancel()

	questions := req.Questions
	if req.Refetch {
		qs, err := c.deps.Backend.Questions(ctx)
		if err != nil {
			return SubmitResult{Err: &SubmitError{Stage: StageQuestions, Err: err}}
		}
		questions = qs
	}
	var refetched []quiz.Question
	if req.Refetch {
		refetched = questions
	}

	payload, err := c.deps.Transformer.Transform(questions, req.Answers)
	if err != nil {
		return SubmitResult{Err: &SubmitError{Stage: StageTransform, Err: err}, Questions: refetched}
	}

	receipt, err := c.deps.Backend.Submit(ctx, payload)
	if err != nil {
		return SubmitResult{Err: &SubmitError{Stage: StagePost, Err: err}, Questions: refetched}
	}
	return SubmitResult{Receipt: receipt, Questions: refetched}
}

// CompleteSubmit applies a submission outcome. Success clears the draft
// and reports completion; failure keeps the draft and stays on the last
// section.
func (c *Controller) CompleteSubmit(ctx context.Context, res SubmitResult) Step {
	var (
		s       State
		effects []Effect
	)
	if res.Err == nil {
		s, effects = SubmitSucceeded(c.state)
	} else {
		s, effects = SubmitFailed(c.state, res.Err)
	}
	if len(effects) == 0 {
		return Step{}
	}
	if res.Questions != nil {
		c.ApplyQuestions(res.Questions, nil)
	}
	c.state = s
	c.run(ctx, effects)

	if res.Err != nil {
		c.lastErr = res.Err
		c.log.Error("submission failed", "error", res.Err)
		c.record(ctx, store.WizardEventSubmitFailed, res.Err.Error())
		return Step{Effects: effects}
	}

	c.lastErr = nil
	detail := ""
	if res.Receipt != nil {
		detail = fmt.Sprintf("submission %d", res.Receipt.ID)
	}
	c.log.Info("assessment submitted", "detail", detail)
	c.record(ctx, store.WizardEventSubmitted, detail)
	return Step{Effects: effects}
}

// Advance is Next followed, when the last section is accepted, by a
// synchronous Submit and CompleteSubmit.
func (c *Controller) Advance(ctx context.Context) Step {
	step := c.Next(ctx)
	if step.Submit == nil {
		return step
	}
	done := c.CompleteSubmit(ctx, c.Submit(ctx, *step.Submit))
	return Step{Effects: append(step.Effects, done.Effects...)}
}

// State returns a copy of the current state. The answers are cloned.
func (c *Controller) State() State {
	s := c.state
	s.Answers = s.Answers.Clone()
	return s
}

// Section returns the current section.
func (c *Controller) Section() assessment.Section { return c.state.Section() }

// Field returns the current field of study.
func (c *Controller) Field() string { return c.state.Field }

// Profile returns the onboarding profile, or nil.
func (c *Controller) Profile() *quiz.Profile { return c.profile }

// Submitting reports whether a submission is in flight.
func (c *Controller) Submitting() bool { return c.submitting() }

// LastError returns the error of the most recent failed submission.
func (c *Controller) LastError() error { return c.lastErr }

// Verdict evaluates the current section without moving.
func (c *Controller) Verdict() assessment.Verdict {
	return assessment.CanAdvance(c.state.Section().ID, c.state.Answers,
		assessment.ValidationContext{FieldOfStudy: c.state.Field})
}

// InterestOptions returns the interests offered for the current field.
func (c *Controller) InterestOptions() []catalog.Option {
	return c.deps.Catalog.InterestOptions(c.state.Field)
}

// DomainOptions returns the domains offered for the current field.
func (c *Controller) DomainOptions() []catalog.Option {
	return c.deps.Catalog.DomainOptions(c.state.Field)
}

// Skills returns the skills listed for the current field.
func (c *Controller) Skills() []string {
	return c.deps.Catalog.Skills(c.state.Field)
}

func (c *Controller) submitting() bool {
	return c.state.Phase == PhaseSubmitting
}

// run carries out persistence and status effects. Failures are logged;
// none of them changes the state.
func (c *Controller) run(ctx context.Context, effects []Effect) {
	for _, e := range effects {
		switch e.Kind {
		case EffectPersistDraft:
			d := draft.New(c.state.Answers, c.state.Field, c.state.Index, c.deps.Now())
			if err := c.deps.Drafts.Save(ctx, d); err != nil {
				c.log.Warn("draft save failed", "error", err)
			}
		case EffectClearDraft:
			if err := c.deps.Drafts.Clear(ctx); err != nil {
				c.log.Warn("draft clear failed", "error", err)
			}
		case EffectReportStatus:
			if err := c.deps.Status.Report(ctx, e.Status); err != nil {
				c.log.Warn("status report failed", "status", e.Status, "error", err)
			}
		}
	}
}

func (c *Controller) record(ctx context.Context, kind, detail string) {
	if c.deps.Events == nil {
		return
	}
	err := c.deps.Events.AppendWizardEvent(ctx, store.WizardEventData{
		Kind:    kind,
		Section: string(c.state.Section().ID),
		Index:   c.state.Index,
		Detail:  detail,
	})
	if err != nil {
		c.log.Warn("record wizard event failed", "kind", kind, "error", err)
	}
}
