package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter hands out the monotonic sequence stamped on every event.
// Row ids alone are not enough once old events are pruned and the table
// is vacuumed, and QueryOpts pages by sequence.
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu  sync.Mutex
	drv *entsql.Driver
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(ctx context.Context, drv *entsql.Driver) (*sequenceCounter, error) {
	err := drv.Exec(ctx, `CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`, []any{}, nil)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	err = drv.Exec(ctx, `INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`, []any{}, nil)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{drv: drv}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var rows entsql.Rows
	err := sc.drv.Query(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
		[]any{}, &rows)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, fmt.Errorf("next sequence: %w", err)
		}
		return 0, fmt.Errorf("next sequence: no row returned")
	}
	var seq int64
	if err := rows.Scan(&seq); err != nil {
		return 0, fmt.Errorf("scan sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo on the ent SQL driver.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
	now func() time.Time
}

const wizardEventsTable = "wizard_events"

func (r *eventRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *eventRepo) AppendWizardEvent(ctx context.Context, data WizardEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(wizardEventsTable).
		Columns("sequence", "timestamp", "kind", "section", "section_index", "detail").
		Values(seqNum, r.clock().UnixNano(), data.Kind, data.Section, data.Index, data.Detail).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save wizard event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryWizardEvents(ctx context.Context, opts QueryOpts) ([]WizardEvent, error) {
	t := entsql.Table(wizardEventsTable)
	sel := entsql.Dialect(dialect.SQLite).
		Select(t.C("id"), t.C("sequence"), t.C("timestamp"), t.C("kind"), t.C("section"), t.C("section_index"), t.C("detail")).
		From(t).
		OrderBy(entsql.Desc(t.C("sequence")))

	var preds []*entsql.Predicate
	if opts.After > 0 {
		preds = append(preds, entsql.GT(t.C("sequence"), opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, entsql.LT(t.C("sequence"), opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE(t.C("timestamp"), opts.From.UnixNano()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE(t.C("timestamp"), opts.To.UnixNano()))
	}
	if opts.Kind != "" {
		preds = append(preds, entsql.EQ(t.C("kind"), opts.Kind))
	}
	if len(preds) > 0 {
		sel = sel.Where(entsql.And(preds...))
	}
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query wizard events: %w", err)
	}
	defer rows.Close()

	var events []WizardEvent
	for rows.Next() {
		var (
			e  WizardEvent
			ts int64
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &ts, &e.Kind, &e.Section, &e.Index, &e.Detail); err != nil {
			return nil, fmt.Errorf("scan wizard event: %w", err)
		}
		e.Timestamp = time.Unix(0, ts).UTC()
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query wizard events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) PruneWizardEvents(ctx context.Context, keep int) error {
	t := entsql.Table(wizardEventsTable)
	query, args := entsql.Dialect(dialect.SQLite).
		Select(t.C("sequence")).
		From(t).
		OrderBy(entsql.Desc(t.C("sequence"))).
		Offset(keep).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return fmt.Errorf("query events for prune: %w", err)
	}
	var threshold int64
	found := rows.Next()
	if found {
		if err := rows.Scan(&threshold); err != nil {
			rows.Close()
			return fmt.Errorf("scan prune threshold: %w", err)
		}
	}
	rows.Close()
	if !found {
		return nil // fewer than keep events exist
	}

	query, args = entsql.Dialect(dialect.SQLite).
		Delete(wizardEventsTable).
		Where(entsql.LTE("sequence", threshold)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("prune wizard events: %w", err)
	}
	return nil
}
