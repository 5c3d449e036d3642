package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const draftsTable = "drafts"

// DraftRepo stores serialized drafts keyed by name. It satisfies
// draft.Backend; each Put is a single upsert statement, so a reader sees
// either the previous draft or the new one.
type DraftRepo struct {
	drv *entsql.Driver
}

// Get returns the stored bytes for key, or nil when absent.
func (r *DraftRepo) Get(ctx context.Context, key string) ([]byte, error) {
	data, _, err := r.get(ctx, key)
	return data, err
}

// UpdatedAt returns when key was last written, or the zero time.
func (r *DraftRepo) UpdatedAt(ctx context.Context, key string) (time.Time, error) {
	_, ts, err := r.get(ctx, key)
	return ts, err
}

func (r *DraftRepo) get(ctx context.Context, key string) ([]byte, time.Time, error) {
	t := entsql.Table(draftsTable)
	query, args := entsql.Dialect(dialect.SQLite).
		Select(t.C("data"), t.C("updated_at")).
		From(t).
		Where(entsql.EQ(t.C("key"), key)).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, time.Time{}, fmt.Errorf("query draft: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, time.Time{}, fmt.Errorf("query draft: %w", err)
		}
		return nil, time.Time{}, nil
	}
	var (
		data string
		ts   int64
	)
	if err := rows.Scan(&data, &ts); err != nil {
		return nil, time.Time{}, fmt.Errorf("scan draft: %w", err)
	}
	return []byte(data), time.Unix(0, ts).UTC(), nil
}

// Put replaces the draft stored under key.
func (r *DraftRepo) Put(ctx context.Context, key string, data []byte) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(draftsTable).
		Columns("key", "data", "updated_at").
		Values(key, string(data), time.Now().UnixNano()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Delete removes the draft stored under key. Deleting a missing key is
// not an error.
func (r *DraftRepo) Delete(ctx context.Context, key string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(draftsTable).
		Where(entsql.EQ("key", key)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}
