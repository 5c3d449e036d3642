package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/careercompass/compass/internal/quiz"
)

const settingsTable = "settings"

// QuizStateKey is the settings key the quiz status is stored under.
const QuizStateKey = "quizState"

// settings is a small key/value table for application state.
type settings struct {
	drv *entsql.Driver
}

func (s settings) get(ctx context.Context, key string) (string, bool, error) {
	t := entsql.Table(settingsTable)
	query, args := entsql.Dialect(dialect.SQLite).
		Select(t.C("value")).
		From(t).
		Where(entsql.EQ(t.C("key"), key)).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := s.drv.Query(ctx, query, args, &rows); err != nil {
		return "", false, fmt.Errorf("query setting %s: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return "", false, rows.Err()
	}
	var v string
	if err := rows.Scan(&v); err != nil {
		return "", false, fmt.Errorf("scan setting %s: %w", key, err)
	}
	return v, true, nil
}

func (s settings) set(ctx context.Context, key, value string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(settingsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UnixNano()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save setting %s: %w", key, err)
	}
	return nil
}

func (s settings) delete(ctx context.Context, key string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(settingsTable).
		Where(entsql.EQ("key", key)).
		Query()
	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete setting %s: %w", key, err)
	}
	return nil
}

// quizState is the stored form of the quiz status.
type quizState struct {
	Status quiz.Status `json:"status"`
}

// StatusRepo persists the quiz status. It satisfies quiz.StatusReporter.
type StatusRepo struct {
	settings settings
}

var _ quiz.StatusReporter = (*StatusRepo)(nil)

// Report stores s as the current status.
func (r *StatusRepo) Report(ctx context.Context, s quiz.Status) error {
	b, err := json.Marshal(quizState{Status: s})
	if err != nil {
		return fmt.Errorf("marshal quiz state: %w", err)
	}
	return r.settings.set(ctx, QuizStateKey, string(b))
}

// Current returns the stored status, StatusNotStarted when none is stored.
func (r *StatusRepo) Current(ctx context.Context) (quiz.Status, error) {
	v, ok, err := r.settings.get(ctx, QuizStateKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return quiz.StatusNotStarted, nil
	}
	var st quizState
	if err := json.Unmarshal([]byte(v), &st); err != nil {
		return "", fmt.Errorf("decode quiz state: %w", err)
	}
	return quiz.ParseStatus(string(st.Status))
}

// Reset forgets the stored status.
func (r *StatusRepo) Reset(ctx context.Context) error {
	return r.settings.delete(ctx, QuizStateKey)
}
