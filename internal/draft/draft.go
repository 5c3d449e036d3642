// Package draft persists in-progress assessment answers so a reload can
// resume where the user left off.
package draft

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/careercompass/compass/internal/assessment"
)

// CurrentVersion is the envelope version written by Encode.
const CurrentVersion = 1

// DefaultKey is the record key drafts are stored under.
const DefaultKey = "quizAnswers"

var (
	// ErrCorrupt marks a stored draft that cannot be turned back into a
	// valid answer model.
	ErrCorrupt = errors.New("corrupt draft")

	// ErrAlreadyLoaded is returned by LoadOnce after the first call.
	ErrAlreadyLoaded = errors.New("draft already loaded")
)

// Draft is a timestamped snapshot of the complete answer model.
type Draft struct {
	Version int                 `json:"version"`
	ID      string              `json:"id"`
	SavedAt time.Time           `json:"savedAt"`
	Field   string              `json:"field,omitempty"`
	Section int                 `json:"section"`
	Answers *assessment.Answers `json:"answers"`
}

// New wraps a copy of answers in a fresh envelope.
func New(answers *assessment.Answers, field string, section int, now time.Time) *Draft {
	return &Draft{
		Version: CurrentVersion,
		ID:      uuid.New().String(),
		SavedAt: now.UTC(),
		Field:   field,
		Section: section,
		Answers: answers.Clone(),
	}
}

// Encode serializes d.
func Encode(d *Draft) ([]byte, error) {
	if d.Answers == nil {
		return nil, fmt.Errorf("encode draft: nil answers")
	}
	return json.Marshal(d)
}

// Decode parses and validates a stored draft. Any failure wraps ErrCorrupt;
// a draft is either fully valid or rejected.
func Decode(data []byte) (*Draft, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrCorrupt, err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile draft schema: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var d Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if d.Version > CurrentVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, d.Version)
	}
	d.Answers.Normalize()
	if err := d.Answers.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &d, nil
}

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal(schemaJSON, &doc); err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://draft.json"
		if err := c.AddResource(url, doc); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile(url)
	})
	return schema, schemaErr
}
