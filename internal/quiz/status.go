package quiz

import (
	"context"
	"fmt"
	"sync"
)

// Status is the externally visible progress of the assessment.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// ParseStatus validates a stored status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return Status(s), nil
	case "":
		return StatusNotStarted, nil
	default:
		return "", fmt.Errorf("unknown quiz status %q", s)
	}
}

// StatusReporter records and reads the quiz status.
type StatusReporter interface {
	Report(ctx context.Context, s Status) error
	Current(ctx context.Context) (Status, error)
}

// MemoryStatus is an in-process StatusReporter.
type MemoryStatus struct {
	mu      sync.Mutex
	status  Status
	history []Status
}

// NewMemoryStatus returns a reporter starting at StatusNotStarted.
func NewMemoryStatus() *MemoryStatus {
	return &MemoryStatus{status: StatusNotStarted}
}

func (m *MemoryStatus) Report(_ context.Context, s Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = s
	m.history = append(m.history, s)
	return nil
}

func (m *MemoryStatus) Current(_ context.Context) (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status, nil
}

// History returns every status reported, in order.
func (m *MemoryStatus) History() []Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Status, len(m.history))
	copy(out, m.history)
	return out
}
