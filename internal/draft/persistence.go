package draft

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Persistence is the save / load-once / clear contract the wizard uses.
type Persistence struct {
	backend Backend
	key     string
	log     *slog.Logger
	now     func() time.Time
	discard func(ctx context.Context, err error)

	mu     sync.Mutex
	loaded bool
}

// Option configures a Persistence.
type Option func(*Persistence)

// WithKey overrides DefaultKey. An empty key keeps the default.
func WithKey(key string) Option {
	return func(p *Persistence) {
		if key != "" {
			p.key = key
		}
	}
}

// WithLogger sets the logger used for discarded drafts.
func WithLogger(l *slog.Logger) Option {
	return func(p *Persistence) { p.log = l }
}

// WithClock overrides time.Now for SavedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(p *Persistence) { p.now = now }
}

// WithDiscardHook registers fn to be called when a corrupt draft is
// dropped.
func WithDiscardHook(fn func(ctx context.Context, err error)) Option {
	return func(p *Persistence) { p.discard = fn }
}

// NewPersistence wraps a backend.
func NewPersistence(b Backend, opts ...Option) *Persistence {
	p := &Persistence{
		backend: b,
		key:     DefaultKey,
		log:     slog.Default(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Key returns the record key.
func (p *Persistence) Key() string { return p.key }

// Save overwrites the stored draft with d.
func (p *Persistence) Save(ctx context.Context, d *Draft) error {
	if d.SavedAt.IsZero() {
		d.SavedAt = p.now().UTC()
	}
	data, err := Encode(d)
	if err != nil {
		return err
	}
	if err := p.backend.Put(ctx, p.key, data); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// LoadOnce returns the stored draft, or nil when there is none. It may be
// called once per Persistence; later calls return ErrAlreadyLoaded. A
// corrupt record is deleted and reported as absent.
func (p *Persistence) LoadOnce(ctx context.Context) (*Draft, error) {
	p.mu.Lock()
	if p.loaded {
		p.mu.Unlock()
		return nil, ErrAlreadyLoaded
	}
	p.loaded = true
	p.mu.Unlock()

	d, err := p.Peek(ctx)
	if errors.Is(err, ErrCorrupt) {
		p.log.Warn("discarding corrupt draft", "key", p.key, "error", err)
		if delErr := p.backend.Delete(ctx, p.key); delErr != nil {
			p.log.Warn("failed to delete corrupt draft", "key", p.key, "error", delErr)
		}
		if p.discard != nil {
			p.discard(ctx, err)
		}
		return nil, nil
	}
	return d, err
}

// Peek reads the stored draft without consuming the load-once slot and
// without changing the store. A corrupt record is returned as an error
// wrapping ErrCorrupt.
func (p *Persistence) Peek(ctx context.Context) (*Draft, error) {
	data, err := p.backend.Get(ctx, p.key)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	return Decode(data)
}

// Clear deletes the stored draft.
func (p *Persistence) Clear(ctx context.Context) error {
	if err := p.backend.Delete(ctx, p.key); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
