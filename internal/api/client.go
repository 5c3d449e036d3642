// Package api is the HTTP client for the career-guidance backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/careercompass/compass/internal/quiz"
)

// Backend paths.
const (
	PathQuestions  = "/quiz/questions"
	PathOnboarding = "/onboarding"
	PathSubmit     = "/quiz/submit"
)

// maxBody caps how much of a response is read.
const maxBody = 4 << 20

// Client talks to the backend over HTTP. It implements quiz.Backend.
type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

var _ quiz.Backend = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a Client for cfg.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Client{
		cfg:  cfg,
		http: &http.Client{},
		log:  slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	c.log = c.log.With("component", "api")
	return c, nil
}

// Questions fetches the question catalog. Retried on transient failure.
func (c *Client) Questions(ctx context.Context) ([]quiz.Question, error) {
	var qs []quiz.Question
	err := withRetry(ctx, c.cfg.Retry, func(ctx context.Context) error {
		return c.do(ctx, http.MethodGet, PathQuestions, nil, &qs)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch questions: %w", err)
	}
	return qs, nil
}

// Profile fetches the onboarding profile. A 404 is reported as
// quiz.ErrProfileNotFound.
func (c *Client) Profile(ctx context.Context) (*quiz.Profile, error) {
	var p quiz.Profile
	err := withRetry(ctx, c.cfg.Retry, func(ctx context.Context) error {
		return c.do(ctx, http.MethodGet, PathOnboarding, nil, &p)
	})
	var se *StatusError
	if errors.As(err, &se) && se.NotFound() {
		return nil, quiz.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch onboarding profile: %w", err)
	}
	return &p, nil
}

// Submit posts the assessment. It is not retried: the backend creates a
// new submission per call.
func (c *Client) Submit(ctx context.Context, payload quiz.Payload) (*quiz.SubmissionReceipt, error) {
	var r quiz.SubmissionReceipt
	if err := c.do(ctx, http.MethodPost, PathSubmit, payload, &r); err != nil {
		return nil, fmt.Errorf("submit quiz: %w", err)
	}
	return &r, nil
}

// decodeError is a 2xx response whose body could not be parsed.
type decodeError struct {
	err error
}

func (e *decodeError) Error() string { return fmt.Sprintf("decode response: %v", e.err) }
func (e *decodeError) Unwrap() error { return e.err }

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", "method", method, "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	c.log.Debug("request", "method", method, "path", path, "status", resp.StatusCode,
		"latency_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode, Detail: detailFrom(data)}
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &decodeError{err: err}
	}
	return nil
}
