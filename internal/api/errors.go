package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// StatusError is a non-2xx response from the backend.
type StatusError struct {
	Method string
	Path   string
	Code   int

	// Detail is the backend's error message, when the body carried one.
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.Code, http.StatusText(e.Code), e.Detail)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Code, http.StatusText(e.Code))
}

// NotFound reports whether the backend answered 404.
func (e *StatusError) NotFound() bool { return e.Code == http.StatusNotFound }

// Temporary reports whether retrying may succeed.
func (e *StatusError) Temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

// detailFrom extracts {"detail": "..."} from an error body. Validation
// errors carry a list, which is reported by its first message.
func detailFrom(body []byte) string {
	var d struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &d); err != nil || len(d.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(d.Detail, &s); err == nil {
		return s
	}
	var list []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(d.Detail, &list); err == nil && len(list) > 0 {
		return list[0].Msg
	}
	return ""
}
