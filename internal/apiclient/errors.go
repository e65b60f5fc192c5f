package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
)

// HTTPError is returned when the payments API answers with status >= 400.
type HTTPError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ConnectionError is returned when no response was received at all.
type ConnectionError struct {
	Method string
	URL    string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the call gave up waiting for the remote side.
func (e *ConnectionError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

func newHTTPError(status int, body []byte) *HTTPError {
	return &HTTPError{
		StatusCode: status,
		Message:    errorMessage(status, body),
		Body:       body,
	}
}

// errorMessage prefers the "error" field of a JSON body, then "message".
// A JSON body with neither yields "HTTP <status>"; a non-JSON body yields its
// text, or "HTTP <status>" when empty.
func errorMessage(status int, body []byte) string {
	fallback := fmt.Sprintf("HTTP %d", status)

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return fallback
	}

	var payload any
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return strings.TrimSpace(string(body))
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		return fallback
	}
	for _, key := range []string{"error", "message"} {
		v, found := obj[key]
		if !found {
			continue
		}
		if s, isString := v.(string); isString {
			return s
		}
		raw, _ := json.Marshal(v)
		return string(raw)
	}
	return fallback
}
