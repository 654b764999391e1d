package twift

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorDetail is a single structured error object from the API's error
// envelope. The exact schema is owned by the remote API; fields not listed
// here are dropped.
type ErrorDetail struct {
	Message   string `json:"message,omitempty"`
	Detail    string `json:"detail,omitempty"`
	Title     string `json:"title,omitempty"`
	Type      string `json:"type,omitempty"`
	Code      int    `json:"code,omitempty"`
	Parameter string `json:"parameter,omitempty"`
	Value     string `json:"value,omitempty"`
}

func (d ErrorDetail) String() string {
	msg := d.Message
	if msg == "" {
		msg = d.Detail
	}
	if msg == "" {
		msg = d.Title
	}
	if d.Code != 0 {
		return fmt.Sprintf("%s (code %d)", msg, d.Code)
	}
	return msg
}

// APIError reports a structured error envelope returned by the API.
type APIError struct {
	StatusCode int
	Errors     []ErrorDetail
}

func (e *APIError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, d := range e.Errors {
		parts = append(parts, d.String())
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("twift: api error (http %d): %s", e.StatusCode, strings.Join(parts, "; "))
	}
	return "twift: api error: " + strings.Join(parts, "; ")
}

// APIErrorDetails returns the structured error list for API errors.
func APIErrorDetails(err error) ([]ErrorDetail, bool) {
	var e *APIError
	if !errors.As(err, &e) {
		return nil, false
	}
	return e.Errors, true
}

// RangeError reports a numeric input outside its allowed bounds. It is
// returned before any network call is made.
type RangeError struct {
	Field  string
	Min    int
	Max    int
	Actual int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("twift: %s must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Actual)
}

// RouteError reports a missing or malformed request identifier (path
// parameter or required body field). It is returned before any network
// call is made.
type RouteError struct {
	Param  string
	Reason string
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("twift: parameter %q %s", e.Param, e.Reason)
}

// DecodeError reports a response body that matched neither the success
// envelope nor the API error envelope. Body holds the raw (size-capped)
// payload for diagnosis.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error // underlying JSON error, if any
}

func (e *DecodeError) Error() string {
	body := string(e.Body)
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	if e.Err != nil {
		return fmt.Sprintf("twift: undecodable response (http %d): %v: %s", e.StatusCode, e.Err, body)
	}
	return fmt.Sprintf("twift: undecodable response (http %d): %s", e.StatusCode, body)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// HTTPStatusCode returns the HTTP status code carried by API and decode
// errors.
func HTTPStatusCode(err error) (int, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.StatusCode, true
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return de.StatusCode, true
	}
	return 0, false
}
