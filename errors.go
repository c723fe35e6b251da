// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package workforce

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// APIError is a semantic rejection from the API: a 4xx status whose body
// carried a recognizable structured error payload.
type APIError struct {
	// Status is the HTTP status code.
	Status int

	// Code is the API's machine-readable error code, empty when the
	// payload carried none.
	Code string

	// Message is the API's human-readable error description.
	Message string

	// Details holds any additional structured context from the payload.
	Details map[string]any
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("workforce API error (Status: %d, Code: %s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("workforce API error (Status: %d): %s", e.Status, e.Message)
}

// HTTPError is a transport-level or unstructured server failure: a 4xx with
// an unrecognizable body, any 5xx, an unexpected status, or a failure that
// never produced an HTTP response at all.
type HTTPError struct {
	// Reason describes the failure class ("Bad request", "Server error",
	// "Unexpected status code") or, for non-HTTP failures, the raw
	// transport error text.
	Reason string

	// Status is the HTTP status code, or 0 when no HTTP exchange happened.
	Status int

	// Body is the raw response body, unchanged from what the transport
	// decoded. Nil for non-HTTP failures.
	Body any

	// Cause is the underlying transport error, if any.
	Cause error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("HTTP error: %s", e.Reason)
	}
	return fmt.Sprintf("HTTP error (Status: %d): %s", e.Status, e.Reason)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *HTTPError) Unwrap() error {
	return e.Cause
}

// RateLimitError indicates the server throttled the request (HTTP 429).
// All fields are optional: they are populated only when the response body
// carried integer-valued hints.
type RateLimitError struct {
	// RetryAfter is the suggested wait in seconds before retrying.
	RetryAfter *int

	// Limit is the request quota for the current window.
	Limit *int

	// Remaining is the number of requests left in the current window.
	Remaining *int
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.RetryAfter != nil {
		return fmt.Sprintf("Rate limit exceeded. Retry after %d seconds.", *e.RetryAfter)
	}
	return "Rate limit exceeded."
}

// ParseError indicates a response body could not be decoded into the
// expected structured shape. It is produced by the transport layer, never
// by the classifier.
type ParseError struct {
	// Message describes the decoding failure.
	Message string

	// RawData is the undecodable payload.
	RawData any
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("Parse error: %s", e.Message)
}

// ValidationError indicates a caller-side contract violation, caught
// before any network activity.
type ValidationError struct {
	// Message is the human-readable error description.
	Message string

	// Field identifies which input failed validation ("body", "query",
	// "base_url", ...), empty when not attributable to a single field.
	Field string

	// Value is the offending input.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("Validation error: %s", e.Message)
	}
	return fmt.Sprintf("Validation error for field '%s': %s", e.Field, e.Message)
}

// Reason strings used by FromResponse for unstructured failures.
const (
	reasonBadRequest = "Bad request"
	reasonServer     = "Server error"
	reasonUnexpected = "Unexpected status code"
)

// FromResponse maps a non-success HTTP outcome to exactly one typed error.
// It is total: every (status, body) pair, however malformed, produces a
// classification and never panics.
//
// Checked in strict order, first match wins:
//  1. 429 -> RateLimitError (body hints extracted best-effort)
//  2. 4xx -> APIError when the body has a structured error shape,
//     otherwise HTTPError ("Bad request")
//  3. 5xx -> HTTPError ("Server error")
//  4. anything else -> HTTPError ("Unexpected status code")
func FromResponse(status int, body any) error {
	switch {
	case status == 429:
		return rateLimitFrom(body)
	case status >= 400 && status <= 499:
		if err := structuredAPIError(status, body); err != nil {
			return err
		}
		return &HTTPError{Reason: reasonBadRequest, Status: status, Body: body}
	case status >= 500:
		return &HTTPError{Reason: reasonServer, Status: status, Body: body}
	default:
		return &HTTPError{Reason: reasonUnexpected, Status: status, Body: body}
	}
}

// FromTransportError maps a failure that produced no HTTP response (DNS,
// connect, TLS, cancelled context, ...) to an HTTPError with no status.
func FromTransportError(err error) error {
	if err == nil {
		return nil
	}
	return &HTTPError{Reason: err.Error(), Cause: err}
}

// classified reports whether err is already one of the five typed error
// variants, directly or wrapped. Lower layers (the production transport)
// produce ParseError and ValidationError themselves; those pass through
// the client core unchanged.
func classified(err error) bool {
	var (
		apiErr  *APIError
		httpErr *HTTPError
		rlErr   *RateLimitError
		pErr    *ParseError
		vErr    *ValidationError
	)
	return errors.As(err, &apiErr) ||
		errors.As(err, &httpErr) ||
		errors.As(err, &rlErr) ||
		errors.As(err, &pErr) ||
		errors.As(err, &vErr)
}

// structuredAPIError sniffs a 4xx body for the two recognized error
// payload shapes. Returns nil when the body matches neither.
//
// Shape one: {"error": {"code": ..., "message": ...}, "details": {...}?}
// Shape two: {"message": ..., <anything else becomes details>}
func structuredAPIError(status int, body any) *APIError {
	m, ok := body.(map[string]any)
	if !ok {
		return nil
	}

	if inner, ok := m["error"].(map[string]any); ok {
		code, hasCode := inner["code"]
		message, hasMessage := inner["message"]
		if hasCode && hasMessage {
			var details map[string]any
			if d, ok := m["details"].(map[string]any); ok {
				details = d
			}
			return &APIError{
				Status:  status,
				Code:    fmt.Sprint(code),
				Message: fmt.Sprint(message),
				Details: details,
			}
		}
	}

	if message, ok := m["message"]; ok {
		var details map[string]any
		if len(m) > 1 {
			details = make(map[string]any, len(m)-1)
			for k, v := range m {
				if k != "message" {
					details[k] = v
				}
			}
		}
		return &APIError{
			Status:  status,
			Message: fmt.Sprint(message),
			Details: details,
		}
	}

	return nil
}

// rateLimitFrom extracts throttling hints from a 429 body. Each field
// checks its snake_case key before its camelCase key; the first
// integer-valued hit wins and anything else yields nil for that field.
func rateLimitFrom(body any) *RateLimitError {
	m, _ := body.(map[string]any)
	return &RateLimitError{
		RetryAfter: intKey(m, "retry_after", "retryAfter"),
		Limit:      intKey(m, "rate_limit", "rateLimit"),
		Remaining:  intKey(m, "rate_remaining", "rateRemaining"),
	}
}

// intKey returns the first integer-valued entry among keys, or nil.
func intKey(m map[string]any, keys ...string) *int {
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		if n, ok := asInt(v); ok {
			return &n
		}
	}
	return nil
}

// asInt converts the integer representations JSON decoding can produce.
// Non-integral floats and everything non-numeric are rejected.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return int(n), true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
	}
	return 0, false
}

// Must unwraps a client call result, panicking with the classified error
// on failure. It is the fail-fast calling convention:
//
//	me := workforce.Must(c.Utility.WhoAmI(ctx))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
