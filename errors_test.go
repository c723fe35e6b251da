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
	"errors"
	"fmt"
	"testing"
)

func TestFromResponse_RateLimit(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		wantRetryAfter *int
		wantLimit      *int
		wantRemaining  *int
	}{
		{
			name: "snake_case keys",
			body: map[string]any{
				"retry_after":    float64(60),
				"rate_limit":     float64(100),
				"rate_remaining": float64(0),
			},
			wantRetryAfter: intPtr(60),
			wantLimit:      intPtr(100),
			wantRemaining:  intPtr(0),
		},
		{
			name: "camelCase keys",
			body: map[string]any{
				"retryAfter":    float64(60),
				"rateLimit":     float64(100),
				"rateRemaining": float64(5),
			},
			wantRetryAfter: intPtr(60),
			wantLimit:      intPtr(100),
			wantRemaining:  intPtr(5),
		},
		{
			name: "snake_case wins on conflict",
			body: map[string]any{
				"retry_after": float64(30),
				"retryAfter":  float64(99),
			},
			wantRetryAfter: intPtr(30),
		},
		{
			name: "non-integer snake_case falls through to camelCase",
			body: map[string]any{
				"retry_after": "soon",
				"retryAfter":  float64(15),
			},
			wantRetryAfter: intPtr(15),
		},
		{
			name: "non-integer values yield nil",
			body: map[string]any{
				"retry_after":    "soon",
				"rate_limit":     62.5,
				"rate_remaining": true,
			},
		},
		{
			name: "empty body",
			body: map[string]any{},
		},
		{
			name: "nil body",
			body: nil,
		},
		{
			name: "string body",
			body: "slow down",
		},
		{
			name: "structured error shape is irrelevant at 429",
			body: map[string]any{
				"error": map[string]any{"code": "rate_limited", "message": "slow down"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromResponse(429, tt.body)

			var rl *RateLimitError
			if !errors.As(err, &rl) {
				t.Fatalf("expected RateLimitError, got %T (%v)", err, err)
			}
			checkOptInt(t, "RetryAfter", rl.RetryAfter, tt.wantRetryAfter)
			checkOptInt(t, "Limit", rl.Limit, tt.wantLimit)
			checkOptInt(t, "Remaining", rl.Remaining, tt.wantRemaining)
		})
	}
}

func TestFromResponse_ClientErrors(t *testing.T) {
	t.Run("structured error object", func(t *testing.T) {
		body := map[string]any{
			"error": map[string]any{
				"code":    "not_found",
				"message": "no such resource",
			},
		}
		err := FromResponse(404, body)

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %T (%v)", err, err)
		}
		if apiErr.Status != 404 {
			t.Errorf("Status = %d, want 404", apiErr.Status)
		}
		if apiErr.Code != "not_found" {
			t.Errorf("Code = %q, want %q", apiErr.Code, "not_found")
		}
		if apiErr.Message != "no such resource" {
			t.Errorf("Message = %q, want %q", apiErr.Message, "no such resource")
		}
		if apiErr.Details != nil {
			t.Errorf("Details = %v, want nil", apiErr.Details)
		}
	})

	t.Run("structured error object with details", func(t *testing.T) {
		body := map[string]any{
			"error":   map[string]any{"code": "invalid", "message": "bad field"},
			"details": map[string]any{"field": "Email"},
		}
		err := FromResponse(422, body)

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %T", err)
		}
		if apiErr.Details["field"] != "Email" {
			t.Errorf("Details = %v, want field=Email", apiErr.Details)
		}
	})

	t.Run("top-level message with extra keys", func(t *testing.T) {
		body := map[string]any{
			"message":       "no such resource",
			"resource_type": "employee",
		}
		err := FromResponse(404, body)

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %T (%v)", err, err)
		}
		if apiErr.Code != "" {
			t.Errorf("Code = %q, want empty", apiErr.Code)
		}
		if apiErr.Message != "no such resource" {
			t.Errorf("Message = %q, want %q", apiErr.Message, "no such resource")
		}
		if len(apiErr.Details) != 1 || apiErr.Details["resource_type"] != "employee" {
			t.Errorf("Details = %v, want {resource_type: employee}", apiErr.Details)
		}
	})

	t.Run("top-level message alone leaves details nil", func(t *testing.T) {
		err := FromResponse(403, map[string]any{"message": "forbidden"})

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %T", err)
		}
		if apiErr.Details != nil {
			t.Errorf("Details = %v, want nil", apiErr.Details)
		}
	})

	t.Run("plain string body", func(t *testing.T) {
		err := FromResponse(400, "Bad request format")

		var httpErr *HTTPError
		if !errors.As(err, &httpErr) {
			t.Fatalf("expected HTTPError, got %T (%v)", err, err)
		}
		if httpErr.Reason != "Bad request" {
			t.Errorf("Reason = %q, want %q", httpErr.Reason, "Bad request")
		}
		if httpErr.Status != 400 {
			t.Errorf("Status = %d, want 400", httpErr.Status)
		}
		if httpErr.Body != "Bad request format" {
			t.Errorf("Body = %v, want original string", httpErr.Body)
		}
	})

	t.Run("mapping matching neither shape", func(t *testing.T) {
		body := map[string]any{"status": "failed"}
		err := FromResponse(400, body)

		var httpErr *HTTPError
		if !errors.As(err, &httpErr) {
			t.Fatalf("expected HTTPError, got %T (%v)", err, err)
		}
		if httpErr.Reason != "Bad request" {
			t.Errorf("Reason = %q, want %q", httpErr.Reason, "Bad request")
		}
	})

	t.Run("error key without code is not shape one", func(t *testing.T) {
		// An "error" object missing code/message falls through; the
		// top-level message rule still applies when present.
		body := map[string]any{
			"error":   map[string]any{"reason": "broken"},
			"message": "something went wrong",
		}
		err := FromResponse(400, body)

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError via message shape, got %T", err)
		}
		if apiErr.Message != "something went wrong" {
			t.Errorf("Message = %q", apiErr.Message)
		}
	})
}

func TestFromResponse_ServerErrors(t *testing.T) {
	for _, status := range []int{500, 502, 503, 504, 599} {
		t.Run(fmt.Sprintf("status %d", status), func(t *testing.T) {
			body := map[string]any{"message": "downstream exploded"}
			err := FromResponse(status, body)

			var httpErr *HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("expected HTTPError, got %T (%v)", err, err)
			}
			if httpErr.Reason != "Server error" {
				t.Errorf("Reason = %q, want %q", httpErr.Reason, "Server error")
			}
			if httpErr.Status != status {
				t.Errorf("Status = %d, want %d", httpErr.Status, status)
			}
			// Body passes through unchanged, even when it looks structured.
			m, ok := httpErr.Body.(map[string]any)
			if !ok || m["message"] != "downstream exploded" {
				t.Errorf("Body = %v, want original map", httpErr.Body)
			}
		})
	}
}

func TestFromResponse_UnexpectedStatuses(t *testing.T) {
	for _, status := range []int{0, -1, 100, 301, 304, 399, 700} {
		t.Run(fmt.Sprintf("status %d", status), func(t *testing.T) {
			err := FromResponse(status, "whatever")

			var httpErr *HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("expected HTTPError, got %T (%v)", err, err)
			}
			if httpErr.Reason != "Unexpected status code" {
				t.Errorf("Reason = %q, want %q", httpErr.Reason, "Unexpected status code")
			}
			if httpErr.Status != status {
				t.Errorf("Status = %d, want %d", httpErr.Status, status)
			}
		})
	}
}

// Totality: every input produces exactly one typed variant, never a panic.
func TestFromResponse_Totality(t *testing.T) {
	bodies := []any{
		nil,
		"",
		"text",
		float64(42),
		true,
		[]any{1, 2, 3},
		map[string]any{},
		map[string]any{"error": "not a map"},
		map[string]any{"error": map[string]any{}},
		map[string]any{"message": nil},
		map[string]any{"message": []any{"odd"}},
		map[int]string{1: "wrong key type"},
	}
	for status := -10; status <= 610; status += 7 {
		for _, body := range bodies {
			err := FromResponse(status, body)
			if err == nil {
				t.Fatalf("FromResponse(%d, %v) returned nil", status, body)
			}
			if !classified(err) {
				t.Fatalf("FromResponse(%d, %v) = %T, not a typed variant", status, body, err)
			}
		}
	}
}

func TestFromTransportError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := FromTransportError(cause)

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %T", err)
	}
	if httpErr.Status != 0 {
		t.Errorf("Status = %d, want 0", httpErr.Status)
	}
	if httpErr.Body != nil {
		t.Errorf("Body = %v, want nil", httpErr.Body)
	}
	if httpErr.Reason != cause.Error() {
		t.Errorf("Reason = %q, want %q", httpErr.Reason, cause.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}

	if FromTransportError(nil) != nil {
		t.Error("FromTransportError(nil) should be nil")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "api error with code",
			err:  &APIError{Status: 404, Code: "not_found", Message: "no such resource"},
			want: "workforce API error (Status: 404, Code: not_found): no such resource",
		},
		{
			name: "api error without code",
			err:  &APIError{Status: 403, Message: "forbidden"},
			want: "workforce API error (Status: 403): forbidden",
		},
		{
			name: "http error with status",
			err:  &HTTPError{Reason: "Server error", Status: 503},
			want: "HTTP error (Status: 503): Server error",
		},
		{
			name: "http error without status",
			err:  &HTTPError{Reason: "connection refused"},
			want: "HTTP error: connection refused",
		},
		{
			name: "rate limit with retry hint",
			err:  &RateLimitError{RetryAfter: intPtr(60)},
			want: "Rate limit exceeded. Retry after 60 seconds.",
		},
		{
			name: "rate limit without retry hint",
			err:  &RateLimitError{},
			want: "Rate limit exceeded.",
		},
		{
			name: "parse error",
			err:  &ParseError{Message: "malformed JSON", RawData: "<html>"},
			want: "Parse error: malformed JSON",
		},
		{
			name: "validation error with field",
			err:  &ValidationError{Field: "body", Message: "body must be a map or a slice"},
			want: "Validation error for field 'body': body must be a map or a slice",
		},
		{
			name: "validation error without field",
			err:  &ValidationError{Message: "bad input"},
			want: "Validation error: bad input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMust(t *testing.T) {
	if got := Must[any]("value", nil); got != "value" {
		t.Errorf("Must returned %v", got)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		apiErr, ok := r.(*APIError)
		if !ok {
			t.Fatalf("panicked with %T, want *APIError", r)
		}
		if apiErr.Status != 404 {
			t.Errorf("Status = %d, want 404", apiErr.Status)
		}
	}()
	Must[any](nil, &APIError{Status: 404, Message: "gone"})
}

func intPtr(n int) *int {
	return &n
}

func checkOptInt(t *testing.T, field string, got, want *int) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %d, want nil", field, *got)
	case want != nil && got == nil:
		t.Errorf("%s = nil, want %d", field, *want)
	case want != nil && got != nil && *got != *want:
		t.Errorf("%s = %d, want %d", field, *got, *want)
	}
}
