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

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got %q", cfg.Level)
	}

	if cfg.Format != FormatJSON {
		t.Errorf("expected default format 'json', got %q", cfg.Format)
	}

	if cfg.Output != os.Stderr {
		t.Errorf("expected default output to be os.Stderr")
	}

	if cfg.AddSource {
		t.Errorf("expected default AddSource to be false")
	}
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		envVars   map[string]string
		level     string
		format    Format
		addSource bool
	}{
		{
			name:    "defaults when no env vars",
			envVars: map[string]string{},
			level:   "info",
			format:  FormatJSON,
		},
		{
			name:    "LOG_LEVEL=debug",
			envVars: map[string]string{"LOG_LEVEL": "debug"},
			level:   "debug",
			format:  FormatJSON,
		},
		{
			name:    "LOG_LEVEL case insensitive",
			envVars: map[string]string{"LOG_LEVEL": "DEBUG"},
			level:   "debug",
			format:  FormatJSON,
		},
		{
			name:    "LOG_FORMAT=text",
			envVars: map[string]string{"LOG_FORMAT": "text"},
			level:   "info",
			format:  FormatText,
		},
		{
			name:      "LOG_SOURCE=1",
			envVars:   map[string]string{"LOG_SOURCE": "1"},
			level:     "info",
			format:    FormatJSON,
			addSource: true,
		},
		{
			name:      "WORKFORCE_DEBUG=true",
			envVars:   map[string]string{"WORKFORCE_DEBUG": "true"},
			level:     "debug",
			format:    FormatJSON,
			addSource: true,
		},
		{
			name: "WORKFORCE_DEBUG overrides LOG_LEVEL",
			envVars: map[string]string{
				"WORKFORCE_DEBUG": "1",
				"LOG_LEVEL":       "error",
			},
			level:     "debug",
			format:    FormatJSON,
			addSource: true,
		},
		{
			name: "WORKFORCE_LOG_LEVEL takes precedence over LOG_LEVEL",
			envVars: map[string]string{
				"WORKFORCE_LOG_LEVEL": "warn",
				"LOG_LEVEL":           "error",
			},
			level:  "warn",
			format: FormatJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"WORKFORCE_DEBUG", "WORKFORCE_LOG_LEVEL", "LOG_LEVEL", "LOG_FORMAT", "LOG_SOURCE"} {
				t.Setenv(key, "")
				os.Unsetenv(key)
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := FromEnv()

			if cfg.Level != tt.level {
				t.Errorf("expected level %q, got %q", tt.level, cfg.Level)
			}
			if cfg.Format != tt.format {
				t.Errorf("expected format %q, got %q", tt.format, cfg.Format)
			}
			if cfg.AddSource != tt.addSource {
				t.Errorf("expected AddSource %v, got %v", tt.addSource, cfg.AddSource)
			}
		})
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{
		Level:  "info",
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("test message", "foo", "bar")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}

	if entry["msg"] != "test message" {
		t.Errorf("expected msg 'test message', got %v", entry["msg"])
	}
	if entry["foo"] != "bar" {
		t.Errorf("expected foo 'bar', got %v", entry["foo"])
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{
		Level:  "info",
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("test message")

	out := buf.String()
	if !strings.Contains(out, "msg=") {
		t.Errorf("expected text output, got %q", out)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&Config{
		Level:  "warn",
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Debug("hidden")
	logger.Info("also hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug/info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("expected warn to be logged, got %q", out)
	}
}

func TestNew_NilConfig(t *testing.T) {
	logger := New(nil)
	if logger == nil {
		t.Fatal("expected non-nil logger for nil config")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"trace", LevelTrace},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWithHelpers(t *testing.T) {
	var buf bytes.Buffer
	base := New(&Config{Level: "info", Format: FormatJSON, Output: &buf})

	logger := WithRequestID(base, "req-123")
	logger = WithComponent(logger, "client")
	logger = WithEndpoint(logger, "GET", "/api/v1/supervise/employee")
	logger.Info("request")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}

	if entry["request_id"] != "req-123" {
		t.Errorf("expected request_id 'req-123', got %v", entry["request_id"])
	}
	if entry["component"] != "client" {
		t.Errorf("expected component 'client', got %v", entry["component"])
	}
	if entry["method"] != "GET" {
		t.Errorf("expected method 'GET', got %v", entry["method"])
	}
	if entry["endpoint"] != "/api/v1/supervise/employee" {
		t.Errorf("expected endpoint path, got %v", entry["endpoint"])
	}
}

func TestErrorAttr(t *testing.T) {
	attr := Error(errors.New("boom"))
	if attr.Key != "error" {
		t.Errorf("expected key 'error', got %q", attr.Key)
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "[REDACTED]"},
		{"ab", "[REDACTED]"},
		{"abcd", "[REDACTED]"},
		{"abcdefgh", "...efgh"},
		{"tk_1234567890secret", "...cret"},
	}

	for _, tt := range tests {
		if got := SanitizeToken(tt.input); got != tt.expected {
			t.Errorf("SanitizeToken(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestSanitizeSecret(t *testing.T) {
	if got := SanitizeSecret("anything"); got != "[REDACTED]" {
		t.Errorf("expected [REDACTED], got %q", got)
	}
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&Config{Level: "trace", Format: FormatJSON, Output: &buf})
	Trace(logger, "detailed", slog.String("body", "{}"))
	if !strings.Contains(buf.String(), "detailed") {
		t.Errorf("expected trace message at trace level, got %q", buf.String())
	}

	buf.Reset()
	logger = New(&Config{Level: "debug", Format: FormatJSON, Output: &buf})
	Trace(logger, "detailed")
	if buf.Len() != 0 {
		t.Errorf("expected trace message filtered at debug level, got %q", buf.String())
	}
}
