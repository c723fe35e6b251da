package httpclient

import (
	"net/url"
	"testing"
)

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no sensitive params",
			input:    "https://api.example.com/resource?foo=bar&baz=qux",
			expected: "https://api.example.com/resource?baz=qux&foo=bar",
		},
		{
			name:     "api_key param",
			input:    "https://api.example.com/resource?api_key=secret123&foo=bar",
			expected: "https://api.example.com/resource?api_key=%5BREDACTED%5D&foo=bar",
		},
		{
			name:     "token param",
			input:    "https://api.example.com/resource?token=abc123&foo=bar",
			expected: "https://api.example.com/resource?foo=bar&token=%5BREDACTED%5D",
		},
		{
			name:     "multiple sensitive params",
			input:    "https://api.example.com/resource?api_key=key1&token=tok1&password=pass1",
			expected: "https://api.example.com/resource?api_key=%5BREDACTED%5D&password=%5BREDACTED%5D&token=%5BREDACTED%5D",
		},
		{
			name:     "case insensitive",
			input:    "https://api.example.com/resource?Api_Key=secret&ToKeN=tok",
			expected: "https://api.example.com/resource?Api_Key=%5BREDACTED%5D&ToKeN=%5BREDACTED%5D",
		},
		{
			name:     "no query string",
			input:    "https://api.example.com/resource",
			expected: "https://api.example.com/resource",
		},
		{
			name:     "substring match in param name",
			input:    "https://api.example.com/resource?my_api_key_value=secret",
			expected: "https://api.example.com/resource?my_api_key_value=%5BREDACTED%5D",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.input)
			if err != nil {
				t.Fatalf("failed to parse input URL: %v", err)
			}

			result := sanitizeURL(u)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestSanitizeURL_Nil(t *testing.T) {
	result := sanitizeURL(nil)
	if result != "" {
		t.Errorf("expected empty string for nil URL, got %q", result)
	}
}

func TestIsSensitiveParam(t *testing.T) {
	tests := []struct {
		param    string
		expected bool
	}{
		{"api_key", true},
		{"APIKEY", true},
		{"token", true},
		{"bearer_token", true},
		{"password", true},
		{"auth", true},
		{"secret", true},
		{"key", true},
		{"credential", true},
		{"foo", false},
		{"user", false},
		{"id", false},
		{"name", false},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			result := isSensitiveParam(tt.param)
			if result != tt.expected {
				t.Errorf("isSensitiveParam(%q) = %v, expected %v", tt.param, result, tt.expected)
			}
		})
	}
}
