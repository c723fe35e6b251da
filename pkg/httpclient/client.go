package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

// New creates a new HTTP client with the given configuration.
// The composed transport stack, innermost first: connection pooling and
// TLS, request logging (with User-Agent and X-Request-ID injection),
// rate limiting, and retries with exponential backoff outermost so that
// each retried attempt is counted against the rate limit.
//
// Returns an error if the configuration is invalid.
func New(cfg Config) (*http.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseTransport := &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
			MaxVersion: tls.VersionTLS13,
		},

		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,

		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: cfg.Timeout,
		ExpectContinueTimeout: 1 * time.Second,
	}

	var transport http.RoundTripper = newLoggingTransport(baseTransport, cfg.UserAgent)

	if cfg.RateLimit > 0 {
		transport = newRateLimitTransport(transport, cfg.RateLimit, cfg.RateBurst)
	}

	if cfg.RetryAttempts > 0 {
		transport = newRetryTransport(transport, cfg)
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}, nil
}
