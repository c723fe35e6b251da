// Package httpclient builds the *http.Client used by the production
// transport, with consistent timeout, retry, and logging behavior.
//
// The factory composes transport layers to provide:
//   - Automatic retries with exponential backoff and jitter
//   - Request logging with sanitized URLs (sensitive params redacted)
//   - User-Agent and X-Request-ID header injection
//   - Optional client-side rate limiting
//   - TLS 1.2+ with secure defaults
//   - Connection pooling for performance
//
// Example usage:
//
//	cfg := httpclient.DefaultConfig()
//	cfg.UserAgent = "my-service/1.0"
//	client, err := httpclient.New(cfg)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := client.Get("https://api.example.com/resource")
//
// Retries happen below the API client: a request that ultimately fails
// after retrying surfaces to the caller as one outcome. Set RetryAttempts
// to 0 to disable retries entirely; the API client itself never retries.
package httpclient
