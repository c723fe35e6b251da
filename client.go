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
	"context"
	"net/http"
	"reflect"
	"time"

	"golang.org/x/oauth2"

	"github.com/tombee/workforce/pkg/httpclient"
)

// Client is a client for the workforce management API. It is immutable
// after construction and safe for concurrent use.
type Client struct {
	baseURL     string
	token       string
	tokenSource oauth2.TokenSource
	transport   Transport

	// Resource modules. Each is a catalog of endpoint wrappers over
	// Request; none carries state of its own.
	Employees   *EmployeesService
	Locations   *LocationsService
	Departments *DepartmentsService
	Rosters     *RostersService
	Timesheets  *TimesheetsService
	Sales       *SalesService
	Utility     *UtilityService
	My          *MyService
}

// Option configures a Client.
type Option func(*Client) error

// WithTransport sets a custom transport. Use this to inject StubTransport
// in tests or a fully custom Transport implementation.
func WithTransport(t Transport) Option {
	return func(c *Client) error {
		c.transport = t
		return nil
	}
}

// WithHTTPClient routes requests through a caller-supplied *http.Client
// wrapped in the production transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		c.transport = NewHTTPTransport(hc)
		return nil
	}
}

// WithTimeout builds the default production transport with a custom
// request timeout. Later transport options override this one.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		cfg := httpclient.DefaultConfig()
		cfg.Timeout = d
		hc, err := httpclient.New(cfg)
		if err != nil {
			return err
		}
		c.transport = NewHTTPTransport(hc)
		return nil
	}
}

// WithTokenSource resolves the bearer credential from an oauth2 token
// source on every request instead of the static token. The source is
// responsible for refreshing expired tokens.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Client) error {
		c.tokenSource = ts
		return nil
	}
}

// New creates a client for the API at baseURL, authenticating with the
// given bearer token. Missing required configuration fails here, not on
// first request.
func New(baseURL, token string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: baseURL,
		token:   token,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.baseURL == "" {
		return nil, &ValidationError{Field: "base_url", Message: "base URL is required"}
	}
	if c.token == "" && c.tokenSource == nil {
		return nil, &ValidationError{Field: "token", Message: "access token is required"}
	}

	if c.transport == nil {
		c.transport = NewHTTPTransport(nil)
	}

	c.Employees = &EmployeesService{client: c}
	c.Locations = &LocationsService{client: c}
	c.Departments = &DepartmentsService{client: c}
	c.Rosters = &RostersService{client: c}
	c.Timesheets = &TimesheetsService{client: c}
	c.Sales = &SalesService{client: c}
	c.Utility = &UtilityService{client: c}
	c.My = &MyService{client: c}

	return c, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RequestOptions carries the optional parts of a request.
type RequestOptions struct {
	// Body is the JSON payload. Must be a map or a slice when set.
	Body any

	// Query holds query parameters. Must be a map or a slice when set.
	Query any
}

// Request is the single choke point every resource method dispatches
// through. It validates the body and query shapes, assembles the request
// descriptor, invokes the transport, and classifies any failure.
//
// On success the decoded response body is returned unchanged; the client
// knows nothing about individual endpoints' response shapes. On failure
// the returned error is always one of the five typed variants.
func (c *Client) Request(ctx context.Context, method, path string, opts *RequestOptions) (any, error) {
	var body, query any
	if opts != nil {
		body, query = opts.Body, opts.Query
	}

	if body != nil && !isStructured(body) {
		return nil, &ValidationError{Field: "body", Message: "body must be a map or a slice", Value: body}
	}
	if query != nil && !isStructured(query) {
		return nil, &ValidationError{Field: "query", Message: "query must be a map or a slice", Value: query}
	}

	token, err := c.bearer(ctx)
	if err != nil {
		return nil, FromTransportError(err)
	}

	// Paths are concatenated verbatim; duplicate slashes are the
	// caller's to avoid.
	req := &Request{
		Method: method,
		URL:    c.baseURL + path,
		Header: http.Header{},
		Body:   body,
		Query:  query,
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		if classified(err) {
			return nil, err
		}
		return nil, FromTransportError(err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp.Body, nil
	}
	return nil, FromResponse(resp.StatusCode, resp.Body)
}

// bearer resolves the credential for one request.
func (c *Client) bearer(ctx context.Context) (string, error) {
	if c.tokenSource == nil {
		return c.token, nil
	}
	tok, err := c.tokenSource.Token()
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// isStructured reports whether v is a mapping or a sequence. The body and
// query parameters are typed any for interop, so the shape contract is
// enforced here, before the transport is ever invoked.
func isStructured(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// Endpoint wrapper helpers. Resource modules call these one-liners so the
// catalog files stay flat.

func (c *Client) get(ctx context.Context, path string) (any, error) {
	return c.Request(ctx, http.MethodGet, path, nil)
}

func (c *Client) getQuery(ctx context.Context, path string, query any) (any, error) {
	return c.Request(ctx, http.MethodGet, path, &RequestOptions{Query: query})
}

func (c *Client) post(ctx context.Context, path string, body any) (any, error) {
	return c.Request(ctx, http.MethodPost, path, &RequestOptions{Body: body})
}

func (c *Client) put(ctx context.Context, path string, body any) (any, error) {
	return c.Request(ctx, http.MethodPut, path, &RequestOptions{Body: body})
}

func (c *Client) delete(ctx context.Context, path string) (any, error) {
	return c.Request(ctx, http.MethodDelete, path, nil)
}
