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
)

// Transport executes one fully-assembled request descriptor and returns
// the raw outcome. It is the single boundary the client depends on:
// connection handling, TLS, timeouts and retries all live behind it.
//
// The library ships two implementations: HTTPTransport for production and
// StubTransport for tests.
type Transport interface {
	// Do sends the request and returns the response.
	// The context controls cancellation and deadlines.
	// A non-nil error means no usable HTTP outcome was produced
	// (connection failure, undecodable payload, ...); HTTP error
	// statuses are returned as a Response, not an error.
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Request is the transport-ready representation of one outgoing call.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE).
	Method string

	// URL is the absolute request URL, before query encoding.
	URL string

	// Header carries the request headers. Always includes the
	// Authorization bearer entry set by the client core.
	Header http.Header

	// Body is the request payload to serialize as JSON.
	// Nil when the call has no body; otherwise a map or a slice.
	Body any

	// Query holds the query parameters to encode onto the URL.
	// Nil when the call has none; otherwise a map or a slice of
	// two-element key/value pairs.
	Query any
}

// Response is the raw outcome of a dispatched request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Header contains the response headers.
	Header http.Header

	// Body is the decoded response payload: a JSON value for JSON
	// responses, the raw text for anything else, nil when empty.
	Body any

	// Raw is the unprocessed response body.
	Raw []byte
}
