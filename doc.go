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

/*
Package workforce provides a thin Go client for the workforce management
REST API (employees, locations, departments, rosters, timesheets, sales
metrics, and the authenticated user's own resources).

Each method maps one-to-one to a single HTTP endpoint: it builds a URL plus
an optional JSON body or query parameters, dispatches through the client's
transport, and returns the decoded response body unchanged. The client
performs no retries, pagination, or caching of its own; those concerns
belong to the transport (see package pkg/httpclient for the production
transport's retry and rate-limit knobs).

# Basic Usage

Create a client and make requests:

	c, err := workforce.New("https://acme.example.com", os.Getenv("WORKFORCE_TOKEN"))
	if err != nil {
	    log.Fatal(err)
	}

	// Who am I?
	me, err := c.Utility.WhoAmI(ctx)

	// List employees
	employees, err := c.Employees.List(ctx)

	// Start a timesheet
	ts, err := c.Timesheets.Start(ctx, map[string]any{
	    "intEmployeeId": 42,
	    "intCompanyId":  7,
	})

Response bodies are returned as decoded JSON values (map[string]any,
[]any, string, float64, ...). The client does not know the shape of any
endpoint's response; callers assert the shapes they expect.

# Errors

Every failure is classified into exactly one of five typed errors:
[APIError], [HTTPError], [RateLimitError], [ParseError], and
[ValidationError]. Use errors.As to branch:

	_, err := c.Employees.Get(ctx, 42)
	var apiErr *workforce.APIError
	if errors.As(err, &apiErr) && apiErr.Status == 404 {
	    // not found
	}

	var rl *workforce.RateLimitError
	if errors.As(err, &rl) && rl.RetryAfter != nil {
	    time.Sleep(time.Duration(*rl.RetryAfter) * time.Second)
	}

The client never retries rate-limited requests itself; callers inspect
RateLimitError.RetryAfter and decide.

For call sites that prefer failing fast, wrap any call in [Must], which
panics with the classified error instead of returning it:

	me := workforce.Must(c.Utility.WhoAmI(ctx))

# Transports

The client depends on a single-method [Transport] contract. The default is
[HTTPTransport], which wraps an *http.Client built by pkg/httpclient.
Tests inject [StubTransport], a programmable double that records every
dispatched request and returns scripted outcomes:

	stub := workforce.NewStubTransport()
	stub.StubResponse(200, map[string]any{"Id": 1})
	c, _ := workforce.New("https://test.example.com", "secret",
	    workforce.WithTransport(stub))

A Client is immutable after construction and safe for unsynchronized use
from multiple goroutines.
*/
package workforce
