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
	"sync"
)

// StubTransport is a deterministic, programmable Transport for tests. It
// records every dispatched request and returns scripted outcomes in FIFO
// order. When the script is exhausted it answers 200 with a nil body.
//
// Exported so callers can use it in their own test suites:
//
//	stub := workforce.NewStubTransport()
//	stub.StubResponse(404, map[string]any{"message": "no such employee"})
//	c, _ := workforce.New("https://test.example.com", "secret",
//	    workforce.WithTransport(stub))
type StubTransport struct {
	mu       sync.Mutex
	requests []*Request
	script   []stubOutcome
}

type stubOutcome struct {
	resp *Response
	err  error
}

// NewStubTransport creates an empty stub.
func NewStubTransport() *StubTransport {
	return &StubTransport{}
}

// StubResponse enqueues a scripted response with the given status and
// decoded body.
func (s *StubTransport) StubResponse(status int, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.script = append(s.script, stubOutcome{resp: &Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       body,
	}})
}

// StubError enqueues a scripted transport-level failure.
func (s *StubTransport) StubError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.script = append(s.script, stubOutcome{err: err})
}

// Do implements Transport.
func (s *StubTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)

	if len(s.script) == 0 {
		return &Response{StatusCode: http.StatusOK, Header: http.Header{}}, nil
	}
	next := s.script[0]
	s.script = s.script[1:]
	return next.resp, next.err
}

// Calls returns the number of requests dispatched so far.
func (s *StubTransport) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Requests returns a copy of every recorded request, in dispatch order.
func (s *StubTransport) Requests() []*Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recently dispatched request, or nil.
func (s *StubTransport) LastRequest() *Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return nil
	}
	return s.requests[len(s.requests)-1]
}
