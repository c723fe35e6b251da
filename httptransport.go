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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/tombee/workforce/pkg/httpclient"
)

// HTTPTransport is the production Transport. It serializes request bodies
// as JSON, encodes query parameters, and decodes response payloads.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport creates the production transport over the given HTTP
// client. Pass nil to use a client built from httpclient.DefaultConfig
// (pooled connections, TLS 1.2+, retries with backoff).
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		c, err := httpclient.New(httpclient.DefaultConfig())
		if err != nil {
			// Defaults always validate; keep a usable client anyway.
			c = &http.Client{Timeout: 30 * time.Second}
		}
		client = c
	}
	return &HTTPTransport{client: client}
}

// Do implements Transport.
func (t *HTTPTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	u := req.URL
	if req.Query != nil {
		encoded, err := encodeQuery(req.Query)
		if err != nil {
			return nil, err
		}
		if encoded != "" {
			sep := "?"
			if strings.Contains(u, "?") {
				sep = "&"
			}
			u += sep + encoded
		}
	}

	var bodyReader io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &ValidationError{Field: "body", Message: "body is not JSON-serializable", Value: req.Body}
		}
		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, bodyReader)
	if err != nil {
		return nil, err
	}
	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	if req.Body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	body, err := decodeBody(httpResp.Header.Get("Content-Type"), raw)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       body,
		Raw:        raw,
	}, nil
}

// decodeBody turns raw response bytes into the value handed back to the
// client. JSON payloads are decoded; anything else is returned as a
// string. A payload that declares JSON but does not parse is a ParseError.
func decodeBody(contentType string, raw []byte) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	declaresJSON := strings.Contains(contentType, "json")

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		if declaresJSON {
			return nil, &ParseError{
				Message: fmt.Sprintf("malformed JSON response: %v", err),
				RawData: string(raw),
			}
		}
		return string(raw), nil
	}
	return decoded, nil
}

// encodeQuery flattens a query value into URL-encoded form. Maps use
// their entries directly (slice values become repeated parameters); a
// sequence must contain two-element [key, value] pairs.
func encodeQuery(query any) (string, error) {
	values := url.Values{}

	rv := reflect.ValueOf(query)
	switch rv.Kind() {
	case reflect.Map:
		if vs, ok := query.(url.Values); ok {
			return vs.Encode(), nil
		}
		iter := rv.MapRange()
		for iter.Next() {
			key := fmt.Sprint(iter.Key().Interface())
			addQueryValue(values, key, iter.Value())
		}

	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			pair := reflect.ValueOf(rv.Index(i).Interface())
			if (pair.Kind() != reflect.Slice && pair.Kind() != reflect.Array) || pair.Len() != 2 {
				return "", &ValidationError{
					Field:   "query",
					Message: "query sequence entries must be [key, value] pairs",
					Value:   query,
				}
			}
			key := fmt.Sprint(pair.Index(0).Interface())
			addQueryValue(values, key, pair.Index(1))
		}

	default:
		return "", &ValidationError{Field: "query", Message: "query must be a map or a slice", Value: query}
	}

	return values.Encode(), nil
}

// addQueryValue appends v under key, expanding slice values into repeated
// parameters.
func addQueryValue(values url.Values, key string, v reflect.Value) {
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if v.IsValid() && (v.Kind() == reflect.Slice || v.Kind() == reflect.Array) {
		for i := 0; i < v.Len(); i++ {
			values.Add(key, fmt.Sprint(v.Index(i).Interface()))
		}
		return
	}
	if !v.IsValid() {
		values.Add(key, "")
		return
	}
	values.Add(key, fmt.Sprint(v.Interface()))
}
