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

import "context"

// SalesService wraps the sales metrics endpoints.
type SalesService struct {
	client *Client
}

// AddMetrics records sales metric data points.
func (s *SalesService) AddMetrics(ctx context.Context, metrics any) (any, error) {
	return s.client.post(ctx, "/api/v1/supervise/sales", metrics)
}

// Metrics returns recorded sales metrics filtered by the given query
// parameters (location, date range, ...).
func (s *SalesService) Metrics(ctx context.Context, query any) (any, error) {
	return s.client.getQuery(ctx, "/api/v1/supervise/sales", query)
}
