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
	"fmt"
)

// TimesheetsService wraps the timesheet endpoints.
type TimesheetsService struct {
	client *Client
}

// Start clocks an employee in.
func (s *TimesheetsService) Start(ctx context.Context, shift any) (any, error) {
	return s.client.post(ctx, "/api/v1/supervise/timesheet/start", shift)
}

// Stop clocks an employee out.
func (s *TimesheetsService) Stop(ctx context.Context, shift any) (any, error) {
	return s.client.post(ctx, "/api/v1/supervise/timesheet/end", shift)
}

// Pause starts or ends a break on a running timesheet.
func (s *TimesheetsService) Pause(ctx context.Context, shift any) (any, error) {
	return s.client.post(ctx, "/api/v1/supervise/timesheet/pause", shift)
}

// Get returns one timesheet by id.
func (s *TimesheetsService) Get(ctx context.Context, id int) (any, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/supervise/timesheet/%d", id))
}

// Details returns the full detail view of one timesheet.
func (s *TimesheetsService) Details(ctx context.Context, id int) (any, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/supervise/timesheet/%d/details", id))
}

// Query runs a structured search over timesheets. The search value is
// passed through as the request body.
func (s *TimesheetsService) Query(ctx context.Context, search any) (any, error) {
	return s.client.post(ctx, "/api/v1/resource/Timesheet/QUERY", search)
}
