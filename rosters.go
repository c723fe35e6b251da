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

// RostersService wraps the roster endpoints.
type RostersService struct {
	client *Client
}

// List returns the rosters for the current week.
func (s *RostersService) List(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/supervise/roster")
}

// Get returns one roster by id.
func (s *RostersService) Get(ctx context.Context, id int) (any, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/supervise/roster/%d", id))
}

// ByDate returns the rosters for a date. The date must be URL-safe
// (YYYY-MM-DD); it is interpolated into the path verbatim.
func (s *RostersService) ByDate(ctx context.Context, date string) (any, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/supervise/roster/%s", date))
}

// ByDateAndLocation returns the rosters for a date at one location.
func (s *RostersService) ByDateAndLocation(ctx context.Context, date string, locationID int) (any, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/supervise/roster/%s/%d", date, locationID))
}

// Copy copies rosters between dates.
func (s *RostersService) Copy(ctx context.Context, instruction any) (any, error) {
	return s.client.post(ctx, "/api/v1/supervise/roster/copy", instruction)
}

// Publish publishes rosters so employees can see them.
func (s *RostersService) Publish(ctx context.Context, instruction any) (any, error) {
	return s.client.post(ctx, "/api/v1/supervise/roster/publish", instruction)
}

// Create adds a roster entry.
func (s *RostersService) Create(ctx context.Context, roster any) (any, error) {
	return s.client.post(ctx, "/api/v1/supervise/roster", roster)
}

// Discard deletes unpublished roster changes.
func (s *RostersService) Discard(ctx context.Context, instruction any) (any, error) {
	return s.client.post(ctx, "/api/v1/supervise/roster/discard", instruction)
}

// AvailableForSwap returns the shifts the roster can be swapped with.
func (s *RostersService) AvailableForSwap(ctx context.Context, id int) (any, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/supervise/roster/%d/swap", id))
}

// Recommendations returns employee recommendations for filling a roster.
func (s *RostersService) Recommendations(ctx context.Context, id int) (any, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/supervise/getrecommendation/%d", id))
}
