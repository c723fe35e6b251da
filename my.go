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

// MyService wraps the authenticated user's own-resource endpoints.
type MyService struct {
	client *Client
}

// Me returns the authenticated user.
func (s *MyService) Me(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/me")
}

// Setup returns the authenticated user's account setup state.
func (s *MyService) Setup(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/my/setup")
}

// Locations returns the locations the user works at.
func (s *MyService) Locations(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/my/location")
}

// Location returns one of the user's locations by id.
func (s *MyService) Location(ctx context.Context, id int) (any, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/my/location/%d", id))
}

// ContactAddresses returns all of the user's contact addresses.
func (s *MyService) ContactAddresses(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/my/contactaddress")
}

// ContactAddress returns one of the user's contact addresses by id.
func (s *MyService) ContactAddress(ctx context.Context, id int) (any, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/my/contactaddress/%d", id))
}

// UpdateContactAddress modifies one of the user's contact addresses.
func (s *MyService) UpdateContactAddress(ctx context.Context, id int, address any) (any, error) {
	return s.client.post(ctx, fmt.Sprintf("/api/v1/my/contactaddress/%d", id), address)
}

// Colleagues returns the people the user works with.
func (s *MyService) Colleagues(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/my/colleague")
}

// Rosters returns the user's upcoming rosters.
func (s *MyService) Rosters(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/my/roster")
}

// Leave returns the user's leave records.
func (s *MyService) Leave(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/my/leave")
}

// Unavailability returns the user's unavailability records.
func (s *MyService) Unavailability(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/my/unavail")
}

// Notifications returns the user's pending notifications.
func (s *MyService) Notifications(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/my/notification")
}

// Training returns the user's training records.
func (s *MyService) Training(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/my/training")
}

// Memos returns the memos addressed to the user.
func (s *MyService) Memos(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/my/memo")
}

// Tasks returns the user's open tasks.
func (s *MyService) Tasks(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/my/tasks")
}

// CompleteTask marks one of the user's tasks as done.
func (s *MyService) CompleteTask(ctx context.Context, id int) (any, error) {
	return s.client.post(ctx, fmt.Sprintf("/api/v1/my/tasks/%d/do", id), nil)
}

// Timesheets returns the user's timesheets.
func (s *MyService) Timesheets(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/my/timesheets")
}

// TimesheetDetail returns the full detail view of one of the user's
// timesheets.
func (s *MyService) TimesheetDetail(ctx context.Context, id int) (any, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/my/timesheets/%d/detail", id))
}
