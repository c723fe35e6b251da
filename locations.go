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

// LocationsService wraps the location (company) endpoints.
type LocationsService struct {
	client *Client
}

// List returns all locations.
func (s *LocationsService) List(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/supervise/company")
}

// ListSimplified returns a reduced representation of all locations.
func (s *LocationsService) ListSimplified(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/supervise/company/simplified")
}

// Get returns one location by id.
func (s *LocationsService) Get(ctx context.Context, id int) (any, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/supervise/company/%d", id))
}

// Create adds a new location.
func (s *LocationsService) Create(ctx context.Context, location any) (any, error) {
	return s.client.put(ctx, "/api/v1/supervise/company", location)
}

// CreateWorkplace provisions a new workplace for the account.
func (s *LocationsService) CreateWorkplace(ctx context.Context, workplace any) (any, error) {
	return s.client.post(ctx, "/api/v1/my/setup/addNewWorkplace", workplace)
}

// Update modifies an existing location.
func (s *LocationsService) Update(ctx context.Context, id int, location any) (any, error) {
	return s.client.post(ctx, fmt.Sprintf("/api/v1/supervise/company/%d", id), location)
}

// Settings returns the settings of one location.
func (s *LocationsService) Settings(ctx context.Context, id int) (any, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/supervise/company/%d/settings", id))
}

// UpdateSettings modifies the settings of one location.
func (s *LocationsService) UpdateSettings(ctx context.Context, id int, settings any) (any, error) {
	return s.client.post(ctx, fmt.Sprintf("/api/v1/supervise/company/%d/settings", id), settings)
}

// AllSettings returns the settings of every location.
func (s *LocationsService) AllSettings(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/supervise/company/settings")
}

// UpdateAllSettings modifies the settings of every location at once.
func (s *LocationsService) UpdateAllSettings(ctx context.Context, settings any) (any, error) {
	return s.client.post(ctx, "/api/v1/supervise/company/settings", settings)
}

// Archive archives a location.
func (s *LocationsService) Archive(ctx context.Context, id int) (any, error) {
	return s.client.post(ctx, fmt.Sprintf("/api/v1/supervise/company/%d/archive", id), nil)
}

// Delete removes a location.
func (s *LocationsService) Delete(ctx context.Context, id int) (any, error) {
	return s.client.delete(ctx, fmt.Sprintf("/api/v1/supervise/company/%d/delete", id))
}
