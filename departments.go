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

// DepartmentsService wraps the department (operational unit) endpoints.
type DepartmentsService struct {
	client *Client
}

// List returns all departments.
func (s *DepartmentsService) List(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/supervise/department")
}

// Create adds a new department.
func (s *DepartmentsService) Create(ctx context.Context, department any) (any, error) {
	return s.client.put(ctx, "/api/v1/supervise/department", department)
}

// CreateMultiple adds several departments in one call.
func (s *DepartmentsService) CreateMultiple(ctx context.Context, departments any) (any, error) {
	return s.client.put(ctx, "/api/v1/supervise/department/bulk", departments)
}

// Update modifies an existing department.
func (s *DepartmentsService) Update(ctx context.Context, id int, department any) (any, error) {
	return s.client.post(ctx, fmt.Sprintf("/api/v1/supervise/department/%d", id), department)
}

// Delete removes a department.
func (s *DepartmentsService) Delete(ctx context.Context, id int) (any, error) {
	return s.client.delete(ctx, fmt.Sprintf("/api/v1/supervise/department/%d", id))
}

// Query runs a structured search over departments. The search value is
// passed through as the request body.
func (s *DepartmentsService) Query(ctx context.Context, search any) (any, error) {
	return s.client.post(ctx, "/api/v1/resource/OperationalUnit/QUERY", search)
}
