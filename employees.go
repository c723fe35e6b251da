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

// EmployeesService wraps the employee management endpoints.
type EmployeesService struct {
	client *Client
}

// List returns all employees visible to the authenticated user.
func (s *EmployeesService) List(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/supervise/employee")
}

// Get returns one employee by id.
func (s *EmployeesService) Get(ctx context.Context, id int) (any, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/supervise/employee/%d", id))
}

// Create adds a new employee.
func (s *EmployeesService) Create(ctx context.Context, employee any) (any, error) {
	return s.client.post(ctx, "/api/v1/supervise/employee", employee)
}

// Update modifies an existing employee.
func (s *EmployeesService) Update(ctx context.Context, id int, employee any) (any, error) {
	return s.client.post(ctx, fmt.Sprintf("/api/v1/supervise/employee/%d", id), employee)
}

// AddLocation associates the employee with a location.
func (s *EmployeesService) AddLocation(ctx context.Context, id, locationID int) (any, error) {
	return s.client.post(ctx, fmt.Sprintf("/api/v1/supervise/employee/%d/assoc/%d", id, locationID), nil)
}

// RemoveLocation removes the employee's association with a location.
func (s *EmployeesService) RemoveLocation(ctx context.Context, id, locationID int) (any, error) {
	return s.client.post(ctx, fmt.Sprintf("/api/v1/supervise/employee/%d/unassoc/%d", id, locationID), nil)
}

// Terminate ends the employee's employment.
func (s *EmployeesService) Terminate(ctx context.Context, id int) (any, error) {
	return s.client.post(ctx, fmt.Sprintf("/api/v1/supervise/employee/%d/terminate", id), nil)
}

// Reactivate restores a terminated employee.
func (s *EmployeesService) Reactivate(ctx context.Context, id int) (any, error) {
	return s.client.post(ctx, fmt.Sprintf("/api/v1/supervise/employee/%d/activate", id), nil)
}

// Delete removes the employee's account.
func (s *EmployeesService) Delete(ctx context.Context, id int) (any, error) {
	return s.client.delete(ctx, fmt.Sprintf("/api/v1/supervise/employee/%d/delete", id))
}

// Invite sends the employee an invitation to log in.
func (s *EmployeesService) Invite(ctx context.Context, id int) (any, error) {
	return s.client.post(ctx, fmt.Sprintf("/api/v1/supervise/employee/%d/invite", id), nil)
}

// SetAward assigns a pay award from the award library.
func (s *EmployeesService) SetAward(ctx context.Context, id int, award any) (any, error) {
	return s.client.post(ctx, fmt.Sprintf("/api/v1/supervise/employee/%d/setAwardFromLibrary", id), award)
}

// ShiftInfo returns the employee's current shift state.
func (s *EmployeesService) ShiftInfo(ctx context.Context, id int) (any, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/supervise/empshiftinfo/%d", id))
}

// Leave returns the employee's leave records.
func (s *EmployeesService) Leave(ctx context.Context, id int) (any, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/supervise/leave/%d", id))
}

// AddLeave creates a leave record.
func (s *EmployeesService) AddLeave(ctx context.Context, leave any) (any, error) {
	return s.client.post(ctx, "/api/v1/supervise/leave", leave)
}

// Unavailability returns the employee's unavailability records.
func (s *EmployeesService) Unavailability(ctx context.Context, id int) (any, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/supervise/unavail/%d", id))
}

// AddUnavailability creates an unavailability record.
func (s *EmployeesService) AddUnavailability(ctx context.Context, unavailability any) (any, error) {
	return s.client.post(ctx, "/api/v1/supervise/unavail", unavailability)
}

// AddJournal appends a journal entry to an employee's record.
func (s *EmployeesService) AddJournal(ctx context.Context, entry any) (any, error) {
	return s.client.post(ctx, "/api/v1/supervise/journal", entry)
}

// AgreedHours returns the employee's agreed working hours.
func (s *EmployeesService) AgreedHours(ctx context.Context, id int) (any, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/supervise/agreedhour/%d", id))
}
