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

// UtilityService wraps the cross-cutting helper endpoints.
type UtilityService struct {
	client *Client
}

// Time returns the server's current time.
func (s *UtilityService) Time(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/time")
}

// LocationTime returns the current local time at one location.
func (s *UtilityService) LocationTime(ctx context.Context, locationID int) (any, error) {
	return s.client.get(ctx, fmt.Sprintf("/api/v1/time/%d", locationID))
}

// CreateMemo posts a memo to one or more locations.
func (s *UtilityService) CreateMemo(ctx context.Context, memo any) (any, error) {
	return s.client.post(ctx, "/api/v1/supervise/memo", memo)
}

// AddWebhook registers a webhook subscription.
func (s *UtilityService) AddWebhook(ctx context.Context, webhook any) (any, error) {
	return s.client.post(ctx, "/api/v1/resource/Webhook", webhook)
}

// WhoAmI returns the authenticated user.
func (s *UtilityService) WhoAmI(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/me")
}

// Setup returns the account setup state.
func (s *UtilityService) Setup(ctx context.Context) (any, error) {
	return s.client.get(ctx, "/api/v1/my/setup")
}
