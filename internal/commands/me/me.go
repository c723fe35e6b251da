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

package me

import (
	"github.com/spf13/cobra"
	"github.com/tombee/workforce/internal/commands/shared"
)

// NewMeCommand creates the 'me' command.
func NewMeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated user",
		Long:  `Fetch and display the record of the user the access token belongs to.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewClient()
			if err != nil {
				return err
			}

			user, err := client.Utility.WhoAmI(cmd.Context())
			if err != nil {
				return err
			}

			return shared.PrintJSON(cmd.OutOrStdout(), user)
		},
	}
}
