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

package servertime

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tombee/workforce/internal/commands/shared"
)

// NewTimeCommand creates the 'time' command.
func NewTimeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "time [location-id]",
		Short: "Show the server time",
		Long: `Fetch the server's current time.

With a location ID, shows the current local time at that location.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewClient()
			if err != nil {
				return err
			}

			var result any
			if len(args) == 1 {
				locationID, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				result, err = client.Utility.LocationTime(cmd.Context(), locationID)
				if err != nil {
					return err
				}
			} else {
				result, err = client.Utility.Time(cmd.Context())
				if err != nil {
					return err
				}
			}

			return shared.PrintJSON(cmd.OutOrStdout(), result)
		},
	}
}
