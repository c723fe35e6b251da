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

package employee

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tombee/workforce/internal/commands/shared"
)

// NewEmployeeCommand creates the employee command with subcommands.
func NewEmployeeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Inspect employee records",
	}

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newGetCommand())

	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := shared.NewClient()
			if err != nil {
				return err
			}

			employees, err := client.Employees.List(cmd.Context())
			if err != nil {
				return err
			}

			return shared.PrintJSON(cmd.OutOrStdout(), employees)
		},
	}
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}

			client, err := shared.NewClient()
			if err != nil {
				return err
			}

			employee, err := client.Employees.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			return shared.PrintJSON(cmd.OutOrStdout(), employee)
		},
	}
}
