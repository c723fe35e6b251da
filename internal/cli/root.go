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

// Package cli assembles the workforce command tree.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	configcmd "github.com/tombee/workforce/internal/commands/config"
	"github.com/tombee/workforce/internal/commands/employee"
	"github.com/tombee/workforce/internal/commands/me"
	"github.com/tombee/workforce/internal/commands/servertime"
	"github.com/tombee/workforce/internal/commands/shared"
	"github.com/tombee/workforce/internal/log"
)

// NewRootCommand creates the root Cobra command.
func NewRootCommand(version string) *cobra.Command {
	var (
		configPath string
		baseURL    string
	)

	cmd := &cobra.Command{
		Use:   "workforce",
		Short: "Query a workforce management API",
		Long: `workforce is a command-line client for a workforce management API.

It covers the employee, location, roster, and timesheet endpoints and
prints raw JSON responses for piping into jq or scripts.

Run 'workforce config set-url' and 'workforce config set-token' to get
started.`,
		Version:       version,
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves for proper exit codes
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(log.New(log.FromEnv()))
			shared.SetConfigPath(configPath)
			shared.SetBaseURL(baseURL)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/workforce/config.yaml)")
	cmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API endpoint (overrides the config file)")

	cmd.AddCommand(configcmd.NewConfigCommand())
	cmd.AddCommand(me.NewMeCommand())
	cmd.AddCommand(servertime.NewTimeCommand())
	cmd.AddCommand(employee.NewEmployeeCommand())

	return cmd
}
