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

package config

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tombee/workforce/internal/commands/shared"
	"github.com/tombee/workforce/internal/config"
	"github.com/tombee/workforce/internal/credentials"
)

// NewConfigCommand creates the config command with subcommands.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View and manage configuration",
		Long: `View and manage workforce configuration.

Subcommands:
  show          - Display current configuration
  path          - Show config file location
  set-url       - Set the API endpoint
  set-token     - Store the access token in the system keychain
  delete-token  - Remove the stored access token`,
	}

	cmd.AddCommand(newShowCommand())
	cmd.AddCommand(newPathCommand())
	cmd.AddCommand(newSetURLCommand())
	cmd.AddCommand(newSetTokenCommand())
	cmd.AddCommand(newDeleteTokenCommand())

	// If no subcommand provided, default to 'show'
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return newShowCommand().RunE(cmd, args)
	}

	return cmd
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := shared.ConfigFilePath()
			if err != nil {
				return err
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			tokenState := "not set"
			if _, err := credentials.Token(); err == nil {
				tokenState = "stored"
			}

			fmt.Fprintf(cmd.OutOrStdout(), "config:   %s\n", path)
			fmt.Fprintf(cmd.OutOrStdout(), "base_url: %s\n", cfg.BaseURL)
			fmt.Fprintf(cmd.OutOrStdout(), "token:    %s\n", tokenState)
			return nil
		},
	}
}

func newPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := shared.ConfigFilePath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newSetURLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-url <url>",
		Short: "Set the API endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := shared.ConfigFilePath()
			if err != nil {
				return err
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			cfg.BaseURL = strings.TrimRight(args[0], "/")
			if err := config.Save(path, cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "base_url set to %s\n", cfg.BaseURL)
			return nil
		},
	}
}

func newSetTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-token",
		Short: "Store the access token in the system keychain",
		Long: `Store the API access token in the system keychain.

The token is read from stdin without echo. To avoid the keychain
entirely, set the WORKFORCE_TOKEN environment variable instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := readToken(cmd)
			if err != nil {
				return err
			}

			if err := credentials.SetToken(token); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "token stored")
			return nil
		},
	}
}

func newDeleteTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-token",
		Short: "Remove the stored access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := credentials.DeleteToken(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "token removed")
			return nil
		},
	}
}

// readToken reads the token from the terminal without echo, falling back
// to plain line reading when stdin is not a terminal (pipes, CI).
func readToken(cmd *cobra.Command) (string, error) {
	fd := int(syscall.Stdin)
	if term.IsTerminal(fd) {
		fmt.Fprint(cmd.OutOrStdout(), "Access token: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", fmt.Errorf("failed to read token from stdin: %w", err)
	}
	return strings.TrimSpace(line), nil
}
