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

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tombee/workforce"
	"github.com/tombee/workforce/internal/cli"
)

// Version information (injected via ldflags at build time)
var version = "dev"

func main() {
	root := cli.NewRootCommand(version)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps API error variants to distinct exit codes so scripts can
// branch on the failure class.
func exitCode(err error) int {
	var (
		apiErr        *workforce.APIError
		httpErr       *workforce.HTTPError
		rateErr       *workforce.RateLimitError
		parseErr      *workforce.ParseError
		validationErr *workforce.ValidationError
	)

	switch {
	case errors.As(err, &validationErr):
		return 2
	case errors.As(err, &rateErr):
		return 3
	case errors.As(err, &apiErr):
		return 4
	case errors.As(err, &parseErr):
		return 5
	case errors.As(err, &httpErr):
		return 6
	default:
		return 1
	}
}
