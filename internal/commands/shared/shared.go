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

// Package shared holds helpers used by all CLI subcommands.
package shared

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/tombee/workforce"
	"github.com/tombee/workforce/internal/config"
	"github.com/tombee/workforce/internal/credentials"
)

// Global flag values, set by the root command.
var (
	configPath string
	baseURL    string
)

// SetConfigPath records the --config flag value.
func SetConfigPath(path string) { configPath = path }

// SetBaseURL records the --base-url flag value.
func SetBaseURL(url string) { baseURL = url }

// ConfigFilePath returns the effective config file path, preferring
// the --config flag over the default location.
func ConfigFilePath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.ConfigPath()
}

// LoadConfig loads the CLI configuration from the effective path.
func LoadConfig() (*config.Config, error) {
	path, err := ConfigFilePath()
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// NewClient builds an API client from the configuration and the stored
// access token. The --base-url flag overrides the configured endpoint.
func NewClient() (*workforce.Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	endpoint := cfg.BaseURL
	if baseURL != "" {
		endpoint = baseURL
	}
	if endpoint == "" {
		return nil, fmt.Errorf("no API endpoint configured: pass --base-url or set base_url in the config file")
	}

	token, err := credentials.Token()
	if err != nil {
		return nil, err
	}

	var opts []workforce.Option
	if cfg.Timeout > 0 {
		opts = append(opts, workforce.WithTimeout(time.Duration(cfg.Timeout)*time.Second))
	}

	return workforce.New(endpoint, token, opts...)
}

// PrintJSON writes v to w as indented JSON.
func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
