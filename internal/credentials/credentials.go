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

// Package credentials stores the API access token in the system keychain.
//
// Supported platforms:
//   - macOS: Keychain Access
//   - Linux: Secret Service API (GNOME Keyring, KWallet)
//   - Windows: Credential Manager
//
// The WORKFORCE_TOKEN environment variable overrides the keychain,
// which keeps CI and containers working without a keyring service.
package credentials

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

const (
	// keychainService is the service name used for keychain entries.
	keychainService = "workforce"

	// tokenKey is the keychain entry holding the access token.
	tokenKey = "access_token"

	// envToken overrides the keychain when set.
	envToken = "WORKFORCE_TOKEN"
)

// ErrNotFound is returned when no token has been stored.
var ErrNotFound = errors.New("no access token stored")

// Token returns the stored access token.
// The WORKFORCE_TOKEN environment variable takes precedence.
func Token() (string, error) {
	if token := os.Getenv(envToken); token != "" {
		return token, nil
	}

	token, err := keyring.Get(keychainService, tokenKey)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("%w: run 'workforce config set-token' or set %s", ErrNotFound, envToken)
		}
		return "", fmt.Errorf("keychain error: %w", err)
	}

	return token, nil
}

// SetToken stores the access token in the system keychain.
func SetToken(token string) error {
	if token == "" {
		return errors.New("token must be non-empty")
	}

	if err := keyring.Set(keychainService, tokenKey, token); err != nil {
		return fmt.Errorf("keychain error: %w", err)
	}

	return nil
}

// DeleteToken removes the stored access token.
func DeleteToken() error {
	if err := keyring.Delete(keychainService, tokenKey); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("keychain error: %w", err)
	}

	return nil
}
