// Package auth resolves the API key for an invocation.
package auth

import (
	"errors"
	"fmt"
	"os"
)

// EnvAPIKey is the environment variable consulted when no flag is given.
const EnvAPIKey = "HEVY_API_KEY"

// ErrMissingCredential means no API key was found anywhere.
var ErrMissingCredential = errors.New("missing credential")

// Resolve returns the API key, checking in order: the explicit flag value,
// the HEVY_API_KEY environment variable, then the config file value. The
// key is never logged.
func Resolve(flagValue, configValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		return v, nil
	}
	if configValue != "" {
		return configValue, nil
	}
	return "", fmt.Errorf("%w: pass --api-key, set %s, or add api_key to the config file", ErrMissingCredential, EnvAPIKey)
}
