package testutils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupEnv sets environment variables for the duration of the test.
// An empty value unsets the variable. The previous values are restored
// automatically when the test finishes.
func SetupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	for name, value := range envVars {
		t.Setenv(name, value)
		if value == "" {
			require.NoError(t, os.Unsetenv(name), "Failed to unset environment variable %s", name)
		}
	}
}
