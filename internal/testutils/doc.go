// Package testutils provides standardized helpers shared by the test suites.
//
// Helper functions follow these naming conventions:
//   - SetupEnv: Configure environment variables for one test
//   - CreateTemp*: Create temporary files that are removed with the test
//   - Write*/Read*: Prepare and inspect record files in a data directory
//
// Every helper takes the *testing.T and fails the test on error, so callers
// never check errors themselves.
package testutils
