// Package config handles configuration loading, parsing, and validation
// from defaults, an optional YAML file, a .env file, environment variables
// and command-line flags. It keeps configuration details separate from the
// enrollment logic.
package config
