// Package constants holds process-wide fixed values shared across
// packages that must not import each other.
package constants

const (
	// ServiceName identifies this binary in logs and telemetry.
	ServiceName = "dealdesk_backend"

	// ConfigName and ConfigFormat locate the viper config file
	// (config.yaml in the configured search path).
	ConfigName   = "config"
	ConfigFormat = "yaml"

	// DefaultConfigPath is where the binary looks for config.yaml when
	// no --config flag is given.
	DefaultConfigPath = "."
)
