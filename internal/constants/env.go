// Where: internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

const (
	// Stack Configuration
	EnvComposeFile = "STACKCTL_COMPOSE_FILE"
	EnvProfiles    = "STACKCTL_PROFILES"
	EnvHostname    = "STACKCTL_HOSTNAME"
	EnvConfigPath  = "STACKCTL_CONFIG_PATH"
	EnvConfigHome  = "STACKCTL_CONFIG_HOME"
	EnvInteractive = "STACKCTL_INTERACTIVE"

	// Host env suffixes resolved through envutil.
	HostSuffixComposeFile = "COMPOSE_FILE"
	HostSuffixProfiles    = "PROFILES"
	HostSuffixHostname    = "HOSTNAME"
	HostSuffixConfigPath  = "CONFIG_PATH"
	HostSuffixConfigHome  = "CONFIG_HOME"
	HostSuffixInteractive = "INTERACTIVE"

	// Docker Configuration
	EnvDockerHost = "DOCKER_HOST"
)
