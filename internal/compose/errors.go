// Where: internal/compose/errors.go
// What: Shared error definitions for the compose package.
// Why: Ensure consistent error wrapping without dynamic error creation.
package compose

import "errors"

var (
	errCommandRunnerNil = errors.New("command runner is nil")
	errDockerClientNil  = errors.New("docker client is nil")
	errNoComposeFile    = errors.New("no compose file found")
	errNegativeTimeout  = errors.New("timeout must not be negative")
)
