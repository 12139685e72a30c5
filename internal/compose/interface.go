// Where: internal/compose/interface.go
// What: High-level facade for working with docker compose.
// Why: Give the rest of the application one seam for stack lifecycle and
// discovery.
package compose

import (
	"context"
	"time"
)

// ForceStop is the timeout value requesting a stop without a graceful
// shutdown wait.
const ForceStop time.Duration = 0

// DockerCompose provides a high-level API to work with docker compose.
// Every operation delegates to the external tool; failures surface as
// wrapped errors from the command runner, uncategorized.
type DockerCompose interface {
	// Up creates and starts services, blocking until all containers are
	// started and healthy. Extra arguments are passed to the up subcommand.
	Up(ctx context.Context, logLevel LogLevel, arguments ...string) error

	// Down stops and removes any running services. ForceStop stops without
	// waiting for graceful shutdown.
	Down(ctx context.Context, timeout time.Duration, arguments ...string) error

	// Start starts previously created services, blocking until they run.
	Start(ctx context.Context, logLevel LogLevel, arguments ...string) error

	// Stop stops running services without removing them. ForceStop stops
	// without waiting for graceful shutdown.
	Stop(ctx context.Context, timeout time.Duration, arguments ...string) error

	// HasDefinedServices reports whether any service is defined for the
	// active profiles.
	HasDefinedServices(ctx context.Context) (bool, error)

	// RunningServices returns a snapshot of the currently running services
	// for the active profiles. The slice is empty, never nil, when nothing
	// runs.
	RunningServices(ctx context.Context) ([]RunningService, error)
}

// New creates a DockerCompose for the given compose file, hostname override,
// and active profiles. An empty hostname is deduced from the Docker daemon
// endpoint.
func New(file *File, hostname string, activeProfiles []string) (DockerCompose, error) {
	return NewWithOptions(hostname, NewOptions(file, activeProfiles, nil))
}

// NewWithOptions creates a DockerCompose from pre-built options.
func NewWithOptions(hostname string, options Options) (DockerCompose, error) {
	cli, err := NewDockerCli(ExecRunner{}, options)
	if err != nil {
		return nil, err
	}
	docker, err := NewDockerClient()
	if err != nil {
		return nil, err
	}
	return newDockerCompose(cli, docker, hostname)
}
