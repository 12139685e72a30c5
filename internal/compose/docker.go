// Where: internal/compose/docker.go
// What: Docker SDK client seam and host deduction.
// Why: Provide scoped inspection for running-service snapshots.
package compose

import (
	"context"
	"net/url"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
)

const (
	composeProjectLabel = "com.docker.compose.project"
	composeServiceLabel = "com.docker.compose.service"
)

// DockerClient defines the subset of Docker SDK methods used by this package.
// This interface enables mocking the Docker client in tests.
type DockerClient interface {
	ContainerInspect(ctx context.Context, containerID string) (container.InspectResponse, error)
	DaemonHost() string
}

// NewDockerClient constructs a Docker SDK client using environment defaults.
func NewDockerClient() (DockerClient, error) {
	return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
}

// deduceHost derives the hostname services are reachable on from the daemon
// endpoint: the host part for tcp endpoints, 127.0.0.1 for local sockets.
func deduceHost(daemonHost string) string {
	parsed, err := url.Parse(daemonHost)
	if err != nil {
		return "127.0.0.1"
	}
	switch parsed.Scheme {
	case "tcp", "http", "https":
		if host := parsed.Hostname(); host != "" {
			return host
		}
	}
	return "127.0.0.1"
}

// serviceLabel returns the compose service name recorded on a container.
func serviceLabel(labels map[string]string) string {
	if labels == nil {
		return ""
	}
	return labels[composeServiceLabel]
}

// containerName strips the leading slash the engine prepends to names.
func containerName(name string) string {
	return strings.TrimPrefix(name, "/")
}
