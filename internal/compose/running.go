// Where: internal/compose/running.go
// What: Running service snapshot values.
// Why: Re-expose container identity and connection metadata to callers.
package compose

import (
	"sort"
	"strconv"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
)

// ConnectionPorts maps container ports to the host ports they are published
// on. Only TCP and UDP bindings with a numeric host port are included.
type ConnectionPorts map[int]int

// Get returns the host port a container port is published on, or 0.
func (p ConnectionPorts) Get(containerPort int) int {
	return p[containerPort]
}

// All returns the container ports in ascending order.
func (p ConnectionPorts) All() []int {
	ports := make([]int, 0, len(p))
	for port := range p {
		ports = append(ports, port)
	}
	sort.Ints(ports)
	return ports
}

// RunningService is a point-in-time snapshot of one active service instance.
// It is owned by the caller; it does not track the container afterwards.
type RunningService struct {
	// Name is the container name without the engine's leading slash.
	Name string
	// Service is the compose service the container belongs to.
	Service string
	// State is the engine-reported container state.
	State string
	// Host is the hostname the service is reachable on.
	Host string
	// Image identifies the container image.
	Image ImageReference
	// Ports maps container ports to published host ports.
	Ports ConnectionPorts
	// Env holds the container environment.
	Env map[string]string
	// Labels holds the container labels.
	Labels map[string]string
}

// newRunningService builds a snapshot from a ps row and its inspect response.
func newRunningService(entry PsEntry, inspect container.InspectResponse, host string) RunningService {
	service := RunningService{
		Name:    containerName(entry.Name),
		Service: entry.Service,
		State:   entry.State,
		Host:    host,
		Image:   ParseImageReference(entry.Image),
		Ports:   ConnectionPorts{},
		Env:     map[string]string{},
		Labels:  map[string]string{},
	}

	if inspect.Config != nil {
		for _, pair := range inspect.Config.Env {
			key, value, _ := strings.Cut(pair, "=")
			service.Env[key] = value
		}
		for key, value := range inspect.Config.Labels {
			service.Labels[key] = value
		}
		if service.Service == "" {
			service.Service = serviceLabel(inspect.Config.Labels)
		}
		if service.Image.Name == "" {
			service.Image = ParseImageReference(inspect.Config.Image)
		}
	}

	if inspect.NetworkSettings != nil {
		service.Ports = connectionPorts(inspect.NetworkSettings.Ports)
	}

	return service
}

func connectionPorts(portMap nat.PortMap) ConnectionPorts {
	ports := ConnectionPorts{}
	for port, bindings := range portMap {
		if len(bindings) == 0 {
			continue
		}
		hostPort, err := strconv.Atoi(bindings[0].HostPort)
		if err != nil {
			continue
		}
		ports[port.Int()] = hostPort
	}
	return ports
}
