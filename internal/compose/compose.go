// Where: internal/compose/compose.go
// What: Default DockerCompose implementation.
// Why: Pass lifecycle calls through to the CLI and enrich query results with
// Docker SDK inspection.
package compose

import (
	"context"
	"fmt"
	"time"
)

type dockerCompose struct {
	cli      *DockerCli
	docker   DockerClient
	hostname string
}

func newDockerCompose(cli *DockerCli, docker DockerClient, hostname string) (*dockerCompose, error) {
	if cli == nil {
		return nil, errCommandRunnerNil
	}
	if docker == nil {
		return nil, errDockerClientNil
	}
	return &dockerCompose{cli: cli, docker: docker, hostname: hostname}, nil
}

func (d *dockerCompose) Up(ctx context.Context, logLevel LogLevel, arguments ...string) error {
	return d.cli.Up(ctx, logLevel, arguments)
}

func (d *dockerCompose) Down(ctx context.Context, timeout time.Duration, arguments ...string) error {
	return d.cli.Down(ctx, timeout, arguments)
}

func (d *dockerCompose) Start(ctx context.Context, logLevel LogLevel, arguments ...string) error {
	return d.cli.Start(ctx, logLevel, arguments)
}

func (d *dockerCompose) Stop(ctx context.Context, timeout time.Duration, arguments ...string) error {
	return d.cli.Stop(ctx, timeout, arguments)
}

func (d *dockerCompose) HasDefinedServices(ctx context.Context) (bool, error) {
	services, err := d.cli.ConfigServices(ctx)
	if err != nil {
		return false, err
	}
	return len(services) > 0, nil
}

func (d *dockerCompose) RunningServices(ctx context.Context) ([]RunningService, error) {
	entries, err := d.cli.Ps(ctx)
	if err != nil {
		return nil, err
	}

	host := d.hostname
	if host == "" {
		host = deduceHost(d.docker.DaemonHost())
	}

	services := make([]RunningService, 0, len(entries))
	for _, entry := range entries {
		if !isRunning(entry.State) {
			continue
		}
		inspect, err := d.docker.ContainerInspect(ctx, entry.ID)
		if err != nil {
			return nil, fmt.Errorf("inspect container %s: %w", entry.ID, err)
		}
		services = append(services, newRunningService(entry, inspect, host))
	}
	return services, nil
}

// isRunning mirrors the states the compose tool treats as active.
func isRunning(state string) bool {
	return state == "running" || state == "restarting"
}
