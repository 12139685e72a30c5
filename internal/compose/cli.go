// Where: internal/compose/cli.go
// What: Thin wrapper around the docker compose command line.
// Why: Keep argument construction consistent across subcommands.
package compose

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DockerCli invokes docker compose subcommands with a fixed set of Options
// applied before each one. It owns no state beyond its configuration and is
// safe for sequential reuse.
type DockerCli struct {
	runner  CommandRunner
	options Options
	dir     string
}

// NewDockerCli creates a DockerCli that runs commands through runner.
// Commands execute in the compose file's directory when a file is set.
func NewDockerCli(runner CommandRunner, options Options) (*DockerCli, error) {
	if runner == nil {
		return nil, errCommandRunnerNil
	}
	return &DockerCli{
		runner:  runner,
		options: options,
		dir:     options.ComposeFile().Dir(),
	}, nil
}

// Options returns the options applied before every subcommand.
func (c *DockerCli) Options() Options {
	return c.options
}

// composeArgs builds the argument prefix shared by all subcommands:
// compose [-f file]... [--profile name]... [extra]...
func (c *DockerCli) composeArgs() []string {
	args := []string{"compose"}
	for _, path := range c.options.ComposeFile().Paths() {
		args = append(args, "-f", path)
	}
	for _, profile := range c.options.ActiveProfiles() {
		args = append(args, "--profile", profile)
	}
	args = append(args, c.options.Arguments()...)
	return args
}

func (c *DockerCli) run(ctx context.Context, logLevel LogLevel, args []string) error {
	if logLevel.Streams() {
		return c.runner.Run(ctx, c.dir, "docker", args...)
	}
	return c.runner.RunQuiet(ctx, c.dir, "docker", args...)
}

// Up creates and starts services, waiting until containers are started and
// healthy. Extra arguments are appended to the up subcommand verbatim.
func (c *DockerCli) Up(ctx context.Context, logLevel LogLevel, arguments []string) error {
	args := append(c.composeArgs(), "up", "--no-color", "--detach", "--wait")
	args = append(args, arguments...)
	return c.run(ctx, logLevel, args)
}

// Start starts previously created services.
func (c *DockerCli) Start(ctx context.Context, logLevel LogLevel, arguments []string) error {
	args := append(c.composeArgs(), "start")
	args = append(args, arguments...)
	return c.run(ctx, logLevel, args)
}

// Down stops and removes services. A zero timeout requests a forced stop
// with no graceful shutdown wait.
func (c *DockerCli) Down(ctx context.Context, timeout time.Duration, arguments []string) error {
	args, err := stopArgs(c.composeArgs(), "down", timeout, arguments)
	if err != nil {
		return err
	}
	return c.run(ctx, LogLevelOff, args)
}

// Stop stops services without removing them. A zero timeout requests a
// forced stop with no graceful shutdown wait.
func (c *DockerCli) Stop(ctx context.Context, timeout time.Duration, arguments []string) error {
	args, err := stopArgs(c.composeArgs(), "stop", timeout, arguments)
	if err != nil {
		return err
	}
	return c.run(ctx, LogLevelOff, args)
}

func stopArgs(base []string, subcommand string, timeout time.Duration, arguments []string) ([]string, error) {
	if timeout < 0 {
		return nil, errNegativeTimeout
	}
	args := append(base, subcommand, "--timeout", strconv.Itoa(int(timeout/time.Second)))
	return append(args, arguments...), nil
}

// ConfigServices returns the service names defined for the active profiles.
func (c *DockerCli) ConfigServices(ctx context.Context) ([]string, error) {
	output, err := c.runner.RunOutput(ctx, c.dir, "docker", append(c.composeArgs(), "config", "--services")...)
	if err != nil {
		return nil, err
	}
	var services []string
	for _, line := range strings.Split(string(output), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			services = append(services, trimmed)
		}
	}
	return services, nil
}

// Config returns the canonical configuration for the active profiles as
// rendered by the compose tool.
func (c *DockerCli) Config(ctx context.Context) ([]byte, error) {
	return c.runner.RunOutput(ctx, c.dir, "docker", append(c.composeArgs(), "config")...)
}

// PsEntry is one row of docker compose ps output.
type PsEntry struct {
	ID      string `json:"ID"`
	Name    string `json:"Name"`
	Image   string `json:"Image"`
	Service string `json:"Service"`
	State   string `json:"State"`
	Health  string `json:"Health"`
}

// Ps lists the containers of the project, including stopped ones.
func (c *DockerCli) Ps(ctx context.Context) ([]PsEntry, error) {
	output, err := c.runner.RunOutput(ctx, c.dir, "docker", append(c.composeArgs(), "ps", "--all", "--format", "json")...)
	if err != nil {
		return nil, err
	}
	return parsePs(output)
}

// parsePs accepts both output shapes of docker compose ps --format json:
// a JSON array (older releases) and newline-delimited objects.
func parsePs(output []byte) ([]PsEntry, error) {
	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var entries []PsEntry
		if err := json.Unmarshal([]byte(trimmed), &entries); err != nil {
			return nil, fmt.Errorf("parse compose ps output: %w", err)
		}
		return entries, nil
	}
	var entries []PsEntry
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var entry PsEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, fmt.Errorf("parse compose ps output: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
