// Where: internal/app/up.go
// What: Up and start command handlers.
// Why: Keep lifecycle orchestration consistent and testable.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/launchbay/stackctl/internal/compose"
	"github.com/launchbay/stackctl/internal/ui"
)

func buildCompose(cli CLI, deps Dependencies) (compose.DockerCompose, error) {
	settings, err := resolveSettings(cli, deps)
	if err != nil {
		return nil, err
	}
	return deps.NewCompose(settings.file, settings.hostname, settings.profiles)
}

// runUp executes the 'up' command which creates and starts all services and
// blocks until they are started and healthy.
func runUp(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.NewCompose == nil {
		fmt.Fprintln(out, "up: not implemented")
		return 1
	}

	facade, err := buildCompose(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	logLevel := compose.ParseLogLevel(cli.LogLevel)
	if err := facade.Up(context.Background(), logLevel, cli.Up.Arguments...); err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	console.Success("Up complete")
	console.ItemPlain(fmt.Sprintf("%s ps      # List running services", "stackctl"))
	console.ItemPlain(fmt.Sprintf("%s down    # Stop and remove the stack", "stackctl"))
	return 0
}

// runStart executes the 'start' command which starts previously created
// services without recreating them.
func runStart(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.NewCompose == nil {
		fmt.Fprintln(out, "start: not implemented")
		return 1
	}

	facade, err := buildCompose(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	logLevel := compose.ParseLogLevel(cli.LogLevel)
	if err := facade.Start(context.Background(), logLevel, cli.Start.Arguments...); err != nil {
		return exitWithError(out, err)
	}

	ui.New(out).Success("Start complete")
	return 0
}
