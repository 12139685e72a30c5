// Where: internal/app/down.go
// What: Down and stop command handlers.
// Why: Centralize shutdown semantics including the force-stop path.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/launchbay/stackctl/internal/compose"
	"github.com/launchbay/stackctl/internal/ui"
)

// runDown executes the 'down' command which stops and removes services.
// With --volumes it asks for confirmation first unless --yes was given.
func runDown(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.NewCompose == nil {
		fmt.Fprintln(out, "down: not implemented")
		return 1
	}

	var arguments []string
	if cli.Down.Volumes {
		if !cli.Down.Yes && deps.Confirm != nil {
			confirmed, err := deps.Confirm("Remove named volumes? Data will be lost")
			if err != nil {
				return exitWithError(out, err)
			}
			if !confirmed {
				fmt.Fprintln(out, "Aborted")
				return 1
			}
		}
		arguments = append(arguments, "--volumes")
	}

	facade, err := buildCompose(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	timeout := downTimeout(cli.Down.Timeout, cli.Down.Force)
	if err := facade.Down(context.Background(), timeout, arguments...); err != nil {
		return exitWithError(out, err)
	}

	ui.New(out).Success("Down complete")
	return 0
}

// runStop executes the 'stop' command which stops services while keeping
// containers, networks, and volumes in place.
func runStop(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.NewCompose == nil {
		fmt.Fprintln(out, "stop: not implemented")
		return 1
	}

	facade, err := buildCompose(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	timeout := downTimeout(cli.Stop.Timeout, cli.Stop.Force)
	if err := facade.Stop(context.Background(), timeout); err != nil {
		return exitWithError(out, err)
	}

	ui.New(out).Success("Stop complete")
	return 0
}

func downTimeout(timeout time.Duration, force bool) time.Duration {
	if force {
		return compose.ForceStop
	}
	return timeout
}
