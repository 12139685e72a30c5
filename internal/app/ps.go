// Where: internal/app/ps.go
// What: Running service listing.
// Why: Re-expose the facade's running-service snapshot on the console.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/launchbay/stackctl/internal/compose"
	"github.com/launchbay/stackctl/internal/ui"
)

// runPs executes the 'ps' command which prints a snapshot of the running
// services for the active profiles.
func runPs(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.NewCompose == nil {
		fmt.Fprintln(out, "ps: not implemented")
		return 1
	}

	facade, err := buildCompose(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	services, err := facade.RunningServices(context.Background())
	if err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	if len(services) == 0 {
		console.Info("No services running")
		return 0
	}

	console.Header("Running services:")
	for _, service := range services {
		console.Item(service.Service, describeService(service))
	}
	return 0
}

func describeService(service compose.RunningService) string {
	var parts []string
	parts = append(parts, service.Image.String())
	for _, port := range service.Ports.All() {
		parts = append(parts, fmt.Sprintf("%s:%d->%d", service.Host, service.Ports.Get(port), port))
	}
	return strings.Join(parts, "  ")
}
