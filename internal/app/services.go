// Where: internal/app/services.go
// What: Defined-service listing and compose file validation.
// Why: Surface topology introspection without starting anything.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/launchbay/stackctl/internal/compose"
	"github.com/launchbay/stackctl/internal/definition"
	"github.com/launchbay/stackctl/internal/ui"
)

// runServices executes the 'services' command which lists the services
// defined for the active profiles.
func runServices(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.NewCli == nil || deps.LoadDefinition == nil {
		fmt.Fprintln(out, "services: not implemented")
		return 1
	}

	settings, err := resolveSettings(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	invoker, err := deps.NewCli(compose.NewOptions(settings.file, settings.profiles, nil))
	if err != nil {
		return exitWithError(out, err)
	}

	def, err := deps.LoadDefinition(invoker)
	if err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	if !def.HasServices() {
		console.Info("No services defined for the active profiles")
		return 0
	}

	console.Header("Defined services:")
	for _, name := range def.ServiceNames() {
		service := def.Services[name]
		if service.Image != "" {
			console.Item(name, service.Image)
		} else {
			console.ItemPlain(name)
		}
	}
	return 0
}

// runValidate executes the 'validate' command which checks the compose file
// against the embedded schema.
func runValidate(cli CLI, deps Dependencies, out io.Writer) int {
	settings, err := resolveSettings(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}
	if settings.file == nil {
		fmt.Fprintln(out, "validate: no compose file found")
		return 1
	}

	for _, path := range settings.file.Paths() {
		if err := definition.ValidateFile(path); err != nil {
			return exitWithError(out, err)
		}
	}

	ui.New(out).Success("Compose file is valid")
	return 0
}

// loadDefinition is the production LoadDefinition dependency.
func loadDefinition(cli *compose.DockerCli) (*definition.Definition, error) {
	return definition.Load(context.Background(), cli)
}
