// Where: internal/app/di.go
// What: Default dependency wiring.
// Why: Keep production construction in one place so main stays trivial.
package app

import (
	"os"
	"strings"

	"github.com/launchbay/stackctl/internal/compose"
	"github.com/launchbay/stackctl/internal/constants"
	"github.com/launchbay/stackctl/internal/envutil"
	"github.com/launchbay/stackctl/internal/interaction"
)

// DefaultDependencies returns the production dependency wiring.
func DefaultDependencies() Dependencies {
	return Dependencies{
		Out:            os.Stdout,
		WorkingDir:     ".",
		NewCompose:     compose.New,
		NewCli:         newDockerCli,
		LoadDefinition: loadDefinition,
		Prompter:       interaction.HuhPrompter{},
		Confirm:        interaction.PromptYesNo,
		Interactive:    interactiveDefault,
	}
}

func newDockerCli(options compose.Options) (*compose.DockerCli, error) {
	return compose.NewDockerCli(compose.ExecRunner{}, options)
}

// interactiveDefault honors the INTERACTIVE env override, then falls back to
// TTY detection.
func interactiveDefault() bool {
	if value := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixInteractive)); value != "" {
		return value != "0" && !strings.EqualFold(value, "false")
	}
	return interaction.IsTerminal(os.Stdin) && interaction.IsTerminal(os.Stdout)
}
