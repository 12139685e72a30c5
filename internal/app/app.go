// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/launchbay/stackctl/internal/compose"
	"github.com/launchbay/stackctl/internal/config"
	"github.com/launchbay/stackctl/internal/definition"
	"github.com/launchbay/stackctl/internal/interaction"
	"github.com/launchbay/stackctl/internal/meta"
	"github.com/launchbay/stackctl/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of various subsystems.
type Dependencies struct {
	Out        io.Writer
	WorkingDir string

	// NewCompose builds the lifecycle facade for the resolved settings.
	NewCompose func(file *compose.File, hostname string, profiles []string) (compose.DockerCompose, error)
	// NewCli builds the low-level compose invoker used for introspection.
	NewCli func(options compose.Options) (*compose.DockerCli, error)
	// LoadDefinition renders and decodes the compose configuration.
	LoadDefinition func(cli *compose.DockerCli) (*definition.Definition, error)

	Prompter    interaction.Prompter
	Confirm     func(message string) (bool, error)
	Interactive func() bool
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	File     []string `short:"f" help:"Compose configuration files"`
	Profile  []string `short:"p" help:"Profiles to activate"`
	Hostname string   `help:"Hostname override for running services"`
	EnvFile  string   `name:"env-file" help:"Path to .env file"`
	LogLevel string   `name:"log-level" default:"info" enum:"off,error,info,debug" help:"Progress log level"`

	Up       UpCmd       `cmd:"" passthrough:"" help:"Create and start services"`
	Down     DownCmd     `cmd:"" help:"Stop and remove services"`
	Start    StartCmd    `cmd:"" passthrough:"" help:"Start created services"`
	Stop     StopCmd     `cmd:"" help:"Stop services without removing them"`
	Ps       PsCmd       `cmd:"" help:"List running services"`
	Services ServicesCmd `cmd:"" help:"List defined services"`
	Validate ValidateCmd `cmd:"" help:"Validate the compose file"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

type (
	UpCmd struct {
		Arguments []string `arg:"" optional:"" help:"Extra arguments passed to the up subcommand"`
	}
	StartCmd struct {
		Arguments []string `arg:"" optional:"" help:"Extra arguments passed to the start subcommand"`
	}
	PsCmd       struct{}
	ServicesCmd struct{}
	ValidateCmd struct{}
	VersionCmd  struct{}
)

type DownCmd struct {
	Timeout time.Duration `default:"10s" help:"Graceful shutdown timeout"`
	Force   bool          `help:"Stop without waiting for graceful shutdown"`
	Volumes bool          `short:"v" help:"Remove named volumes"`
	Yes     bool          `short:"y" help:"Skip confirmation prompt for --volumes"`
}

type StopCmd struct {
	Timeout time.Duration `default:"10s" help:"Graceful shutdown timeout"`
	Force   bool          `help:"Stop without waiting for graceful shutdown"`
}

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description("Drive a docker compose service stack."),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	// Load environment file if provided or if .env exists alongside.
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			fmt.Fprintf(out, "Warning: failed to load env file %s: %v\n", cli.EnvFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(out, "Warning: failed to load .env: %v\n", err)
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	handlers := map[string]commandHandler{
		"up":                runUp,
		"up <arguments>":    runUp,
		"down":              runDown,
		"start":             runStart,
		"start <arguments>": runStart,
		"stop":              runStop,
		"ps":                runPs,
		"services":          runServices,
		"validate":          runValidate,
		"version":           func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := handlers[command]; ok {
		return handler(cli, deps, out), true
	}
	return 0, false
}

func runVersion(out io.Writer) int {
	fmt.Fprintf(out, "%s %s\n", meta.AppName, version.GetVersion())
	return 0
}

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "Error: %v\n", err)
	return 1
}
