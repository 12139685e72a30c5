// Where: cmd/stackctl/main.go
// What: CLI entrypoint.
// Why: Execute stackctl commands with configured dependencies.
package main

import (
	"os"

	"github.com/launchbay/stackctl/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], app.DefaultDependencies()))
}
