// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Centralize project identity to avoid scattered literals.
package meta

const (
	// Project Identity
	AppName   = "stackctl"
	Slug      = "stackctl"
	EnvPrefix = "STACKCTL"

	// Directory Layout
	HomeDir = ".stackctl"
)
