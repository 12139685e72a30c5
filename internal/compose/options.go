// Where: internal/compose/options.go
// What: Immutable compose invocation options.
// Why: Group the file reference, active profiles, and extra arguments applied
// before any subcommand.
package compose

import "sort"

// Options groups the configuration applied to every compose invocation: an
// optional compose file reference, the set of active profiles, and extra
// arguments appended verbatim before the subcommand. Options values are
// immutable once constructed.
type Options struct {
	file           *File
	activeProfiles []string
	arguments      []string
}

// NoOptions is the all-defaults case: no file, no profiles, no arguments.
var NoOptions = NewOptions(nil, nil, nil)

// NewOptions constructs an Options value. Profiles are stored sorted and
// de-duplicated so that argument construction is deterministic; a nil
// arguments slice is treated as empty.
func NewOptions(file *File, activeProfiles []string, arguments []string) Options {
	profiles := make([]string, 0, len(activeProfiles))
	seen := map[string]bool{}
	for _, profile := range activeProfiles {
		if profile == "" || seen[profile] {
			continue
		}
		seen[profile] = true
		profiles = append(profiles, profile)
	}
	sort.Strings(profiles)

	return Options{
		file:           file,
		activeProfiles: profiles,
		arguments:      append([]string{}, arguments...),
	}
}

// ComposeFile returns the compose file reference, or nil when the tool's
// defaults apply.
func (o Options) ComposeFile() *File {
	return o.file
}

// ActiveProfiles returns a copy of the active profile set.
func (o Options) ActiveProfiles() []string {
	return append([]string{}, o.activeProfiles...)
}

// Arguments returns a copy of the extra arguments. Never nil.
func (o Options) Arguments() []string {
	return append([]string{}, o.arguments...)
}
