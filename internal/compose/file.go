// Where: internal/compose/file.go
// What: Compose file reference and default-file discovery.
// Why: Resolve the declarative topology file the way the compose tool does.
package compose

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// searchOrder lists the default file names probed by FindFile, most
// specific first. The order matches the compose tool's own lookup.
var searchOrder = []string{
	"compose.yaml",
	"compose.yml",
	"docker-compose.yaml",
	"docker-compose.yml",
}

// File is an immutable reference to one or more compose configuration files.
// A nil *File means the compose tool's own defaults apply.
type File struct {
	paths []string
}

// NewFile returns a File referencing the given paths. Every path must exist.
func NewFile(paths ...string) (*File, error) {
	if len(paths) == 0 {
		return nil, errNoComposeFile
	}
	resolved := make([]string, 0, len(paths))
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve compose file %s: %w", path, err)
		}
		if _, err := os.Stat(abs); err != nil {
			return nil, fmt.Errorf("compose file not found: %s", abs)
		}
		resolved = append(resolved, abs)
	}
	if len(resolved) == 0 {
		return nil, errNoComposeFile
	}
	return &File{paths: resolved}, nil
}

// FindFile searches dir for a default compose file and returns a reference to
// the first match, or nil if none of the default names exist.
func FindFile(dir string) (*File, error) {
	candidates := FindCandidates(dir)
	if len(candidates) == 0 {
		return nil, nil
	}
	return NewFile(candidates[0])
}

// FindCandidates returns every default compose file present in dir, in
// search order.
func FindCandidates(dir string) []string {
	var found []string
	for _, name := range searchOrder {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			found = append(found, path)
		}
	}
	return found
}

// Paths returns a copy of the referenced file paths.
func (f *File) Paths() []string {
	if f == nil {
		return nil
	}
	return append([]string{}, f.paths...)
}

// Dir returns the directory of the first referenced file, or "" for a nil
// reference. Compose subcommands run relative to it.
func (f *File) Dir() string {
	if f == nil || len(f.paths) == 0 {
		return ""
	}
	return filepath.Dir(f.paths[0])
}

func (f *File) String() string {
	if f == nil {
		return ""
	}
	return strings.Join(f.paths, ", ")
}
