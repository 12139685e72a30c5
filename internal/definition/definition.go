// Where: internal/definition/definition.go
// What: Compose definition model and introspection.
// Why: Decode the canonical configuration rendered by the compose tool into
// a queryable form.
package definition

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/launchbay/stackctl/internal/compose"
)

// Definition is the decoded service topology of a compose project.
type Definition struct {
	Name     string             `yaml:"name"`
	Services map[string]Service `yaml:"services"`
}

// Service is one declared service of a Definition.
type Service struct {
	Image    string   `yaml:"image"`
	Profiles []string `yaml:"profiles"`
	Ports    []Port   `yaml:"ports"`
}

// Port is one published port declaration. Compose accepts both the short
// "host:container/proto" string form and the long mapping form; the canonical
// configuration uses the latter.
type Port struct {
	Target    int    `yaml:"target"`
	Published string `yaml:"published"`
	Protocol  string `yaml:"protocol"`
}

// UnmarshalYAML accepts both port declaration forms.
func (p *Port) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return p.parseShort(node.Value)
	}
	type plain Port
	return node.Decode((*plain)(p))
}

func (p *Port) parseShort(value string) error {
	p.Protocol = "tcp"
	if slash := strings.LastIndex(value, "/"); slash != -1 {
		p.Protocol = value[slash+1:]
		value = value[:slash]
	}
	parts := strings.Split(value, ":")
	target, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return fmt.Errorf("parse port %q: %w", value, err)
	}
	p.Target = target
	if len(parts) > 1 {
		p.Published = parts[len(parts)-2]
	}
	return nil
}

// Parse decodes a compose configuration document.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse compose definition: %w", err)
	}
	return &def, nil
}

// Load renders the canonical configuration through the compose tool and
// decodes it. Profile filtering has already happened by the time the tool
// prints the document.
func Load(ctx context.Context, cli *compose.DockerCli) (*Definition, error) {
	output, err := cli.Config(ctx)
	if err != nil {
		return nil, err
	}
	return Parse(output)
}

// HasServices reports whether any service is declared.
func (d *Definition) HasServices() bool {
	return d != nil && len(d.Services) > 0
}

// ServiceNames returns the declared service names in sorted order.
func (d *Definition) ServiceNames() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.Services))
	for name := range d.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ServicesForProfiles returns the names of services active under the given
// profiles: services without profiles are always active, the rest need at
// least one matching profile.
func (d *Definition) ServicesForProfiles(profiles []string) []string {
	if d == nil {
		return nil
	}
	active := map[string]bool{}
	for _, profile := range profiles {
		active[profile] = true
	}

	var names []string
	for name, service := range d.Services {
		if len(service.Profiles) == 0 {
			names = append(names, name)
			continue
		}
		for _, profile := range service.Profiles {
			if active[profile] {
				names = append(names, name)
				break
			}
		}
	}
	sort.Strings(names)
	return names
}
