// Where: internal/app/resolve.go
// What: Stack settings resolution.
// Why: Apply the precedence flags > environment > global config > discovery
// in one place.
package app

import (
	"strings"

	"github.com/launchbay/stackctl/internal/compose"
	"github.com/launchbay/stackctl/internal/config"
	"github.com/launchbay/stackctl/internal/constants"
	"github.com/launchbay/stackctl/internal/envutil"
)

// stackSettings is the resolved configuration a command operates on.
type stackSettings struct {
	file     *compose.File
	profiles []string
	hostname string
}

func resolveSettings(cli CLI, deps Dependencies) (stackSettings, error) {
	global := loadGlobalConfig()

	file, err := resolveFile(cli, deps, global)
	if err != nil {
		return stackSettings{}, err
	}

	profiles := cli.Profile
	if len(profiles) == 0 {
		profiles = envutil.SplitList(envutil.GetHostEnv(constants.HostSuffixProfiles))
	}
	if len(profiles) == 0 {
		profiles = global.Profiles
	}

	hostname := strings.TrimSpace(cli.Hostname)
	if hostname == "" {
		hostname = strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixHostname))
	}
	if hostname == "" {
		hostname = global.Hostname
	}

	return stackSettings{file: file, profiles: profiles, hostname: hostname}, nil
}

func resolveFile(cli CLI, deps Dependencies, global config.GlobalConfig) (*compose.File, error) {
	if len(cli.File) > 0 {
		return compose.NewFile(cli.File...)
	}
	if env := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixComposeFile)); env != "" {
		return compose.NewFile(envutil.SplitList(env)...)
	}
	if global.ComposeFile != "" {
		return compose.NewFile(global.ComposeFile)
	}

	dir := deps.WorkingDir
	if dir == "" {
		dir = "."
	}
	candidates := compose.FindCandidates(dir)
	switch {
	case len(candidates) == 0:
		// Tool defaults apply.
		return nil, nil
	case len(candidates) == 1:
		return compose.NewFile(candidates[0])
	}

	if deps.Prompter != nil && deps.Interactive != nil && deps.Interactive() {
		selected, err := deps.Prompter.Select("Several compose files found, pick one", candidates)
		if err != nil {
			return nil, err
		}
		if selected != "" {
			return compose.NewFile(selected)
		}
	}
	return compose.NewFile(candidates[0])
}

func loadGlobalConfig() config.GlobalConfig {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return config.GlobalConfig{}
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		return config.GlobalConfig{}
	}
	return cfg
}
