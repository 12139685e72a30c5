package app

import (
	"context"
	"testing"
	"time"

	"github.com/launchbay/stackctl/internal/compose"
	"github.com/launchbay/stackctl/internal/definition"
)

// fakeCompose records facade calls for handler tests.
type fakeCompose struct {
	upLevel     compose.LogLevel
	upArgs      []string
	startLevel  compose.LogLevel
	startArgs   []string
	downTimeout time.Duration
	downArgs    []string
	stopTimeout time.Duration
	defined     bool
	running     []compose.RunningService
	err         error
	calls       []string
}

func (f *fakeCompose) Up(_ context.Context, logLevel compose.LogLevel, arguments ...string) error {
	f.calls = append(f.calls, "up")
	f.upLevel = logLevel
	f.upArgs = append([]string{}, arguments...)
	return f.err
}

func (f *fakeCompose) Down(_ context.Context, timeout time.Duration, arguments ...string) error {
	f.calls = append(f.calls, "down")
	f.downTimeout = timeout
	f.downArgs = append([]string{}, arguments...)
	return f.err
}

func (f *fakeCompose) Start(_ context.Context, logLevel compose.LogLevel, arguments ...string) error {
	f.calls = append(f.calls, "start")
	f.startLevel = logLevel
	f.startArgs = append([]string{}, arguments...)
	return f.err
}

func (f *fakeCompose) Stop(_ context.Context, timeout time.Duration, _ ...string) error {
	f.calls = append(f.calls, "stop")
	f.stopTimeout = timeout
	return f.err
}

func (f *fakeCompose) HasDefinedServices(_ context.Context) (bool, error) {
	f.calls = append(f.calls, "hasdefined")
	return f.defined, f.err
}

func (f *fakeCompose) RunningServices(_ context.Context) ([]compose.RunningService, error) {
	f.calls = append(f.calls, "running")
	if f.err != nil {
		return nil, f.err
	}
	if f.running == nil {
		return []compose.RunningService{}, nil
	}
	return f.running, nil
}

// factoryRecord captures what the compose factory was asked to build.
type factoryRecord struct {
	file     *compose.File
	hostname string
	profiles []string
}

// isolateEnv points config and settings env vars at a scratch directory so
// tests never touch the real home.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_PREFIX", "")
	t.Setenv("STACKCTL_CONFIG_PATH", "")
	t.Setenv("STACKCTL_CONFIG_HOME", t.TempDir())
	t.Setenv("STACKCTL_COMPOSE_FILE", "")
	t.Setenv("STACKCTL_PROFILES", "")
	t.Setenv("STACKCTL_HOSTNAME", "")
}

func newTestDeps(t *testing.T, facade *fakeCompose) (Dependencies, *factoryRecord) {
	t.Helper()
	isolateEnv(t)

	record := &factoryRecord{}
	deps := Dependencies{
		WorkingDir: t.TempDir(),
		NewCompose: func(file *compose.File, hostname string, profiles []string) (compose.DockerCompose, error) {
			record.file = file
			record.hostname = hostname
			record.profiles = profiles
			return facade, nil
		},
		NewCli: func(options compose.Options) (*compose.DockerCli, error) {
			return compose.NewDockerCli(compose.ExecRunner{}, options)
		},
		LoadDefinition: func(_ *compose.DockerCli) (*definition.Definition, error) {
			return &definition.Definition{}, nil
		},
	}
	return deps, record
}
