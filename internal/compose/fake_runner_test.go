package compose

import (
	"context"
)

// fakeRunner records the last invocation and replays scripted output.
type fakeRunner struct {
	dir      string
	name     string
	args     []string
	lastCall string
	calls    [][]string
	output   []byte
	err      error
}

func (f *fakeRunner) record(call, dir, name string, args []string) {
	f.dir = dir
	f.name = name
	f.args = append([]string{}, args...)
	f.lastCall = call
	f.calls = append(f.calls, f.args)
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.record("run", dir, name, args)
	return f.err
}

func (f *fakeRunner) RunOutput(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	f.record("runoutput", dir, name, args)
	return f.output, f.err
}

func (f *fakeRunner) RunQuiet(_ context.Context, dir, name string, args ...string) error {
	f.record("runquiet", dir, name, args)
	return f.err
}
