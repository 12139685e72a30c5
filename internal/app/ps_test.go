// Where: internal/app/ps_test.go
// What: Tests for the ps handler.
// Why: The running-service listing is the main discovery surface.
package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/launchbay/stackctl/internal/compose"
)

func TestRunPsEmpty(t *testing.T) {
	facade := &fakeCompose{}
	deps, _ := newTestDeps(t, facade)
	var out bytes.Buffer

	if code := runPs(CLI{}, deps, &out); code != 0 {
		t.Fatalf("unexpected exit code (output %q)", out.String())
	}
	if !strings.Contains(out.String(), "No services running") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRunPsListsServices(t *testing.T) {
	facade := &fakeCompose{
		running: []compose.RunningService{
			{
				Name:    "demo-db-1",
				Service: "db",
				Host:    "127.0.0.1",
				Image:   compose.ParseImageReference("postgres:16"),
				Ports:   compose.ConnectionPorts{5432: 49153},
			},
		},
	}
	deps, _ := newTestDeps(t, facade)
	var out bytes.Buffer

	if code := runPs(CLI{}, deps, &out); code != 0 {
		t.Fatalf("unexpected exit code (output %q)", out.String())
	}
	output := out.String()
	if !strings.Contains(output, "db") || !strings.Contains(output, "postgres:16") {
		t.Fatalf("unexpected output: %q", output)
	}
	if !strings.Contains(output, "127.0.0.1:49153->5432") {
		t.Fatalf("port mapping missing: %q", output)
	}
}
