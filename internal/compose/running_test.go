package compose

import (
	"reflect"
	"testing"

	"github.com/docker/go-connections/nat"
)

func TestConnectionPorts(t *testing.T) {
	ports := connectionPorts(nat.PortMap{
		"5432/tcp": []nat.PortBinding{{HostIP: "0.0.0.0", HostPort: "49153"}},
		"8080/tcp": []nat.PortBinding{{HostIP: "::", HostPort: "32768"}},
		"9000/tcp": nil,
		"53/udp":   []nat.PortBinding{{HostPort: "bogus"}},
	})

	if got := ports.Get(5432); got != 49153 {
		t.Fatalf("unexpected host port: %d", got)
	}
	if got := ports.Get(9000); got != 0 {
		t.Fatalf("unbound port must map to 0, got %d", got)
	}
	if got := ports.All(); !reflect.DeepEqual(got, []int{5432, 8080}) {
		t.Fatalf("unexpected port list: %v", got)
	}
}

func TestDeduceHost(t *testing.T) {
	cases := []struct {
		daemonHost string
		expected   string
	}{
		{"unix:///var/run/docker.sock", "127.0.0.1"},
		{"npipe:////./pipe/docker_engine", "127.0.0.1"},
		{"tcp://build-host:2375", "build-host"},
		{"tcp://10.0.0.5:2376", "10.0.0.5"},
		{"", "127.0.0.1"},
	}
	for _, tc := range cases {
		if got := deduceHost(tc.daemonHost); got != tc.expected {
			t.Fatalf("deduceHost(%q) = %s, expected %s", tc.daemonHost, got, tc.expected)
		}
	}
}

func TestLogLevelStreams(t *testing.T) {
	if LogLevelOff.Streams() || LogLevelError.Streams() {
		t.Fatal("off and error levels must not stream")
	}
	if !LogLevelInfo.Streams() || !LogLevelDebug.Streams() {
		t.Fatal("info and debug levels must stream")
	}
}

func TestParseLogLevel(t *testing.T) {
	if ParseLogLevel("debug") != LogLevelDebug {
		t.Fatal("debug must parse")
	}
	if ParseLogLevel("") != LogLevelInfo {
		t.Fatal("default level must be info")
	}
	if ParseLogLevel("off") != LogLevelOff {
		t.Fatal("off must parse")
	}
}
