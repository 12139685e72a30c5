package envutil

import (
	"reflect"
	"testing"
)

func TestHostEnvKeyDefaultPrefix(t *testing.T) {
	t.Setenv("ENV_PREFIX", "")
	if got := HostEnvKey("PROFILES"); got != "STACKCTL_PROFILES" {
		t.Fatalf("unexpected key: %s", got)
	}
}

func TestHostEnvKeyCustomPrefix(t *testing.T) {
	t.Setenv("ENV_PREFIX", "ALT")
	if got := HostEnvKey("PROFILES"); got != "ALT_PROFILES" {
		t.Fatalf("unexpected key: %s", got)
	}
}

func TestGetHostEnvRoundTrip(t *testing.T) {
	t.Setenv("ENV_PREFIX", "")
	t.Setenv("STACKCTL_HOSTNAME", "db.local")
	if got := GetHostEnv("HOSTNAME"); got != "db.local" {
		t.Fatalf("unexpected value: %s", got)
	}
}

func TestSplitList(t *testing.T) {
	cases := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"a,b,c", []string{"a", "b", "c"}},
		{"a, b  c", []string{"a", "b", "c"}},
		{" , ,", nil},
	}
	for _, tc := range cases {
		got := SplitList(tc.input)
		if len(got) == 0 && len(tc.expected) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.expected) {
			t.Fatalf("SplitList(%q) = %v, expected %v", tc.input, got, tc.expected)
		}
	}
}
