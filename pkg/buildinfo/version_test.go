package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()
	for _, want := range []string{"version: " + Version, "commit: " + Commit, "built: " + Date} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestTemplate(t *testing.T) {
	if !strings.HasPrefix(Template(), "{{.Name}} version ") {
		t.Errorf("Template() = %q", Template())
	}
}

func TestCacheScope(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "dev", "abc123"
	if got := CacheScope(); got != "dev-abc123:" {
		t.Errorf("CacheScope() = %q, want dev-abc123:", got)
	}

	Version = "v1.2.0"
	if got := CacheScope(); got != "v1.2.0:" {
		t.Errorf("CacheScope() = %q, want v1.2.0:", got)
	}
}
