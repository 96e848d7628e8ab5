package pkgmgr

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
		t.Fatalf("creating %s: %v", name, err)
	}
}

func TestDetect(t *testing.T) {
	t.Run("pnpm lock file", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "pnpm-lock.yaml")
		if got := Detect(dir, ""); got != PNPM {
			t.Errorf("Detect = %q, want %q", got, PNPM)
		}
	})

	t.Run("yarn lock file", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "yarn.lock")
		if got := Detect(dir, ""); got != Yarn {
			t.Errorf("Detect = %q, want %q", got, Yarn)
		}
	})

	t.Run("npm lock file", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "package-lock.json")
		if got := Detect(dir, ""); got != NPM {
			t.Errorf("Detect = %q, want %q", got, NPM)
		}
	})

	t.Run("fallback wins without a lock file", func(t *testing.T) {
		if got := Detect(t.TempDir(), PNPM); got != PNPM {
			t.Errorf("Detect = %q, want fallback %q", got, PNPM)
		}
	})

	t.Run("npm is the last resort", func(t *testing.T) {
		if got := Detect(t.TempDir(), ""); got != NPM {
			t.Errorf("Detect = %q, want %q", got, NPM)
		}
	})
}

func TestCheckVersion(t *testing.T) {
	cases := []struct {
		manager string
		version string
		wantErr bool
	}{
		{NPM, "10.2.4", false},
		{NPM, "7.0.0", false},
		{NPM, "6.14.18", true},
		{PNPM, "9.1.0", false},
		{PNPM, "5.0.0", true},
		{Yarn, "1.22.22", false},
		{Yarn, "1.21.0", true},
		{NPM, "v8.0.0", false},
		{NPM, "not-a-version", true},
		{"bun", "0.1.0", false}, // no registered minimum
	}

	for _, tc := range cases {
		err := CheckVersion(tc.manager, tc.version)
		if (err != nil) != tc.wantErr {
			t.Errorf("CheckVersion(%q, %q) error = %v, wantErr %v", tc.manager, tc.version, err, tc.wantErr)
		}
	}
}
