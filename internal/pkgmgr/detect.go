package pkgmgr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Supported package manager names.
const (
	NPM  = "npm"
	PNPM = "pnpm"
	Yarn = "yarn"
)

// minVersions are the oldest releases whose install subcommand supports
// both --ignore-scripts and --silent the way this tool invokes them.
var minVersions = map[string]string{
	NPM:  "7.0.0",
	PNPM: "6.0.0",
	Yarn: "1.22.0",
}

// lockFiles maps a lock file at the project root to the manager that owns it.
var lockFiles = []struct {
	file    string
	manager string
}{
	{"pnpm-lock.yaml", PNPM},
	{"yarn.lock", Yarn},
	{"package-lock.json", NPM},
}

// Detect picks the package manager for a project directory from its lock
// file. When no lock file is present it falls back to fallback, and to npm
// when fallback is empty.
func Detect(dir, fallback string) string {
	for _, lf := range lockFiles {
		if _, err := os.Stat(filepath.Join(dir, lf.file)); err == nil {
			return lf.manager
		}
	}
	if fallback != "" {
		return fallback
	}
	return NPM
}

// Version reports the installed version of the package manager behind the
// runner, as printed by `<manager> --version`.
func Version(ctx context.Context, r Runner) (string, error) {
	out, err := r.Run(ctx, "--version")
	if err != nil {
		return "", err
	}
	if out.ExitCode != 0 {
		return "", fmt.Errorf("version probe exited with status %d: %s", out.ExitCode, strings.TrimSpace(out.Stderr))
	}
	return strings.TrimSpace(out.Stdout), nil
}

// CheckVersion verifies that version satisfies the minimum required release
// of the named manager. Managers without a registered minimum always pass.
func CheckVersion(manager, version string) error {
	min, ok := minVersions[manager]
	if !ok {
		return nil
	}

	have, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing %s version %q: %w", manager, version, err)
	}
	want := semver.MustParse(min)

	if have.LessThan(want) {
		return fmt.Errorf("%s %s is too old: %s or newer required", manager, have, want)
	}
	return nil
}
