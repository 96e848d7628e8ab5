package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/stencil-cli/stencil/internal/pkgmgr"
)

// ConfirmFunc gates an action against existing state. It is supplied by the
// caller (interactive prompt, flag-driven policy, or a test stub) and is the
// only signal the helper acts on.
type ConfirmFunc func() (bool, error)

// ScriptConfirmFunc gates replacing one named script entry. It is invoked
// once per conflicting entry, never concurrently.
type ScriptConfirmFunc func(name string) (bool, error)

// Helper owns the in-memory manifest for one project directory. It is not
// safe for concurrent use; each project gets its own instance.
type Helper struct {
	dir    string
	runner pkgmgr.Runner
	m      *Manifest
}

// NewHelper returns a helper rooted at dir. The runner executes the package
// manager; pass a fake in tests to avoid spawning real processes.
func NewHelper(dir string, runner pkgmgr.Runner) *Helper {
	return &Helper{dir: dir, runner: runner}
}

// Load reads the manifest from dir. A missing file is an expected outcome
// and returns (nil, nil); any other read or decode failure is an error.
func Load(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return &m, nil
}

// Save writes the manifest to dir with two-space indentation, preserving
// any top-level fields the tool does not interpret.
func Save(dir string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", FileName, err)
	}
	data = append(data, '\n')

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Init establishes the helper's manifest state. If a manifest exists on
// disk it is loaded and Init returns false; otherwise a default manifest is
// synthesized from defaultName and Init returns true. The confirm parameter
// is accepted to match the other mutation entry points, but existence of
// the file alone decides the branch — Init never invokes it.
func (h *Helper) Init(defaultName string, confirm ConfirmFunc) (bool, error) {
	m, err := Load(h.dir)
	if err != nil {
		return false, err
	}
	if m != nil {
		h.m = m
		return false, nil
	}

	h.m = Default(ToValidName(defaultName))
	return true, nil
}

// Manifest returns the helper's current in-memory manifest, or nil before Init.
func (h *Helper) Manifest() *Manifest {
	return h.m
}

// Save persists the helper's manifest state to the project directory.
func (h *Helper) Save() error {
	if h.m == nil {
		return fmt.Errorf("manifest state not initialized")
	}
	return Save(h.dir, h.m)
}

// Scripts returns the scripts mapping, or an empty map when unset.
func (h *Helper) Scripts() map[string]string {
	if h.m == nil || h.m.Scripts == nil {
		return map[string]string{}
	}
	return h.m.Scripts
}

// MissingDependencies returns, in input order, the targets that appear in
// neither dependencies nor devDependencies. A package listed in either
// mapping counts as installed.
func (h *Helper) MissingDependencies(targets []string) []string {
	missing := make([]string, 0, len(targets))
	for _, name := range targets {
		if h.m != nil {
			if _, ok := h.m.Dependencies[name]; ok {
				continue
			}
			if _, ok := h.m.DevDependencies[name]; ok {
				continue
			}
		}
		missing = append(missing, name)
	}
	return missing
}

// InstallDependencies installs the targets that are not yet listed in the
// manifest by invoking the package manager with lifecycle scripts and
// output suppressed. It reports true when the captured stderr is empty; a
// failed install is this boolean, not an error. The error return covers
// spawn failures only (e.g., the package manager binary is missing).
//
// When nothing is missing the subprocess is skipped and true is returned.
func (h *Helper) InstallDependencies(ctx context.Context, targets []string) (bool, error) {
	missing := h.MissingDependencies(targets)
	if len(missing) == 0 {
		return true, nil
	}

	args := append([]string{"install", "--ignore-scripts", "--silent"}, missing...)
	out, err := h.runner.Run(ctx, args...)
	if err != nil {
		return false, fmt.Errorf("running package manager: %w", err)
	}
	return out.Stderr == "", nil
}

// UpdateScripts merges targets into the manifest's scripts mapping. Entries
// absent from the current scripts are added unconditionally; entries already
// present are replaced only when confirm resolves true for that name.
// Confirmations run sequentially, one per conflicting entry, in sorted name
// order. Pre-existing entries not named in targets are left untouched.
//
// It reports true when at least one entry was added or replaced.
func (h *Helper) UpdateScripts(targets map[string]string, confirm ScriptConfirmFunc) (bool, error) {
	if h.m == nil {
		return false, fmt.Errorf("manifest state not initialized")
	}
	if len(targets) == 0 {
		return false, nil
	}
	if h.m.Scripts == nil {
		h.m.Scripts = make(map[string]string, len(targets))
	}

	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)

	changed := false
	for _, name := range names {
		if _, exists := h.m.Scripts[name]; !exists {
			h.m.Scripts[name] = targets[name]
			changed = true
			continue
		}

		overwrite, err := confirm(name)
		if err != nil {
			return changed, err
		}
		if overwrite {
			h.m.Scripts[name] = targets[name]
			changed = true
		}
	}
	return changed, nil
}
