package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestList(t *testing.T) {
	names, err := List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	want := map[string]bool{"node-basic": false, "node-cli": false}
	for _, name := range names {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("List() missing template set %q (got %v)", name, names)
		}
	}
}

func TestLoadDescriptor(t *testing.T) {
	d, err := LoadDescriptor("node-cli")
	if err != nil {
		t.Fatalf("LoadDescriptor() error: %v", err)
	}

	if d.Name != "node-cli" {
		t.Errorf("Name = %q, want %q", d.Name, "node-cli")
	}
	if d.Scripts["lint"] != "eslint ." {
		t.Errorf("Scripts[lint] = %q, want %q", d.Scripts["lint"], "eslint .")
	}
	if len(d.Dependencies) == 0 {
		t.Error("Dependencies empty, want at least one")
	}

	if _, err := LoadDescriptor("no-such-set"); err == nil {
		t.Error("LoadDescriptor() expected error for unknown set")
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "my-tool")

	data := NewData("my-tool", "Jess Example")
	result, err := Generate("node-basic", data, outDir)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for _, name := range []string{"index.mjs", "README.md", ".gitignore"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("expected file %s: %v", name, err)
		}
	}
	if result.Descriptor == nil || result.Descriptor.Name != "node-basic" {
		t.Errorf("Descriptor = %+v, want node-basic", result.Descriptor)
	}

	readme, err := os.ReadFile(filepath.Join(outDir, "README.md"))
	if err != nil {
		t.Fatalf("reading README: %v", err)
	}
	if !strings.Contains(string(readme), "# my-tool") {
		t.Errorf("README missing project name:\n%s", readme)
	}
	if !strings.Contains(string(readme), "Jess Example") {
		t.Errorf("README missing author:\n%s", readme)
	}

	index, err := os.ReadFile(filepath.Join(outDir, "index.mjs"))
	if err != nil {
		t.Fatalf("reading index.mjs: %v", err)
	}
	if !strings.Contains(string(index), "my-tool") {
		t.Errorf("index.mjs missing project name:\n%s", index)
	}

	// The descriptor must never land in the output directory.
	if _, err := os.Stat(filepath.Join(outDir, "template.yaml")); err == nil {
		t.Error("template.yaml leaked into the output directory")
	}
}

func TestGenerateRefusesNonEmptyDir(t *testing.T) {
	outDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(outDir, "existing.txt"), []byte("keep me"), 0644); err != nil {
		t.Fatalf("seeding output dir: %v", err)
	}

	if _, err := Generate("node-basic", NewData("x", ""), outDir); err == nil {
		t.Fatal("Generate() expected error for non-empty output directory")
	}
}

func TestGenerateUnknownSet(t *testing.T) {
	if _, err := Generate("no-such-set", NewData("x", ""), filepath.Join(t.TempDir(), "out")); err == nil {
		t.Fatal("Generate() expected error for unknown template set")
	}
}
