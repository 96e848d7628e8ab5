package pkgmgr

import (
	"context"
	"strings"
	"testing"
)

func TestExecRunner(t *testing.T) {
	t.Run("captures stdout", func(t *testing.T) {
		r := NewExecRunner("echo", t.TempDir())

		out, err := r.Run(context.Background(), "hello")
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if strings.TrimSpace(out.Stdout) != "hello" {
			t.Errorf("Stdout = %q, want %q", out.Stdout, "hello")
		}
		if out.Stderr != "" {
			t.Errorf("Stderr = %q, want empty", out.Stderr)
		}
		if out.ExitCode != 0 {
			t.Errorf("ExitCode = %d, want 0", out.ExitCode)
		}
	})

	t.Run("non-zero exit is not an error", func(t *testing.T) {
		r := NewExecRunner("false", t.TempDir())

		out, err := r.Run(context.Background())
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if out.ExitCode == 0 {
			t.Error("ExitCode = 0, want non-zero")
		}
	})

	t.Run("missing binary is an error", func(t *testing.T) {
		r := NewExecRunner("definitely-not-a-real-binary-4b825dc6", t.TempDir())

		if _, err := r.Run(context.Background()); err == nil {
			t.Fatal("Run() expected error for missing binary")
		}
	})

	t.Run("tee mirrors output", func(t *testing.T) {
		var sb strings.Builder
		r := NewExecRunner("echo", t.TempDir())
		r.Tee = &sb

		out, err := r.Run(context.Background(), "mirrored")
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if strings.TrimSpace(sb.String()) != "mirrored" {
			t.Errorf("tee output = %q, want %q", sb.String(), "mirrored")
		}
		if strings.TrimSpace(out.Stdout) != "mirrored" {
			t.Errorf("Stdout = %q, want %q", out.Stdout, "mirrored")
		}
	})
}
