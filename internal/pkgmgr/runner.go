package pkgmgr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Output holds the captured result of one package-manager invocation.
// Stdout and Stderr are UTF-8 text.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes the package manager with the given arguments and returns
// its captured output. A non-zero exit is reported through Output, not the
// error; the error covers failures to start the process at all.
type Runner interface {
	Run(ctx context.Context, args ...string) (*Output, error)
}

// ExecRunner runs a real package-manager binary in a project directory.
type ExecRunner struct {
	Bin string // binary name or path, e.g. "npm"
	Dir string // working directory for invocations

	// Tee, when set, additionally streams subprocess output to this writer.
	Tee io.Writer
}

// NewExecRunner returns an ExecRunner for the given binary rooted at dir.
func NewExecRunner(bin, dir string) *ExecRunner {
	return &ExecRunner{Bin: bin, Dir: dir}
}

// Run invokes the binary synchronously and captures stdout and stderr.
func (r *ExecRunner) Run(ctx context.Context, args ...string) (*Output, error) {
	bin, err := exec.LookPath(r.Bin)
	if err != nil {
		return nil, fmt.Errorf("package manager %q not found: %w", r.Bin, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	if r.Tee != nil {
		cmd.Stdout = io.MultiWriter(r.Tee, &stdout)
		cmd.Stderr = io.MultiWriter(r.Tee, &stderr)
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	err = cmd.Run()

	out := &Output{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		return out, fmt.Errorf("executing %s: %w", r.Bin, err)
	}
	return out, nil
}
