package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stencil-cli/stencil/internal/config"
	"github.com/stencil-cli/stencil/internal/manifest"
	"github.com/stencil-cli/stencil/internal/pkgmgr"
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Run a manifest script through the package manager",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	script := args[0]

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	helper := manifest.NewHelper(cwd, newRunner(cwd))
	if _, err := helper.Init(filepath.Base(cwd), func() (bool, error) { return true, nil }); err != nil {
		return err
	}

	if _, ok := helper.Scripts()[script]; !ok {
		return fmt.Errorf("script %q is not defined (see `%s scripts`)", script, rootCmd.Use)
	}

	runner := newRunner(cwd)
	runner.Tee = cmd.OutOrStdout()

	out, err := runner.Run(cmd.Context(), "run", script)
	if err != nil {
		return err
	}
	if out.ExitCode != 0 {
		return fmt.Errorf("script %q exited with status %d", script, out.ExitCode)
	}
	return nil
}

// newRunner builds the package-manager runner for a project directory,
// honoring the lock file first and the configured preference second.
func newRunner(dir string) *pkgmgr.ExecRunner {
	bin := pkgmgr.Detect(dir, config.Get(config.KeyPackageManager))
	return pkgmgr.NewExecRunner(bin, dir)
}
