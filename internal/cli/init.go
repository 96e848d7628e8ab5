package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stencil-cli/stencil/internal/manifest"
)

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Initialize a project manifest in the current directory",
	Long: `Create a package.json in the current directory.

If a manifest already exists it is loaded as-is and left untouched. The
project name defaults to the current directory name, normalized into a
valid package name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	name := filepath.Base(cwd)
	if len(args) > 0 {
		name = args[0]
	}

	helper := manifest.NewHelper(cwd, newRunner(cwd))
	created, err := helper.Init(name, func() (bool, error) {
		return promptConfirm("Reinitialize the existing manifest?")
	})
	if err != nil {
		return err
	}

	if !created {
		fmt.Fprintf(cmd.OutOrStdout(), "%s already exists, nothing to do.\n", manifest.FileName)
		return nil
	}

	if err := helper.Save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s for %q.\n", manifest.FileName, helper.Manifest().Name)
	return nil
}
