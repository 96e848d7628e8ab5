package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stencil-cli/stencil/internal/manifest"
)

var addCmd = &cobra.Command{
	Use:   "add <package>...",
	Short: "Install packages that the manifest does not list yet",
	Long: `Diff the requested packages against the manifest's dependencies and
devDependencies, then install only the missing ones through the package
manager. Packages already listed in either section are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	helper := manifest.NewHelper(cwd, newRunner(cwd))
	created, err := helper.Init(filepath.Base(cwd), func() (bool, error) { return true, nil })
	if err != nil {
		return err
	}
	if created {
		// The package manager needs a manifest on disk to record into.
		if err := helper.Save(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "No %s found; created one.\n", manifest.FileName)
	}

	missing := helper.MissingDependencies(args)
	if len(missing) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "All requested packages are already installed.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installing: %s\n", strings.Join(missing, ", "))
	ok, err := helper.InstallDependencies(cmd.Context(), missing)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("package manager reported errors installing %s", strings.Join(missing, ", "))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Done.")
	return nil
}
