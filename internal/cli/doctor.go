package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stencil-cli/stencil/internal/manifest"
	"github.com/stencil-cli/stencil/internal/pkgmgr"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the project manifest and package-manager setup",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	out := cmd.OutOrStdout()
	problems := 0

	// Manifest shape.
	manifestPath := filepath.Join(cwd, manifest.FileName)
	if _, err := os.Stat(manifestPath); err != nil {
		fmt.Fprintf(out, "✗ no %s in %s\n", manifest.FileName, cwd)
		problems++
	} else {
		result, err := manifest.ValidateFile(manifestPath)
		switch {
		case err != nil:
			fmt.Fprintf(out, "✗ %s could not be validated: %v\n", manifest.FileName, err)
			problems++
		case result.Valid:
			fmt.Fprintf(out, "✓ %s is well-formed\n", manifest.FileName)
		default:
			fmt.Fprintf(out, "✗ %s has schema issues:\n", manifest.FileName)
			for _, issue := range result.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				fmt.Fprintf(out, "    %s\n", msg)
			}
			problems++
		}
	}

	// Package manager availability and version.
	runner := newRunner(cwd)
	fmt.Fprintf(out, "  package manager: %s\n", runner.Bin)

	version, err := pkgmgr.Version(cmd.Context(), runner)
	if err != nil {
		fmt.Fprintf(out, "✗ %s is not runnable: %v\n", runner.Bin, err)
		problems++
	} else if err := pkgmgr.CheckVersion(runner.Bin, version); err != nil {
		fmt.Fprintf(out, "✗ %v\n", err)
		problems++
	} else {
		fmt.Fprintf(out, "✓ %s %s\n", runner.Bin, version)
	}

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	fmt.Fprintln(out, "All checks passed.")
	return nil
}
