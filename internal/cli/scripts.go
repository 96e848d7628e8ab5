package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stencil-cli/stencil/internal/manifest"
)

var (
	scriptsSet          []string
	scriptsForce        bool
	scriptsSkipExisting bool
)

var scriptsCmd = &cobra.Command{
	Use:   "scripts [--set name=command ...]",
	Short: "List or merge manifest script entries",
	Long: `Without flags, list the scripts defined in the manifest.

With --set, merge entries into the scripts mapping. New names are added
unconditionally; existing names prompt for confirmation before being
overwritten. Use --force to overwrite every conflict without asking, or
--skip-existing to keep all existing entries untouched.`,
	Args: cobra.NoArgs,
	RunE: runScripts,
}

func init() {
	scriptsCmd.Flags().StringArrayVar(&scriptsSet, "set", nil, "Script entry as name=command (can be specified multiple times)")
	scriptsCmd.Flags().BoolVar(&scriptsForce, "force", false, "Overwrite conflicting entries without asking")
	scriptsCmd.Flags().BoolVar(&scriptsSkipExisting, "skip-existing", false, "Never overwrite existing entries")
	rootCmd.AddCommand(scriptsCmd)
}

func runScripts(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	helper := manifest.NewHelper(cwd, newRunner(cwd))
	created, err := helper.Init(filepath.Base(cwd), func() (bool, error) { return true, nil })
	if err != nil {
		return err
	}

	if len(scriptsSet) == 0 {
		if created {
			fmt.Fprintf(cmd.OutOrStdout(), "No %s found.\n", manifest.FileName)
			return nil
		}
		return printScripts(cmd, helper.Scripts())
	}

	targets, err := parseScriptArgs(scriptsSet)
	if err != nil {
		return err
	}

	changed, err := helper.UpdateScripts(targets, scriptConfirmPolicy(scriptsForce, scriptsSkipExisting))
	if err != nil {
		return err
	}
	if !changed && !created {
		fmt.Fprintln(cmd.OutOrStdout(), "Scripts unchanged.")
		return nil
	}

	if err := helper.Save(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s.\n", manifest.FileName)
	return nil
}

func printScripts(cmd *cobra.Command, scripts map[string]string) error {
	if len(scripts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No scripts defined.")
		return nil
	}

	names := make([]string, 0, len(scripts))
	for name := range scripts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-16s %s\n", name, scripts[name])
	}
	return nil
}

// parseScriptArgs converts repeated name=command flags into a mapping.
func parseScriptArgs(pairs []string) (map[string]string, error) {
	targets := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, command, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set value %q: expected name=command", pair)
		}
		targets[name] = command
	}
	return targets, nil
}
