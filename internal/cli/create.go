package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stencil-cli/stencil/internal/config"
	"github.com/stencil-cli/stencil/internal/manifest"
	"github.com/stencil-cli/stencil/internal/scaffold"
)

var createNoInstall bool

var createCmd = &cobra.Command{
	Use:   "create <template> <name>",
	Short: "Scaffold a new project from a template",
	Long: `Generate a new project directory from an embedded template set.

The template's files are rendered into ./<name>, a manifest is initialized,
the template's scripts are merged in, and its dependencies are installed
through the package manager (disable with --no-install). When the name is
omitted you are prompted for one.

Run "stencil create" with no arguments to list the available templates.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().BoolVar(&createNoInstall, "no-install", false, "Skip installing template dependencies")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return listTemplates(cmd)
	}

	templateName := args[0]

	rawName := ""
	if len(args) > 1 {
		rawName = args[1]
	} else {
		var err error
		rawName, err = promptInput("Project name", "my-app", func(s string) error {
			if manifest.ToValidName(s) == "" {
				return fmt.Errorf("%q normalizes to an empty package name", s)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	name := manifest.ToValidName(rawName)
	if name == "" {
		return fmt.Errorf("project name %q normalizes to an empty package name", rawName)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}
	outDir := filepath.Join(cwd, name)

	data := scaffold.NewData(name, config.Get(config.KeyAuthor))
	result, err := scaffold.Generate(templateName, data, outDir)
	if err != nil {
		return fmt.Errorf("scaffolding %s: %w", templateName, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s from template %s:\n", name, templateName)
	for _, f := range result.Files {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f)
	}

	// Fresh directory, so Init always synthesizes a new manifest and the
	// script merge never conflicts.
	helper := manifest.NewHelper(outDir, newRunner(outDir))
	if _, err := helper.Init(name, func() (bool, error) { return true, nil }); err != nil {
		return err
	}
	desc := result.Descriptor
	if _, err := helper.UpdateScripts(desc.Scripts, func(string) (bool, error) { return true, nil }); err != nil {
		return err
	}
	if err := helper.Save(); err != nil {
		return err
	}

	reportManifestIssues(cmd, outDir)

	if createNoInstall || !config.GetBool(config.KeyInstall) {
		return nil
	}

	wanted := append(append([]string{}, desc.Dependencies...), desc.DevDependencies...)
	if len(wanted) == 0 {
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installing dependencies: %s\n", strings.Join(wanted, ", "))
	ok, err := helper.InstallDependencies(cmd.Context(), wanted)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: dependency install reported errors; run `%s add %s` to retry\n",
			rootCmd.Use, strings.Join(wanted, " "))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Dependencies installed.")
	return nil
}

func listTemplates(cmd *cobra.Command) error {
	names, err := scaffold.List()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Available templates:")
	for _, name := range names {
		desc, err := scaffold.LoadDescriptor(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %s\n", name, desc.Description)
	}
	return nil
}

// reportManifestIssues validates the generated manifest and prints schema
// warnings to stderr. Validation problems never fail the command.
func reportManifestIssues(cmd *cobra.Command, dir string) {
	result, err := manifest.ValidateFile(filepath.Join(dir, manifest.FileName))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not validate manifest: %v\n", err)
		return
	}
	for _, issue := range result.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", msg)
	}
}
