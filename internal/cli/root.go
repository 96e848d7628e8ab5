package cli

import (
	"github.com/spf13/cobra"

	"github.com/stencil-cli/stencil/internal/branding"
	"github.com/stencil-cli/stencil/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds new projects from templates and keeps their
manifest (package.json) in shape: it installs missing dependencies through
the package manager and merges script entries under your confirmation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
