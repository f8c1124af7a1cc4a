package commands

import (
	"github.com/spf13/cobra"

	"fre-insights/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "insights",
		Short:   "Transaction import and spending insights",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newServeCommand(),
		newImportCommand(),
		newDetectCommand(),
		newSummaryCommand(),
		newSeedCommand(),
		newMigrateCommand(),
	)

	return rootCmd
}
