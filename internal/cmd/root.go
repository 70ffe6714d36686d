package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for perfreport
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perfreport",
		Short: "Assemble performance test reports from templates",
		Long: `Perfreport turns a report template, a per-test results listing, and a
free-form analysis fragment into a finished performance report.

It counts success markers in the results, derives an achievement rate,
selects prose sections for the outcome, substitutes them into the template,
and rewrites the report file in place.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// Commands print their own diagnostics to stdout
		SilenceErrors: true,
	}

	// Add subcommands
	cmd.AddCommand(NewFinalizeCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}
