package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/perfreport/internal/config"
	"github.com/harrison/perfreport/internal/display"
	"github.com/harrison/perfreport/internal/report"
)

// NewValidateCommand creates the validate subcommand
func NewValidateCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate <report-template>",
		Short: "Check a report template before finalizing",
		Long: `Inspect a report template and list which placeholder tokens it contains.

Finalize tolerates templates with missing tokens or without the
goal-achievement anchor heading, so this command exists to catch a template
that would silently produce an incomplete report.

Exit code: 0 if the template contains at least one placeholder token,
1 otherwise`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateTemplate(args[0], configPath, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "path to configuration file")

	return cmd
}

// validateTemplate inspects the template with output redirected to the given
// writer (for testing).
func validateTemplate(path, configPath string, output io.Writer) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(output, "✗ Failed to load configuration: %v\n", err)
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(output, "✗ Failed to read template: %v\n", err)
		return err
	}

	fmt.Fprintf(output, "✓ Validating template %s\n", path)

	text := string(data)
	found := report.FoundPlaceholders(text)
	missing := report.MissingPlaceholders(text)

	for _, token := range found {
		fmt.Fprintf(output, "✓ Found %s\n", token)
	}

	if report.HasAnchorHeading(data, cfg.AnchorHeading) {
		fmt.Fprintf(output, "✓ Anchor heading present (%s)\n", cfg.AnchorHeading)
	} else {
		display.Warning{
			Title:      "Anchor heading not found",
			Message:    fmt.Sprintf("The analysis fragment is inserted after the line %q; without it, finalize leaves the analysis out.", cfg.AnchorHeading),
			Suggestion: fmt.Sprintf("Add a line reading %q where the analysis belongs.", cfg.AnchorHeading),
		}.Display(output)
	}

	if len(missing) > 0 && len(found) > 0 {
		display.Warning{
			Title:      "Template is missing placeholder tokens",
			Message:    "Sections without a token are skipped during finalize.",
			Tokens:     missing,
			Suggestion: "Add the missing tokens where the corresponding sections belong.",
		}.Display(output)
	}

	if len(found) == 0 {
		fmt.Fprintf(output, "\n✗ Template contains none of the placeholder tokens\n")
		return fmt.Errorf("template %s contains no placeholder tokens", path)
	}

	fmt.Fprintf(output, "\n✓ Template is ready to finalize\n")
	return nil
}
