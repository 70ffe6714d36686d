package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/perfreport/internal/config"
	"github.com/harrison/perfreport/internal/display"
	"github.com/harrison/perfreport/internal/filelock"
	"github.com/harrison/perfreport/internal/history"
	"github.com/harrison/perfreport/internal/report"
)

// finalizeOptions holds the flag values for the finalize command
type finalizeOptions struct {
	configPath string
	lock       bool
	noHistory  bool
}

// NewFinalizeCommand creates the finalize subcommand
func NewFinalizeCommand() *cobra.Command {
	opts := &finalizeOptions{}

	cmd := &cobra.Command{
		Use:   "finalize <report-file> <results-file> <analysis-file>",
		Short: "Fill in a report template and rewrite it in place",
		Long: `Finalize a performance report by substituting placeholder tokens in the
report template with the results listing and computed prose sections, then
inserting the analysis fragment after the goal-achievement heading.

The report file is overwritten in place. On success two summary lines are
printed: a confirmation with the report path, and the achievement rate with
pass counts.

Exit code: 0 on success, 1 when arguments are missing or any input file
does not exist.`,
		// Argument errors go to stdout with a distinct diagnostic, so
		// arity is checked inside rather than via cobra.ExactArgs.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFinalize(args, opts, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&opts.configPath, "config", config.DefaultPath, "path to configuration file")
	cmd.Flags().BoolVar(&opts.lock, "lock", false, "hold an advisory lock on the report file during the rewrite")
	cmd.Flags().BoolVar(&opts.noHistory, "no-history", false, "skip recording this run in the history database")

	return cmd
}

// runFinalize performs the whole finalize operation with output redirected
// to the given writer (for testing).
func runFinalize(args []string, opts *finalizeOptions, output io.Writer) error {
	if len(args) < 3 {
		fmt.Fprintln(output, "✗ Missing arguments")
		fmt.Fprintln(output, "Usage: perfreport finalize <report-file> <results-file> <analysis-file>")
		return fmt.Errorf("expected 3 arguments, got %d", len(args))
	}

	// Extra positional arguments are ignored
	reportFile := args[0]
	resultsFile := args[1]
	analysisFile := args[2]

	// The three paths are checked in order; only the first missing file is
	// reported before exit, and the later files stay unread.
	if _, err := os.Stat(reportFile); os.IsNotExist(err) {
		fmt.Fprintf(output, "✗ Report file not found: %s\n", reportFile)
		return fmt.Errorf("report file not found: %s", reportFile)
	}
	if _, err := os.Stat(resultsFile); os.IsNotExist(err) {
		fmt.Fprintf(output, "✗ Results file not found: %s\n", resultsFile)
		return fmt.Errorf("results file not found: %s", resultsFile)
	}
	if _, err := os.Stat(analysisFile); os.IsNotExist(err) {
		fmt.Fprintf(output, "✗ Analysis file not found: %s\n", analysisFile)
		return fmt.Errorf("analysis file not found: %s", analysisFile)
	}

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(output, "✗ Failed to load configuration: %v\n", err)
		return err
	}

	if opts.lock || cfg.Lock {
		guard := filelock.ForReport(reportFile)
		if err := guard.Acquire(); err != nil {
			fmt.Fprintf(output, "✗ Failed to lock report file: %v\n", err)
			return err
		}
		defer guard.Release()
	}

	template, err := os.ReadFile(reportFile)
	if err != nil {
		fmt.Fprintf(output, "✗ Failed to read report file: %v\n", err)
		return err
	}
	results, err := os.ReadFile(resultsFile)
	if err != nil {
		fmt.Fprintf(output, "✗ Failed to read results file: %v\n", err)
		return err
	}
	analysis, err := os.ReadFile(analysisFile)
	if err != nil {
		fmt.Fprintf(output, "✗ Failed to read analysis file: %v\n", err)
		return err
	}

	res := report.Finalize(string(template), string(results), string(analysis), cfg.SuccessMarker, cfg.AnchorHeading)

	// Plain truncate-and-write; the tool deliberately offers no atomic-write
	// guarantee for the in-place rewrite.
	if err := os.WriteFile(reportFile, []byte(res.Report), 0644); err != nil {
		fmt.Fprintf(output, "✗ Failed to write report file: %v\n", err)
		return err
	}

	fmt.Fprintf(output, "✓ Report finalized: %s\n", reportFile)
	fmt.Fprintf(output, "Achievement rate: %s%% (%d/%d)\n",
		report.FormatRate(res.Metrics.Rate), res.Metrics.Achieved, res.Metrics.Total)

	if cfg.History.Enabled && !opts.noHistory {
		if err := recordRun(cfg.History.DBPath, reportFile, res.Metrics); err != nil {
			// History is best-effort; the report is already finalized
			display.Warning{
				Title:   "Run not recorded in history",
				Message: err.Error(),
			}.Display(output)
		}
	}

	return nil
}

// recordRun appends the finalize outcome to the history database
func recordRun(dbPath, reportFile string, m report.Metrics) error {
	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.RecordRun(context.Background(), reportFile, m.Achieved, m.Total, m.Rate)
	return err
}
