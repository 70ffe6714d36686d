package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/perfreport/internal/config"
	"github.com/harrison/perfreport/internal/display"
	"github.com/harrison/perfreport/internal/history"
	"github.com/harrison/perfreport/internal/report"
)

// NewHistoryCommand creates the history subcommand
func NewHistoryCommand() *cobra.Command {
	var configPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent finalize runs",
		Long: `List recent finalize runs recorded in the history database, newest
first, with the achievement rate and outcome of each run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showHistory(configPath, limit, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "path to configuration file")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of runs to show (0 = config default)")

	return cmd
}

// showHistory lists recorded runs with output redirected to the given
// writer (for testing).
func showHistory(configPath string, limit int, output io.Writer) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(output, "✗ Failed to load configuration: %v\n", err)
		return err
	}

	if limit <= 0 {
		limit = cfg.History.Limit
	}

	// An absent database means nothing has been recorded, not an error
	if _, err := os.Stat(cfg.History.DBPath); os.IsNotExist(err) {
		fmt.Fprintln(output, "No finalize runs recorded yet")
		return nil
	}

	store, err := history.NewStore(cfg.History.DBPath)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(context.Background(), limit)
	if err != nil {
		return fmt.Errorf("load run history: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(output, "No finalize runs recorded yet")
		return nil
	}

	printRuns(output, runs)
	return nil
}

// printRuns formats the recorded runs, one per line, colored by outcome
func printRuns(w io.Writer, runs []history.Run) {
	scheme := display.NewScheme()

	scheme.Label.Fprintf(w, "Recent finalize runs (%d)\n", len(runs))

	for _, run := range runs {
		var outcome string
		switch {
		case run.Total > 0 && run.Achieved == run.Total:
			outcome = scheme.Success.Sprint("all passed")
		case run.Achieved > 0:
			outcome = scheme.Warn.Sprint("partial")
		default:
			outcome = scheme.Fail.Sprint("none passed")
		}

		fmt.Fprintf(w, "  %s  %s  %s%% (%d/%d)  %s\n",
			scheme.Muted.Sprint(run.CreatedAt.Local().Format("2006-01-02 15:04")),
			run.Report,
			report.FormatRate(run.Rate), run.Achieved, run.Total,
			outcome)
	}
}
