package main

import (
	"fmt"
	"log/slog"

	"github.com/rehabflow/taichicoach/internal/config"
	"github.com/rehabflow/taichicoach/internal/database"
	"github.com/rehabflow/taichicoach/internal/program"
	"github.com/spf13/cobra"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the progress report for the recorded sessions",
		Long: `Report analyzes the recorded session history and shows:
- Performance metrics (pain, fatigue, duration, completion, consistency)
- Trends over the most recent sessions
- Adaptive programming recommendations
- Outstanding risk factors from the safety monitor

Examples:
  # Report over the default four-session window
  taichicoach report

  # Widen the analysis window
  taichicoach report --window 8

  # Export the report as Markdown
  taichicoach report --markdown -o progress.md`,
		RunE: runReportCmd,
	}

	cmd.Flags().IntP("window", "w", config.DefaultTrendWindow,
		"Number of recent sessions to analyze")
	cmd.Flags().StringP("profile", "c", "",
		"Profile file path (default: .taichicoach in current or home directory)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	verbose := getVerboseFlag(cmd)
	logger := setupLogger(verbose)
	slog.SetDefault(logger)

	cfg := config.NewConfig()
	cfg.Verbose = verbose

	var err error
	cfg.TrendWindow, err = cmd.Flags().GetInt("window")
	if err != nil {
		return err
	}
	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	cfg.Profile, err = loadProfile(cmd, logger)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	prog, err := program.New(ctx, cfg.Profile, db, program.WithLogger(logger))
	if err != nil {
		return err
	}

	progressReport, err := prog.Report(ctx, cfg.TrendWindow)
	if err != nil {
		return err
	}

	output, closeOutput, err := openOutput(cfg.ReportFile)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Best-effort close; write errors surface earlier

	writer := newReportWriter(cfg, output)
	if _, err := writer.WriteProgress(progressReport); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
