package main

import (
	"fmt"
	"log/slog"

	"github.com/rehabflow/taichicoach/internal/config"
	"github.com/rehabflow/taichicoach/internal/database"
	"github.com/rehabflow/taichicoach/internal/model"
	"github.com/rehabflow/taichicoach/internal/program"
	"github.com/spf13/cobra"
)

// NewSessionCmd creates the session command.
func NewSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Record a completed training session",
		Long: `Session records post-practice feedback and runs the safety assessment.

The assessment grades the session GREEN, YELLOW, or RED against pain and
fatigue thresholds. Red-level pain withholds clearance: the program week
does not advance until a comfortable session is recorded. Red-level
fatigue forces a rest day but does not freeze the program.

Pain, fatigue, and mood use a 0-10 scale; completion is a percentage.

Examples:
  # Record a comfortable full session
  taichicoach session --pain 2 --fatigue 3 --completion 100

  # Record a painful, partial session
  taichicoach session --pain 7 --fatigue 6 --completion 40 --notes "shoulder ached during cloud hands"

  # Record against a specific program week
  taichicoach session --week 13 --pain 2 --fatigue 3 --completion 90`,
		RunE: runSessionCmd,
	}

	cmd.Flags().IntP("week", "w", 0,
		"Program week the session belongs to (default: current week)")
	cmd.Flags().Int("pain", 0, "Pain level during the session (0-10)")
	cmd.Flags().Int("fatigue", 0, "Fatigue level after the session (0-10)")
	cmd.Flags().Int("mood", 5, "Mood after the session (0-10)")
	cmd.Flags().Int("completion", 100, "Percentage of the plan completed (0-100)")
	cmd.Flags().Int("duration", 0, "Actual practice minutes")
	cmd.Flags().Int("exercises", 0, "Number of prescribed exercises performed")
	cmd.Flags().Int("modifications", 0, "Number of injury modifications used")
	cmd.Flags().String("notes", "", "Free-text feedback (kept private, never logged)")
	cmd.Flags().StringP("profile", "c", "",
		"Profile file path (default: .taichicoach in current or home directory)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON assessment (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown assessment (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write assessment to specified file path")

	return cmd
}

// runSessionCmd executes the session command.
func runSessionCmd(cmd *cobra.Command, _ []string) error {
	verbose := getVerboseFlag(cmd)
	logger := setupLogger(verbose)
	slog.SetDefault(logger)

	cfg := config.NewConfig()
	cfg.Verbose = verbose

	var err error
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

	record, err := recordFromFlags(cmd)
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

	assessment, err := prog.CompleteSession(ctx, record)
	if err != nil {
		return err
	}

	output, closeOutput, err := openOutput(cfg.ReportFile)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Best-effort close; write errors surface earlier

	writer := newReportWriter(cfg, output)
	if _, err := writer.WriteAssessment(assessment); err != nil {
		return fmt.Errorf("failed to write assessment: %w", err)
	}
	return nil
}

// recordFromFlags builds a session record from the command flags.
// Range validation happens in SessionRecord.Validate, so this only moves
// flag values across.
func recordFromFlags(cmd *cobra.Command) (*model.SessionRecord, error) {
	record := &model.SessionRecord{}

	var err error
	if record.Week, err = cmd.Flags().GetInt("week"); err != nil {
		return nil, err
	}
	if record.PainLevel, err = cmd.Flags().GetInt("pain"); err != nil {
		return nil, err
	}
	if record.FatigueLevel, err = cmd.Flags().GetInt("fatigue"); err != nil {
		return nil, err
	}
	if record.MoodLevel, err = cmd.Flags().GetInt("mood"); err != nil {
		return nil, err
	}
	if record.CompletionPercentage, err = cmd.Flags().GetInt("completion"); err != nil {
		return nil, err
	}
	if record.DurationMinutes, err = cmd.Flags().GetInt("duration"); err != nil {
		return nil, err
	}
	if record.ExercisesCompleted, err = cmd.Flags().GetInt("exercises"); err != nil {
		return nil, err
	}
	if record.ModificationsUsed, err = cmd.Flags().GetInt("modifications"); err != nil {
		return nil, err
	}
	if record.Notes, err = cmd.Flags().GetString("notes"); err != nil {
		return nil, err
	}

	return record, nil
}
