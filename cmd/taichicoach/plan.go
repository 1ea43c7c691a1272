package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rehabflow/taichicoach/internal/coach"
	"github.com/rehabflow/taichicoach/internal/config"
	"github.com/rehabflow/taichicoach/internal/database"
	"github.com/rehabflow/taichicoach/internal/model"
	"github.com/rehabflow/taichicoach/internal/pipeline"
	"github.com/rehabflow/taichicoach/internal/program"
	"github.com/rehabflow/taichicoach/internal/report"
	"github.com/rehabflow/taichicoach/internal/safety"
	"github.com/spf13/cobra"
)

// NewPlanCmd creates the plan command.
func NewPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate an injury-adapted weekly workout plan",
		Long: `Plan generates the Tai Chi prescription for a program week.

The plan adapts to the injuries declared in the profile file:
- Contraindicated exercises are removed or modified
- Session duration accounts for standing restrictions
- Safety guidelines specific to each injury are attached

Examples:
  # Plan the current week (resumes from recorded history)
  taichicoach plan

  # Plan a specific week
  taichicoach plan --week 13

  # Plan a whole phase at once
  taichicoach plan --week 1 --weeks 12

  # Output a Markdown plan for a healthcare provider
  taichicoach plan --markdown -o plan.md

  # Use a specific profile file
  taichicoach plan -c athlete.yaml`,
		RunE: runPlanCmd,
	}

	cmd.Flags().IntP("week", "w", 0,
		"Program week to plan (default: current week from history)")
	cmd.Flags().IntP("weeks", "n", 1,
		"Number of consecutive weeks to plan")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent plan generations")
	cmd.Flags().StringP("profile", "c", "",
		"Profile file path (default: .taichicoach in current or home directory)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON plan (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown plan (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write plan to specified file path (creates directories if needed)")

	return cmd
}

// runPlanCmd executes the plan command.
func runPlanCmd(cmd *cobra.Command, _ []string) error {
	verbose := getVerboseFlag(cmd)
	logger := setupLogger(verbose)
	slog.SetDefault(logger)

	cfg, err := buildPlanConfig(cmd, verbose, logger)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	opts := []program.Option{program.WithLogger(logger)}
	if cmd.Flags().Changed("week") {
		opts = append(opts, program.WithWeek(cfg.Week))
	}
	prog, err := program.New(ctx, cfg.Profile, db, opts...)
	if err != nil {
		return err
	}

	output, closeOutput, err := openOutput(cfg.ReportFile)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // Best-effort close; write errors surface earlier

	writer := newReportWriter(cfg, output)

	if cfg.Weeks > 1 {
		return runBatchPlan(ctx, cfg, prog, db, writer, logger)
	}

	plan, err := prog.CurrentPlan(ctx)
	if err != nil {
		return err
	}
	if _, err := writer.WritePlan(plan); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}
	return nil
}

// runBatchPlan generates a range of weekly plans concurrently and writes
// them in week order.
func runBatchPlan(ctx context.Context, cfg *config.Config, prog *program.Program, db *database.SessionDB, writer report.Writer, logger *slog.Logger) error {
	start := prog.CurrentWeek()
	weeks := make([]int, 0, cfg.Weeks)
	for week := start; week < start+cfg.Weeks && week <= model.ProgramWeeks; week++ {
		weeks = append(weeks, week)
	}

	c := coach.New()
	monitor := safety.New()
	injuries := prog.Injuries()

	planner := pipeline.NewBatchPlanner(func() *pipeline.Pipeline {
		p := pipeline.New(pipeline.WithLogger(logger))
		p.AddSteps(pipeline.DefaultSteps(c, monitor, injuries)...)
		return p
	},
		pipeline.WithBatchLogger(logger),
		pipeline.WithConcurrency(cfg.BatchSize),
	)

	plans, err := planner.PlanWeeks(ctx, cfg.ProfileName(), weeks)
	if err != nil {
		return fmt.Errorf("batch planning failed: %w", err)
	}

	for _, plan := range plans {
		if err := db.SavePlan(ctx, plan); err != nil {
			return fmt.Errorf("failed to store plan for week %d: %w", plan.Week, err)
		}
		if _, err := writer.WritePlan(plan); err != nil {
			return fmt.Errorf("failed to write plan: %w", err)
		}
	}
	return nil
}

// buildPlanConfig creates a Config from cobra command flags.
func buildPlanConfig(cmd *cobra.Command, verbose bool, logger *slog.Logger) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = verbose

	var err error

	week, err := cmd.Flags().GetInt("week")
	if err != nil {
		return nil, err
	}
	if week > 0 {
		cfg.Week = week
	}

	cfg.Weeks, err = cmd.Flags().GetInt("weeks")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Profile, err = loadProfile(cmd, logger)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
