package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rehabflow/taichicoach/internal/model"
	"golang.org/x/sync/errgroup"
)

// BatchPlanner generates plans for multiple program weeks concurrently.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchPlanner rather than adding
// batch functionality to Pipeline because:
// 1. It keeps the Pipeline focused on single-plan execution
// 2. It allows different batch strategies (e.g., week ranges, callbacks)
// 3. It provides cleaner separation of concerns
type BatchPlanner struct {
	// pipelineFactory creates a new pipeline for each week.
	// A factory ensures each plan gets a fresh pipeline instance.
	pipelineFactory func() *Pipeline

	// concurrency is the maximum number of weeks planned simultaneously.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores completed plans. Access is synchronized via mutex.
	results []*model.WorkoutPlan
	mu      sync.Mutex
}

// BatchOption configures a BatchPlanner.
type BatchOption func(*BatchPlanner)

// WithBatchLogger sets a custom logger for batch planning.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchPlanner) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrently planned weeks.
// Default is 8 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchPlanner) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchPlanner creates a new BatchPlanner.
//
// The pipelineFactory function is called for each week to create a fresh
// pipeline instance, so pipeline state never leaks between plans.
func NewBatchPlanner(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchPlanner {
	bp := &BatchPlanner{
		pipelineFactory: pipelineFactory,
		concurrency:     8,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// PlanWeeks generates plans for the given program weeks concurrently.
// It respects the configured concurrency limit and context cancellation.
// Results are returned in the same order as the input weeks.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each week gets its own goroutine, but only 'concurrency' goroutines
// run simultaneously.
func (bp *BatchPlanner) PlanWeeks(ctx context.Context, profile string, weeks []int) ([]*model.WorkoutPlan, error) {
	bp.logger.Info("starting batch planning",
		"total_weeks", len(weeks),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain week order
	bp.results = make([]*model.WorkoutPlan, len(weeks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, week := range weeks {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			plan := model.NewWorkoutPlan(profile, week)

			pipeline := bp.pipelineFactory()
			if err := pipeline.Execute(ctx, plan); err != nil {
				bp.logger.Warn("week planning failed",
					"week", week,
					"error", err,
				)
				return err
			}

			bp.mu.Lock()
			bp.results[i] = plan
			bp.mu.Unlock()

			return nil
		})
	}

	err := g.Wait()

	elapsed := time.Since(startTime)
	bp.logger.Info("batch planning complete",
		"total_weeks", len(weeks),
		"elapsed", elapsed,
	)

	return bp.results, err
}

// PlanWeeksWithCallback generates plans and calls a callback for each
// completed week. This is useful for streaming output.
//
// The callback receives the plan and the index of the week in the
// original slice. It is called from the goroutine that completed the
// plan, so it must be safe for concurrent use if it touches shared state.
func (bp *BatchPlanner) PlanWeeksWithCallback(
	ctx context.Context,
	profile string,
	weeks []int,
	callback func(plan *model.WorkoutPlan, index int),
) error {
	bp.logger.Info("starting batch planning with callback",
		"total_weeks", len(weeks),
		"concurrency", bp.concurrency,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, week := range weeks {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			plan := model.NewWorkoutPlan(profile, week)

			pipeline := bp.pipelineFactory()
			if err := pipeline.Execute(ctx, plan); err != nil {
				return err
			}

			callback(plan, i)
			return nil
		})
	}

	return g.Wait()
}
