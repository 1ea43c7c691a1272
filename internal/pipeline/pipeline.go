package pipeline

import (
	"context"
	"log/slog"

	"github.com/rehabflow/taichicoach/internal/model"
)

// Step defines the interface that all plan generation steps must
// implement. Steps are executed in sequence, with each step receiving
// the accumulated plan from previous steps.
//
// Design decision: We use an interface rather than function types because:
// 1. It allows steps to carry their agent and configuration state
// 2. It provides a Name() method for logging and debugging
// 3. It's more extensible for future features (e.g., conditional steps)
type Step interface {
	// Do executes the pipeline step.
	// It receives the context for cancellation and the plan to modify.
	// Returns an error if the step fails critically.
	Do(ctx context.Context, plan *model.WorkoutPlan) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
// It maintains a list of steps and executes them in order.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// continueOnError determines whether to continue executing steps
	// after one fails. If false, the pipeline stops on first error.
	continueOnError bool
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError configures the pipeline to continue execution even
// when a step fails.
//
// Design decision: The default is to stop on error because every step
// feeds the next (selection needs the injury analysis, modification
// needs the selection). A plan built from a partial chain could
// prescribe exercises the injuries forbid.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps in sequence against the plan.
// It respects context cancellation and logs each step's execution.
//
// Design decision: We check context.Done() before each step rather than
// during, because steps are in-memory computations that finish quickly.
// This still lets a cancelled batch stop between weeks.
func (p *Pipeline) Execute(ctx context.Context, plan *model.WorkoutPlan) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("plan generation cancelled",
				"step", step.Name(),
				"week", plan.Week,
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"week", plan.Week,
		)

		if err := step.Do(ctx, plan); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"week", plan.Week,
				"error", err,
			)
			if !p.continueOnError {
				return err
			}
		}

		// Track which steps built this plan
		plan.PerformedSteps = append(plan.PerformedSteps, step.Name())
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
