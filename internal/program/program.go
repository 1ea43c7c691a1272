package program

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rehabflow/taichicoach/internal/coach"
	"github.com/rehabflow/taichicoach/internal/config"
	"github.com/rehabflow/taichicoach/internal/model"
	"github.com/rehabflow/taichicoach/internal/pipeline"
	"github.com/rehabflow/taichicoach/internal/progress"
	"github.com/rehabflow/taichicoach/internal/safety"
)

// improvingPainCeiling is the average pain level at or below which the
// injury status is reported as improving.
const improvingPainCeiling = 2.0

// Store is the persistence the program needs. *database.SessionDB
// satisfies it; tests may substitute an in-memory fake.
type Store interface {
	// InsertSession stores a session record and returns its ID.
	InsertSession(ctx context.Context, record *model.SessionRecord) (int64, error)

	// ListSessions returns a profile's sessions ordered oldest first.
	// A limit of zero or less returns all sessions.
	ListSessions(ctx context.Context, profile string, limit int) ([]model.SessionRecord, error)

	// SavePlan stores a generated plan, replacing any stored plan for
	// the same profile and week.
	SavePlan(ctx context.Context, plan *model.WorkoutPlan) error

	// SaveAssessment stores a safety assessment.
	SaveAssessment(ctx context.Context, assessment *model.SafetyAssessment) error
}

// Program coordinates the agents over a practitioner's program.
// It is not safe for concurrent use; each CLI invocation builds one.
type Program struct {
	profile  string
	injuries model.Injuries
	week     int
	maxFreq  int

	// weekPinned marks that the week was set explicitly (flag or profile
	// start week) and must not be bumped by recorded history.
	weekPinned bool

	coach   *coach.Coach
	monitor *safety.Monitor
	tracker *progress.Tracker
	store   Store
	logger  *slog.Logger
}

// Option configures a Program.
type Option func(*Program)

// WithLogger sets a custom logger. If not set, slog.Default is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Program) {
		p.logger = logger
	}
}

// WithWeek pins the program week, overriding both the profile's start
// week and history-based resumption.
func WithWeek(week int) Option {
	return func(p *Program) {
		if week > 0 {
			p.week = week
			p.weekPinned = true
		}
	}
}

// New creates a Program for the given profile backed by the store.
// The safety monitor's trend detection is seeded from stored history so
// multi-session patterns survive restarts.
func New(ctx context.Context, profile *config.Profile, store Store, opts ...Option) (*Program, error) {
	injuries, err := profile.ModelInjuries()
	if err != nil {
		return nil, fmt.Errorf("failed to load injuries: %w", err)
	}

	name := profile.Name
	if name == "" {
		name = config.DefaultProfileName
	}

	p := &Program{
		profile:  name,
		injuries: injuries,
		week:     1,
		maxFreq:  profile.MaxFrequency,
		coach:    coach.New(),
		monitor:  safety.New(),
		tracker:  progress.New(),
		store:    store,
	}
	if profile.StartWeek > 0 {
		p.week = profile.StartWeek
		p.weekPinned = true
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	if p.store != nil {
		history, err := p.store.ListSessions(ctx, p.profile, 5)
		if err != nil {
			return nil, fmt.Errorf("failed to load session history: %w", err)
		}
		p.monitor.Seed(history)

		// Resume from where the history left off unless the week was
		// pinned explicitly.
		if !p.weekPinned && len(history) > 0 {
			last := history[len(history)-1]
			if last.Week >= p.week {
				p.week = last.Week + 1
				if p.week > model.ProgramWeeks {
					p.week = model.ProgramWeeks
				}
			}
		}
	}

	return p, nil
}

// CurrentWeek returns the program week the practitioner is on.
func (p *Program) CurrentWeek() int {
	return p.week
}

// Injuries returns the tracked injury set.
func (p *Program) Injuries() model.Injuries {
	return p.injuries
}

// CurrentPlan generates the plan for the current week.
func (p *Program) CurrentPlan(ctx context.Context) (*model.WorkoutPlan, error) {
	return p.PlanForWeek(ctx, p.week)
}

// PlanForWeek generates the plan for an arbitrary program week through
// the standard pipeline and stores it.
func (p *Program) PlanForWeek(ctx context.Context, week int) (*model.WorkoutPlan, error) {
	if week < 1 || week > model.ProgramWeeks {
		return nil, fmt.Errorf("invalid week %d: program runs weeks 1-%d", week, model.ProgramWeeks)
	}

	pl := pipeline.New(pipeline.WithLogger(p.logger))
	pl.AddSteps(pipeline.DefaultSteps(p.coach, p.monitor, p.injuries)...)

	plan := model.NewWorkoutPlan(p.profile, week)
	if err := pl.Execute(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to generate plan for week %d: %w", week, err)
	}

	if p.maxFreq > 0 && plan.FrequencyPerWeek > p.maxFreq {
		plan.FrequencyPerWeek = p.maxFreq
	}

	if p.store != nil {
		if err := p.store.SavePlan(ctx, plan); err != nil {
			return nil, fmt.Errorf("failed to store plan: %w", err)
		}
	}

	p.logger.Info("plan generated",
		"week", week,
		"phase", string(plan.Phase),
		"duration_minutes", plan.DurationMinutes,
		"exercises", len(plan.Exercises),
	)

	return plan, nil
}

// CompleteSession records a finished session, runs the safety
// assessment, and advances the program week only when the monitor
// grants clearance for the next session.
func (p *Program) CompleteSession(ctx context.Context, record *model.SessionRecord) (*model.SafetyAssessment, error) {
	record.Profile = p.profile
	if record.Week == 0 {
		record.Week = p.week
	}
	if record.Phase == "" {
		record.Phase = model.PhaseForWeek(record.Week)
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session record: %w", err)
	}

	assessment := p.monitor.AssessSession(*record)

	if p.store != nil {
		id, err := p.store.InsertSession(ctx, record)
		if err != nil {
			return nil, fmt.Errorf("failed to store session: %w", err)
		}
		record.ID = id

		if err := p.store.SaveAssessment(ctx, assessment); err != nil {
			return nil, fmt.Errorf("failed to store assessment: %w", err)
		}
	}

	if assessment.ClearanceForNextSession {
		if p.week < model.ProgramWeeks {
			p.week++
		}
	} else {
		p.logger.Warn("clearance withheld, program week frozen",
			"week", p.week,
			"level", assessment.LevelText,
		)
	}

	return assessment, nil
}

// Report assembles the combined progress report: the tracker's window
// analysis, the injury recovery status, and the safety monitor's
// multi-session risk factors.
func (p *Program) Report(ctx context.Context, window int) (*model.ProgressReport, error) {
	var records []model.SessionRecord
	if p.store != nil {
		var err error
		records, err = p.store.ListSessions(ctx, p.profile, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to load session history: %w", err)
		}
	}

	analysis := p.tracker.AnalyzeTrends(records, window)

	return &model.ProgressReport{
		Profile:           p.profile,
		CurrentWeek:       p.week,
		CurrentPhase:      model.PhaseForWeek(p.week),
		InjuryStatus:      p.injuryStatus(analysis),
		Analysis:          *analysis,
		SafetyRiskFactors: safetyRisks(records),
		GeneratedAt:       time.Now(),
	}, nil
}

// injuryStatus classifies recovery from the window analysis. Low average
// pain counts as improving; outstanding risk factors need attention;
// everything else is still recovering.
func (p *Program) injuryStatus(analysis *model.ProgressAnalysis) model.InjuryStatus {
	status := "recovering"
	switch {
	case len(analysis.RiskFactors) > 0:
		status = "needs_attention"
	case analysis.Status == "ok" && analysis.Metrics.AvgPain <= improvingPainCeiling:
		status = "improving"
	}
	return model.InjuryStatus{
		Status:   status,
		Injuries: p.injuries,
	}
}

// safetyRisks replays the stored history through a fresh monitor so the
// report carries the same multi-session risks live assessment would.
func safetyRisks(records []model.SessionRecord) []string {
	if len(records) == 0 {
		return nil
	}

	monitor := safety.New()
	if len(records) > 1 {
		monitor.Seed(records[:len(records)-1])
	}
	last := monitor.AssessSession(records[len(records)-1])
	return last.RiskFactors
}
