package pipeline

import (
	"context"
	"fmt"

	"github.com/rehabflow/taichicoach/internal/coach"
	"github.com/rehabflow/taichicoach/internal/model"
	"github.com/rehabflow/taichicoach/internal/safety"
)

// InjuryAnalysisStep runs the coach's injury assessment and attaches the
// results to the plan. It must run before selection and modification
// because both key off the impact assessment.
type InjuryAnalysisStep struct {
	coach    *coach.Coach
	injuries model.Injuries
}

// NewInjuryAnalysisStep creates the injury analysis step.
func NewInjuryAnalysisStep(c *coach.Coach, injuries model.Injuries) *InjuryAnalysisStep {
	return &InjuryAnalysisStep{coach: c, injuries: injuries}
}

// Name returns the step name.
func (s *InjuryAnalysisStep) Name() string {
	return "injury_analysis"
}

// Plan text limits. The full assessment stays on plan.Impact; the plan
// itself shows only the most important entries so a multi-injury profile
// does not bury the practitioner in precautions.
const (
	maxPlanPrecautions   = 3
	maxPlanModifications = 3
	maxPlanFocusPoints   = 2
)

// Do executes the injury analysis step.
func (s *InjuryAnalysisStep) Do(_ context.Context, plan *model.WorkoutPlan) error {
	impact := s.coach.AnalyzeInjuries(s.injuries)

	plan.Impact = impact
	plan.Precautions = topN(impact.Restrictions, maxPlanPrecautions)
	plan.Modifications = topN(impact.Modifications, maxPlanModifications)
	plan.FocusPoints = topN(impact.FocusAreas, maxPlanFocusPoints)
	return nil
}

// topN returns at most n leading entries of list.
func topN(list []string, n int) []string {
	if len(list) > n {
		list = list[:n]
	}
	return list
}

// ExerciseSelectionStep picks phase-appropriate exercises and sizes the
// session. Requires the injury analysis step to have run.
type ExerciseSelectionStep struct {
	coach *coach.Coach
}

// NewExerciseSelectionStep creates the exercise selection step.
func NewExerciseSelectionStep(c *coach.Coach) *ExerciseSelectionStep {
	return &ExerciseSelectionStep{coach: c}
}

// Name returns the step name.
func (s *ExerciseSelectionStep) Name() string {
	return "exercise_selection"
}

// Do executes the exercise selection step.
func (s *ExerciseSelectionStep) Do(_ context.Context, plan *model.WorkoutPlan) error {
	if plan.Impact == nil {
		return fmt.Errorf("exercise selection requires injury analysis for week %d", plan.Week)
	}

	plan.Exercises = s.coach.SelectExercises(plan.Phase)
	plan.DurationMinutes = s.coach.OptimalDuration(plan.Phase, plan.Week, plan.Impact)
	return nil
}

// ModificationStep adapts the selected exercises to the practitioner's
// injuries, removing contraindicated exercises and trimming the rest.
type ModificationStep struct {
	coach    *coach.Coach
	injuries model.Injuries
}

// NewModificationStep creates the modification step.
func NewModificationStep(c *coach.Coach, injuries model.Injuries) *ModificationStep {
	return &ModificationStep{coach: c, injuries: injuries}
}

// Name returns the step name.
func (s *ModificationStep) Name() string {
	return "injury_modification"
}

// Do executes the modification step.
func (s *ModificationStep) Do(_ context.Context, plan *model.WorkoutPlan) error {
	if plan.Impact == nil {
		return fmt.Errorf("modification requires injury analysis for week %d", plan.Week)
	}

	plan.Exercises = s.coach.ApplyModifications(plan.Exercises, s.injuries, plan.Impact)
	return nil
}

// GuidelineStep attaches the safety monitor's injury-specific guidelines
// to the plan. It runs last so the guidelines reflect the final
// prescription.
type GuidelineStep struct {
	monitor  *safety.Monitor
	injuries model.Injuries
}

// NewGuidelineStep creates the guideline step.
func NewGuidelineStep(m *safety.Monitor, injuries model.Injuries) *GuidelineStep {
	return &GuidelineStep{monitor: m, injuries: injuries}
}

// Name returns the step name.
func (s *GuidelineStep) Name() string {
	return "safety_guidelines"
}

// Do executes the guideline step.
func (s *GuidelineStep) Do(_ context.Context, plan *model.WorkoutPlan) error {
	plan.Guidelines = s.monitor.Guidelines(s.injuries)
	return nil
}

// DefaultSteps returns the standard plan generation chain in execution
// order: analyze injuries, select exercises, modify for injuries, attach
// safety guidelines.
func DefaultSteps(c *coach.Coach, m *safety.Monitor, injuries model.Injuries) []Step {
	return []Step{
		NewInjuryAnalysisStep(c, injuries),
		NewExerciseSelectionStep(c),
		NewModificationStep(c, injuries),
		NewGuidelineStep(m, injuries),
	}
}
