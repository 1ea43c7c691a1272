package model

import (
	"strings"
	"time"
)

// InjuryImpact is the coach's assessment of how a set of injuries
// constrains Tai Chi practice. It feeds plan generation, exercise
// modification, and the safety guidelines.
//
// Design decision: This lives in model rather than the coach package
// because pipeline steps pass it between agents; keeping shared data
// structures here avoids import cycles between the agent packages.
type InjuryImpact struct {
	// Restrictions lists movements to avoid, tagged with the severity of
	// the injury that imposes them, e.g. "high arm raises (moderate)".
	Restrictions []string `json:"restrictions,omitempty"`

	// Modifications lists general practice adjustments.
	Modifications []string `json:"modifications,omitempty"`

	// FocusAreas lists practice areas to emphasize instead of the
	// restricted ones.
	FocusAreas []string `json:"focus_areas,omitempty"`

	// CompensatoryStrategies lists alternate practices that maintain
	// progress while injured regions recover.
	CompensatoryStrategies []string `json:"compensatory_strategies,omitempty"`

	// RehabilitationFocus lists per-injury recovery goals.
	RehabilitationFocus []string `json:"rehabilitation_focus,omitempty"`
}

// HasRestriction reports whether any restriction contains the given
// substring. The shoulder and standing modification rules key off
// restriction text rather than re-deriving from the injury map, so the
// assessment stays the single source of truth.
func (i *InjuryImpact) HasRestriction(substr string) bool {
	for _, r := range i.Restrictions {
		if containsFold(r, substr) {
			return true
		}
	}
	return false
}

// containsFold reports whether s contains substr, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// WorkoutPlan is a complete prescription for one program week.
type WorkoutPlan struct {
	// Profile is the name of the practitioner profile the plan was built for.
	Profile string `json:"profile,omitempty"`

	// Phase is the progression phase the week belongs to.
	Phase WorkoutPhase `json:"phase"`

	// Week is the 1-based program week.
	Week int `json:"week"`

	// DurationMinutes is the total session length.
	DurationMinutes int `json:"duration_minutes"`

	// FrequencyPerWeek is the recommended number of sessions this week.
	FrequencyPerWeek int `json:"frequency_per_week"`

	// Exercises is the ordered exercise prescription.
	Exercises []Exercise `json:"exercises"`

	// Precautions lists the top injury restrictions to keep in mind.
	Precautions []string `json:"precautions,omitempty"`

	// Modifications lists the top general practice adjustments.
	Modifications []string `json:"modifications,omitempty"`

	// FocusPoints lists the practice areas to emphasize.
	FocusPoints []string `json:"focus_points,omitempty"`

	// EnergyFocus is the internal-energy theme for the phase.
	EnergyFocus string `json:"energy_focus"`

	// Guidelines carries the safety guidelines attached by the safety
	// monitor. Nil until the guidelines step runs.
	Guidelines *SafetyGuidelines `json:"guidelines,omitempty"`

	// GeneratedAt is when the plan was produced.
	GeneratedAt time.Time `json:"generated_at"`

	// PerformedSteps lists the pipeline steps that built this plan.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Impact is the injury assessment the plan was built from.
	// Excluded from JSON: it is reproduced in Precautions/Modifications
	// and would bloat stored plans.
	Impact *InjuryImpact `json:"-"`
}

// NewWorkoutPlan creates a plan skeleton for the given profile and week.
// The pipeline steps fill in the rest.
func NewWorkoutPlan(profile string, week int) *WorkoutPlan {
	phase := PhaseForWeek(week)
	return &WorkoutPlan{
		Profile:          profile,
		Phase:            phase,
		Week:             week,
		FrequencyPerWeek: phase.Frequency(),
		EnergyFocus:      phase.EnergyFocus(),
		GeneratedAt:      time.Now(),
	}
}

// TotalExerciseMinutes sums the prescribed durations of all exercises.
func (p *WorkoutPlan) TotalExerciseMinutes() int {
	total := 0
	for _, e := range p.Exercises {
		total += e.DurationMinutes
	}
	return total
}
