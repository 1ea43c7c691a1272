package model

import (
	"testing"
	"time"
)

// TestSessionRecordValidate tests the feedback range checks.
func TestSessionRecordValidate(t *testing.T) {
	t.Parallel()

	valid := SessionRecord{
		Timestamp:            time.Now(),
		Phase:                PhaseFoundation,
		Week:                 1,
		DurationMinutes:      20,
		PainLevel:            3,
		FatigueLevel:         2,
		MoodLevel:            7,
		CompletionPercentage: 90,
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("valid record failed validation: %v", err)
	}

	testCases := []struct {
		name   string
		mutate func(*SessionRecord)
	}{
		{"week below 1", func(s *SessionRecord) { s.Week = 0 }},
		{"pain above 10", func(s *SessionRecord) { s.PainLevel = 11 }},
		{"pain below 0", func(s *SessionRecord) { s.PainLevel = -1 }},
		{"fatigue above 10", func(s *SessionRecord) { s.FatigueLevel = 12 }},
		{"mood above 10", func(s *SessionRecord) { s.MoodLevel = 11 }},
		{"completion above 100", func(s *SessionRecord) { s.CompletionPercentage = 101 }},
		{"completion below 0", func(s *SessionRecord) { s.CompletionPercentage = -5 }},
		{"negative duration", func(s *SessionRecord) { s.DurationMinutes = -1 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			record := valid
			tc.mutate(&record)
			if err := record.Validate(); err == nil {
				t.Errorf("expected validation error for %s", tc.name)
			}
		})
	}
}

// TestWorkoutPlanSkeleton tests NewWorkoutPlan defaults.
func TestWorkoutPlanSkeleton(t *testing.T) {
	t.Parallel()

	plan := NewWorkoutPlan("alice", 15)

	if plan.Phase != PhaseBuilding {
		t.Errorf("week 15 should be building phase, got %v", plan.Phase)
	}
	if plan.FrequencyPerWeek != 4 {
		t.Errorf("building frequency = %d, expected 4", plan.FrequencyPerWeek)
	}
	if plan.EnergyFocus != PhaseBuilding.EnergyFocus() {
		t.Errorf("unexpected energy focus %q", plan.EnergyFocus)
	}
	if plan.GeneratedAt.IsZero() {
		t.Error("GeneratedAt should be set")
	}
}

// TestInjuryImpactHasRestriction tests substring matching on restrictions.
func TestInjuryImpactHasRestriction(t *testing.T) {
	t.Parallel()

	impact := &InjuryImpact{
		Restrictions: []string{"high arm raises (moderate)", "prolonged standing (mild)"},
	}

	if !impact.HasRestriction("standing") {
		t.Error("expected standing restriction to be found")
	}
	if !impact.HasRestriction("ARM") {
		t.Error("matching should ignore case")
	}
	if impact.HasRestriction("twisting") {
		t.Error("twisting should not be found")
	}
}

// TestTotalExerciseMinutes tests duration summing.
func TestTotalExerciseMinutes(t *testing.T) {
	t.Parallel()

	plan := &WorkoutPlan{
		Exercises: []Exercise{
			{Name: "abdominal_breathing", DurationMinutes: 5},
			{Name: "cloud_hands", DurationMinutes: 7},
		},
	}

	if got := plan.TotalExerciseMinutes(); got != 12 {
		t.Errorf("TotalExerciseMinutes() = %d, expected 12", got)
	}
}
