package model

import (
	"fmt"
	"time"
)

// SessionRecord captures the practitioner's feedback for one completed
// training session. Records are persisted and feed both the progress
// tracker and the safety monitor.
type SessionRecord struct {
	// ID is the database identifier. Zero for unsaved records.
	ID int64 `json:"id,omitempty"`

	// Profile is the practitioner profile the session belongs to.
	Profile string `json:"profile,omitempty"`

	// Timestamp is when the session was recorded.
	Timestamp time.Time `json:"timestamp"`

	// Phase is the progression phase the session was performed in.
	Phase WorkoutPhase `json:"phase"`

	// Week is the 1-based program week of the session.
	Week int `json:"week"`

	// DurationMinutes is the actual practice time.
	DurationMinutes int `json:"duration_minutes"`

	// PainLevel is self-reported pain on a 0-10 scale.
	PainLevel int `json:"pain_level"`

	// FatigueLevel is self-reported fatigue on a 0-10 scale.
	FatigueLevel int `json:"fatigue_level"`

	// MoodLevel is self-reported mood on a 0-10 scale.
	MoodLevel int `json:"mood_level"`

	// ExercisesCompleted is how many prescribed exercises were performed.
	ExercisesCompleted int `json:"exercises_completed"`

	// ModificationsUsed is how many injury modifications were applied.
	ModificationsUsed int `json:"modifications_used"`

	// CompletionPercentage is how much of the plan was completed (0-100).
	CompletionPercentage int `json:"completion_percentage"`

	// Notes is free-text feedback from the practitioner. May contain
	// personal health information; the log package masks it.
	Notes string `json:"notes,omitempty"`
}

// Validate checks that all self-reported scales are in range.
// Returns a specific error describing the first out-of-range field.
func (s *SessionRecord) Validate() error {
	if s.Week < 1 {
		return fmt.Errorf("invalid week %d: must be at least 1", s.Week)
	}
	if s.PainLevel < 0 || s.PainLevel > 10 {
		return fmt.Errorf("invalid pain level %d: must be 0-10", s.PainLevel)
	}
	if s.FatigueLevel < 0 || s.FatigueLevel > 10 {
		return fmt.Errorf("invalid fatigue level %d: must be 0-10", s.FatigueLevel)
	}
	if s.MoodLevel < 0 || s.MoodLevel > 10 {
		return fmt.Errorf("invalid mood level %d: must be 0-10", s.MoodLevel)
	}
	if s.CompletionPercentage < 0 || s.CompletionPercentage > 100 {
		return fmt.Errorf("invalid completion percentage %d: must be 0-100", s.CompletionPercentage)
	}
	if s.DurationMinutes < 0 {
		return fmt.Errorf("invalid duration %d: must be non-negative", s.DurationMinutes)
	}
	return nil
}
