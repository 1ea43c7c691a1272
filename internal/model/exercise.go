package model

import (
	"fmt"
	"strings"
)

// ExerciseCategory groups exercises by their role in a session.
type ExerciseCategory string

const (
	// CategoryBreathing contains breath-control exercises.
	CategoryBreathing ExerciseCategory = "breathing"

	// CategoryWarmup contains mobility and preparation exercises.
	CategoryWarmup ExerciseCategory = "warmup"

	// CategoryQigong contains standing and flowing qigong practices.
	CategoryQigong ExerciseCategory = "qigong"

	// CategoryForms contains Tai Chi form movements.
	CategoryForms ExerciseCategory = "forms"

	// CategoryCooldown contains closing and recovery exercises.
	CategoryCooldown ExerciseCategory = "cooldown"
)

// ParseExerciseCategory converts a string to an ExerciseCategory.
func ParseExerciseCategory(s string) (ExerciseCategory, error) {
	switch ExerciseCategory(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryBreathing:
		return CategoryBreathing, nil
	case CategoryWarmup:
		return CategoryWarmup, nil
	case CategoryQigong:
		return CategoryQigong, nil
	case CategoryForms:
		return CategoryForms, nil
	case CategoryCooldown:
		return CategoryCooldown, nil
	default:
		return "", fmt.Errorf("unknown exercise category: %q", s)
	}
}

// Impact describes the physical load an exercise places on the body.
type Impact string

const (
	// ImpactLow places minimal load on joints and injured tissue.
	ImpactLow Impact = "low"

	// ImpactMedium involves weight shifting or sustained stances.
	ImpactMedium Impact = "medium"

	// ImpactHigh involves deep stances or dynamic transitions.
	ImpactHigh Impact = "high"
)

// Exercise is a single prescribed practice element within a workout plan.
type Exercise struct {
	// Name is the library identifier, e.g. "cloud_hands".
	Name string `json:"name"`

	// Category is the exercise's role in the session.
	Category ExerciseCategory `json:"category"`

	// Difficulty grades the exercise from 1 (basic) to 5 (master).
	Difficulty int `json:"difficulty"`

	// Impact is the physical load level.
	Impact Impact `json:"impact"`

	// DurationMinutes is the prescribed practice time for this exercise.
	// Injury modifications may reduce it, but never below three minutes
	// because shorter slots don't allow the movement to settle.
	DurationMinutes int `json:"duration_minutes"`

	// Description explains how to perform the exercise.
	Description string `json:"description,omitempty"`

	// Benefits lists what the exercise develops.
	Benefits []string `json:"benefits,omitempty"`

	// Modifications lists injury-specific adjustments applied to this
	// exercise for the current profile. Empty when no injury affects it.
	Modifications []string `json:"modifications,omitempty"`

	// Contraindications lists body parts whose severe injury should skip
	// this exercise entirely.
	Contraindications []BodyPart `json:"contraindications,omitempty"`
}

// DisplayName returns the exercise name with underscores replaced by
// spaces, suitable for report rendering.
func (e Exercise) DisplayName() string {
	return strings.ReplaceAll(e.Name, "_", " ")
}
