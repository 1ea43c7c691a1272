package model

import (
	"fmt"
	"strings"
)

// BodyPart identifies an injurable body region tracked by the program.
//
// Design decision: We use string-typed constants rather than iota because
// body parts appear verbatim in YAML profiles, JSON reports, and the
// database. String values keep those representations stable and
// human-readable without a parallel text mapping.
type BodyPart string

const (
	// BodyPartLeftShoulder is the left shoulder region.
	BodyPartLeftShoulder BodyPart = "left_shoulder"

	// BodyPartRightShoulder is the right shoulder region.
	BodyPartRightShoulder BodyPart = "right_shoulder"

	// BodyPartLeftCalf is the left calf region.
	BodyPartLeftCalf BodyPart = "left_calf"

	// BodyPartRightCalf is the right calf region.
	BodyPartRightCalf BodyPart = "right_calf"

	// BodyPartLowerBack is the lumbar spine region.
	BodyPartLowerBack BodyPart = "lower_back"

	// BodyPartUpperBack is the thoracic spine region.
	BodyPartUpperBack BodyPart = "upper_back"

	// BodyPartNeck is the cervical spine region.
	BodyPartNeck BodyPart = "neck"

	// BodyPartHips is the hip region.
	BodyPartHips BodyPart = "hips"
)

// AllBodyParts lists every supported body part in display order.
var AllBodyParts = []BodyPart{
	BodyPartLeftShoulder,
	BodyPartRightShoulder,
	BodyPartLeftCalf,
	BodyPartRightCalf,
	BodyPartLowerBack,
	BodyPartUpperBack,
	BodyPartNeck,
	BodyPartHips,
}

// ParseBodyPart converts a string to a BodyPart.
// Input is case-insensitive and accepts both "left_shoulder" and
// "left shoulder" forms since profiles are hand-written.
func ParseBodyPart(s string) (BodyPart, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	for _, bp := range AllBodyParts {
		if string(bp) == normalized {
			return bp, nil
		}
	}
	return "", fmt.Errorf("unknown body part: %q", s)
}

// IsShoulder reports whether the body part is either shoulder.
// Shoulder injuries share modification rules, so this check appears in
// several agents.
func (b BodyPart) IsShoulder() bool {
	return b == BodyPartLeftShoulder || b == BodyPartRightShoulder
}

// IsCalf reports whether the body part is either calf.
func (b BodyPart) IsCalf() bool {
	return b == BodyPartLeftCalf || b == BodyPartRightCalf
}

// IsBack reports whether the body part is the lower or upper back.
func (b BodyPart) IsBack() bool {
	return b == BodyPartLowerBack || b == BodyPartUpperBack
}

// Display returns a human-readable form ("left shoulder").
func (b BodyPart) Display() string {
	return strings.ReplaceAll(string(b), "_", " ")
}

// InjurySeverity grades how serious an injury is.
type InjurySeverity string

const (
	// SeverityMild indicates a minor injury requiring light modifications.
	SeverityMild InjurySeverity = "mild"

	// SeverityModerate indicates an injury requiring substantial modifications.
	SeverityModerate InjurySeverity = "moderate"

	// SeveritySevere indicates an injury requiring maximum caution and
	// compensatory practice.
	SeveritySevere InjurySeverity = "severe"
)

// ParseInjurySeverity converts a string to an InjurySeverity.
func ParseInjurySeverity(s string) (InjurySeverity, error) {
	switch InjurySeverity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityMild:
		return SeverityMild, nil
	case SeverityModerate:
		return SeverityModerate, nil
	case SeveritySevere:
		return SeveritySevere, nil
	default:
		return "", fmt.Errorf("unknown injury severity: %q", s)
	}
}

// Injuries maps injured body parts to their severity.
// This is the primary input to plan generation and safety guidelines.
type Injuries map[BodyPart]InjurySeverity

// SortedParts returns the injured body parts in AllBodyParts order.
// Map iteration order is random in Go; reports and plans must be
// deterministic so output can be diffed between runs.
func (in Injuries) SortedParts() []BodyPart {
	parts := make([]BodyPart, 0, len(in))
	for _, bp := range AllBodyParts {
		if _, ok := in[bp]; ok {
			parts = append(parts, bp)
		}
	}
	return parts
}
