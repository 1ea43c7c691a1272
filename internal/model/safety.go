package model

import "time"

// SafetyLevel represents the overall risk classification of a session.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons (red outranks yellow outranks green). The
// String() method provides human-readable output, and SafetyAssessment
// carries the text alongside the numeric value for serialization.
type SafetyLevel int

const (
	// SafetyGreen indicates the session was within all thresholds.
	// Practice continues unchanged.
	SafetyGreen SafetyLevel = iota

	// SafetyYellow indicates elevated pain or fatigue.
	// Intensity should be reduced and symptoms monitored.
	SafetyYellow

	// SafetyRed indicates a red threshold was exceeded. Red pain
	// withholds clearance until symptoms subside; red fatigue forces a
	// rest day but clearance stands.
	SafetyRed
)

// String returns a human-readable representation of the safety level.
func (l SafetyLevel) String() string {
	switch l {
	case SafetyGreen:
		return "GREEN"
	case SafetyYellow:
		return "YELLOW"
	case SafetyRed:
		return "RED"
	default:
		return "UNKNOWN"
	}
}

// SafetyAssessment is the safety monitor's verdict on a single session.
type SafetyAssessment struct {
	// Profile is the practitioner profile assessed.
	Profile string `json:"profile,omitempty"`

	// Week is the program week of the assessed session.
	Week int `json:"week"`

	// Level is the overall risk classification.
	Level SafetyLevel `json:"level"`

	// LevelText is the human-readable level for serialization.
	LevelText string `json:"level_text"`

	// ImmediateActions lists steps to take right now.
	ImmediateActions []string `json:"immediate_actions,omitempty"`

	// LongTermRecommendations lists adjustments for upcoming sessions.
	LongTermRecommendations []string `json:"long_term_recommendations,omitempty"`

	// RiskFactors lists trends and conditions that raise concern.
	RiskFactors []string `json:"risk_factors,omitempty"`

	// ClearanceForNextSession is false when practice must pause.
	ClearanceForNextSession bool `json:"clearance_for_next_session"`

	// AssessedAt is when the assessment was produced.
	AssessedAt time.Time `json:"assessed_at"`
}

// SafetyGuidelines are injury-specific practice rules attached to a plan.
type SafetyGuidelines struct {
	// DailyPrecautions lists habits to maintain during every practice.
	DailyPrecautions []string `json:"daily_precautions,omitempty"`

	// WarningSigns lists symptoms that require stopping immediately.
	WarningSigns []string `json:"warning_signs,omitempty"`

	// EmergencyProcedures lists what to do when a warning sign occurs.
	EmergencyProcedures []string `json:"emergency_procedures"`
}
