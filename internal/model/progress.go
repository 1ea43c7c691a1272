package model

import "time"

// Trend is the direction of a tracked metric over the analysis window.
type Trend string

const (
	// TrendIncreasing means the metric rose by more than the threshold.
	TrendIncreasing Trend = "increasing"

	// TrendDecreasing means the metric fell by more than the threshold.
	TrendDecreasing Trend = "decreasing"

	// TrendStable means the metric stayed within the threshold.
	TrendStable Trend = "stable"
)

// PerformanceMetrics aggregates session feedback over the analysis window.
type PerformanceMetrics struct {
	// AvgDuration is the mean session length in minutes.
	AvgDuration float64 `json:"avg_duration"`

	// AvgPain is the mean self-reported pain level.
	AvgPain float64 `json:"avg_pain"`

	// AvgFatigue is the mean self-reported fatigue level.
	AvgFatigue float64 `json:"avg_fatigue"`

	// CompletionRate is the mean completion percentage.
	CompletionRate float64 `json:"completion_rate"`

	// ConsistencyScore grades session-to-session regularity from 0 to 100.
	// Lower variation in completion and duration scores higher.
	ConsistencyScore float64 `json:"consistency_score"`
}

// TrendSet holds the direction of each tracked metric.
type TrendSet struct {
	// Pain is the pain level trend. Decreasing is good.
	Pain Trend `json:"pain"`

	// Duration is the session duration trend. Increasing usually means
	// growing capacity.
	Duration Trend `json:"duration"`

	// Completion is the completion rate trend.
	Completion Trend `json:"completion"`
}

// InjuryStatus summarizes recovery state for the progress report.
type InjuryStatus struct {
	// Status is a coarse classification: "recovering", "improving", or
	// "needs_attention".
	Status string `json:"status"`

	// Injuries is the tracked injury set.
	Injuries Injuries `json:"injuries,omitempty"`
}

// ProgressAnalysis is the progress tracker's output for a session window.
type ProgressAnalysis struct {
	// Status is "ok" when enough sessions exist, "no_data" otherwise.
	Status string `json:"status"`

	// Metrics aggregates the window's session feedback.
	Metrics PerformanceMetrics `json:"performance_metrics"`

	// Trends holds the per-metric direction over the window.
	Trends TrendSet `json:"trends"`

	// Recommendations lists adaptive programming advice derived from the
	// window, ordered most important first.
	Recommendations []string `json:"recommendations"`

	// RiskFactors lists patterns that warrant attention.
	RiskFactors []string `json:"risk_factors,omitempty"`

	// SessionsAnalyzed is the number of sessions in the window.
	SessionsAnalyzed int `json:"sessions_analyzed"`
}

// ProgressReport is the combined monthly/on-demand report shown to the
// practitioner.
type ProgressReport struct {
	// Profile is the practitioner profile reported on.
	Profile string `json:"profile,omitempty"`

	// CurrentWeek is the program week the practitioner is on.
	CurrentWeek int `json:"current_week"`

	// CurrentPhase is the progression phase for CurrentWeek.
	CurrentPhase WorkoutPhase `json:"current_phase"`

	// InjuryStatus summarizes recovery state.
	InjuryStatus InjuryStatus `json:"injury_status"`

	// Analysis is the tracker's window analysis.
	Analysis ProgressAnalysis `json:"progress_analysis"`

	// SafetyRiskFactors lists multi-session risks from the safety monitor.
	SafetyRiskFactors []string `json:"safety_risk_factors,omitempty"`

	// GeneratedAt is when the report was produced.
	GeneratedAt time.Time `json:"generated_at"`
}
