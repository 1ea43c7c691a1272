package progress

import (
	"math"

	"github.com/rehabflow/taichicoach/internal/model"
)

// Analysis thresholds.
const (
	// DefaultWindow is the number of recent sessions analyzed when the
	// caller does not specify one. Four sessions is roughly a week of
	// practice at the program's early frequency.
	DefaultWindow = 4

	// trendThreshold is the minimum first-to-last delta before a metric
	// counts as moving. Smaller swings are reported as stable.
	trendThreshold = 0.5

	// consecutiveRiskSessions is how many sessions in a row a warning
	// pattern must persist before it becomes a risk factor.
	consecutiveRiskSessions = 3
)

// Tracker is the progress tracking agent.
type Tracker struct {
	name      string
	specialty string
}

// New creates the progress tracker agent.
func New() *Tracker {
	return &Tracker{
		name:      "Progress Tracker",
		specialty: "Performance analysis and adaptation",
	}
}

// Name returns the agent's display name.
func (t *Tracker) Name() string { return t.name }

// Specialty returns the agent's role description.
func (t *Tracker) Specialty() string { return t.specialty }

// AnalyzeTrends analyzes the most recent window sessions and returns
// metrics, per-metric trends, recommendations and risk factors. Records
// must be ordered oldest first. A window of zero or less falls back to
// DefaultWindow. With no records the analysis has Status "no_data" and a
// single baseline recommendation.
func (t *Tracker) AnalyzeTrends(records []model.SessionRecord, window int) *model.ProgressAnalysis {
	if window <= 0 {
		window = DefaultWindow
	}

	if len(records) == 0 {
		return &model.ProgressAnalysis{
			Status:          "no_data",
			Recommendations: []string{"continue_baseline"},
		}
	}

	if len(records) > window {
		records = records[len(records)-window:]
	}

	metrics := calculateMetrics(records)

	return &model.ProgressAnalysis{
		Status:  "ok",
		Metrics: metrics,
		Trends: model.TrendSet{
			Pain:       trendOf(records, func(r model.SessionRecord) float64 { return float64(r.PainLevel) }),
			Duration:   trendOf(records, func(r model.SessionRecord) float64 { return float64(r.DurationMinutes) }),
			Completion: trendOf(records, func(r model.SessionRecord) float64 { return float64(r.CompletionPercentage) }),
		},
		Recommendations:  recommendations(metrics),
		RiskFactors:      riskFactors(records),
		SessionsAnalyzed: len(records),
	}
}

// calculateMetrics aggregates the window into performance metrics.
func calculateMetrics(records []model.SessionRecord) model.PerformanceMetrics {
	var duration, pain, fatigue, completion []float64
	for _, r := range records {
		duration = append(duration, float64(r.DurationMinutes))
		pain = append(pain, float64(r.PainLevel))
		fatigue = append(fatigue, float64(r.FatigueLevel))
		completion = append(completion, float64(r.CompletionPercentage))
	}

	// Consistency rewards low session-to-session variation. Completion
	// swings weigh heavier than duration swings because duration grows
	// by design as the program advances.
	completionScore := math.Max(0, 100-stdDev(completion)*10)
	durationScore := math.Max(0, 100-stdDev(duration)*5)

	return model.PerformanceMetrics{
		AvgDuration:      mean(duration),
		AvgPain:          mean(pain),
		AvgFatigue:       mean(fatigue),
		CompletionRate:   mean(completion),
		ConsistencyScore: (completionScore + durationScore) / 2,
	}
}

// trendOf classifies a metric's direction by comparing the window's last
// value against its first.
func trendOf(records []model.SessionRecord, metric func(model.SessionRecord) float64) model.Trend {
	if len(records) < 2 {
		return model.TrendStable
	}
	delta := metric(records[len(records)-1]) - metric(records[0])
	switch {
	case delta > trendThreshold:
		return model.TrendIncreasing
	case delta < -trendThreshold:
		return model.TrendDecreasing
	default:
		return model.TrendStable
	}
}

// recommendations derives adaptive programming advice from the window's
// aggregate metrics. Pain advice comes first because it overrides
// everything else.
func recommendations(m model.PerformanceMetrics) []string {
	var recs []string

	switch {
	case m.AvgPain > 6:
		recs = append(recs,
			"reduce_intensity_50_percent",
			"focus_on_breathing_exercises",
			"consult_healthcare_provider_if_persistent")
	case m.AvgPain > 4:
		recs = append(recs, "maintain_current_intensity")
	}

	if m.AvgFatigue > 6 {
		recs = append(recs,
			"ensure_adequate_rest",
			"reduce_frequency_by_one_session",
			"focus_on_recovery_nutrition")
	}

	switch {
	case m.CompletionRate > 90:
		recs = append(recs, "consider_moderate_progression")
	case m.CompletionRate < 70:
		recs = append(recs, "simplify_exercises_temporarily")
	}

	if len(recs) == 0 {
		recs = append(recs, "continue_current_program")
	}
	return recs
}

// riskFactors flags patterns that persist across the last
// consecutiveRiskSessions sessions.
func riskFactors(records []model.SessionRecord) []string {
	if len(records) < consecutiveRiskSessions {
		return nil
	}
	recent := records[len(records)-consecutiveRiskSessions:]

	var risks []string

	persistentPain := true
	for _, r := range recent {
		if r.PainLevel < 5 {
			persistentPain = false
			break
		}
	}
	if persistentPain {
		risks = append(risks, "persistent_moderate_pain")
	}

	lowCompletion := true
	for _, r := range recent {
		if r.CompletionPercentage >= 60 {
			lowCompletion = false
			break
		}
	}
	if lowCompletion {
		risks = append(risks, "consistent_low_completion")
	}

	return risks
}

// mean returns the arithmetic mean of values, or 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev returns the population standard deviation of values.
func stdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return math.Sqrt(sum / float64(len(values)))
}
