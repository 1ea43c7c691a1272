package safety

import (
	"sync"
	"time"

	"github.com/rehabflow/taichicoach/internal/model"
)

// Assessment thresholds. A session at or above a red threshold grades
// red, and red pain additionally withholds clearance; at or above a
// yellow threshold practice continues with reduced intensity.
const (
	// painRedThreshold is the pain level that stops all activity.
	painRedThreshold = 7

	// painYellowThreshold is the pain level that reduces intensity.
	painYellowThreshold = 4

	// fatigueRedThreshold is the fatigue level that grades the session
	// red and forces a rest day.
	fatigueRedThreshold = 8

	// completionMinThreshold is the completion percentage below which the
	// plan is considered too demanding.
	completionMinThreshold = 50

	// historySize is how many recent sessions the monitor keeps for
	// trend detection.
	historySize = 5

	// trendSessions is how many recent sessions a pattern must span
	// before it is reported as a risk factor.
	trendSessions = 3

	// persistentFatigueLevel is the fatigue floor for the persistent
	// high fatigue risk factor.
	persistentFatigueLevel = 6
)

// Monitor is the safety monitoring agent. It keeps a small rolling
// session history so consecutive assessments can detect worsening
// patterns a single session cannot show.
type Monitor struct {
	name      string
	specialty string

	mu      sync.Mutex
	history []model.SessionRecord
}

// New creates the safety monitor agent with an empty history.
func New() *Monitor {
	return &Monitor{
		name:      "Safety Guardian",
		specialty: "Injury prevention and risk assessment",
	}
}

// Name returns the agent's display name.
func (m *Monitor) Name() string { return m.name }

// Specialty returns the agent's role description.
func (m *Monitor) Specialty() string { return m.specialty }

// Seed replaces the monitor's rolling history, keeping the most recent
// historySize records. Used when resuming a profile from storage so
// trend detection survives restarts. Records must be ordered oldest
// first.
func (m *Monitor) Seed(records []model.SessionRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(records) > historySize {
		records = records[len(records)-historySize:]
	}
	m.history = append([]model.SessionRecord(nil), records...)
}

// AssessSession grades a session's feedback and returns the verdict.
// The session joins the rolling history before trend checks run, so a
// pattern ending at this session is detected immediately.
func (m *Monitor) AssessSession(record model.SessionRecord) *model.SafetyAssessment {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = append(m.history, record)
	if len(m.history) > historySize {
		m.history = m.history[len(m.history)-historySize:]
	}

	assessment := &model.SafetyAssessment{
		Profile:                 record.Profile,
		Week:                    record.Week,
		Level:                   model.SafetyGreen,
		ClearanceForNextSession: true,
		AssessedAt:              time.Now(),
	}

	switch {
	case record.PainLevel >= painRedThreshold:
		assessment.Level = model.SafetyRed
		assessment.ClearanceForNextSession = false
		assessment.ImmediateActions = append(assessment.ImmediateActions,
			"STOP_ALL_ACTIVITY_IMMEDIATELY",
			"REST_UNTIL_PAIN_SUBSIDES",
			"CONSULT_HEALTHCARE_PROVIDER")
	case record.PainLevel >= painYellowThreshold:
		assessment.Level = model.SafetyYellow
		assessment.ImmediateActions = append(assessment.ImmediateActions,
			"REDUCE_INTENSITY_BY_50_PERCENT",
			"FOCUS_ON_BREATHING_EXERCISES",
			"MONITOR_PAIN_CLOSELY")
	}

	// Extreme fatigue grades RED on its own, but unlike red pain it does
	// not withhold clearance; a rest day resolves it.
	if record.FatigueLevel >= fatigueRedThreshold {
		assessment.Level = model.SafetyRed
		assessment.ImmediateActions = append(assessment.ImmediateActions,
			"REQUIRE_COMPLETE_REST_DAY")
		assessment.LongTermRecommendations = append(assessment.LongTermRecommendations,
			"REVIEW_SLEEP_AND_RECOVERY")
	}

	if record.CompletionPercentage < completionMinThreshold {
		assessment.RiskFactors = append(assessment.RiskFactors, "LOW_COMPLETION_RATE")
		assessment.LongTermRecommendations = append(assessment.LongTermRecommendations,
			"SIMPLIFY_WORKOUT_COMPLEXITY")
	}

	assessment.RiskFactors = append(assessment.RiskFactors, m.trendRisks()...)
	assessment.LevelText = assessment.Level.String()
	return assessment
}

// trendRisks inspects the last trendSessions history entries for
// patterns that a single session cannot reveal. Callers must hold mu.
func (m *Monitor) trendRisks() []string {
	if len(m.history) < trendSessions {
		return nil
	}
	recent := m.history[len(m.history)-trendSessions:]

	var risks []string

	increasing := true
	for i := 1; i < len(recent); i++ {
		if recent[i].PainLevel <= recent[i-1].PainLevel {
			increasing = false
			break
		}
	}
	if increasing {
		risks = append(risks, "INCREASING_PAIN_TREND")
	}

	highFatigue := true
	for _, r := range recent {
		if r.FatigueLevel < persistentFatigueLevel {
			highFatigue = false
			break
		}
	}
	if highFatigue {
		risks = append(risks, "PERSISTENT_HIGH_FATIGUE")
	}

	return risks
}

// Guidelines builds the injury-specific safety rules attached to a plan:
// every injured body part contributes its daily precautions and warning
// signs, and the universal emergency procedures close the list.
func (m *Monitor) Guidelines(injuries model.Injuries) *model.SafetyGuidelines {
	guidelines := &model.SafetyGuidelines{
		EmergencyProcedures: append([]string(nil), model.EmergencyProcedures...),
	}

	for _, bp := range injuries.SortedParts() {
		guidance := model.GetGuidance(bp)
		for _, p := range guidance.DailyPrecautions {
			guidelines.DailyPrecautions = appendUnique(guidelines.DailyPrecautions, p)
		}
		for _, w := range guidance.WarningSigns {
			guidelines.WarningSigns = appendUnique(guidelines.WarningSigns, w)
		}
	}

	return guidelines
}

// appendUnique appends s to list unless it is already present. Symmetric
// injuries share guidance and would otherwise duplicate every line.
func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
