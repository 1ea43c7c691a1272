package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rehabflow/taichicoach/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WritePlan outputs the weekly plan in human-readable format.
func (w *SimpleWriter) WritePlan(plan *model.WorkoutPlan) (int, error) {
	var sb strings.Builder

	writeRule(&sb, "=")
	sb.WriteString("                      TAI CHI WORKOUT PLAN\n")
	writeRule(&sb, "=")
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Week:       %d of %d\n", plan.Week, model.ProgramWeeks))
	sb.WriteString(fmt.Sprintf("Phase:      %s\n", phaseTitle(plan.Phase)))
	sb.WriteString(fmt.Sprintf("Duration:   %d minutes\n", plan.DurationMinutes))
	sb.WriteString(fmt.Sprintf("Frequency:  %d sessions per week\n", plan.FrequencyPerWeek))
	sb.WriteString(fmt.Sprintf("Energy:     %s\n", plan.EnergyFocus))
	sb.WriteString("\n")

	w.writeSection(&sb, "EXERCISES")
	for i, e := range plan.Exercises {
		sb.WriteString(fmt.Sprintf("  %d. %s (%d min, %s)\n",
			i+1, displayName(e), e.DurationMinutes, e.Category))
		if w.verbose && e.Description != "" {
			sb.WriteString(fmt.Sprintf("     %s\n", e.Description))
		}
		for _, m := range e.Modifications {
			sb.WriteString(fmt.Sprintf("     * %s\n", m))
		}
	}
	sb.WriteString("\n")

	if len(plan.Precautions) > 0 {
		w.writeSection(&sb, "PRECAUTIONS")
		writeBullets(&sb, plan.Precautions)
	}

	if len(plan.FocusPoints) > 0 {
		w.writeSection(&sb, "FOCUS POINTS")
		writeBullets(&sb, plan.FocusPoints)
	}

	if plan.Guidelines != nil {
		w.writeSection(&sb, "SAFETY GUIDELINES")
		writeBullets(&sb, plan.Guidelines.DailyPrecautions)
		if len(plan.Guidelines.WarningSigns) > 0 {
			sb.WriteString("\n  Stop immediately if you notice:\n")
			writeBullets(&sb, plan.Guidelines.WarningSigns)
		}
	}

	return w.output.Write([]byte(sb.String()))
}

// WriteAssessment outputs the safety assessment in human-readable format.
func (w *SimpleWriter) WriteAssessment(assessment *model.SafetyAssessment) (int, error) {
	var sb strings.Builder

	writeRule(&sb, "=")
	sb.WriteString("                       SAFETY ASSESSMENT\n")
	writeRule(&sb, "=")
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Week:       %d\n", assessment.Week))
	sb.WriteString(fmt.Sprintf("Level:      %s\n", assessment.LevelText))
	if assessment.ClearanceForNextSession {
		sb.WriteString("Clearance:  granted for next session\n")
	} else {
		sb.WriteString("Clearance:  WITHHELD - do not continue until symptoms resolve\n")
	}
	sb.WriteString("\n")

	if len(assessment.ImmediateActions) > 0 {
		w.writeSection(&sb, "IMMEDIATE ACTIONS")
		writeBullets(&sb, assessment.ImmediateActions)
	}
	if len(assessment.LongTermRecommendations) > 0 {
		w.writeSection(&sb, "RECOMMENDATIONS")
		writeBullets(&sb, assessment.LongTermRecommendations)
	}
	if len(assessment.RiskFactors) > 0 {
		w.writeSection(&sb, "RISK FACTORS")
		writeBullets(&sb, assessment.RiskFactors)
	}

	return w.output.Write([]byte(sb.String()))
}

// WriteProgress outputs the progress report in human-readable format.
func (w *SimpleWriter) WriteProgress(report *model.ProgressReport) (int, error) {
	var sb strings.Builder

	writeRule(&sb, "=")
	sb.WriteString("                        PROGRESS REPORT\n")
	writeRule(&sb, "=")
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Week:           %d of %d (%s phase)\n",
		report.CurrentWeek, model.ProgramWeeks, report.CurrentPhase))
	sb.WriteString(fmt.Sprintf("Injury status:  %s\n", report.InjuryStatus.Status))
	sb.WriteString(fmt.Sprintf("Sessions:       %d analyzed\n", report.Analysis.SessionsAnalyzed))
	sb.WriteString("\n")

	if report.Analysis.Status == "no_data" {
		sb.WriteString("No session history recorded yet. Complete a session to begin tracking.\n")
		return w.output.Write([]byte(sb.String()))
	}

	m := report.Analysis.Metrics
	w.writeSection(&sb, "PERFORMANCE")
	sb.WriteString(fmt.Sprintf("  Avg duration:    %.1f min\n", m.AvgDuration))
	sb.WriteString(fmt.Sprintf("  Avg pain:        %.1f / 10\n", m.AvgPain))
	sb.WriteString(fmt.Sprintf("  Avg fatigue:     %.1f / 10\n", m.AvgFatigue))
	sb.WriteString(fmt.Sprintf("  Completion:      %.0f%%\n", m.CompletionRate))
	sb.WriteString(fmt.Sprintf("  Consistency:     %.0f / 100\n", m.ConsistencyScore))
	sb.WriteString("\n")

	w.writeSection(&sb, "TRENDS")
	sb.WriteString(fmt.Sprintf("  Pain:        %s\n", report.Analysis.Trends.Pain))
	sb.WriteString(fmt.Sprintf("  Duration:    %s\n", report.Analysis.Trends.Duration))
	sb.WriteString(fmt.Sprintf("  Completion:  %s\n", report.Analysis.Trends.Completion))
	sb.WriteString("\n")

	if len(report.Analysis.Recommendations) > 0 {
		w.writeSection(&sb, "RECOMMENDATIONS")
		writeBullets(&sb, report.Analysis.Recommendations)
	}

	risks := append(append([]string(nil), report.Analysis.RiskFactors...), report.SafetyRiskFactors...)
	if len(risks) > 0 {
		w.writeSection(&sb, "RISK FACTORS")
		writeBullets(&sb, risks)
	}

	return w.output.Write([]byte(sb.String()))
}

// writeSection writes a section header with horizontal rules.
func (w *SimpleWriter) writeSection(sb *strings.Builder, title string) {
	writeRule(sb, "-")
	sb.WriteString(title)
	sb.WriteString("\n")
	writeRule(sb, "-")
}

// writeRule writes a 70-character horizontal rule.
func writeRule(sb *strings.Builder, ch string) {
	sb.WriteString(strings.Repeat(ch, 70))
	sb.WriteString("\n")
}

// writeBullets writes an indented bullet list followed by a blank line.
func writeBullets(sb *strings.Builder, items []string) {
	for _, item := range items {
		sb.WriteString("  - ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}
