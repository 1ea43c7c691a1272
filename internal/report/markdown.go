package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/rehabflow/taichicoach/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for sharing plans with healthcare providers.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WritePlan outputs the weekly plan in Markdown format.
func (w *MarkdownWriter) WritePlan(plan *model.WorkoutPlan) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Tai Chi Workout Plan")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Week", fmt.Sprintf("%d of %d", plan.Week, model.ProgramWeeks)},
			{"Phase", phaseTitle(plan.Phase)},
			{"Session Duration", strconv.Itoa(plan.DurationMinutes) + " minutes"},
			{"Frequency", strconv.Itoa(plan.FrequencyPerWeek) + " sessions per week"},
			{"Energy Focus", plan.EnergyFocus},
		},
	})
	md.PlainText("")

	w.writeExercises(md, plan)
	w.writeCategoryChart(md, plan)

	if len(plan.Precautions) > 0 {
		md.H2("Precautions")
		md.PlainText("")
		md.BulletList(plan.Precautions...)
		md.PlainText("")
	}

	if len(plan.FocusPoints) > 0 {
		md.H2("Focus Points")
		md.PlainText("")
		md.BulletList(plan.FocusPoints...)
		md.PlainText("")
	}

	w.writeGuidelines(md, plan.Guidelines)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeExercises writes the exercise prescription table with per-exercise
// modifications as collapsible details.
func (w *MarkdownWriter) writeExercises(md *markdown.Markdown, plan *model.WorkoutPlan) {
	md.H2("Exercises")
	md.PlainText("")

	if len(plan.Exercises) == 0 {
		md.PlainText("No exercises prescribed.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(plan.Exercises))
	for i, e := range plan.Exercises {
		modified := "-"
		if len(e.Modifications) > 0 {
			modified = "yes"
		}
		rows[i] = []string{
			displayName(e),
			string(e.Category),
			strconv.Itoa(e.DurationMinutes) + " min",
			strconv.Itoa(e.Difficulty),
			modified,
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Exercise", "Category", "Duration", "Difficulty", "Modified"},
		Rows:   rows,
	})
	md.PlainText("")

	for _, e := range plan.Exercises {
		if len(e.Modifications) > 0 {
			md.Details(displayName(e)+" modifications", strings.Join(e.Modifications, "; "))
		}
	}
	md.PlainText("")
}

// writeCategoryChart writes a mermaid pie chart of practice minutes per
// exercise category.
func (w *MarkdownWriter) writeCategoryChart(md *markdown.Markdown, plan *model.WorkoutPlan) {
	if len(plan.Exercises) == 0 {
		return
	}

	minutes := make(map[model.ExerciseCategory]int)
	for _, e := range plan.Exercises {
		minutes[e.Category] += e.DurationMinutes
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Practice Time by Category"),
		piechart.WithShowData(true),
	)

	// Fixed category order keeps the chart stable across runs.
	for _, category := range []model.ExerciseCategory{
		model.CategoryBreathing,
		model.CategoryWarmup,
		model.CategoryQigong,
		model.CategoryForms,
		model.CategoryCooldown,
	} {
		if m := minutes[category]; m > 0 {
			chart.LabelAndIntValue(string(category), uint64(m))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeGuidelines writes the safety guidelines section.
func (w *MarkdownWriter) writeGuidelines(md *markdown.Markdown, guidelines *model.SafetyGuidelines) {
	if guidelines == nil {
		return
	}

	md.H2("Safety Guidelines")
	md.PlainText("")

	if len(guidelines.DailyPrecautions) > 0 {
		md.H3("Daily Precautions")
		md.PlainText("")
		md.BulletList(guidelines.DailyPrecautions...)
		md.PlainText("")
	}

	if len(guidelines.WarningSigns) > 0 {
		md.Warningf("Stop immediately if you notice: %s", strings.Join(guidelines.WarningSigns, "; "))
		md.PlainText("")
	}

	if len(guidelines.EmergencyProcedures) > 0 {
		md.H3("Emergency Procedures")
		md.PlainText("")
		md.OrderedList(guidelines.EmergencyProcedures...)
		md.PlainText("")
	}
}

// WriteAssessment outputs the safety assessment in Markdown format.
func (w *MarkdownWriter) WriteAssessment(assessment *model.SafetyAssessment) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Safety Assessment")
	md.PlainText("")

	clearance := "granted"
	if !assessment.ClearanceForNextSession {
		clearance = "withheld"
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Week", strconv.Itoa(assessment.Week)},
			{"Level", assessment.LevelText},
			{"Clearance", clearance},
		},
	})
	md.PlainText("")

	switch assessment.Level {
	case model.SafetyRed:
		md.Cautionf("Stop all activity. Rest until pain subsides and consult a healthcare provider before resuming.")
	case model.SafetyYellow:
		md.Warningf("Reduce intensity and monitor symptoms closely during the next session.")
	default:
		md.Tip("Session within all safety thresholds. Continue the program.")
	}
	md.PlainText("")

	if len(assessment.ImmediateActions) > 0 {
		md.H2("Immediate Actions")
		md.PlainText("")
		md.BulletList(assessment.ImmediateActions...)
		md.PlainText("")
	}
	if len(assessment.LongTermRecommendations) > 0 {
		md.H2("Recommendations")
		md.PlainText("")
		md.BulletList(assessment.LongTermRecommendations...)
		md.PlainText("")
	}
	if len(assessment.RiskFactors) > 0 {
		md.H2("Risk Factors")
		md.PlainText("")
		md.BulletList(assessment.RiskFactors...)
		md.PlainText("")
	}

	w.writeFooter(md)
	return len(md.String()), md.Build()
}

// WriteProgress outputs the progress report in Markdown format.
func (w *MarkdownWriter) WriteProgress(report *model.ProgressReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Progress Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Week", fmt.Sprintf("%d of %d", report.CurrentWeek, model.ProgramWeeks)},
			{"Phase", phaseTitle(report.CurrentPhase)},
			{"Injury Status", report.InjuryStatus.Status},
			{"Sessions Analyzed", strconv.Itoa(report.Analysis.SessionsAnalyzed)},
		},
	})
	md.PlainText("")

	if report.Analysis.Status == "no_data" {
		md.Note("No session history recorded yet. Complete a session to begin tracking.")
		w.writeFooter(md)
		return len(md.String()), md.Build()
	}

	m := report.Analysis.Metrics
	md.H2("Performance")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value", "Trend"},
		Rows: [][]string{
			{"Pain", fmt.Sprintf("%.1f / 10", m.AvgPain), string(report.Analysis.Trends.Pain)},
			{"Duration", fmt.Sprintf("%.1f min", m.AvgDuration), string(report.Analysis.Trends.Duration)},
			{"Completion", fmt.Sprintf("%.0f%%", m.CompletionRate), string(report.Analysis.Trends.Completion)},
			{"Fatigue", fmt.Sprintf("%.1f / 10", m.AvgFatigue), "-"},
			{"Consistency", fmt.Sprintf("%.0f / 100", m.ConsistencyScore), "-"},
		},
	})
	md.PlainText("")

	if len(report.Analysis.Recommendations) > 0 {
		md.H2("Recommendations")
		md.PlainText("")
		md.BulletList(report.Analysis.Recommendations...)
		md.PlainText("")
	}

	risks := append(append([]string(nil), report.Analysis.RiskFactors...), report.SafetyRiskFactors...)
	if len(risks) > 0 {
		md.H2("Risk Factors")
		md.PlainText("")
		md.BulletList(risks...)
		md.PlainText("")
		md.Importantf("Outstanding risk factors detected. Review with a healthcare provider if they persist.")
		md.PlainText("")
	}

	w.writeFooter(md)
	return len(md.String()), md.Build()
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by taichicoach*")
}
