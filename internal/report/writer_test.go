package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rehabflow/taichicoach/internal/model"
)

// testPlan builds a plan with one modified exercise and guidelines.
func testPlan() *model.WorkoutPlan {
	plan := model.NewWorkoutPlan("default", 3)
	plan.DurationMinutes = 16
	plan.Exercises = []model.Exercise{
		{
			Name:            "abdominal_breathing",
			Category:        model.CategoryBreathing,
			Difficulty:      1,
			DurationMinutes: 5,
		},
		{
			Name:            "cloud_hands",
			Category:        model.CategoryQigong,
			Difficulty:      2,
			DurationMinutes: 5,
			Modifications:   []string{"keep arms below shoulder height"},
		},
	}
	plan.Precautions = []string{"high arm raises (moderate)"}
	plan.FocusPoints = []string{"lower body stability and rooting"}
	plan.Guidelines = &model.SafetyGuidelines{
		DailyPrecautions:    []string{"Avoid raising arms above shoulder level"},
		WarningSigns:        []string{"Radiating pain down the arm"},
		EmergencyProcedures: model.EmergencyProcedures,
	}
	return plan
}

// testProgress builds a progress report with metrics and one risk.
func testProgress() *model.ProgressReport {
	return &model.ProgressReport{
		Profile:      "default",
		CurrentWeek:  5,
		CurrentPhase: model.PhaseFoundation,
		InjuryStatus: model.InjuryStatus{Status: "improving"},
		Analysis: model.ProgressAnalysis{
			Status: "ok",
			Metrics: model.PerformanceMetrics{
				AvgDuration:      18.5,
				AvgPain:          2.3,
				AvgFatigue:       3.1,
				CompletionRate:   92,
				ConsistencyScore: 88,
			},
			Trends: model.TrendSet{
				Pain:       model.TrendDecreasing,
				Duration:   model.TrendIncreasing,
				Completion: model.TrendStable,
			},
			Recommendations:  []string{"consider_moderate_progression"},
			SessionsAnalyzed: 4,
		},
		SafetyRiskFactors: []string{"PERSISTENT_HIGH_FATIGUE"},
		GeneratedAt:       time.Now(),
	}
}

// TestSimpleWriterPlan tests the text plan rendering.
func TestSimpleWriterPlan(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewSimpleWriter(&buf)

	n, err := w.WritePlan(testPlan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != buf.Len() {
		t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
	}

	output := buf.String()
	for _, want := range []string{
		"TAI CHI WORKOUT PLAN",
		"Week:       3 of 52",
		"Foundation",
		"Cloud Hands",
		"keep arms below shoulder height",
		"PRECAUTIONS",
		"Radiating pain down the arm",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

// TestSimpleWriterVerbose tests that verbose mode adds descriptions.
func TestSimpleWriterVerbose(t *testing.T) {
	t.Parallel()

	plan := testPlan()
	plan.Exercises[0].Description = "Focus on diaphragmatic breathing"

	var quiet, verbose bytes.Buffer
	if _, err := NewSimpleWriter(&quiet).WritePlan(plan); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewSimpleWriter(&verbose, WithVerbose(true)).WritePlan(plan); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(quiet.String(), "diaphragmatic") {
		t.Error("non-verbose output contains description")
	}
	if !strings.Contains(verbose.String(), "diaphragmatic") {
		t.Error("verbose output missing description")
	}
}

// TestSimpleWriterAssessment tests the text assessment rendering.
func TestSimpleWriterAssessment(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assessment := &model.SafetyAssessment{
		Week:             4,
		Level:            model.SafetyRed,
		LevelText:        "RED",
		ImmediateActions: []string{"STOP_ALL_ACTIVITY_IMMEDIATELY"},
	}

	if _, err := NewSimpleWriter(&buf).WriteAssessment(assessment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "RED") || !strings.Contains(output, "WITHHELD") {
		t.Errorf("output missing red verdict: %s", output)
	}
}

// TestSimpleWriterProgressNoData tests the empty-history message.
func TestSimpleWriterProgressNoData(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	report := &model.ProgressReport{
		CurrentWeek:  1,
		CurrentPhase: model.PhaseFoundation,
		InjuryStatus: model.InjuryStatus{Status: "recovering"},
		Analysis:     model.ProgressAnalysis{Status: "no_data"},
	}

	if _, err := NewSimpleWriter(&buf).WriteProgress(report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No session history") {
		t.Errorf("output missing no-data message: %s", buf.String())
	}
}

// TestMarkdownWriterPlan tests the markdown plan rendering.
func TestMarkdownWriterPlan(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).WritePlan(testPlan()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"# Tai Chi Workout Plan",
		"## Exercises",
		"Cloud Hands",
		"```mermaid",
		"Practice Time by Category",
		"## Safety Guidelines",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

// TestMarkdownWriterProgress tests the markdown progress rendering.
func TestMarkdownWriterProgress(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).WriteProgress(testProgress()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"# Progress Report",
		"## Performance",
		"decreasing",
		"PERSISTENT_HIGH_FATIGUE",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

// TestJSONWriterPlan tests that JSON plan output round trips.
func TestJSONWriterPlan(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewJSONWriter(&buf, WithPrettyPrint()).WritePlan(testPlan()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded model.WorkoutPlan
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Week != 3 || len(decoded.Exercises) != 2 {
		t.Errorf("decoded plan = week %d with %d exercises, expected 3/2",
			decoded.Week, len(decoded.Exercises))
	}
}

// TestJSONWriterCompact tests compact output mode.
func TestJSONWriterCompact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewJSONWriter(&buf).WriteProgress(testProgress()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := strings.TrimSuffix(buf.String(), "\n")
	if strings.Contains(output, "\n") {
		t.Error("compact output contains newlines")
	}
}

// TestMultiWriter tests fan-out to multiple writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	var text, js bytes.Buffer
	mw := NewMultiWriter(NewSimpleWriter(&text), NewJSONWriter(&js))

	n, err := mw.WritePlan(testPlan())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text.Len() == 0 || js.Len() == 0 {
		t.Error("multi writer skipped a destination")
	}
	if n != text.Len()+js.Len() {
		t.Errorf("reported %d bytes, wrote %d", n, text.Len()+js.Len())
	}
}
