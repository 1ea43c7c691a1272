package database

import (
	"context"
	"testing"
	"time"

	"github.com/rehabflow/taichicoach/internal/model"
)

// openTestDB creates a SessionDB in a temporary directory.
func openTestDB(t *testing.T) *SessionDB {
	t.Helper()

	sdb, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if err := sdb.Close(); err != nil {
			t.Errorf("failed to close database: %v", err)
		}
	})
	return sdb
}

// TestOpenRequiresExisting tests the CreateIfNotExists=false path.
func TestOpenRequiresExisting(t *testing.T) {
	t.Parallel()

	opts := Options{CreateIfNotExists: false}
	if _, err := Open(t.TempDir(), opts); err == nil {
		t.Error("opening a missing database without create should fail")
	}
}

// TestInsertAndListSessions tests session round trips.
func TestInsertAndListSessions(t *testing.T) {
	t.Parallel()

	sdb := openTestDB(t)
	ctx := context.Background()

	records := []model.SessionRecord{
		{Profile: "default", Phase: model.PhaseFoundation, Week: 1, DurationMinutes: 15, PainLevel: 2, FatigueLevel: 3, MoodLevel: 7, ExercisesCompleted: 4, CompletionPercentage: 100, Notes: "felt good"},
		{Profile: "default", Phase: model.PhaseFoundation, Week: 2, DurationMinutes: 18, PainLevel: 3, FatigueLevel: 4, MoodLevel: 6, ExercisesCompleted: 4, CompletionPercentage: 90},
		{Profile: "other", Phase: model.PhaseFoundation, Week: 1, DurationMinutes: 10, PainLevel: 1, FatigueLevel: 1, MoodLevel: 8, CompletionPercentage: 100},
	}
	for i := range records {
		id, err := sdb.InsertSession(ctx, &records[i])
		if err != nil {
			t.Fatalf("failed to insert session: %v", err)
		}
		if id == 0 {
			t.Error("insert returned zero ID")
		}
	}

	got, err := sdb.ListSessions(ctx, "default", 0)
	if err != nil {
		t.Fatalf("failed to list sessions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d sessions, expected 2", len(got))
	}
	if got[0].Week != 1 || got[1].Week != 2 {
		t.Errorf("sessions out of order: weeks %d, %d", got[0].Week, got[1].Week)
	}
	if got[0].Notes != "felt good" {
		t.Errorf("notes = %q, expected round trip", got[0].Notes)
	}
	if got[0].Phase != model.PhaseFoundation {
		t.Errorf("phase = %v, expected foundation", got[0].Phase)
	}
	if got[0].Timestamp.IsZero() {
		t.Error("timestamp not parsed")
	}

	count, err := sdb.SessionCount(ctx, "default")
	if err != nil {
		t.Fatalf("failed to count sessions: %v", err)
	}
	if count != 2 {
		t.Errorf("session count = %d, expected 2", count)
	}
}

// TestListSessionsLimit tests that the limit keeps the newest sessions
// in ascending order.
func TestListSessionsLimit(t *testing.T) {
	t.Parallel()

	sdb := openTestDB(t)
	ctx := context.Background()

	for week := 1; week <= 5; week++ {
		record := model.SessionRecord{
			Profile: "default", Phase: model.PhaseFoundation,
			Week: week, PainLevel: week, CompletionPercentage: 100,
		}
		if _, err := sdb.InsertSession(ctx, &record); err != nil {
			t.Fatalf("failed to insert session: %v", err)
		}
	}

	got, err := sdb.ListSessions(ctx, "default", 3)
	if err != nil {
		t.Fatalf("failed to list sessions: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d sessions, expected 3", len(got))
	}
	// The newest three, oldest first.
	for i, want := range []int{3, 4, 5} {
		if got[i].Week != want {
			t.Errorf("session[%d].Week = %d, expected %d", i, got[i].Week, want)
		}
	}
}

// TestSavePlanUpsert tests that regenerating a week replaces its plan.
func TestSavePlanUpsert(t *testing.T) {
	t.Parallel()

	sdb := openTestDB(t)
	ctx := context.Background()

	plan := model.NewWorkoutPlan("default", 5)
	plan.DurationMinutes = 20
	if err := sdb.SavePlan(ctx, plan); err != nil {
		t.Fatalf("failed to save plan: %v", err)
	}

	plan.DurationMinutes = 25
	if err := sdb.SavePlan(ctx, plan); err != nil {
		t.Fatalf("failed to save updated plan: %v", err)
	}

	got, err := sdb.GetPlan(ctx, "default", 5)
	if err != nil {
		t.Fatalf("failed to get plan: %v", err)
	}
	if got == nil {
		t.Fatal("plan not found")
	}
	if got.DurationMinutes != 25 {
		t.Errorf("duration = %d, expected updated value 25", got.DurationMinutes)
	}

	weeks, err := sdb.ListPlannedWeeks(ctx, "default")
	if err != nil {
		t.Fatalf("failed to list planned weeks: %v", err)
	}
	if len(weeks) != 1 || weeks[0] != 5 {
		t.Errorf("planned weeks = %v, expected [5]", weeks)
	}
}

// TestGetPlanMissing tests the not-found contract.
func TestGetPlanMissing(t *testing.T) {
	t.Parallel()

	sdb := openTestDB(t)

	got, err := sdb.GetPlan(context.Background(), "default", 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, expected nil for missing plan", got)
	}
}

// TestSaveAndLatestAssessment tests assessment round trips.
func TestSaveAndLatestAssessment(t *testing.T) {
	t.Parallel()

	sdb := openTestDB(t)
	ctx := context.Background()

	first := &model.SafetyAssessment{
		Profile: "default", Week: 1,
		Level: model.SafetyGreen, LevelText: "GREEN",
		ClearanceForNextSession: true,
		AssessedAt:              time.Now(),
	}
	second := &model.SafetyAssessment{
		Profile: "default", Week: 2,
		Level: model.SafetyRed, LevelText: "RED",
		ImmediateActions:        []string{"STOP_ALL_ACTIVITY_IMMEDIATELY"},
		ClearanceForNextSession: false,
		AssessedAt:              time.Now(),
	}

	if err := sdb.SaveAssessment(ctx, first); err != nil {
		t.Fatalf("failed to save assessment: %v", err)
	}
	if err := sdb.SaveAssessment(ctx, second); err != nil {
		t.Fatalf("failed to save assessment: %v", err)
	}

	got, err := sdb.LatestAssessment(ctx, "default")
	if err != nil {
		t.Fatalf("failed to get assessment: %v", err)
	}
	if got == nil {
		t.Fatal("assessment not found")
	}
	if got.Week != 2 || got.Level != model.SafetyRed {
		t.Errorf("latest assessment = week %d level %v, expected week 2 RED", got.Week, got.Level)
	}
	if got.ClearanceForNextSession {
		t.Error("clearance should be withheld")
	}
}

// TestLatestAssessmentMissing tests the not-found contract.
func TestLatestAssessmentMissing(t *testing.T) {
	t.Parallel()

	sdb := openTestDB(t)

	got, err := sdb.LatestAssessment(context.Background(), "default")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, expected nil for missing assessment", got)
	}
}

// TestParseTimestamp tests the multi-format timestamp parser.
func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input string
		valid bool
	}{
		{"2026-08-27 10:30:00", true},
		{"2026-08-27T10:30:00Z", true},
		{"2026-08-27T10:30:00+09:00", true},
		{"not a timestamp", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got := parseTimestamp(tc.input)
			if tc.valid && got.IsZero() {
				t.Errorf("parseTimestamp(%q) returned zero time", tc.input)
			}
			if !tc.valid && !got.IsZero() {
				t.Errorf("parseTimestamp(%q) = %v, expected zero time", tc.input, got)
			}
		})
	}
}
