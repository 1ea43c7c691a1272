package program

import (
	"context"
	"testing"

	"github.com/rehabflow/taichicoach/internal/config"
	"github.com/rehabflow/taichicoach/internal/model"
)

// fakeStore is an in-memory Store for program tests.
type fakeStore struct {
	sessions    []model.SessionRecord
	plans       []*model.WorkoutPlan
	assessments []*model.SafetyAssessment
}

func (f *fakeStore) InsertSession(_ context.Context, record *model.SessionRecord) (int64, error) {
	f.sessions = append(f.sessions, *record)
	return int64(len(f.sessions)), nil
}

func (f *fakeStore) ListSessions(_ context.Context, profile string, limit int) ([]model.SessionRecord, error) {
	var out []model.SessionRecord
	for _, s := range f.sessions {
		if s.Profile == profile {
			out = append(out, s)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (f *fakeStore) SavePlan(_ context.Context, plan *model.WorkoutPlan) error {
	f.plans = append(f.plans, plan)
	return nil
}

func (f *fakeStore) SaveAssessment(_ context.Context, assessment *model.SafetyAssessment) error {
	f.assessments = append(f.assessments, assessment)
	return nil
}

// testProfile returns a profile with a moderate shoulder injury.
func testProfile() *config.Profile {
	return &config.Profile{
		Name: "alice",
		Injuries: map[string]config.InjuryEntry{
			"left_shoulder": {Severity: "moderate"},
		},
	}
}

// session returns a valid record with the given pain level.
func session(pain int) *model.SessionRecord {
	return &model.SessionRecord{
		DurationMinutes:      15,
		PainLevel:            pain,
		FatigueLevel:         3,
		MoodLevel:            7,
		ExercisesCompleted:   4,
		CompletionPercentage: 100,
	}
}

// TestNewProgram tests construction defaults.
func TestNewProgram(t *testing.T) {
	t.Parallel()

	p, err := New(context.Background(), testProfile(), &fakeStore{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.CurrentWeek() != 1 {
		t.Errorf("current week = %d, expected 1", p.CurrentWeek())
	}
	if len(p.Injuries()) != 1 {
		t.Errorf("injuries = %v, expected one entry", p.Injuries())
	}
}

// TestNewProgramBadInjury tests rejection of unknown body parts.
func TestNewProgramBadInjury(t *testing.T) {
	t.Parallel()

	profile := &config.Profile{
		Name:     "bob",
		Injuries: map[string]config.InjuryEntry{"left_wing": {Severity: "mild"}},
	}
	if _, err := New(context.Background(), profile, &fakeStore{}); err == nil {
		t.Error("unknown body part should fail construction")
	}
}

// TestNewProgramResumesFromHistory tests week resumption from the store.
func TestNewProgramResumesFromHistory(t *testing.T) {
	t.Parallel()

	store := &fakeStore{sessions: []model.SessionRecord{
		{Profile: "alice", Week: 6, Phase: model.PhaseFoundation, CompletionPercentage: 100},
	}}

	p, err := New(context.Background(), testProfile(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CurrentWeek() != 7 {
		t.Errorf("current week = %d, expected resume at 7", p.CurrentWeek())
	}
}

// TestNewProgramStartWeekPin tests that an explicit start week wins over
// stored history.
func TestNewProgramStartWeekPin(t *testing.T) {
	t.Parallel()

	profile := testProfile()
	profile.StartWeek = 3
	store := &fakeStore{sessions: []model.SessionRecord{
		{Profile: "alice", Week: 10, Phase: model.PhaseFoundation, CompletionPercentage: 100},
	}}

	p, err := New(context.Background(), profile, store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CurrentWeek() != 3 {
		t.Errorf("current week = %d, expected pinned 3", p.CurrentWeek())
	}
}

// TestNewProgramWithWeekPin tests that an explicit week option wins over
// stored history, so a past week can be re-planned.
func TestNewProgramWithWeekPin(t *testing.T) {
	t.Parallel()

	store := &fakeStore{sessions: []model.SessionRecord{
		{Profile: "alice", Week: 10, Phase: model.PhaseFoundation, CompletionPercentage: 100},
	}}

	p, err := New(context.Background(), testProfile(), store, WithWeek(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CurrentWeek() != 3 {
		t.Errorf("current week = %d, expected pinned 3 despite history at 10", p.CurrentWeek())
	}
}

// TestCurrentPlan tests plan generation and persistence.
func TestCurrentPlan(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	p, err := New(context.Background(), testProfile(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plan, err := p.CurrentPlan(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Week != 1 || plan.Phase != model.PhaseFoundation {
		t.Errorf("plan week/phase = %d/%v, expected 1/foundation", plan.Week, plan.Phase)
	}
	if len(plan.Exercises) == 0 {
		t.Error("plan has no exercises")
	}
	if plan.Guidelines == nil {
		t.Error("plan missing safety guidelines")
	}
	if len(store.plans) != 1 {
		t.Errorf("stored plans = %d, expected 1", len(store.plans))
	}
}

// TestPlanForWeekValidation tests week bounds.
func TestPlanForWeekValidation(t *testing.T) {
	t.Parallel()

	p, err := New(context.Background(), testProfile(), &fakeStore{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, week := range []int{0, -1, model.ProgramWeeks + 1} {
		if _, err := p.PlanForWeek(context.Background(), week); err == nil {
			t.Errorf("week %d should be rejected", week)
		}
	}
}

// TestMaxFrequencyCap tests the profile's frequency override.
func TestMaxFrequencyCap(t *testing.T) {
	t.Parallel()

	profile := testProfile()
	profile.MaxFrequency = 2
	profile.StartWeek = 40 // mastery phase recommends 6 sessions

	p, err := New(context.Background(), profile, &fakeStore{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plan, err := p.CurrentPlan(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.FrequencyPerWeek != 2 {
		t.Errorf("frequency = %d, expected cap of 2", plan.FrequencyPerWeek)
	}
}

// TestCompleteSessionAdvancesWeek tests clearance-gated progression.
func TestCompleteSessionAdvancesWeek(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	p, err := New(context.Background(), testProfile(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assessment, err := p.CompleteSession(context.Background(), session(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !assessment.ClearanceForNextSession {
		t.Fatal("comfortable session should earn clearance")
	}
	if p.CurrentWeek() != 2 {
		t.Errorf("current week = %d, expected advance to 2", p.CurrentWeek())
	}
	if len(store.sessions) != 1 || len(store.assessments) != 1 {
		t.Errorf("stored %d sessions and %d assessments, expected 1 each",
			len(store.sessions), len(store.assessments))
	}
	if store.sessions[0].Profile != "alice" || store.sessions[0].Week != 1 {
		t.Errorf("stored session = %+v, expected profile/week filled in", store.sessions[0])
	}
}

// TestCompleteSessionFreezesOnRed tests that a red session withholds
// progression.
func TestCompleteSessionFreezesOnRed(t *testing.T) {
	t.Parallel()

	p, err := New(context.Background(), testProfile(), &fakeStore{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assessment, err := p.CompleteSession(context.Background(), session(8))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if assessment.Level != model.SafetyRed {
		t.Fatalf("level = %v, expected RED", assessment.Level)
	}
	if p.CurrentWeek() != 1 {
		t.Errorf("current week = %d, expected frozen at 1", p.CurrentWeek())
	}
}

// TestCompleteSessionRejectsInvalid tests record validation.
func TestCompleteSessionRejectsInvalid(t *testing.T) {
	t.Parallel()

	p, err := New(context.Background(), testProfile(), &fakeStore{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := session(2)
	bad.PainLevel = 11
	if _, err := p.CompleteSession(context.Background(), bad); err == nil {
		t.Error("out-of-range pain level should be rejected")
	}
}

// TestReport tests the combined progress report.
func TestReport(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	p, err := New(context.Background(), testProfile(), store)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for range 4 {
		if _, err := p.CompleteSession(context.Background(), session(1)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	report, err := p.Report(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Profile != "alice" {
		t.Errorf("profile = %q, expected alice", report.Profile)
	}
	if report.Analysis.Status != "ok" {
		t.Errorf("analysis status = %q, expected ok", report.Analysis.Status)
	}
	if report.InjuryStatus.Status != "improving" {
		t.Errorf("injury status = %q, expected improving for low pain", report.InjuryStatus.Status)
	}
	if report.CurrentWeek != 5 {
		t.Errorf("current week = %d, expected 5 after four cleared sessions", report.CurrentWeek)
	}
}

// TestReportNoData tests the empty-history report.
func TestReportNoData(t *testing.T) {
	t.Parallel()

	p, err := New(context.Background(), testProfile(), &fakeStore{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report, err := p.Report(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Analysis.Status != "no_data" {
		t.Errorf("analysis status = %q, expected no_data", report.Analysis.Status)
	}
	if report.InjuryStatus.Status != "recovering" {
		t.Errorf("injury status = %q, expected recovering", report.InjuryStatus.Status)
	}
}

// TestReportNeedsAttention tests risk-driven status.
func TestReportNeedsAttention(t *testing.T) {
	t.Parallel()

	p, err := New(context.Background(), testProfile(), &fakeStore{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Three consecutive pain >= 5 sessions trip the persistent pain risk.
	for range 3 {
		if _, err := p.CompleteSession(context.Background(), session(5)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	report, err := p.Report(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.InjuryStatus.Status != "needs_attention" {
		t.Errorf("injury status = %q, expected needs_attention", report.InjuryStatus.Status)
	}
}
