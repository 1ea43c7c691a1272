package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rehabflow/taichicoach/internal/coach"
	"github.com/rehabflow/taichicoach/internal/model"
	"github.com/rehabflow/taichicoach/internal/safety"
)

// newTestFactory returns a pipeline factory with the standard step chain.
func newTestFactory(injuries model.Injuries) func() *Pipeline {
	c := coach.New()
	m := safety.New()
	return func() *Pipeline {
		p := New()
		p.AddSteps(DefaultSteps(c, m, injuries)...)
		return p
	}
}

// TestPlanWeeks tests concurrent multi-week planning.
func TestPlanWeeks(t *testing.T) {
	t.Parallel()

	bp := NewBatchPlanner(newTestFactory(model.Injuries{}), WithConcurrency(4))

	weeks := []int{1, 13, 25, 37}
	plans, err := bp.PlanWeeks(context.Background(), "default", weeks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plans) != len(weeks) {
		t.Fatalf("got %d plans, expected %d", len(plans), len(weeks))
	}

	// Results keep input order even though weeks complete concurrently.
	expectedPhases := []model.WorkoutPhase{
		model.PhaseFoundation,
		model.PhaseBuilding,
		model.PhaseIntegration,
		model.PhaseMastery,
	}
	for i, plan := range plans {
		if plan == nil {
			t.Fatalf("plan[%d] is nil", i)
		}
		if plan.Week != weeks[i] {
			t.Errorf("plan[%d].Week = %d, expected %d", i, plan.Week, weeks[i])
		}
		if plan.Phase != expectedPhases[i] {
			t.Errorf("plan[%d].Phase = %v, expected %v", i, plan.Phase, expectedPhases[i])
		}
	}
}

// TestPlanWeeksCancellation tests that a cancelled context aborts the batch.
func TestPlanWeeksCancellation(t *testing.T) {
	t.Parallel()

	bp := NewBatchPlanner(newTestFactory(model.Injuries{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bp.PlanWeeks(ctx, "default", []int{1, 2, 3})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, expected context.Canceled", err)
	}
}

// TestPlanWeeksWithCallback tests streaming plan delivery.
func TestPlanWeeksWithCallback(t *testing.T) {
	t.Parallel()

	bp := NewBatchPlanner(newTestFactory(model.Injuries{}), WithConcurrency(2))

	var mu sync.Mutex
	received := make(map[int]*model.WorkoutPlan)

	weeks := []int{1, 2, 3}
	err := bp.PlanWeeksWithCallback(context.Background(), "default", weeks,
		func(plan *model.WorkoutPlan, index int) {
			mu.Lock()
			defer mu.Unlock()
			received[index] = plan
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(received) != len(weeks) {
		t.Fatalf("callback fired %d times, expected %d", len(received), len(weeks))
	}
	for i, week := range weeks {
		if received[i] == nil || received[i].Week != week {
			t.Errorf("callback index %d carried wrong plan: %+v", i, received[i])
		}
	}
}
