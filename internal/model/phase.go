package model

import (
	"fmt"
	"strings"
)

// WorkoutPhase is one of the four progression phases of the 12-month program.
type WorkoutPhase string

const (
	// PhaseFoundation covers weeks 1-12: basics, breathing, and rooting.
	PhaseFoundation WorkoutPhase = "foundation"

	// PhaseBuilding covers weeks 13-24: flow, coordination, and first forms.
	PhaseBuilding WorkoutPhase = "building"

	// PhaseIntegration covers weeks 25-36: linked forms and energy circulation.
	PhaseIntegration WorkoutPhase = "integration"

	// PhaseMastery covers weeks 37-52: the full sequence with refinement.
	PhaseMastery WorkoutPhase = "mastery"
)

// Program horizon constants.
// The phase lengths are 12/12/12/16 weeks, totalling the 52-week horizon.
const (
	// FoundationWeeks is the length of the foundation phase.
	FoundationWeeks = 12

	// BuildingWeeks is the length of the building phase.
	BuildingWeeks = 12

	// IntegrationWeeks is the length of the integration phase.
	IntegrationWeeks = 12

	// MasteryWeeks is the length of the mastery phase.
	MasteryWeeks = 16

	// ProgramWeeks is the total program length in weeks.
	ProgramWeeks = FoundationWeeks + BuildingWeeks + IntegrationWeeks + MasteryWeeks
)

// PhaseForWeek maps a program week (1-based) to its phase.
// Weeks past the program horizon stay in the mastery phase so long-running
// practice keeps producing plans.
func PhaseForWeek(week int) WorkoutPhase {
	switch {
	case week <= FoundationWeeks:
		return PhaseFoundation
	case week <= FoundationWeeks+BuildingWeeks:
		return PhaseBuilding
	case week <= FoundationWeeks+BuildingWeeks+IntegrationWeeks:
		return PhaseIntegration
	default:
		return PhaseMastery
	}
}

// ParseWorkoutPhase converts a string to a WorkoutPhase.
func ParseWorkoutPhase(s string) (WorkoutPhase, error) {
	switch WorkoutPhase(strings.ToLower(strings.TrimSpace(s))) {
	case PhaseFoundation:
		return PhaseFoundation, nil
	case PhaseBuilding:
		return PhaseBuilding, nil
	case PhaseIntegration:
		return PhaseIntegration, nil
	case PhaseMastery:
		return PhaseMastery, nil
	default:
		return "", fmt.Errorf("unknown workout phase: %q", s)
	}
}

// EnergyFocus returns the internal-energy theme emphasized during the phase.
func (p WorkoutPhase) EnergyFocus() string {
	switch p {
	case PhaseFoundation:
		return "grounding and centering"
	case PhaseBuilding:
		return "flow and coordination"
	case PhaseIntegration:
		return "internal energy circulation"
	case PhaseMastery:
		return "effortless power and mindfulness"
	default:
		return "mind-body connection"
	}
}

// Frequency returns the recommended practice sessions per week for the phase.
func (p WorkoutPhase) Frequency() int {
	switch p {
	case PhaseFoundation:
		return 3
	case PhaseBuilding:
		return 4
	case PhaseIntegration:
		return 5
	case PhaseMastery:
		return 6
	default:
		return 3
	}
}
