package coach

import (
	"fmt"

	"github.com/rehabflow/taichicoach/internal/model"
)

// Duration sizing constants.
const (
	// minSessionMinutes is the floor for a whole session. Below ten
	// minutes there is not enough time for warmup plus one practice.
	minSessionMinutes = 10

	// maxSessionMinutes caps session length. Rehabilitation practice past
	// an hour raises fatigue-related injury risk.
	maxSessionMinutes = 60

	// minExerciseMinutes is the floor for a single exercise after injury
	// trims. Shorter slots don't allow the movement to settle.
	minExerciseMinutes = 3

	// standingReduction is subtracted from the session when the profile
	// restricts prolonged standing.
	standingReduction = 5
)

// Coach is the exercise prescription agent.
//
// Design decision: The coach is a struct rather than free functions so it
// can carry its identity for reports and, later, per-practitioner tuning
// state. It is stateless between calls and safe for concurrent use.
type Coach struct {
	// name identifies the agent in reports and logs.
	name string

	// specialty describes the agent's role.
	specialty string
}

// New creates the coach agent.
func New() *Coach {
	return &Coach{
		name:      "TaiChi Coach Pro",
		specialty: "Exercise prescription and modification",
	}
}

// Name returns the agent's display name.
func (c *Coach) Name() string { return c.name }

// Specialty returns the agent's role description.
func (c *Coach) Specialty() string { return c.specialty }

// AnalyzeInjuries produces the impact assessment for a set of injuries.
// Restrictions are tagged with the severity of the injury that imposes
// them; focus areas and rehabilitation goals come from the per-body-part
// guidance table.
func (c *Coach) AnalyzeInjuries(injuries model.Injuries) *model.InjuryImpact {
	impact := &model.InjuryImpact{}

	for _, bp := range injuries.SortedParts() {
		severity := injuries[bp]
		guidance := model.GetGuidance(bp)

		for _, restriction := range guidance.Avoid {
			impact.Restrictions = appendUnique(impact.Restrictions,
				fmt.Sprintf("%s (%s)", restriction, severity))
		}
		for _, m := range guidance.Modify {
			impact.Modifications = appendUnique(impact.Modifications, m)
		}
		for _, comp := range guidance.Compensatory {
			impact.CompensatoryStrategies = appendUnique(impact.CompensatoryStrategies, comp)
		}
		for _, focus := range guidance.FocusAreas {
			impact.FocusAreas = appendUnique(impact.FocusAreas, focus)
		}
		impact.RehabilitationFocus = appendUnique(impact.RehabilitationFocus,
			guidance.RehabilitationFocus)
	}

	return impact
}

// phaseExercise pairs a library exercise name with its base duration for
// a phase.
type phaseExercise struct {
	name     string
	duration int
}

// phaseSelections maps each phase to its exercise prescription.
// Foundation builds basics, building introduces the first forms, and the
// later phases practice the linked sequence.
var phaseSelections = map[model.WorkoutPhase][]phaseExercise{
	model.PhaseFoundation: {
		{"abdominal_breathing", 5},
		{"joint_rotations", 5},
		{"standing_meditation", 8},
		{"cloud_hands", 7},
	},
	model.PhaseBuilding: {
		{"reverse_breathing", 5},
		{"gentle_stretching", 7},
		{"cloud_hands", 10},
		{"commencement", 8},
		{"ward_off", 10},
	},
	model.PhaseIntegration: {
		{"reverse_breathing", 5},
		{"gentle_stretching", 7},
		{"cloud_hands", 8},
		{"commencement", 5},
		{"ward_off", 8},
		{"roll_back", 8},
		{"press", 8},
	},
	model.PhaseMastery: {
		{"reverse_breathing", 5},
		{"gentle_stretching", 7},
		{"cloud_hands", 8},
		{"commencement", 5},
		{"ward_off", 8},
		{"roll_back", 8},
		{"press", 8},
	},
}

// SelectExercises returns the exercise prescription for a phase.
// Exercises are copies; callers may modify them freely.
func (c *Coach) SelectExercises(phase model.WorkoutPhase) []model.Exercise {
	selection, ok := phaseSelections[phase]
	if !ok {
		selection = phaseSelections[model.PhaseFoundation]
	}

	exercises := make([]model.Exercise, 0, len(selection))
	for _, pe := range selection {
		if e, found := LibraryExercise(pe.name, pe.duration); found {
			exercises = append(exercises, e)
		}
	}
	return exercises
}

// OptimalDuration calculates the session length for a phase and week,
// adjusted for injuries. Each phase starts from its own base and grows
// weekly; a standing restriction shortens the session, and the result is
// clamped to [minSessionMinutes, maxSessionMinutes].
func (c *Coach) OptimalDuration(phase model.WorkoutPhase, week int, impact *model.InjuryImpact) int {
	var duration int
	switch phase {
	case model.PhaseFoundation:
		duration = 10 + week*2
	case model.PhaseBuilding:
		duration = 20 + max(0, week-model.FoundationWeeks)*3
	case model.PhaseIntegration:
		duration = 25 + max(0, week-model.FoundationWeeks-model.BuildingWeeks)*2
	case model.PhaseMastery:
		duration = 30 + max(0, week-model.FoundationWeeks-model.BuildingWeeks-model.IntegrationWeeks)
	default:
		duration = 15
	}

	if impact != nil && impact.HasRestriction("standing") {
		duration = max(minSessionMinutes, duration-standingReduction)
	}

	return min(duration, maxSessionMinutes)
}

// ApplyModifications adapts exercises to the practitioner's injuries.
//
// Severely injured body parts skip contraindicated exercises entirely;
// otherwise the exercise stays with modifications appended and its
// duration trimmed. The shoulder and standing rules key off the impact
// assessment's restriction text; the back rule keys off the injury map
// because lower and upper back restrictions share no wording.
func (c *Coach) ApplyModifications(exercises []model.Exercise, injuries model.Injuries, impact *model.InjuryImpact) []model.Exercise {
	if impact == nil {
		impact = &model.InjuryImpact{}
	}

	modified := make([]model.Exercise, 0, len(exercises))
	for _, exercise := range exercises {
		if skipForSevereInjury(exercise, injuries) {
			continue
		}

		if impact.HasRestriction("shoulder") {
			if exercise.Name == "cloud_hands" || exercise.Name == "ward_off" {
				exercise.Modifications = append(exercise.Modifications,
					"keep arms below shoulder height",
					"reduce arm movement range by 50%")
				exercise.DurationMinutes = max(minExerciseMinutes, exercise.DurationMinutes-2)
			}
		}

		if impact.HasRestriction("standing") {
			if exercise.Category == model.CategoryQigong || exercise.Category == model.CategoryForms {
				exercise.Modifications = append(exercise.Modifications,
					"use chair for support if needed",
					"shorter stance width")
				exercise.DurationMinutes = max(minExerciseMinutes, exercise.DurationMinutes-3)
			}
		}

		if hasBackInjury(injuries) {
			if exercise.Name == "ward_off" || exercise.Name == "press" {
				exercise.Modifications = append(exercise.Modifications,
					"maintain neutral spine",
					"engage core throughout movement")
				exercise.DurationMinutes = max(minExerciseMinutes, exercise.DurationMinutes-2)
			}
		}

		modified = append(modified, exercise)
	}

	return modified
}

// hasBackInjury reports whether the profile declares a lower or upper
// back injury of any severity.
func hasBackInjury(injuries model.Injuries) bool {
	for bp := range injuries {
		if bp.IsBack() {
			return true
		}
	}
	return false
}

// skipForSevereInjury reports whether an exercise is contraindicated by a
// severe injury. Mild and moderate injuries modify exercises instead.
func skipForSevereInjury(exercise model.Exercise, injuries model.Injuries) bool {
	for _, bp := range exercise.Contraindications {
		if injuries[bp] == model.SeveritySevere {
			return true
		}
	}
	return false
}

// appendUnique appends s to list unless it is already present.
// Restriction and focus lists are shown to the practitioner; duplicates
// from symmetric injuries (both shoulders) would read as noise.
func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
