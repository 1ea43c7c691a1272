package coach

import "github.com/rehabflow/taichicoach/internal/model"

// exerciseLibrary is the coach's built-in exercise catalog, keyed by
// exercise name. Durations are not stored here; they are assigned during
// phase selection because the same exercise is practiced longer in later
// phases.
//
// Design decision: We use a flat map keyed by name rather than nesting by
// category because lookups during modification and contraindication checks
// are by name. Category lives on the Exercise itself.
var exerciseLibrary = map[string]model.Exercise{
	"abdominal_breathing": {
		Name:        "abdominal_breathing",
		Category:    model.CategoryBreathing,
		Difficulty:  1,
		Impact:      model.ImpactLow,
		Description: "Focus on diaphragmatic breathing",
		Benefits:    []string{"relaxation", "oxygenation", "stress reduction"},
	},
	"reverse_breathing": {
		Name:        "reverse_breathing",
		Category:    model.CategoryBreathing,
		Difficulty:  2,
		Impact:      model.ImpactLow,
		Description: "Advanced breathing technique with abdominal control",
		Benefits:    []string{"energy flow", "core engagement", "mental focus"},
	},
	"joint_rotations": {
		Name:        "joint_rotations",
		Category:    model.CategoryWarmup,
		Difficulty:  1,
		Impact:      model.ImpactLow,
		Description: "Gentle rotation of all major joints",
		Benefits:    []string{"mobility", "circulation", "preparation"},
		Contraindications: []model.BodyPart{
			model.BodyPartNeck,
		},
	},
	"gentle_stretching": {
		Name:        "gentle_stretching",
		Category:    model.CategoryWarmup,
		Difficulty:  1,
		Impact:      model.ImpactLow,
		Description: "Light stretching for major muscle groups",
		Benefits:    []string{"flexibility", "injury prevention", "body awareness"},
	},
	"standing_meditation": {
		Name:        "standing_meditation",
		Category:    model.CategoryQigong,
		Difficulty:  1,
		Impact:      model.ImpactLow,
		Description: "Static standing practice with focus on alignment",
		Benefits:    []string{"rooting", "posture", "mental calm"},
		Contraindications: []model.BodyPart{
			model.BodyPartLeftCalf,
			model.BodyPartRightCalf,
		},
	},
	"cloud_hands": {
		Name:        "cloud_hands",
		Category:    model.CategoryQigong,
		Difficulty:  2,
		Impact:      model.ImpactMedium,
		Description: "Flowing arm movements with weight shifting",
		Benefits:    []string{"coordination", "flow", "balance"},
		Contraindications: []model.BodyPart{
			model.BodyPartLeftShoulder,
			model.BodyPartRightShoulder,
		},
	},
	"commencement": {
		Name:        "commencement",
		Category:    model.CategoryForms,
		Difficulty:  1,
		Impact:      model.ImpactLow,
		Description: "Opening movement of Tai Chi forms",
		Benefits:    []string{"centering", "beginning awareness", "energy gathering"},
	},
	"ward_off": {
		Name:        "ward_off",
		Category:    model.CategoryForms,
		Difficulty:  2,
		Impact:      model.ImpactMedium,
		Description: "Defensive posture with circular energy",
		Benefits:    []string{"structure", "warding energy", "upper-lower integration"},
		Contraindications: []model.BodyPart{
			model.BodyPartLeftShoulder,
			model.BodyPartRightShoulder,
		},
	},
	"roll_back": {
		Name:        "roll_back",
		Category:    model.CategoryForms,
		Difficulty:  3,
		Impact:      model.ImpactMedium,
		Description: "Yielding movement redirecting incoming force",
		Benefits:    []string{"yielding", "waist rotation", "sensitivity"},
		Contraindications: []model.BodyPart{
			model.BodyPartLowerBack,
		},
	},
	"press": {
		Name:        "press",
		Category:    model.CategoryForms,
		Difficulty:  3,
		Impact:      model.ImpactMedium,
		Description: "Forward pressing movement with whole-body power",
		Benefits:    []string{"alignment", "whole-body connection", "controlled power"},
		Contraindications: []model.BodyPart{
			model.BodyPartLowerBack,
		},
	},
	"closing_form": {
		Name:        "closing_form",
		Category:    model.CategoryCooldown,
		Difficulty:  1,
		Impact:      model.ImpactLow,
		Description: "Gathering movement returning to stillness",
		Benefits:    []string{"integration", "calming", "energy storage"},
	},
}

// LibraryExercise returns a copy of the named library exercise with the
// given duration, or false if the name is unknown. A copy is returned so
// per-plan modifications never mutate the shared library.
func LibraryExercise(name string, durationMinutes int) (model.Exercise, bool) {
	e, ok := exerciseLibrary[name]
	if !ok {
		return model.Exercise{}, false
	}
	// Copy slices: the caller appends modifications to them.
	e.Benefits = append([]string(nil), e.Benefits...)
	e.Contraindications = append([]model.BodyPart(nil), e.Contraindications...)
	e.DurationMinutes = durationMinutes
	return e, true
}

// LibrarySize returns the number of exercises in the library.
func LibrarySize() int {
	return len(exerciseLibrary)
}
