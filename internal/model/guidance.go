package model

// Guidance contains the practice knowledge for one injured body part:
// what to avoid, how to adjust, what to practice instead, and which
// symptoms require stopping.
type Guidance struct {
	// Avoid lists movements contraindicated by the injury.
	Avoid []string

	// Modify lists adjustments that keep affected movements safe.
	Modify []string

	// Compensatory lists alternate practices that maintain progress.
	Compensatory []string

	// FocusAreas lists practice areas to emphasize while injured.
	FocusAreas []string

	// RehabilitationFocus is the recovery goal for this injury.
	RehabilitationFocus string

	// DailyPrecautions lists habits for every practice session.
	DailyPrecautions []string

	// WarningSigns lists symptoms that require stopping immediately.
	WarningSigns []string
}

// guidanceMapping maps body parts to their practice guidance.
// This centralized mapping ensures the coach and the safety monitor give
// consistent advice for the same injury.
//
// Design decision: We use a map rather than methods on BodyPart because:
// 1. It keeps all clinical knowledge in one reviewable place
// 2. Guidance can be tuned without touching type definitions
// 3. It makes it easy to generate documentation from the table
var guidanceMapping = map[BodyPart]Guidance{
	BodyPartLeftShoulder: {
		Avoid:        []string{"high arm raises", "shoulder rotations", "weight bearing on arms"},
		Modify:       []string{"keep arms below shoulder height", "reduce range of motion", "focus on lower body"},
		Compensatory: []string{"leg strength", "core stability", "breathing techniques"},
		FocusAreas: []string{
			"lower body stability and rooting",
			"deep diaphragmatic breathing",
			"mental visualization of arm movements",
		},
		RehabilitationFocus: "gradual shoulder mobility restoration",
		DailyPrecautions: []string{
			"Avoid raising arms above shoulder level",
			"Use mirror to monitor posture alignment",
			"Stop immediately if sharp shoulder pain occurs",
		},
		WarningSigns: []string{"Radiating pain down the arm"},
	},
	BodyPartRightShoulder: {
		Avoid:        []string{"high arm raises", "shoulder rotations", "weight bearing on arms"},
		Modify:       []string{"keep arms below shoulder height", "reduce range of motion", "focus on lower body"},
		Compensatory: []string{"leg strength", "core stability", "breathing techniques"},
		FocusAreas: []string{
			"lower body stability and rooting",
			"deep diaphragmatic breathing",
			"mental visualization of arm movements",
		},
		RehabilitationFocus: "gradual shoulder mobility restoration",
		DailyPrecautions: []string{
			"Avoid raising arms above shoulder level",
			"Use mirror to monitor posture alignment",
			"Stop immediately if sharp shoulder pain occurs",
		},
		WarningSigns: []string{"Radiating pain down the arm"},
	},
	BodyPartLeftCalf: {
		Avoid:        []string{"deep stances", "jumping", "prolonged standing"},
		Modify:       []string{"shorter stances", "chair support", "reduced duration"},
		Compensatory: []string{"upper body flow", "seated practice", "breathing focus"},
		FocusAreas: []string{
			"upper body flow and coordination",
			"seated Tai Chi practice",
			"breathing techniques for circulation",
		},
		RehabilitationFocus: "progressive calf strengthening",
		DailyPrecautions: []string{
			"Have chair available for support",
			"Monitor for swelling after exercise",
			"Ice calf if any discomfort occurs",
		},
		WarningSigns: []string{"Sharp pain during weight bearing"},
	},
	BodyPartRightCalf: {
		Avoid:        []string{"deep stances", "jumping", "prolonged standing"},
		Modify:       []string{"shorter stances", "chair support", "reduced duration"},
		Compensatory: []string{"upper body flow", "seated practice", "breathing focus"},
		FocusAreas: []string{
			"upper body flow and coordination",
			"seated Tai Chi practice",
			"breathing techniques for circulation",
		},
		RehabilitationFocus: "progressive calf strengthening",
		DailyPrecautions: []string{
			"Have chair available for support",
			"Monitor for swelling after exercise",
			"Ice calf if any discomfort occurs",
		},
		WarningSigns: []string{"Sharp pain during weight bearing"},
	},
	BodyPartLowerBack: {
		Avoid:        []string{"forward bends", "twisting", "arching"},
		Modify:       []string{"maintain neutral spine", "bend knees", "use support"},
		Compensatory: []string{"gentle core engagement", "postural awareness", "gradual progression"},
		FocusAreas: []string{
			"core engagement and stabilization",
			"postural alignment awareness",
			"gentle weight shifting",
		},
		RehabilitationFocus: "spinal stabilization and core strength",
		DailyPrecautions: []string{
			"Maintain neutral spine during all movements",
			"Engage core muscles before moving",
			"Avoid sudden twisting motions",
		},
		WarningSigns: []string{"Numbness or tingling in legs"},
	},
	BodyPartUpperBack: {
		Avoid:        []string{"deep twisting", "overhead reaching", "rounded postures"},
		Modify:       []string{"maintain open chest", "reduce rotation range", "use wall support"},
		Compensatory: []string{"breathing expansion", "shoulder blade awareness", "gentle extension"},
		FocusAreas: []string{
			"thoracic mobility within comfort",
			"breath-led rib expansion",
			"upright alignment awareness",
		},
		RehabilitationFocus: "thoracic mobility and postural endurance",
		DailyPrecautions: []string{
			"Keep the chest open during arm movements",
			"Avoid slumping between movements",
			"Stop if pain spreads between the shoulder blades",
		},
		WarningSigns: []string{"Pain radiating around the ribs"},
	},
	BodyPartNeck: {
		Avoid:        []string{"head circles", "sustained looking up", "rapid head turns"},
		Modify:       []string{"keep gaze level", "turn from the waist", "reduce head movement range"},
		Compensatory: []string{"shoulder relaxation", "breathing focus", "lower body rooting"},
		FocusAreas: []string{
			"releasing shoulder and jaw tension",
			"gentle chin-tuck alignment",
			"whole-body turning instead of neck turning",
		},
		RehabilitationFocus: "cervical alignment and tension release",
		DailyPrecautions: []string{
			"Keep the head balanced over the spine",
			"Turn the whole body rather than the neck",
			"Stop if dizziness occurs",
		},
		WarningSigns: []string{"Dizziness or tingling in the arms"},
	},
	BodyPartHips: {
		Avoid:        []string{"deep squats", "wide stances", "forceful hip rotation"},
		Modify:       []string{"narrow stance width", "reduce stance depth", "smaller weight shifts"},
		Compensatory: []string{"upper body flow", "balance within comfort", "breathing techniques"},
		FocusAreas: []string{
			"gentle weight shifting within comfort",
			"pelvic alignment awareness",
			"upper body coordination",
		},
		RehabilitationFocus: "hip mobility and load tolerance",
		DailyPrecautions: []string{
			"Keep stances narrow and shallow",
			"Shift weight gradually, never abruptly",
			"Stop if groin or deep hip pain occurs",
		},
		WarningSigns: []string{"Catching or locking sensation in the hip"},
	},
}

// GetGuidance returns the practice guidance for a body part.
// Unknown body parts get conservative default guidance rather than nothing,
// so a plan is never generated without precautions.
func GetGuidance(bp BodyPart) Guidance {
	if g, ok := guidanceMapping[bp]; ok {
		return g
	}
	return Guidance{
		Avoid:               []string{"movements that load the injured area"},
		Modify:              []string{"reduce range of motion", "reduce duration"},
		Compensatory:        []string{"breathing techniques"},
		FocusAreas:          []string{"gentle practice within comfort"},
		RehabilitationFocus: "gradual return to full practice",
		DailyPrecautions:    []string{"Stop immediately if pain occurs"},
		WarningSigns:        []string{"Sharp or worsening pain"},
	}
}

// EmergencyProcedures are the universal steps when a warning sign occurs.
// They are identical for every injury, so they live outside the mapping.
var EmergencyProcedures = []string{
	"Stop immediately if severe pain occurs",
	"Apply ice to injured area",
	"Contact healthcare provider if symptoms persist",
	"Rest completely until professional assessment",
}
