package config

import (
	"fmt"

	"github.com/rehabflow/taichicoach/internal/model"
)

// Profile is the practitioner profile loaded from the YAML profile file.
// It declares who is training and which injuries constrain their practice.
type Profile struct {
	// Name identifies the practitioner. Session history in the database
	// is keyed by this name, so changing it starts a fresh history.
	Name string `yaml:"name"`

	// Injuries maps injured body parts to their severity, e.g.
	// "left_shoulder: moderate". Use an empty map for an uninjured
	// practitioner.
	Injuries map[string]InjuryEntry `yaml:"injuries"`

	// StartWeek optionally overrides the program week to start from,
	// for practitioners resuming an interrupted program.
	StartWeek int `yaml:"start_week,omitempty"`

	// MaxFrequency optionally caps the recommended sessions per week,
	// regardless of phase. Zero means no cap.
	MaxFrequency int `yaml:"max_frequency,omitempty"`
}

// InjuryEntry is a single injury declaration in the profile file.
// The short form "left_shoulder: moderate" is also accepted; see
// UnmarshalYAML.
type InjuryEntry struct {
	// Severity is the injury severity: mild, moderate, or severe.
	Severity string `yaml:"severity"`

	// Description optionally records how the injury occurred.
	// It is treated as personal health information and never logged.
	Description string `yaml:"description,omitempty"`
}

// UnmarshalYAML accepts both the short form ("left_shoulder: moderate")
// and the full form with severity and description keys. Profiles are
// hand-written, so the short form matters for ergonomics.
func (e *InjuryEntry) UnmarshalYAML(unmarshal func(any) error) error {
	var short string
	if err := unmarshal(&short); err == nil {
		e.Severity = short
		return nil
	}

	type plain InjuryEntry
	var full plain
	if err := unmarshal(&full); err != nil {
		return err
	}
	*e = InjuryEntry(full)
	return nil
}

// ModelInjuries converts the profile's string-keyed injuries into typed
// domain injuries, validating every body part and severity.
func (p *Profile) ModelInjuries() (model.Injuries, error) {
	injuries := make(model.Injuries, len(p.Injuries))
	for part, entry := range p.Injuries {
		bp, err := model.ParseBodyPart(part)
		if err != nil {
			return nil, fmt.Errorf("profile injury %q: %w", part, err)
		}
		severity, err := model.ParseInjurySeverity(entry.Severity)
		if err != nil {
			return nil, fmt.Errorf("profile injury %q: %w", part, err)
		}
		injuries[bp] = severity
	}
	return injuries, nil
}

// Validate checks the profile for structural problems.
func (p *Profile) Validate() error {
	if p.Injuries == nil {
		return ErrNoInjuries
	}
	if p.StartWeek < 0 || p.StartWeek > model.ProgramWeeks {
		return fmt.Errorf("invalid start week %d: must be between 0 and %d", p.StartWeek, model.ProgramWeeks)
	}
	if p.MaxFrequency < 0 || p.MaxFrequency > 7 {
		return fmt.Errorf("invalid max frequency %d: must be between 0 and 7", p.MaxFrequency)
	}
	if _, err := p.ModelInjuries(); err != nil {
		return err
	}
	return nil
}
