package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidWeek is returned when the requested week is outside 1-52.
	ErrInvalidWeek = errors.New("invalid week: must be between 1 and 52")

	// ErrInvalidWeekCount is returned when the number of weeks to plan is
	// not positive.
	ErrInvalidWeekCount = errors.New("invalid week count: must be positive")

	// ErrInvalidTrendWindow is returned when the trend analysis window is
	// smaller than two sessions. A single session has no trend.
	ErrInvalidTrendWindow = errors.New("invalid trend window: must be at least 2 sessions")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// A batch size of zero would mean no plan generation at all.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrNoInjuries is returned when a profile declares no injuries at all.
	// An empty profile is almost always a profile-file mistake; uninjured
	// practitioners should declare an empty injuries map explicitly.
	ErrNoInjuries = errors.New("profile declares no injuries: use 'injuries: {}' for an uninjured profile")

	// ErrProfileNotFound is returned when the profile file does not exist.
	ErrProfileNotFound = errors.New("profile file not found")
)
