package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rehabflow/taichicoach/internal/model"
)

// Default configuration values.
// These values are chosen based on the rehabilitation program's 12-month
// progression structure and conservative clinical defaults.
const (
	// DefaultTrendWindow is the number of recent sessions the progress
	// tracker analyzes. Four sessions roughly covers one week of practice
	// in the building phase, enough to see a trend without smoothing away
	// recent changes.
	DefaultTrendWindow = 4

	// DefaultBatchSize is the number of weekly plans generated
	// concurrently when planning a range of weeks. Plan generation is
	// CPU-only and cheap, so a small limit keeps goroutine overhead low
	// while still overlapping the per-week work.
	DefaultBatchSize = 8

	// DefaultProfileName is used when the profile file declares no name.
	// Session history is keyed by profile name in the database, so an
	// anonymous profile still needs a stable key.
	DefaultProfileName = "default"

	// AppName is the application name used for XDG directory paths.
	AppName = "taichicoach"
)

// Config holds all configuration options for taichicoach.
// This struct is populated from CLI flags and the profile file and passed
// through the application via dependency injection rather than global state.
type Config struct {
	// ProfilePath is the path to the practitioner profile file.
	// If empty, the tool searches for .taichicoach in the current
	// directory and then in the user's home directory.
	ProfilePath string

	// Profile holds the loaded practitioner profile.
	Profile *Profile

	// Week is the program week to plan (1-52).
	Week int

	// Weeks is how many consecutive weeks to plan starting at Week.
	// Values above 1 trigger concurrent batch planning.
	Weeks int

	// TrendWindow is the number of recent sessions analyzed by the
	// progress tracker.
	TrendWindow int

	// BatchSize is the number of concurrent plan generations.
	BatchSize int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON output instead of human-readable format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown output instead of human-readable
	// format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for plans and reports.
	// When set, output is written to this file instead of stdout.
	ReportFile string

	// DBDir is the directory path for storing the SQLite database.
	// Defaults to the XDG data directory.
	DBDir string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults; users override specific
// values after creation via CLI flags.
func NewConfig() *Config {
	return &Config{
		Week:        1,
		Weeks:       1,
		TrendWindow: DefaultTrendWindow,
		BatchSize:   DefaultBatchSize,
		DBDir:       XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for taichicoach.
// On Linux: ~/.local/share/taichicoach
// On macOS: ~/Library/Application Support/taichicoach
// On Windows: %LOCALAPPDATA%\taichicoach
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for taichicoach.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// We chose to return the first error found rather than collecting all
// errors because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.Week < 1 || c.Week > model.ProgramWeeks {
		return ErrInvalidWeek
	}
	if c.Weeks < 1 {
		return ErrInvalidWeekCount
	}
	if c.TrendWindow < 2 {
		return ErrInvalidTrendWindow
	}
	if c.BatchSize < 1 {
		return ErrInvalidBatchSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

// ProfileName returns the effective profile name, falling back to the
// default when no profile is loaded or the profile is unnamed.
func (c *Config) ProfileName() string {
	if c.Profile != nil && c.Profile.Name != "" {
		return c.Profile.Name
	}
	return DefaultProfileName
}
