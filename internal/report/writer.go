package report

import (
	"io"

	"github.com/rehabflow/taichicoach/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Writer defines the interface for report output.
// Implementations render workout plans, safety assessments, and progress
// reports in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// WritePlan outputs a weekly workout plan.
	// Returns the number of bytes written and any error encountered.
	WritePlan(plan *model.WorkoutPlan) (int, error)

	// WriteAssessment outputs a post-session safety assessment.
	WriteAssessment(assessment *model.SafetyAssessment) (int, error)

	// WriteProgress outputs a progress report.
	WriteProgress(report *model.ProgressReport) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different
// from io.Writer - we write reports, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WritePlan outputs the plan to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) WritePlan(plan *model.WorkoutPlan) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WritePlan(plan)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteAssessment outputs the assessment to all configured Writers.
func (m *MultiWriter) WriteAssessment(assessment *model.SafetyAssessment) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteAssessment(assessment)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteProgress outputs the progress report to all configured Writers.
func (m *MultiWriter) WriteProgress(report *model.ProgressReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteProgress(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// displayName converts a library identifier like "cloud_hands" into a
// report-friendly title. A fresh Caser per call because Casers are
// stateful and batch output may render plans concurrently.
func displayName(e model.Exercise) string {
	return cases.Title(language.English).String(e.DisplayName())
}

// phaseTitle renders a phase identifier for display.
func phaseTitle(phase model.WorkoutPhase) string {
	return cases.Title(language.English).String(string(phase))
}
