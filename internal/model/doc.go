// Package model defines the core domain types for taichicoach:
// body parts, injury severities, workout phases, exercises, workout plans,
// session records, safety assessments, and progress reports.
//
// This package has no dependencies on other internal packages so it can be
// imported freely by the agents, the pipeline, persistence, and reporting.
package model
