// Package program coordinates the three agents over a practitioner's
// 12-month rehabilitation program.
//
// The Program holds the current week, generates the week's plan through
// the pipeline, records completed sessions, and advances only when the
// safety monitor grants clearance. It also assembles the combined
// progress report from the tracker's analysis and the stored history.
package program
