// Package main provides the entry point for the taichicoach CLI.
//
// taichicoach is an injury-aware Tai Chi rehabilitation planner.
// It generates weekly workout plans adapted to the practitioner's
// injuries, records session feedback, and tracks recovery progress
// over a 12-month program.
//
// Usage:
//
//	taichicoach plan --week 3
//	taichicoach session --pain 2 --fatigue 3 --completion 100
//	taichicoach report
//
// See --help for all available options.
package main

// main is the entry point for taichicoach.
func main() {
	Execute()
}
