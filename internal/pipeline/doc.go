// Package pipeline orchestrates workout plan generation.
//
// A plan is built by a sequence of steps: injury analysis, exercise
// selection, injury modification, and safety guideline attachment. The
// pipeline executes the steps in order against a shared WorkoutPlan,
// and the batch planner runs one pipeline per week concurrently when
// generating multi-week programs.
package pipeline
