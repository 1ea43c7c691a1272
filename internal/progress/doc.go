// Package progress implements the progress tracking agent.
//
// The tracker aggregates recent session feedback into performance
// metrics, detects pain, duration and completion trends, and derives
// adaptive programming recommendations from them.
package progress
