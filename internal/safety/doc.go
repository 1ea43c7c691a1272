// Package safety implements the safety monitoring agent.
//
// The monitor grades each completed session against pain, fatigue and
// completion thresholds, tracks a short rolling history for multi-session
// trend detection, and produces the injury-specific safety guidelines
// attached to every workout plan.
package safety
