// Package coach implements the exercise prescription agent.
//
// The coach analyzes how a practitioner's injuries constrain Tai Chi
// practice, selects phase-appropriate exercises from its library, sizes
// the session, and applies injury-specific modifications to individual
// exercises.
package coach
