// Package database provides SQLite-based storage for the rehabilitation
// program.
//
// This package implements the SessionDB, which stores:
//   - Session records with the practitioner's feedback
//   - Generated workout plans for historical reference
//   - Safety assessments for clearance tracking
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of other
// databases because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Sufficient performance for a single practitioner's history
// 4. WAL mode provides good concurrent read performance
package database
