package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/rehabflow/taichicoach/internal/model"
)

// SessionDB provides SQLite-based storage for session history, generated
// plans, and safety assessments. It manages connection pooling and
// provides methods for CRUD operations.
//
// Design decision: We use a single database file for all profiles rather
// than one file per practitioner. Every table carries a profile column,
// which keeps cross-profile queries simple and makes backup a single
// file copy.
type SessionDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures SessionDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a SessionDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*SessionDB, error) {
	dbPath := filepath.Join(dbDir, "taichicoach.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; a single connection avoids
	// SQLITE_BUSY under concurrent plan saves.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	sdb := &SessionDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := sdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return sdb, nil
}

// Close closes the database connection.
func (sdb *SessionDB) Close() error {
	return sdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (sdb *SessionDB) createTables() error {
	schema := `
	-- Session records store per-session practitioner feedback
	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		profile TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		phase TEXT NOT NULL,
		week INTEGER NOT NULL,
		duration_minutes INTEGER,
		pain_level INTEGER,
		fatigue_level INTEGER,
		mood_level INTEGER,
		exercises_completed INTEGER,
		modifications_used INTEGER,
		completion_percentage INTEGER,
		notes TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_profile ON sessions(profile);
	CREATE INDEX IF NOT EXISTS idx_sessions_timestamp ON sessions(timestamp);

	-- Plans store generated weekly prescriptions as JSON
	CREATE TABLE IF NOT EXISTS plans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		profile TEXT NOT NULL,
		week INTEGER NOT NULL,
		phase TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		plan_json TEXT NOT NULL,
		UNIQUE(profile, week)
	);

	CREATE INDEX IF NOT EXISTS idx_plans_profile ON plans(profile);

	-- Assessments store safety verdicts for clearance tracking
	CREATE TABLE IF NOT EXISTS assessments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		profile TEXT NOT NULL,
		week INTEGER NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		level TEXT NOT NULL,
		clearance INTEGER NOT NULL,
		assessment_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_assessments_profile ON assessments(profile);
	CREATE INDEX IF NOT EXISTS idx_assessments_timestamp ON assessments(timestamp);
	`

	_, err := sdb.db.ExecContext(context.Background(), schema)
	return err
}

// InsertSession stores a session record and returns its database ID.
func (sdb *SessionDB) InsertSession(ctx context.Context, record *model.SessionRecord) (int64, error) {
	query := `
	INSERT INTO sessions (
		profile, phase, week, duration_minutes, pain_level, fatigue_level,
		mood_level, exercises_completed, modifications_used,
		completion_percentage, notes
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := sdb.db.ExecContext(ctx, query,
		record.Profile,
		string(record.Phase),
		record.Week,
		record.DurationMinutes,
		record.PainLevel,
		record.FatigueLevel,
		record.MoodLevel,
		record.ExercisesCompleted,
		record.ModificationsUsed,
		record.CompletionPercentage,
		record.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert session: %w", err)
	}

	return result.LastInsertId()
}

// ListSessions retrieves a profile's session records ordered oldest
// first, which is the order the trend analyzers expect. A limit of zero
// or less returns all sessions.
func (sdb *SessionDB) ListSessions(ctx context.Context, profile string, limit int) ([]model.SessionRecord, error) {
	query := `
	SELECT id, profile, timestamp, phase, week, duration_minutes,
	       pain_level, fatigue_level, mood_level, exercises_completed,
	       modifications_used, completion_percentage, notes
	FROM sessions
	WHERE profile = ?
	ORDER BY timestamp ASC, id ASC
	`
	args := []any{profile}
	if limit > 0 {
		// Take the most recent N but keep ascending order for analysis.
		query = `
		SELECT * FROM (
			SELECT id, profile, timestamp, phase, week, duration_minutes,
			       pain_level, fatigue_level, mood_level, exercises_completed,
			       modifications_used, completion_percentage, notes
			FROM sessions
			WHERE profile = ?
			ORDER BY timestamp DESC, id DESC
			LIMIT ?
		) ORDER BY timestamp ASC, id ASC
		`
		args = append(args, limit)
	}

	rows, err := sdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var records []model.SessionRecord
	for rows.Next() {
		var record model.SessionRecord
		var timestamp, phase string

		err := rows.Scan(
			&record.ID,
			&record.Profile,
			&timestamp,
			&phase,
			&record.Week,
			&record.DurationMinutes,
			&record.PainLevel,
			&record.FatigueLevel,
			&record.MoodLevel,
			&record.ExercisesCompleted,
			&record.ModificationsUsed,
			&record.CompletionPercentage,
			&record.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}

		record.Timestamp = parseTimestamp(timestamp)
		record.Phase = model.WorkoutPhase(phase)
		records = append(records, record)
	}

	return records, rows.Err()
}

// SessionCount returns how many sessions a profile has recorded.
func (sdb *SessionDB) SessionCount(ctx context.Context, profile string) (int, error) {
	var count int
	err := sdb.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sessions WHERE profile = ?", profile).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}

// SavePlan stores a generated plan as JSON.
// Uses UPSERT so regenerating a week replaces the stored plan.
func (sdb *SessionDB) SavePlan(ctx context.Context, plan *model.WorkoutPlan) error {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to serialize plan: %w", err)
	}

	query := `
	INSERT INTO plans (profile, week, phase, plan_json)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(profile, week) DO UPDATE SET
		phase = excluded.phase,
		plan_json = excluded.plan_json,
		timestamp = CURRENT_TIMESTAMP
	`

	_, err = sdb.db.ExecContext(ctx, query,
		plan.Profile,
		plan.Week,
		string(plan.Phase),
		string(planJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}

	return nil
}

// GetPlan retrieves the stored plan for a profile and week.
// Returns nil without error when no plan exists.
func (sdb *SessionDB) GetPlan(ctx context.Context, profile string, week int) (*model.WorkoutPlan, error) {
	query := `
	SELECT plan_json FROM plans
	WHERE profile = ? AND week = ?
	`

	var planJSON string
	err := sdb.db.QueryRowContext(ctx, query, profile, week).Scan(&planJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	var plan model.WorkoutPlan
	if err := json.Unmarshal([]byte(planJSON), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}

	return &plan, nil
}

// ListPlannedWeeks returns the weeks a profile has stored plans for,
// in ascending order.
func (sdb *SessionDB) ListPlannedWeeks(ctx context.Context, profile string) ([]int, error) {
	query := `
	SELECT week FROM plans
	WHERE profile = ?
	ORDER BY week ASC
	`

	rows, err := sdb.db.QueryContext(ctx, query, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to list planned weeks: %w", err)
	}
	defer rows.Close()

	var weeks []int
	for rows.Next() {
		var week int
		if err := rows.Scan(&week); err != nil {
			return nil, fmt.Errorf("failed to scan week: %w", err)
		}
		weeks = append(weeks, week)
	}

	return weeks, rows.Err()
}

// SaveAssessment stores a safety assessment as JSON.
func (sdb *SessionDB) SaveAssessment(ctx context.Context, assessment *model.SafetyAssessment) error {
	assessmentJSON, err := json.Marshal(assessment)
	if err != nil {
		return fmt.Errorf("failed to serialize assessment: %w", err)
	}

	clearance := 0
	if assessment.ClearanceForNextSession {
		clearance = 1
	}

	query := `
	INSERT INTO assessments (profile, week, level, clearance, assessment_json)
	VALUES (?, ?, ?, ?, ?)
	`

	_, err = sdb.db.ExecContext(ctx, query,
		assessment.Profile,
		assessment.Week,
		assessment.LevelText,
		clearance,
		string(assessmentJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to save assessment: %w", err)
	}

	return nil
}

// LatestAssessment retrieves a profile's most recent safety assessment.
// Returns nil without error when no assessment exists.
func (sdb *SessionDB) LatestAssessment(ctx context.Context, profile string) (*model.SafetyAssessment, error) {
	query := `
	SELECT assessment_json FROM assessments
	WHERE profile = ?
	ORDER BY timestamp DESC, id DESC
	LIMIT 1
	`

	var assessmentJSON string
	err := sdb.db.QueryRowContext(ctx, query, profile).Scan(&assessmentJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}

	var assessment model.SafetyAssessment
	if err := json.Unmarshal([]byte(assessmentJSON), &assessment); err != nil {
		return nil, fmt.Errorf("failed to parse assessment: %w", err)
	}

	return &assessment, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple
// formats. SQLite may return timestamps in different formats depending
// on configuration. If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
