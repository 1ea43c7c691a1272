// Package log provides structured logging with personal health
// information (PHI) masking.
//
// Session feedback contains free-text notes and injury descriptions that
// may identify the practitioner or their medical history. The HealthHandler
// wraps any slog.Handler and masks such attributes before they reach the
// underlying handler.
package log
