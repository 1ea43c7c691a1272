package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rehabflow/taichicoach/internal/config"
	"github.com/rehabflow/taichicoach/internal/log"
	"github.com/rehabflow/taichicoach/internal/report"
	"github.com/spf13/cobra"
)

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the PHI-masking structured logger.
// Session notes and profile names must never reach log output unmasked.
func setupLogger(verbose bool) *slog.Logger {
	return log.NewHealthLogger(os.Stderr, verbose)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// loadProfile resolves and loads the practitioner profile.
// An explicitly specified path must exist; without one, the tool searches
// the usual locations and falls back to an uninjured default profile so
// the planner works out of the box.
func loadProfile(cmd *cobra.Command, logger *slog.Logger) (*config.Profile, error) {
	profilePath, err := cmd.Flags().GetString("profile")
	if err != nil {
		return nil, err
	}

	explicit := profilePath != ""
	found := config.FindProfileFile(profilePath)

	if found == "" {
		if explicit {
			return nil, fmt.Errorf("profile file not found: %s", profilePath)
		}
		logger.Info("no profile file found, using uninjured default (run \"taichicoach init\" to create one)")
		return &config.Profile{Injuries: map[string]config.InjuryEntry{}}, nil
	}

	profile, err := config.LoadProfile(found)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", found, err)
	}

	logger.Debug("profile loaded", "path", found, "injuries", len(profile.Injuries))
	return profile, nil
}

// openOutput resolves the output destination. An empty path means stdout
// with a no-op closer; otherwise the file (and its directories) are
// created.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// newReportWriter selects the writer for the configured output format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}
}
