package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestNewRootCmd tests the root command structure.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	if cmd.Use != "taichicoach" {
		t.Errorf("use = %q, expected taichicoach", cmd.Use)
	}

	expected := []string{"plan", "session", "report", "init", "version"}
	for _, name := range expected {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}

	if cmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("missing persistent verbose flag")
	}
}

// TestRootHelp tests that help output renders.
func TestRootHelp(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "rehabilitation") {
		t.Errorf("help output missing description: %s", buf.String())
	}
}

// TestPlanCmdFlags tests the plan command's flag set.
func TestPlanCmdFlags(t *testing.T) {
	t.Parallel()

	cmd := NewPlanCmd()
	for _, flag := range []string{"week", "weeks", "batch", "profile", "json", "markdown", "output"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("plan command missing flag %q", flag)
		}
	}
}

// TestSessionCmdFlags tests the session command's flag set.
func TestSessionCmdFlags(t *testing.T) {
	t.Parallel()

	cmd := NewSessionCmd()
	for _, flag := range []string{"week", "pain", "fatigue", "mood", "completion", "duration", "exercises", "modifications", "notes", "profile"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("session command missing flag %q", flag)
		}
	}
}

// TestReportCmdFlags tests the report command's flag set.
func TestReportCmdFlags(t *testing.T) {
	t.Parallel()

	cmd := NewReportCmd()
	for _, flag := range []string{"window", "profile", "json", "markdown", "output"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("report command missing flag %q", flag)
		}
	}
}
