package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestInitCreatesProfile tests profile file creation.
func TestInitCreatesProfile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".taichicoach")

	cmd := NewInitCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"-o", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("profile file not created: %v", err)
	}
	if !strings.Contains(string(data), "injuries:") {
		t.Error("template missing injuries section")
	}

	// The template must be valid YAML.
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Errorf("template is not valid YAML: %v", err)
	}
}

// TestInitRefusesOverwrite tests existing-file protection.
func TestInitRefusesOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".taichicoach")
	if err := os.WriteFile(path, []byte("existing"), 0600); err != nil {
		t.Fatal(err)
	}

	cmd := NewInitCmd()
	cmd.SetArgs([]string{"-o", path})
	if err := cmd.Execute(); err == nil {
		t.Error("overwriting without -f should fail")
	}

	// With force it succeeds.
	forced := NewInitCmd()
	forced.SetOut(&bytes.Buffer{})
	forced.SetArgs([]string{"-o", path, "-f"})
	if err := forced.Execute(); err != nil {
		t.Errorf("forced overwrite failed: %v", err)
	}
}

// TestInitCreatesDirectories tests nested output paths.
func TestInitCreatesDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "profile.yaml")

	cmd := NewInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-o", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("nested profile not created: %v", err)
	}
}
