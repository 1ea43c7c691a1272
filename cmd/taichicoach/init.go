package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rehabflow/taichicoach/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/taichicoach.yaml
var profileTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new practitioner profile file",
		Long: `Init creates a new .taichicoach profile file in the current directory.

The generated file includes:
- Commented examples for every supported body part and severity
- Optional start week and frequency cap settings
- Documentation for the short and full injury declaration forms

Examples:
  # Create .taichicoach in current directory
  taichicoach init

  # Create profile file at a specific path
  taichicoach init -o athlete.yaml

  # Force overwrite existing file
  taichicoach init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultProfileFile,
		"Output file path for the profile")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing profile file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("profile file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := profileTemplate.ReadFile("templates/taichicoach.yaml")
	if err != nil {
		return fmt.Errorf("failed to read profile template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write profile file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created profile file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit this file to declare:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Injured body parts and their severity")
	fmt.Fprintln(cmd.OutOrStdout(), "  - An optional start week when resuming a program")
	fmt.Fprintln(cmd.OutOrStdout(), "  - An optional weekly session cap")

	return nil
}
