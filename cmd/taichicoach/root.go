// Package main provides the entry point for the taichicoach CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for taichicoach.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taichicoach",
		Short: "Injury-aware Tai Chi rehabilitation planner",
		Long: `taichicoach generates weekly Tai Chi workout plans adapted to the
practitioner's injuries, records post-session feedback, and tracks
recovery over a 52-week progression (foundation, building, integration,
mastery).

Injuries are declared in a .taichicoach profile file; run
"taichicoach init" to create one.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewPlanCmd())
	cmd.AddCommand(NewSessionCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
