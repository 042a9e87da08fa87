// Package cli implements the medflow CLI commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/medflow-io/medflow/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "medflow",
	Short: "Live dashboard for the medical appointment agent workflow",
	Long: `Medflow renders the agent backend's execution graph in the terminal
and keeps it in sync with live execution events over Socket.IO.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run()
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(executionsCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}
