package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/medflow-io/medflow/internal/backend"
	"github.com/medflow-io/medflow/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check backend reachability",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		client := backend.New(settings.BackendURL)
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		fmt.Printf("%s %s\n", styleLabel.Render("Backend:"), styleValue.Render(settings.BackendURL))
		if err := client.Probe(ctx); err != nil {
			fmt.Printf("%s %s\n", styleLabel.Render("Status:"), styleError.Render("unreachable"))
			fmt.Println(styleHint.Render("  " + err.Error()))
			return nil
		}
		fmt.Printf("%s %s\n", styleLabel.Render("Status:"), styleSuccess.Render("reachable"))
		return nil
	},
}
