package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/medflow-io/medflow/internal/backend"
	"github.com/medflow-io/medflow/internal/config"
	"github.com/medflow-io/medflow/internal/models"
)

var executionsCmd = &cobra.Command{
	Use:     "executions",
	Aliases: []string{"exec"},
	Short:   "List recent executions from the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		client := backend.New(settings.BackendURL)
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		executions, err := client.ListExecutions(ctx)
		if err != nil {
			return err
		}
		if len(executions) == 0 {
			fmt.Println(styleHint.Render("No executions recorded"))
			return nil
		}

		for _, exec := range executions {
			key := exec.Key()
			if key == "" {
				key = "(unidentified)"
			}
			fmt.Printf("%s %s\n", styleBrand.Render(key), styleHint.Render(exec.StartTime))
			fmt.Printf("  %s %d touched, %d completed\n",
				styleLabel.Render("nodes:"), len(exec.Nodes), completedNodes(exec))
		}
		return nil
	},
}

func completedNodes(exec models.ExecutionSnapshot) int {
	count := 0
	for _, n := range exec.Nodes {
		if n.Status == models.StatusCompleted {
			count++
		}
	}
	return count
}
