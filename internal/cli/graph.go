package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/medflow-io/medflow/internal/backend"
	"github.com/medflow-io/medflow/internal/config"
	"github.com/medflow-io/medflow/internal/models"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Fetch and print the workflow graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		client := backend.New(settings.BackendURL)
		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		graph, warnings, err := client.FetchGraph(ctx)
		if err != nil {
			return err
		}
		for _, w := range warnings {
			fmt.Println(styleError.Render("warning: " + w))
		}

		fmt.Printf("%s (%d nodes, %d edges)\n\n",
			styleBrand.Render("Workflow"), len(graph.Nodes), len(graph.Edges))

		for _, n := range graph.Nodes {
			fmt.Printf("  %s %s %s\n",
				categoryBadge(n.Category),
				styleValue.Render(n.Label),
				styleHint.Render("("+n.ID+")"))
		}

		fmt.Println()
		for _, e := range graph.Edges {
			line := fmt.Sprintf("  %s → %s", e.Source, e.Target)
			if e.Label != "" {
				line += "  " + styleHint.Render(e.Label)
			}
			fmt.Println(styleLabel.Render(line))
		}
		return nil
	},
}

func categoryBadge(category models.NodeCategory) string {
	var style lipgloss.Style
	switch category {
	case models.CategoryDatabase:
		style = badgeDatabase
	case models.CategoryLLM:
		style = badgeLLM
	case models.CategoryService, models.CategoryTool:
		style = badgeService
	default:
		style = badgeProcess
	}
	return style.Render(fmt.Sprintf("%-8s", category))
}
