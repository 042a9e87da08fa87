package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/medflow-io/medflow/internal/config"
	"github.com/medflow-io/medflow/internal/layout"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect or reset the persisted graph layout",
}

var layoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the persisted node position overrides",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := layout.NewFileStore(layout.Namespace)
		if err != nil {
			return err
		}

		overrides, err := store.Load()
		if err != nil {
			return err
		}
		if len(overrides) == 0 {
			fmt.Println(styleHint.Render("No layout overrides saved; defaults apply"))
			return nil
		}

		path, _ := config.LayoutFile(layout.Namespace)
		fmt.Printf("%s %s\n\n", styleLabel.Render("File:"), styleValue.Render(path))

		ids := make([]string, 0, len(overrides))
		for id := range overrides {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			pos := overrides[id]
			fmt.Printf("  %s %s\n",
				styleValue.Render(fmt.Sprintf("%-12s", id)),
				styleLabel.Render(fmt.Sprintf("(%.0f, %.0f)", pos.X, pos.Y)))
		}
		return nil
	},
}

var layoutClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the persisted layout so defaults apply",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := layout.NewFileStore(layout.Namespace)
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println(styleSuccess.Render("Layout cleared"))
		return nil
	},
}

func init() {
	layoutCmd.AddCommand(layoutShowCmd)
	layoutCmd.AddCommand(layoutClearCmd)
}
