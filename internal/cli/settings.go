package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medflow-io/medflow/internal/config"
)

var (
	settingsBackendURL    string
	settingsNamespace     string
	settingsProbeInterval int
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change global settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		changed := false
		if cmd.Flags().Changed("backend-url") {
			settings.BackendURL = settingsBackendURL
			changed = true
		}
		if cmd.Flags().Changed("namespace") {
			settings.SocketNamespace = settingsNamespace
			changed = true
		}
		if cmd.Flags().Changed("probe-interval") {
			if settingsProbeInterval <= 0 {
				return fmt.Errorf("probe interval must be positive, got %d", settingsProbeInterval)
			}
			settings.ProbeIntervalSeconds = settingsProbeInterval
			changed = true
		}

		if changed {
			if err := config.EnsureGlobalDir(); err != nil {
				return err
			}
			if err := config.SaveSettings(settings); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
			fmt.Println(styleSuccess.Render("Settings saved"))
			return nil
		}

		fmt.Printf("%s %s\n", styleLabel.Render("Backend URL:"), styleValue.Render(settings.BackendURL))
		fmt.Printf("%s %s\n", styleLabel.Render("Socket namespace:"), styleValue.Render(settings.SocketNamespace))
		fmt.Printf("%s %s\n", styleLabel.Render("Probe interval:"), styleValue.Render(fmt.Sprintf("%ds", settings.ProbeIntervalSeconds)))
		return nil
	},
}

func init() {
	settingsCmd.Flags().StringVar(&settingsBackendURL, "backend-url", "", "backend base URL")
	settingsCmd.Flags().StringVar(&settingsNamespace, "namespace", "", "Socket.IO namespace")
	settingsCmd.Flags().IntVar(&settingsProbeInterval, "probe-interval", 0, "reachability probe interval in seconds")
}
