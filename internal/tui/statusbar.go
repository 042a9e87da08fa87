package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(m *Model, width int) string {
	if m.confirmMode == confirmClearLayout {
		return renderConfirmBar("Reset saved layout to defaults? (y/n)", width)
	}
	if m.confirmMode == confirmQuit {
		return renderConfirmBar("Quit? (y/n)", width)
	}

	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}

	if m.showSaved {
		return renderSavedBar(m.savedLabel, width)
	}

	hints := getKeyHints(m)
	left := " " + hints

	right := ""
	if m.reachable {
		right = lipgloss.NewStyle().Foreground(colorGreen).Render("Connected") + " "
	} else {
		right = lipgloss.NewStyle().Foreground(colorYellow).Bold(true).Render("⚠ Disconnected") + " "
	}
	if !m.streamUp {
		right = lipgloss.NewStyle().Foreground(colorDim).Render("stream down") + "  " + right
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	base := keyHint("q", "quit") + "  " + keyHint("Tab", "switch")

	if m.focusedPanel == 0 {
		pause := "pause"
		if m.state.Paused {
			pause = "resume"
		}
		return base + "  " + keyHint("j/k", "navigate") + "  " +
			keyHint("Space", pause) + "  " + keyHint("r", "reset") + "  " +
			keyHint("H/J/K/L", "move node") + "  " + keyHint("s", "save layout") + "  " +
			keyHint("x", "reset layout") + "  " + keyHint("e", "export")
	}

	return base + "  " + keyHint("j/k", "scroll") + "  " + keyHint("1/2", "tab")
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderConfirmBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorYellow).
		Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
		Width(width).
		Render(" " + msg)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}

func renderSavedBar(label string, width int) string {
	return statusBarStyle.
		Width(width).
		Render(" " + lipgloss.NewStyle().Foreground(colorGreen).Render(label))
}
