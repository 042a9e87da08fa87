package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/medflow-io/medflow/internal/models"
)

func renderHeader(m *Model, width int) string {
	dot := lipgloss.NewStyle().Foreground(colorCyan).Render("●")
	name := lipgloss.NewStyle().Bold(true).Render("Medflow")

	rightTabs := renderTabs([]string{"Logs", "Edges"}, m.rightTab)

	badge := renderRoleBadge(m.state.Role, m.state.Paused)

	left := fmt.Sprintf(" %s %s", dot, name)
	right := fmt.Sprintf("%s  %s ", rightTabs, badge)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderTabs(tabs []string, active int) string {
	var parts []string
	for i, tab := range tabs {
		if i == active {
			parts = append(parts, activeTabStyle.Render(tab))
		} else {
			parts = append(parts, inactiveTabStyle.Render(tab))
		}
	}
	return strings.Join(parts, tabSepStyle.Render(" | "))
}

func renderRoleBadge(role models.SessionRole, paused bool) string {
	if paused {
		return badgePausedStyle.Render("⏸ Paused")
	}
	switch role {
	case models.RoleDoctor:
		return badgeDoctorStyle.Render("● Doctor")
	case models.RolePatient:
		return badgePatientStyle.Render("● Patient")
	default:
		return badgeUnknownStyle.Render("● Unknown")
	}
}
