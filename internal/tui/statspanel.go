package tui

import (
	"fmt"
	"strings"

	"github.com/medflow-io/medflow/internal/models"
)

// renderStats draws the execution summary at the top of the sidebar. Its
// line count must stay in sync with statsHeight.
func (m Model) renderStats(width int) string {
	var b strings.Builder

	b.WriteString(sectionHeaderStyle.Render("Execution"))
	b.WriteString("\n")

	execID := m.state.ExecutionID
	if execID == "" {
		execID = "-"
	}
	writeStat(&b, "ID", execID)

	writeStat(&b, "Progress", fmt.Sprintf("%d/%d nodes", m.state.CompletedCount(), m.state.TotalCount()))

	avg := m.state.AverageDurationMS()
	if avg > 0 {
		writeStat(&b, "Avg duration", formatDuration(avg))
	} else {
		writeStat(&b, "Avg duration", "-")
	}

	writeStat(&b, "Role", roleLabel(m.state.Role))

	if m.state.Paused {
		writeStat(&b, "Updates", badgePausedStyle.Render("paused"))
	} else {
		writeStat(&b, "Updates", "live")
	}

	if m.state.LayoutDirty {
		writeStat(&b, "Layout", "modified")
	} else {
		writeStat(&b, "Layout", "saved")
	}

	return b.String()
}

func writeStat(b *strings.Builder, label, value string) {
	b.WriteString(statLabelStyle.Render(label))
	b.WriteString(statValueStyle.Render(value))
	b.WriteString("\n")
}

func roleLabel(role models.SessionRole) string {
	switch role {
	case models.RoleDoctor:
		return "doctor"
	case models.RolePatient:
		return "patient"
	default:
		return "unknown"
	}
}
