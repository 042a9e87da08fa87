package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/medflow-io/medflow/internal/engine"
	"github.com/medflow-io/medflow/internal/models"
)

// columnBucket groups nodes whose x positions fall within this many canvas
// units of each other into one rendered column.
const columnBucket = 120.0

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// graphNodeOrder flattens the graph into navigation order: columns left to
// right by x position, nodes top to bottom within a column.
func graphNodeOrder(state *engine.State) []string {
	if state.Graph == nil {
		return nil
	}
	cols := buildColumns(state)
	var order []string
	for _, col := range cols {
		order = append(order, col...)
	}
	return order
}

func buildColumns(state *engine.State) [][]string {
	type entry struct {
		id  string
		pos models.Position
	}
	entries := make([]entry, 0, len(state.Graph.Nodes))
	for _, n := range state.Graph.Nodes {
		entries = append(entries, entry{id: n.ID, pos: state.Positions[n.ID]})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].pos.X != entries[j].pos.X {
			return entries[i].pos.X < entries[j].pos.X
		}
		return entries[i].pos.Y < entries[j].pos.Y
	})

	var cols [][]string
	colStart := 0.0
	for i, e := range entries {
		if i == 0 || e.pos.X-colStart > columnBucket {
			cols = append(cols, nil)
			colStart = e.pos.X
		}
		cols[len(cols)-1] = append(cols[len(cols)-1], e.id)
	}

	// Re-sort each column strictly by y; x ordering within the bucket no
	// longer matters.
	for _, col := range cols {
		ids := col
		sort.Slice(ids, func(i, j int) bool {
			return state.Positions[ids[i]].Y < state.Positions[ids[j]].Y
		})
	}
	return cols
}

func (m Model) renderGraphPanel(width, height int) string {
	if m.graphErr != nil {
		return panelErrorStyle.Render("Failed to load graph: "+m.graphErr.Error()) +
			"\n\n" + hintStyle.Render("Press ") + keyStyle.Render("g") + hintStyle.Render(" to retry")
	}
	if m.state.Graph == nil {
		return hintStyle.Render("Loading graph" + strings.Repeat(".", m.frame%4))
	}

	var b strings.Builder

	cols := buildColumns(m.state)
	rows := columnsToRows(cols)
	colWidth := width / max(len(cols), 1)
	if colWidth < 14 {
		colWidth = 14
	}

	for _, row := range rows {
		for _, id := range row {
			if id == "" {
				b.WriteString(strings.Repeat(" ", colWidth))
				continue
			}
			b.WriteString(padCell(m.renderNode(id), colWidth))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderDescriptionFeed(width))

	return b.String()
}

// columnsToRows transposes columns into rows for line-oriented rendering.
func columnsToRows(cols [][]string) [][]string {
	maxLen := 0
	for _, col := range cols {
		if len(col) > maxLen {
			maxLen = len(col)
		}
	}
	rows := make([][]string, maxLen)
	for r := 0; r < maxLen; r++ {
		rows[r] = make([]string, len(cols))
		for c, col := range cols {
			if r < len(col) {
				rows[r][c] = col[r]
			}
		}
	}
	return rows
}

func (m Model) renderNode(id string) string {
	node, _ := m.state.Graph.Node(id)
	state := m.state.Nodes[id]

	icon, style := m.statusIcon(state.Status)
	label := node.Label
	if label == "" {
		label = id
	}

	text := fmt.Sprintf("%s %s", icon, label)
	if state.Status == models.StatusCompleted && state.DurationMS != nil {
		text += fmt.Sprintf(" %s", formatDuration(*state.DurationMS))
	}

	rendered := style.Render(text)
	if id == m.selectedNode() && m.focusedPanel == 0 {
		rendered = selectedItemStyle.Render(style.Render("▸ " + text))
	}
	return rendered
}

func (m Model) statusIcon(status models.NodeStatus) (string, lipgloss.Style) {
	switch status {
	case models.StatusRunning:
		return spinnerFrames[m.frame%len(spinnerFrames)], nodeRunningStyle
	case models.StatusCompleted:
		return "✓", nodeCompletedStyle
	case models.StatusError:
		return "✗", nodeErrorStyle
	default:
		return "○", nodeIdleStyle
	}
}

// renderDescriptionFeed shows the selected node's accumulated descriptions,
// newest last.
func (m Model) renderDescriptionFeed(width int) string {
	id := m.selectedNode()
	if id == "" {
		return ""
	}
	node, _ := m.state.Graph.Node(id)

	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render(node.Label))
	b.WriteString("  ")
	b.WriteString(hintStyle.Render(string(node.Category)))
	b.WriteString("\n")

	descs := m.state.Descriptions[id]
	if len(descs) == 0 {
		b.WriteString(hintStyle.Render("No activity yet"))
		return b.String()
	}

	for _, d := range descs {
		line := descTitleStyle.Render(d.Title)
		if d.Timestamp != "" {
			line += "  " + descTimeStyle.Render(shortTime(d.Timestamp))
		}
		if d.DurationMS != nil {
			line += "  " + descDoneStyle.Render(formatDuration(*d.DurationMS))
		}
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString(descBodyStyle.Render(d.Description))
		b.WriteString("\n")
	}
	return b.String()
}

// renderSidebar stacks the stats block over the active right tab.
func (m Model) renderSidebar(width, height int) string {
	stats := m.renderStats(width)

	var body string
	switch m.rightTab {
	case rightTabEdges:
		body = m.renderEdgeList(height - statsHeight)
	default:
		body = m.logView.View()
	}

	return stats + "\n" + body
}

// renderEdgeList shows every edge with its derived tone.
func (m Model) renderEdgeList(height int) string {
	if m.state.Graph == nil {
		return hintStyle.Render("No graph loaded")
	}

	var lines []string
	for _, e := range m.state.Graph.Edges {
		style := edgeNeutralStyle
		marker := "─"
		switch m.state.EdgeStyles[e.ID].Tone {
		case engine.ToneDoctor:
			style = edgeDoctorStyle
			marker = "━"
		case engine.TonePatient:
			style = edgePatientStyle
			marker = "━"
		}
		line := style.Render(fmt.Sprintf("%s %s → %s", marker, e.Source, e.Target))
		if e.Label != "" {
			line += " " + hintStyle.Render(e.Label)
		}
		lines = append(lines, line)
	}

	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func padCell(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}

func formatDuration(ms float64) string {
	if ms >= 1000 {
		return fmt.Sprintf("%.1fs", ms/1000)
	}
	return fmt.Sprintf("%.0fms", ms)
}

// shortTime trims an ISO timestamp down to its clock portion.
func shortTime(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i >= 0 && len(ts) >= i+9 {
		return ts[i+1 : i+9]
	}
	return ts
}
