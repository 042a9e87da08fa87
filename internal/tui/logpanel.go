package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/medflow-io/medflow/internal/models"
)

// LogPanel renders the trailing log window in a scrollable viewport. It
// follows the tail until the user scrolls up.
type LogPanel struct {
	vp     viewport.Model
	follow bool
}

func NewLogPanel() *LogPanel {
	vp := viewport.New(0, 0)
	return &LogPanel{vp: vp, follow: true}
}

func (p *LogPanel) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	p.vp.Width = width
	p.vp.Height = height
	if p.follow {
		p.vp.GotoBottom()
	}
}

func (p *LogPanel) SetLogs(logs []models.LogEvent) {
	lines := make([]string, 0, len(logs))
	for _, event := range logs {
		lines = append(lines, renderLogLine(event, p.vp.Width))
	}
	p.vp.SetContent(strings.Join(lines, "\n"))
	if p.follow {
		p.vp.GotoBottom()
	}
}

func (p *LogPanel) ScrollUp() {
	p.vp.LineUp(1)
	p.follow = false
}

func (p *LogPanel) ScrollDown() {
	p.vp.LineDown(1)
	if p.vp.AtBottom() {
		p.follow = true
	}
}

func (p *LogPanel) View() string {
	return p.vp.View()
}

func renderLogLine(event models.LogEvent, width int) string {
	level := levelStyle(event.Level).Render(string(event.Level))
	line := logTimeStyle.Render(shortTime(event.Timestamp)) + " " + level + " " + event.Message
	if event.NodeID != "" {
		line += " " + hintStyle.Render("["+event.NodeID+"]")
	}
	if width > 0 && lipgloss.Width(line) > width {
		line = truncateContent(line, width, 1)
	}
	return line
}

func levelStyle(level models.LogLevel) lipgloss.Style {
	switch level {
	case models.LevelWarning:
		return logWarningStyle
	case models.LevelError:
		return logErrorStyle
	case models.LevelDebug:
		return logDebugStyle
	default:
		return logInfoStyle
	}
}
