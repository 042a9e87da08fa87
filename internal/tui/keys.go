package tui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeys are always active.
type GlobalKeys struct {
	Quit key.Binding
	Tab  key.Binding
}

var globalKeys = GlobalKeys{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+q"),
		key.WithHelp("q", "quit"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "switch panel"),
	),
}

// DashboardKeys drive execution-state and layout actions.
type DashboardKeys struct {
	Pause       key.Binding
	Reset       key.Binding
	Refresh     key.Binding
	SaveLayout  key.Binding
	ClearLayout key.Binding
	Export      key.Binding
	TabLogs     key.Binding
	TabEdges    key.Binding
}

var dashboardKeys = DashboardKeys{
	Pause: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("Space", "pause/resume"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "refresh graph"),
	),
	SaveLayout: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save layout"),
	),
	ClearLayout: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "reset layout"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export report"),
	),
	TabLogs: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "Logs"),
	),
	TabEdges: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "Edges"),
	),
}

// GraphKeys are active when the graph panel is focused. The same prev/next
// bindings scroll the sidebar when it holds focus.
type GraphKeys struct {
	Prev      key.Binding
	Next      key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
}

var graphKeys = GraphKeys{
	Prev: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Next: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	MoveLeft: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H/J/K/L", "move node"),
	),
	MoveRight: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("H/J/K/L", "move node"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("K"),
		key.WithHelp("H/J/K/L", "move node"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("J"),
		key.WithHelp("H/J/K/L", "move node"),
	),
}

// ConfirmKeys for inline confirmation prompts.
type ConfirmKeys struct {
	Yes    key.Binding
	No     key.Binding
	Cancel key.Binding
}

var confirmKeys = ConfirmKeys{
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	No: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "cancel"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
}
