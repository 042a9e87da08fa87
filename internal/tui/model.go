package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/medflow-io/medflow/internal/backend"
	"github.com/medflow-io/medflow/internal/engine"
	"github.com/medflow-io/medflow/internal/layout"
	"github.com/medflow-io/medflow/internal/models"
)

// Right panel tabs.
const (
	rightTabLogs = iota
	rightTabEdges
)

// confirmMode values.
const (
	confirmNone = iota
	confirmClearLayout
	confirmQuit
)

// Model is the root Bubbletea model for the dashboard.
type Model struct {
	client   *backend.Client
	store    layout.Store
	watcher  *layout.Watcher
	settings *models.Settings

	// state is the reconciled execution state; every domain mutation goes
	// through state.Apply.
	state *engine.State

	sessionID string
	startedAt time.Time

	// Connectivity
	reachable     bool
	streamUp      bool
	probeInFlight bool
	stream        *backend.Stream

	// Graph load status
	graphErr error

	// UI state
	width        int
	height       int
	focusedPanel int // 0=graph, 1=sidebar
	rightTab     int
	selected     int // index into nodeOrder
	nodeOrder    []string
	confirmMode  int
	err          error
	showSaved    bool
	savedLabel   string
	frame        int

	logView *LogPanel

	program *programRef
}

// NewModel creates the initial dashboard model.
func NewModel(client *backend.Client, store layout.Store, watcher *layout.Watcher, settings *models.Settings, program *programRef) Model {
	return Model{
		client:    client,
		store:     store,
		watcher:   watcher,
		settings:  settings,
		state:     engine.NewState(),
		sessionID: uuid.NewString(),
		startedAt: time.Now().UTC(),
		logView:   NewLogPanel(),
		program:   program,
	}
}

// Init returns the initial commands: fetch the graph, open the event
// stream, probe reachability, and start the animation/probe tickers.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		fetchGraphCmd(m.client, m.store),
		openStreamCmd(m.client, m.settings.SocketNamespace, m.program),
		probeCmd(m.client),
		probeTick(m.probeInterval()),
		spinnerTick(),
	}
	if m.watcher != nil {
		cmds = append(cmds, watchLayoutCmd(m.watcher, m.program))
	}
	return tea.Batch(cmds...)
}

func (m Model) probeInterval() time.Duration {
	seconds := m.settings.ProbeIntervalSeconds
	if seconds <= 0 {
		seconds = 30
	}
	return time.Duration(seconds) * time.Second
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	// ── Graph load ─────────────────────────────────────────────────
	case GraphLoadedMsg:
		m.graphErr = nil
		m.state.Apply(engine.GraphLoaded{Graph: msg.Graph, Overrides: msg.Overrides})
		m.rebuildNodeOrder()
		if len(msg.Warnings) > 0 {
			m.err = fmt.Errorf("graph: %s", msg.Warnings[0])
			cmds = append(cmds, clearErrorAfter(5*time.Second))
		}
		return m, tea.Batch(cmds...)

	case GraphLoadFailedMsg:
		m.graphErr = msg.Err
		return m, nil

	// ── Live events ────────────────────────────────────────────────
	case ExecutionUpdateMsg:
		m.state.Apply(engine.ExecutionSnapshot{Snapshot: msg.Snapshot})
		m.logView.SetLogs(m.state.Logs)
		return m, nil

	case LogEventMsg:
		m.state.Apply(engine.LogAppended{Events: []models.LogEvent{msg.Event}})
		m.logView.SetLogs(m.state.Logs)
		return m, nil

	case StreamOpenedMsg:
		m.stream = msg.Stream
		return m, nil

	case StreamFailedMsg:
		m.err = fmt.Errorf("event stream: %w", msg.Err)
		cmds = append(cmds, clearErrorAfter(5*time.Second))
		return m, tea.Batch(cmds...)

	case StreamConnectedMsg:
		m.streamUp = true
		return m, nil

	case StreamDisconnectedMsg:
		m.streamUp = false
		return m, nil

	// ── Connectivity probe ─────────────────────────────────────────
	case probeTickMsg:
		// Skip-if-busy: never let a slow probe stack a second one.
		if !m.probeInFlight {
			m.probeInFlight = true
			cmds = append(cmds, probeCmd(m.client))
		}
		cmds = append(cmds, probeTick(m.probeInterval()))
		return m, tea.Batch(cmds...)

	case ProbeResultMsg:
		m.probeInFlight = false
		m.reachable = msg.Reachable
		return m, nil

	// ── Layout persistence ─────────────────────────────────────────
	case LayoutSavedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			cmds = append(cmds, clearErrorAfter(5*time.Second))
			return m, tea.Batch(cmds...)
		}
		m.state.Apply(engine.LayoutSaved{})
		m.showSaved = true
		m.savedLabel = "Layout saved"
		cmds = append(cmds, clearSavedAfter(3*time.Second))
		return m, tea.Batch(cmds...)

	case LayoutClearedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			cmds = append(cmds, clearErrorAfter(5*time.Second))
			return m, tea.Batch(cmds...)
		}
		m.state.Apply(engine.LayoutReplaced{Overrides: map[string]models.Position{}})
		m.rebuildNodeOrder()
		m.showSaved = true
		m.savedLabel = "Layout reset"
		cmds = append(cmds, clearSavedAfter(3*time.Second))
		return m, tea.Batch(cmds...)

	case LayoutFileChangedMsg:
		return m, reloadLayoutCmd(m.store)

	case LayoutReloadedMsg:
		m.state.Apply(engine.LayoutReplaced{Overrides: msg.Overrides})
		m.rebuildNodeOrder()
		return m, nil

	// ── Session report ─────────────────────────────────────────────
	case ReportWrittenMsg:
		if msg.Err != nil {
			m.err = msg.Err
			cmds = append(cmds, clearErrorAfter(5*time.Second))
			return m, tea.Batch(cmds...)
		}
		m.showSaved = true
		m.savedLabel = "Report written"
		cmds = append(cmds, clearSavedAfter(3*time.Second))
		return m, tea.Batch(cmds...)

	// ── Status display ─────────────────────────────────────────────
	case ErrorMsg:
		m.err = msg.Err
		cmds = append(cmds, clearErrorAfter(5*time.Second))
		return m, tea.Batch(cmds...)

	case ClearErrorMsg:
		m.err = nil
		return m, nil

	case ClearSavedMsg:
		m.showSaved = false
		return m, nil

	case spinnerTickMsg:
		m.frame++
		return m, spinnerTick()
	}

	return m, nil
}

func (m *Model) updateDimensions() {
	dims := computeLayout(m.width, m.height)
	m.logView.SetSize(dims.rightWidth-2, dims.contentHeight-2-statsHeight)
}

// rebuildNodeOrder flattens the graph into navigation order: columns by x
// position, rows by y within a column.
func (m *Model) rebuildNodeOrder() {
	m.nodeOrder = graphNodeOrder(m.state)
	if m.selected >= len(m.nodeOrder) {
		m.selected = len(m.nodeOrder) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// selectedNode returns the id of the currently selected node, or "".
func (m *Model) selectedNode() string {
	if m.selected < 0 || m.selected >= len(m.nodeOrder) {
		return ""
	}
	return m.nodeOrder[m.selected]
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Confirmation prompts swallow everything except y/n/esc.
	if m.confirmMode != confirmNone {
		switch {
		case key.Matches(msg, confirmKeys.Yes):
			mode := m.confirmMode
			m.confirmMode = confirmNone
			switch mode {
			case confirmClearLayout:
				return m, clearLayoutCmd(m.store)
			case confirmQuit:
				return m, m.doQuit()
			}
		case key.Matches(msg, confirmKeys.No), key.Matches(msg, confirmKeys.Cancel):
			m.confirmMode = confirmNone
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, globalKeys.Quit):
		m.confirmMode = confirmQuit
		return m, nil

	case key.Matches(msg, globalKeys.Tab):
		m.focusedPanel = (m.focusedPanel + 1) % 2
		return m, nil

	case key.Matches(msg, dashboardKeys.Pause):
		m.state.Apply(engine.SetPaused{Paused: !m.state.Paused})
		return m, nil

	case key.Matches(msg, dashboardKeys.Reset):
		m.state.Apply(engine.Reset{})
		m.logView.SetLogs(m.state.Logs)
		return m, nil

	case key.Matches(msg, dashboardKeys.Refresh):
		cmds := []tea.Cmd{fetchGraphCmd(m.client, m.store)}
		if m.stream == nil || !m.streamUp {
			if m.stream != nil {
				m.stream.Close()
				m.stream = nil
			}
			cmds = append(cmds, openStreamCmd(m.client, m.settings.SocketNamespace, m.program))
		}
		return m, tea.Batch(cmds...)

	case key.Matches(msg, dashboardKeys.SaveLayout):
		return m, saveLayoutCmd(m.store, m.state.Positions)

	case key.Matches(msg, dashboardKeys.ClearLayout):
		m.confirmMode = confirmClearLayout
		return m, nil

	case key.Matches(msg, dashboardKeys.Export):
		return m, writeReportCmd(m.buildReport())

	case key.Matches(msg, dashboardKeys.TabLogs):
		m.rightTab = rightTabLogs
		return m, nil

	case key.Matches(msg, dashboardKeys.TabEdges):
		m.rightTab = rightTabEdges
		return m, nil
	}

	if m.focusedPanel == 0 {
		return m.handleGraphKey(msg)
	}
	return m.handleSidebarKey(msg)
}

func (m Model) handleGraphKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, graphKeys.Prev):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, graphKeys.Next):
		if m.selected < len(m.nodeOrder)-1 {
			m.selected++
		}
	case key.Matches(msg, graphKeys.MoveLeft):
		m.moveSelected(-moveStep, 0)
	case key.Matches(msg, graphKeys.MoveRight):
		m.moveSelected(moveStep, 0)
	case key.Matches(msg, graphKeys.MoveUp):
		m.moveSelected(0, -moveStep)
	case key.Matches(msg, graphKeys.MoveDown):
		m.moveSelected(0, moveStep)
	}
	return m, nil
}

// moveStep is how far one key press drags a node, in canvas units.
const moveStep = 25.0

func (m *Model) moveSelected(dx, dy float64) {
	id := m.selectedNode()
	if id == "" {
		return
	}
	pos := m.state.Positions[id]
	m.state.Apply(engine.NodeMoved{
		ID:       id,
		Position: models.Position{X: pos.X + dx, Y: pos.Y + dy},
	})
	m.rebuildNodeOrder()
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, graphKeys.Prev):
		m.logView.ScrollUp()
	case key.Matches(msg, graphKeys.Next):
		m.logView.ScrollDown()
	}
	return m, nil
}

func (m Model) doQuit() tea.Cmd {
	if m.stream != nil {
		m.stream.Close()
	}
	if m.watcher != nil {
		m.watcher.Stop()
	}
	return tea.Quit
}

func (m Model) buildReport() models.SessionReport {
	return models.SessionReport{
		SessionID:         m.sessionID,
		ExecutionID:       m.state.ExecutionID,
		StartedAt:         m.startedAt.Format(time.RFC3339),
		ExportedAt:        time.Now().UTC().Format(time.RFC3339),
		Role:              m.state.Role,
		CompletedNodes:    m.state.CompletedCount(),
		TotalNodes:        m.state.TotalCount(),
		AverageDurationMS: m.state.AverageDurationMS(),
		Logs:              append([]models.LogEvent(nil), m.state.Logs...),
		Descriptions:      m.state.Descriptions,
	}
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := renderHeader(&m, m.width)
	statusBar := renderStatusBar(&m, m.width)

	dims := computeLayout(m.width, m.height)
	left := m.renderGraphPanel(dims.leftWidth-2, dims.contentHeight-2)
	right := m.renderSidebar(dims.rightWidth-2, dims.contentHeight-2)
	panels := renderPanels(left, right, dims, m.focusedPanel)

	return header + "\n" + panels + "\n" + statusBar
}
