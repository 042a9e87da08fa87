package tui

import (
	"github.com/medflow-io/medflow/internal/backend"
	"github.com/medflow-io/medflow/internal/models"
)

// GraphLoadedMsg carries the fetched graph plus layout overrides.
type GraphLoadedMsg struct {
	Graph     *models.Graph
	Overrides map[string]models.Position
	Warnings  []string
}

// GraphLoadFailedMsg signals the graph fetch failed. Non-fatal: the panel
// shows the error and a manual refresh re-issues the fetch.
type GraphLoadFailedMsg struct {
	Err error
}

// ExecutionUpdateMsg carries a full execution snapshot from the stream.
type ExecutionUpdateMsg struct {
	Snapshot models.ExecutionSnapshot
}

// LogEventMsg carries a single log event from the stream.
type LogEventMsg struct {
	Event models.LogEvent
}

// StreamOpenedMsg signals the Socket.IO stream was set up.
type StreamOpenedMsg struct {
	Stream *backend.Stream
}

// StreamFailedMsg signals the stream could not be opened.
type StreamFailedMsg struct {
	Err error
}

// StreamConnectedMsg signals the socket is connected.
type StreamConnectedMsg struct{}

// StreamDisconnectedMsg signals the socket dropped.
type StreamDisconnectedMsg struct{}

// ProbeResultMsg carries the outcome of a reachability probe.
type ProbeResultMsg struct {
	Reachable bool
}

// LayoutSavedMsg signals a layout save attempt finished.
type LayoutSavedMsg struct {
	Err error
}

// LayoutClearedMsg signals the persisted layout was removed.
type LayoutClearedMsg struct {
	Err error
}

// LayoutFileChangedMsg signals the layout snapshot changed on disk.
type LayoutFileChangedMsg struct{}

// LayoutReloadedMsg carries overrides re-read from the store.
type LayoutReloadedMsg struct {
	Overrides map[string]models.Position
}

// ReportWrittenMsg carries the result of a session report export.
type ReportWrittenMsg struct {
	Path string
	Err  error
}

// ErrorMsg carries an error to display in the status bar.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

// ClearSavedMsg clears the "Saved" indicator.
type ClearSavedMsg struct{}

// probeTickMsg fires the periodic connectivity probe.
type probeTickMsg struct{}

// spinnerTickMsg advances running-node and active-edge animation.
type spinnerTickMsg struct{}
