package engine

import (
	"github.com/medflow-io/medflow/internal/models"
)

// Action is a typed state transition applied to a State. Every mutation of
// execution-related state goes through Apply so transitions stay testable
// without any rendering layer.
type Action interface {
	isAction()
}

// GraphLoaded installs a freshly fetched graph and the layout overrides to
// merge over server-default positions.
type GraphLoaded struct {
	Graph     *models.Graph
	Overrides map[string]models.Position
}

// ExecutionSnapshot folds a full backend snapshot into per-node state.
type ExecutionSnapshot struct {
	Snapshot models.ExecutionSnapshot
}

// LogAppended appends events to the trailing log window.
type LogAppended struct {
	Events []models.LogEvent
}

// SetPaused gates snapshot application and role classification.
type SetPaused struct {
	Paused bool
}

// Reset restores execution state, descriptions, role, and edge styling to
// their initial idle values. The graph and persisted layout are untouched.
type Reset struct{}

// NodeMoved records a user-initiated position change for one node.
type NodeMoved struct {
	ID       string
	Position models.Position
}

// LayoutSaved marks the current positions as persisted.
type LayoutSaved struct{}

// LayoutReplaced swaps in a new set of overrides, e.g. after the snapshot
// file changed on disk or was cleared.
type LayoutReplaced struct {
	Overrides map[string]models.Position
}

func (GraphLoaded) isAction()       {}
func (ExecutionSnapshot) isAction() {}
func (LogAppended) isAction()       {}
func (SetPaused) isAction()         {}
func (Reset) isAction()             {}
func (NodeMoved) isAction()         {}
func (LayoutSaved) isAction()       {}
func (LayoutReplaced) isAction()    {}
