// Package engine holds the execution-state model for the dashboard: a
// reducer over typed actions that reconciles backend snapshots, classifies
// the session role, accumulates per-node descriptions, and derives edge
// styling. It has no dependency on any rendering layer.
package engine

import (
	"github.com/medflow-io/medflow/internal/models"
)

const (
	// logWindowSize bounds the trailing log window.
	logWindowSize = 100

	// maxDescriptionsPerNode bounds each node's description feed.
	maxDescriptionsPerNode = 5
)

// State is the complete reconciled execution state of one dashboard session.
// Mutate it only through Apply.
type State struct {
	Graph *models.Graph

	// Positions are the effective node positions: layout overrides merged
	// over server defaults, plus any user moves this session.
	Positions map[string]models.Position

	Nodes        map[string]models.NodeExecutionState
	Descriptions map[string][]models.NodeDescription
	Logs         []models.LogEvent
	Role         models.SessionRole
	EdgeStyles   map[string]EdgeStyle
	ExecutionID  string
	Paused       bool

	// LayoutDirty is true when positions changed since the last save.
	LayoutDirty bool

	// defaults are the server-supplied positions, kept so cleared layout
	// overrides fall back per node.
	defaults map[string]models.Position
}

// NewState creates an empty state with no graph loaded.
func NewState() *State {
	return &State{
		Positions:    map[string]models.Position{},
		Nodes:        map[string]models.NodeExecutionState{},
		Descriptions: map[string][]models.NodeDescription{},
		Role:         models.RoleUnknown,
		EdgeStyles:   map[string]EdgeStyle{},
	}
}

// Apply folds one action into the state.
func (s *State) Apply(action Action) {
	switch a := action.(type) {
	case GraphLoaded:
		s.applyGraphLoaded(a)
	case ExecutionSnapshot:
		s.applySnapshot(a.Snapshot)
	case LogAppended:
		s.appendLogs(a.Events)
		if !s.Paused {
			s.reclassify()
		}
	case SetPaused:
		s.Paused = a.Paused
	case Reset:
		s.reset()
	case NodeMoved:
		if s.Graph != nil && s.Graph.HasNode(a.ID) {
			s.Positions[a.ID] = a.Position
			s.LayoutDirty = true
		}
	case LayoutSaved:
		s.LayoutDirty = false
	case LayoutReplaced:
		s.Positions = mergePositions(s.defaults, a.Overrides)
		s.LayoutDirty = false
	}
}

func (s *State) applyGraphLoaded(a GraphLoaded) {
	s.Graph = a.Graph

	s.defaults = make(map[string]models.Position, len(a.Graph.Nodes))
	for _, n := range a.Graph.Nodes {
		s.defaults[n.ID] = n.Position
	}
	s.Positions = mergePositions(s.defaults, a.Overrides)
	s.LayoutDirty = false

	// The node set may have changed; execution state starts over idle.
	s.Nodes = make(map[string]models.NodeExecutionState, len(a.Graph.Nodes))
	for _, n := range a.Graph.Nodes {
		s.Nodes[n.ID] = models.NodeExecutionState{Status: models.StatusIdle}
	}
	s.Descriptions = map[string][]models.NodeDescription{}
	s.ExecutionID = ""
	s.EdgeStyles = ComputeEdgeStyles(a.Graph, s.Role)
}

// applySnapshot overwrites per-node state with the snapshot's values. Nodes
// absent from the snapshot keep their previous state; node ids not in the
// graph are ignored. While paused, snapshots are discarded outright: each
// one is a full state replacement, so superseded snapshots carry no
// information worth buffering.
func (s *State) applySnapshot(snap models.ExecutionSnapshot) {
	if s.Paused || s.Graph == nil {
		return
	}

	if key := snap.Key(); key != "" {
		s.ExecutionID = key
	}

	for id, incoming := range snap.Nodes {
		if !s.Graph.HasNode(id) {
			continue
		}

		state := s.Nodes[id]
		if models.ValidStatus(incoming.Status) {
			state.Status = incoming.Status
		}
		state.DurationMS = incoming.DurationMS
		if incoming.Timestamp != "" {
			state.Timestamp = incoming.Timestamp
		}
		s.Nodes[id] = state

		if state.Status == models.StatusRunning || state.Status == models.StatusCompleted {
			s.describe(id, incoming.Timestamp, incoming.DurationMS)
		}
	}

	if len(snap.Logs) > 0 {
		s.appendLogs(snap.Logs)
		s.reclassify()
	}
}

// describe appends a description entry for a node that entered running or
// completed, unless one with the same timestamp already exists.
func (s *State) describe(id string, timestamp string, duration *float64) {
	list := s.Descriptions[id]
	for _, d := range list {
		if d.Timestamp == timestamp {
			return
		}
	}

	label := id
	if node, ok := s.Graph.Node(id); ok {
		label = node.Label
	}
	title, body := describeNode(id, label, s.Role)

	list = append(list, models.NodeDescription{
		Title:       title,
		Description: body,
		Timestamp:   timestamp,
		DurationMS:  duration,
	})
	if len(list) > maxDescriptionsPerNode {
		list = list[len(list)-maxDescriptionsPerNode:]
	}
	s.Descriptions[id] = list
}

func (s *State) appendLogs(events []models.LogEvent) {
	s.Logs = append(s.Logs, events...)
	if len(s.Logs) > logWindowSize {
		s.Logs = s.Logs[len(s.Logs)-logWindowSize:]
	}
}

// reclassify re-runs role classification over the trailing log window. The
// result is sticky: an unknown classification leaves the current role alone.
func (s *State) reclassify() {
	role := ClassifyRole(s.Logs)
	if role == models.RoleUnknown || role == s.Role {
		return
	}
	s.Role = role
	s.EdgeStyles = ComputeEdgeStyles(s.Graph, s.Role)
}

// reset restores role, descriptions, node states, edge styles, and the log
// window to their initial values. Graph topology and effective positions
// stay as they are.
func (s *State) reset() {
	s.Role = models.RoleUnknown
	s.Descriptions = map[string][]models.NodeDescription{}
	s.Logs = nil
	s.ExecutionID = ""

	for id := range s.Nodes {
		s.Nodes[id] = models.NodeExecutionState{Status: models.StatusIdle}
	}
	s.EdgeStyles = ComputeEdgeStyles(s.Graph, s.Role)
}

// CompletedCount returns the number of nodes with completed status.
func (s *State) CompletedCount() int {
	count := 0
	for _, state := range s.Nodes {
		if state.Status == models.StatusCompleted {
			count++
		}
	}
	return count
}

// TotalCount returns the number of nodes in the loaded graph.
func (s *State) TotalCount() int {
	if s.Graph == nil {
		return 0
	}
	return len(s.Graph.Nodes)
}

// AverageDurationMS returns the arithmetic mean duration over completed
// nodes that reported one. Zero such nodes yields 0.
func (s *State) AverageDurationMS() float64 {
	sum := 0.0
	count := 0
	for _, state := range s.Nodes {
		if state.Status == models.StatusCompleted && state.DurationMS != nil {
			sum += *state.DurationMS
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func mergePositions(defaults, overrides map[string]models.Position) map[string]models.Position {
	merged := make(map[string]models.Position, len(defaults))
	for id, pos := range defaults {
		merged[id] = pos
	}
	for id, pos := range overrides {
		if _, ok := defaults[id]; ok {
			merged[id] = pos
		}
	}
	return merged
}
