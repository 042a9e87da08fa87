package engine

import (
	"fmt"
	"testing"

	"github.com/medflow-io/medflow/internal/models"
)

func testGraph() *models.Graph {
	return &models.Graph{
		Nodes: []models.GraphNode{
			{ID: "whatsapp", Label: "WhatsApp", Category: models.CategoryExternal, Position: models.Position{X: 0, Y: 100}},
			{ID: "n0", Label: "Identification", Category: models.CategoryProcess, Position: models.Position{X: 200, Y: 100}},
			{ID: "n1", Label: "Session cache", Category: models.CategoryProcess, Position: models.Position{X: 400, Y: 100}},
			{ID: "n2", Label: "Routing", Category: models.CategoryProcess, Position: models.Position{X: 600, Y: 100}},
			{ID: "n2a", Label: "Maya patient", Category: models.CategoryLLM, Position: models.Position{X: 800, Y: 50}},
			{ID: "n2b", Label: "Maya doctor", Category: models.CategoryLLM, Position: models.Position{X: 800, Y: 150}},
		},
		Edges: []models.GraphEdge{
			{ID: "e0", Source: "whatsapp", Target: "n0", Kind: models.EdgeFlow},
			{ID: "e1", Source: "n0", Target: "n1", Kind: models.EdgeFlow},
			{ID: "e2", Source: "n2", Target: "n2a", Kind: models.EdgeConditional},
			{ID: "e3", Source: "n2", Target: "n2b", Kind: models.EdgeConditional},
		},
	}
}

func loadedState() *State {
	s := NewState()
	s.Apply(GraphLoaded{Graph: testGraph()})
	return s
}

func floatPtr(f float64) *float64 { return &f }

func TestGraphLoadedInitializesIdle(t *testing.T) {
	s := loadedState()

	if len(s.Nodes) != 6 {
		t.Fatalf("len(Nodes) = %d, want 6", len(s.Nodes))
	}
	for id, state := range s.Nodes {
		if state.Status != models.StatusIdle {
			t.Errorf("node %s status = %s, want idle", id, state.Status)
		}
	}
	for id, style := range s.EdgeStyles {
		if style.Tone != ToneNeutral || style.Animated {
			t.Errorf("edge %s style = %+v, want neutral static", id, style)
		}
	}
}

func TestGraphLoadedMergesOverrides(t *testing.T) {
	s := NewState()
	s.Apply(GraphLoaded{
		Graph: testGraph(),
		Overrides: map[string]models.Position{
			"n0":    {X: 999, Y: 999},
			"ghost": {X: 1, Y: 1},
		},
	})

	if got := s.Positions["n0"]; got.X != 999 {
		t.Errorf("n0 position = %+v, want override (999, 999)", got)
	}
	if got := s.Positions["n1"]; got.X != 400 {
		t.Errorf("n1 position = %+v, want server default (400, 100)", got)
	}
	if _, ok := s.Positions["ghost"]; ok {
		t.Error("override for unknown node id should be dropped")
	}
}

func TestSnapshotReconciliation(t *testing.T) {
	s := loadedState()

	s.Apply(ExecutionSnapshot{Snapshot: models.ExecutionSnapshot{
		ExecutionID: "exec-1",
		Nodes: map[string]models.NodeExecutionState{
			"n0": {Status: models.StatusCompleted, DurationMS: floatPtr(120), Timestamp: "2026-08-28T10:00:00Z"},
			"n1": {Status: models.StatusRunning, Timestamp: "2026-08-28T10:00:01Z"},
		},
	}})

	if s.ExecutionID != "exec-1" {
		t.Errorf("ExecutionID = %q, want exec-1", s.ExecutionID)
	}
	if got := s.Nodes["n0"].Status; got != models.StatusCompleted {
		t.Errorf("n0 status = %s, want completed", got)
	}
	if got := s.Nodes["n1"].Status; got != models.StatusRunning {
		t.Errorf("n1 status = %s, want running", got)
	}

	// Nodes absent from the next snapshot keep their previous state.
	s.Apply(ExecutionSnapshot{Snapshot: models.ExecutionSnapshot{
		ExecutionID: "exec-1",
		Nodes: map[string]models.NodeExecutionState{
			"n1": {Status: models.StatusCompleted, DurationMS: floatPtr(80), Timestamp: "2026-08-28T10:00:02Z"},
		},
	}})

	if got := s.Nodes["n0"].Status; got != models.StatusCompleted {
		t.Errorf("after second snapshot, n0 status = %s, want completed (kept)", got)
	}
	if got := s.Nodes["n0"].DurationMS; got == nil || *got != 120 {
		t.Errorf("after second snapshot, n0 duration = %v, want 120 (kept)", got)
	}
}

func TestSnapshotIgnoresUnknownAndMalformed(t *testing.T) {
	s := loadedState()

	s.Apply(ExecutionSnapshot{Snapshot: models.ExecutionSnapshot{
		Nodes: map[string]models.NodeExecutionState{
			"nope": {Status: models.StatusRunning},
			"n0":   {Status: "exploded", Timestamp: "2026-08-28T10:00:00Z"},
		},
	}})

	if _, ok := s.Nodes["nope"]; ok {
		t.Error("unknown node id must not enter state")
	}
	if got := s.Nodes["n0"].Status; got != models.StatusIdle {
		t.Errorf("n0 status = %s, want idle after unrecognized status", got)
	}
	if got := s.Nodes["n0"].Timestamp; got != "2026-08-28T10:00:00Z" {
		t.Errorf("n0 timestamp = %q, want the snapshot value", got)
	}
}

func TestPausedDiscardsSnapshots(t *testing.T) {
	s := loadedState()
	s.Apply(SetPaused{Paused: true})

	s.Apply(ExecutionSnapshot{Snapshot: models.ExecutionSnapshot{
		ExecutionID: "exec-paused",
		Nodes: map[string]models.NodeExecutionState{
			"n0": {Status: models.StatusRunning},
		},
		Logs: []models.LogEvent{{Message: "flujo médico activado"}},
	}})

	if got := s.Nodes["n0"].Status; got != models.StatusIdle {
		t.Errorf("paused snapshot applied: n0 status = %s, want idle", got)
	}
	if s.ExecutionID != "" {
		t.Errorf("paused snapshot set ExecutionID = %q, want empty", s.ExecutionID)
	}
	if len(s.Logs) != 0 {
		t.Errorf("paused snapshot appended %d logs, want 0", len(s.Logs))
	}

	// Resuming does not replay the discarded snapshot.
	s.Apply(SetPaused{Paused: false})
	if got := s.Nodes["n0"].Status; got != models.StatusIdle {
		t.Errorf("after resume, n0 status = %s, want idle", got)
	}
}

func TestDescriptionsDedupeByTimestamp(t *testing.T) {
	s := loadedState()
	snap := models.ExecutionSnapshot{
		Nodes: map[string]models.NodeExecutionState{
			"n0": {Status: models.StatusRunning, Timestamp: "2026-08-28T10:00:00Z"},
		},
	}

	s.Apply(ExecutionSnapshot{Snapshot: snap})
	s.Apply(ExecutionSnapshot{Snapshot: snap})

	if got := len(s.Descriptions["n0"]); got != 1 {
		t.Errorf("descriptions after duplicate snapshot = %d, want 1", got)
	}
}

func TestDescriptionsFIFOCap(t *testing.T) {
	s := loadedState()

	for i := 0; i < 8; i++ {
		s.Apply(ExecutionSnapshot{Snapshot: models.ExecutionSnapshot{
			Nodes: map[string]models.NodeExecutionState{
				"n0": {Status: models.StatusRunning, Timestamp: fmt.Sprintf("2026-08-28T10:00:%02dZ", i)},
			},
		}})
	}

	descs := s.Descriptions["n0"]
	if len(descs) != 5 {
		t.Fatalf("descriptions = %d, want cap of 5", len(descs))
	}
	if descs[0].Timestamp != "2026-08-28T10:00:03Z" {
		t.Errorf("oldest kept = %s, want the 4th entry after eviction", descs[0].Timestamp)
	}
	if descs[4].Timestamp != "2026-08-28T10:00:07Z" {
		t.Errorf("newest kept = %s, want the last entry", descs[4].Timestamp)
	}
}

func TestSnapshotLogsClassifyRole(t *testing.T) {
	s := loadedState()

	s.Apply(ExecutionSnapshot{Snapshot: models.ExecutionSnapshot{
		Nodes: map[string]models.NodeExecutionState{},
		Logs:  []models.LogEvent{{Message: "Usuario identificado como PACIENTE"}},
	}})

	if s.Role != models.RolePatient {
		t.Fatalf("Role = %s, want patient", s.Role)
	}
	if style := s.EdgeStyles["e2"]; style.Tone != TonePatient || !style.Animated {
		t.Errorf("patient-branch edge style = %+v, want animated patient tone", style)
	}
	if style := s.EdgeStyles["e3"]; style.Tone != ToneNeutral {
		t.Errorf("doctor-branch edge style = %+v, want neutral", style)
	}
}

func TestRoleIsSticky(t *testing.T) {
	s := loadedState()

	s.Apply(LogAppended{Events: []models.LogEvent{{Message: "redirigiendo al flujo médico"}}})
	if s.Role != models.RoleDoctor {
		t.Fatalf("Role = %s, want doctor", s.Role)
	}

	// A burst of non-indicative messages must not reset the role.
	for i := 0; i < classifierWindow+5; i++ {
		s.Apply(LogAppended{Events: []models.LogEvent{{Message: "procesando"}}})
	}
	if s.Role != models.RoleDoctor {
		t.Errorf("Role = %s after neutral messages, want doctor (sticky)", s.Role)
	}
}

func TestLogWindowBounded(t *testing.T) {
	s := loadedState()

	events := make([]models.LogEvent, 0, logWindowSize+40)
	for i := 0; i < logWindowSize+40; i++ {
		events = append(events, models.LogEvent{Message: fmt.Sprintf("entry %d", i)})
	}
	s.Apply(LogAppended{Events: events})

	if len(s.Logs) != logWindowSize {
		t.Fatalf("log window = %d, want %d", len(s.Logs), logWindowSize)
	}
	if s.Logs[0].Message != "entry 40" {
		t.Errorf("oldest kept = %q, want entry 40", s.Logs[0].Message)
	}
}

func TestResetRestoresIdle(t *testing.T) {
	s := loadedState()
	s.Apply(NodeMoved{ID: "n0", Position: models.Position{X: 50, Y: 50}})
	s.Apply(ExecutionSnapshot{Snapshot: models.ExecutionSnapshot{
		ExecutionID: "exec-9",
		Nodes: map[string]models.NodeExecutionState{
			"n0": {Status: models.StatusCompleted, DurationMS: floatPtr(10), Timestamp: "2026-08-28T10:00:00Z"},
		},
		Logs: []models.LogEvent{{Message: "paciente"}},
	}})

	s.Apply(Reset{})

	if s.Role != models.RoleUnknown {
		t.Errorf("Role = %s, want unknown", s.Role)
	}
	if s.ExecutionID != "" {
		t.Errorf("ExecutionID = %q, want empty", s.ExecutionID)
	}
	if len(s.Logs) != 0 || len(s.Descriptions) != 0 {
		t.Errorf("logs/descriptions survived reset: %d logs, %d descriptions", len(s.Logs), len(s.Descriptions))
	}
	for id, state := range s.Nodes {
		if state.Status != models.StatusIdle || state.DurationMS != nil {
			t.Errorf("node %s = %+v, want idle with no duration", id, state)
		}
	}
	// Layout survives a reset.
	if got := s.Positions["n0"]; got.X != 50 {
		t.Errorf("n0 position = %+v, want the moved position kept", got)
	}
}

func TestNodeMovedTracksDirty(t *testing.T) {
	s := loadedState()

	s.Apply(NodeMoved{ID: "ghost", Position: models.Position{X: 1, Y: 1}})
	if s.LayoutDirty {
		t.Error("moving an unknown node must not dirty the layout")
	}

	s.Apply(NodeMoved{ID: "n1", Position: models.Position{X: 420, Y: 120}})
	if !s.LayoutDirty {
		t.Error("LayoutDirty = false after a move, want true")
	}

	s.Apply(LayoutSaved{})
	if s.LayoutDirty {
		t.Error("LayoutDirty = true after save, want false")
	}
}

func TestLayoutReplacedFallsBackToDefaults(t *testing.T) {
	s := NewState()
	s.Apply(GraphLoaded{
		Graph:     testGraph(),
		Overrides: map[string]models.Position{"n0": {X: 999, Y: 999}},
	})

	s.Apply(LayoutReplaced{Overrides: map[string]models.Position{}})

	if got := s.Positions["n0"]; got.X != 200 {
		t.Errorf("n0 position after clear = %+v, want server default (200, 100)", got)
	}
}

func TestStats(t *testing.T) {
	s := loadedState()

	if got := s.AverageDurationMS(); got != 0 {
		t.Errorf("AverageDurationMS with no completions = %v, want 0", got)
	}

	s.Apply(ExecutionSnapshot{Snapshot: models.ExecutionSnapshot{
		Nodes: map[string]models.NodeExecutionState{
			"n0": {Status: models.StatusCompleted, DurationMS: floatPtr(100), Timestamp: "t1"},
			"n1": {Status: models.StatusCompleted, DurationMS: floatPtr(300), Timestamp: "t2"},
			"n2": {Status: models.StatusCompleted, Timestamp: "t3"},
			"n2a": {Status: models.StatusRunning, Timestamp: "t4"},
		},
	}})

	if got := s.CompletedCount(); got != 3 {
		t.Errorf("CompletedCount = %d, want 3", got)
	}
	if got := s.TotalCount(); got != 6 {
		t.Errorf("TotalCount = %d, want 6", got)
	}
	if got := s.AverageDurationMS(); got != 200 {
		t.Errorf("AverageDurationMS = %v, want 200 (mean over reported durations)", got)
	}
}
