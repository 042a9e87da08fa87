package models

// NodeStatus represents the execution status of a workflow node.
type NodeStatus string

// Node execution statuses.
const (
	StatusIdle      NodeStatus = "idle"
	StatusRunning   NodeStatus = "running"
	StatusCompleted NodeStatus = "completed"
	StatusError     NodeStatus = "error"
)

// ValidStatus reports whether s is one of the known statuses.
func ValidStatus(s NodeStatus) bool {
	switch s {
	case StatusIdle, StatusRunning, StatusCompleted, StatusError:
		return true
	}
	return false
}

// NodeExecutionState is the live execution state of one node. Mutated only
// by the reconciler in response to inbound snapshots.
type NodeExecutionState struct {
	Status     NodeStatus `json:"status"`
	DurationMS *float64   `json:"duration_ms,omitempty"`
	Timestamp  string     `json:"timestamp,omitempty"`
}

// ExecutionSnapshot is the full current state of all touched nodes, as
// emitted by the backend on every tick. The backend tags the snapshot with
// either "id" or "execution_id" depending on the delivery path; Key resolves
// whichever is set.
type ExecutionSnapshot struct {
	ID          string                        `json:"id,omitempty"`
	ExecutionID string                        `json:"execution_id,omitempty"`
	StartTime   string                        `json:"start_time,omitempty"`
	Nodes       map[string]NodeExecutionState `json:"nodes"`
	Logs        []LogEvent                    `json:"logs,omitempty"`
}

// Key returns the snapshot's execution identifier.
func (s ExecutionSnapshot) Key() string {
	if s.ExecutionID != "" {
		return s.ExecutionID
	}
	return s.ID
}
