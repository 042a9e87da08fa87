package models

// SessionReport is a point-in-time export of a dashboard session, written
// to ~/.medflow/sessions/ on demand.
type SessionReport struct {
	SessionID         string            `yaml:"session_id"`
	ExecutionID       string            `yaml:"execution_id,omitempty"`
	StartedAt         string            `yaml:"started_at"`
	ExportedAt        string            `yaml:"exported_at"`
	Role              SessionRole       `yaml:"role"`
	CompletedNodes    int               `yaml:"completed_nodes"`
	TotalNodes        int               `yaml:"total_nodes"`
	AverageDurationMS float64           `yaml:"average_duration_ms"`
	Logs              []LogEvent        `yaml:"logs,omitempty"`
	Descriptions      map[string][]NodeDescription `yaml:"descriptions,omitempty"`
}
