package models

// LogLevel is the severity of a log event.
type LogLevel string

// Log levels emitted by the backend.
const (
	LevelInfo    LogLevel = "INFO"
	LevelWarning LogLevel = "WARNING"
	LevelError   LogLevel = "ERROR"
	LevelDebug   LogLevel = "DEBUG"
)

// LogEvent is one entry of the backend's append-only log stream. Immutable
// once received; the dashboard keeps only a bounded trailing window.
type LogEvent struct {
	Timestamp   string   `json:"timestamp" yaml:"timestamp"`
	Level       LogLevel `json:"level" yaml:"level"`
	Message     string   `json:"message" yaml:"message"`
	NodeID      string   `json:"node_id,omitempty" yaml:"node_id,omitempty"`
	ExecutionID string   `json:"execution_id,omitempty" yaml:"execution_id,omitempty"`
	Status      string   `json:"status,omitempty" yaml:"status,omitempty"`
	DurationMS  *float64 `json:"duration_ms,omitempty" yaml:"duration_ms,omitempty"`
}
