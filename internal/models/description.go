package models

// NodeDescription is one human-readable entry in a node's activity feed.
// Appended when the node transitions into running or completed; at most one
// entry per event timestamp.
type NodeDescription struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Timestamp   string   `yaml:"timestamp" json:"timestamp"`
	DurationMS  *float64 `yaml:"duration_ms,omitempty" json:"duration_ms,omitempty"`
}
