package models

// Settings holds the global medflow settings.
// This corresponds to ~/.medflow/settings.yaml.
type Settings struct {
	Version              int    `yaml:"version"`
	BackendURL           string `yaml:"backend_url"`
	SocketNamespace      string `yaml:"socket_namespace"`
	ProbeIntervalSeconds int    `yaml:"probe_interval_seconds"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:              1,
		BackendURL:           "http://localhost:8000",
		SocketNamespace:      "/",
		ProbeIntervalSeconds: 30,
	}
}
