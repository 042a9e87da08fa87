package config

import (
	"os"
	"strings"
	"testing"

	"github.com/medflow-io/medflow/internal/models"
)

func TestSettingsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.BackendURL != "http://localhost:8000" {
		t.Errorf("BackendURL = %q, want default", settings.BackendURL)
	}
	if settings.SocketNamespace != "/" {
		t.Errorf("SocketNamespace = %q, want /", settings.SocketNamespace)
	}
	if settings.ProbeIntervalSeconds != 30 {
		t.Errorf("ProbeIntervalSeconds = %d, want 30", settings.ProbeIntervalSeconds)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings := models.NewSettings()
	settings.BackendURL = "http://example.test:9000"
	settings.ProbeIntervalSeconds = 5

	if err := SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	loaded, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if loaded.BackendURL != "http://example.test:9000" || loaded.ProbeIntervalSeconds != 5 {
		t.Errorf("loaded = %+v, want saved values", loaded)
	}
}

func TestWriteSessionReport(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	duration := 150.0
	report := models.SessionReport{
		SessionID:      "abc-123",
		ExecutionID:    "exec-1",
		Role:           models.RoleDoctor,
		CompletedNodes: 4,
		TotalNodes:     26,
		Logs: []models.LogEvent{
			{Timestamp: "2026-08-28T10:00:00Z", Level: models.LevelInfo, Message: "hola", DurationMS: &duration},
		},
	}

	path, err := WriteSessionReport(report)
	if err != nil {
		t.Fatalf("WriteSessionReport: %v", err)
	}
	if !strings.HasSuffix(path, "abc-123.yaml") {
		t.Errorf("path = %q, want file named after session id", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	content := string(data)
	for _, want := range []string{"session_id: abc-123", "role: doctor", "completed_nodes: 4"} {
		if !strings.Contains(content, want) {
			t.Errorf("report missing %q:\n%s", want, content)
		}
	}

	paths, err := ListSessionReports()
	if err != nil {
		t.Fatalf("ListSessionReports: %v", err)
	}
	if len(paths) != 1 || paths[0] != path {
		t.Errorf("ListSessionReports = %v, want just %q", paths, path)
	}
}

func TestListSessionReportsMissingDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	paths, err := ListSessionReports()
	if err != nil {
		t.Fatalf("ListSessionReports: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("paths = %v, want none", paths)
	}
}
