package backend

import (
	"testing"

	"github.com/medflow-io/medflow/internal/models"
)

func TestDecodePayload(t *testing.T) {
	// Socket.IO hands payloads over as generic maps.
	payload := map[string]any{
		"timestamp":   "2026-08-28T10:00:00Z",
		"level":       "WARNING",
		"message":     "cache miss",
		"node_id":     "n1",
		"duration_ms": 12.5,
		"unexpected":  "ignored",
	}

	var event models.LogEvent
	if err := decodePayload(payload, &event); err != nil {
		t.Fatalf("decodePayload: %v", err)
	}
	if event.Level != models.LevelWarning || event.Message != "cache miss" {
		t.Errorf("event = %+v, want warning cache miss", event)
	}
	if event.NodeID != "n1" || event.DurationMS == nil || *event.DurationMS != 12.5 {
		t.Errorf("event = %+v, want node n1 with 12.5ms", event)
	}
}

func TestDecodePayloadSnapshot(t *testing.T) {
	payload := map[string]any{
		"execution_id": "exec-7",
		"nodes": map[string]any{
			"n0": map[string]any{"status": "running", "timestamp": "t1"},
		},
	}

	var snapshot models.ExecutionSnapshot
	if err := decodePayload(payload, &snapshot); err != nil {
		t.Fatalf("decodePayload: %v", err)
	}
	if snapshot.Key() != "exec-7" {
		t.Errorf("Key = %q, want exec-7", snapshot.Key())
	}
	if got := snapshot.Nodes["n0"]; got.Status != models.StatusRunning {
		t.Errorf("n0 = %+v, want running", got)
	}
}

func TestDecodePayloadRejectsMismatch(t *testing.T) {
	var event models.LogEvent
	if err := decodePayload("just a string", &event); err == nil {
		t.Error("decodePayload on mismatched payload = nil, want error")
	}
}
