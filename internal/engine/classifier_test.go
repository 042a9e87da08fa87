package engine

import (
	"fmt"
	"testing"

	"github.com/medflow-io/medflow/internal/models"
)

func logs(messages ...string) []models.LogEvent {
	events := make([]models.LogEvent, len(messages))
	for i, m := range messages {
		events[i] = models.LogEvent{Message: m}
	}
	return events
}

func TestClassifyRole(t *testing.T) {
	tests := []struct {
		name     string
		window   []models.LogEvent
		expected models.SessionRole
	}{
		{
			name:     "empty window",
			window:   nil,
			expected: models.RoleUnknown,
		},
		{
			name:     "no indicative messages",
			window:   logs("procesando mensaje", "guardando contexto"),
			expected: models.RoleUnknown,
		},
		{
			name:     "doctor keyword spanish",
			window:   logs("redirigiendo al flujo médico"),
			expected: models.RoleDoctor,
		},
		{
			name:     "doctor keyword ascii",
			window:   logs("usuario identificado como medico"),
			expected: models.RoleDoctor,
		},
		{
			name:     "patient keyword",
			window:   logs("Usuario identificado como PACIENTE"),
			expected: models.RolePatient,
		},
		{
			name:     "patient keyword english",
			window:   logs("routing to patient assistant"),
			expected: models.RolePatient,
		},
		{
			name:     "case insensitive",
			window:   logs("MAYA DOCTOR activada"),
			expected: models.RoleDoctor,
		},
		{
			name:     "branch node id counts",
			window:   logs("ejecutando n2a"),
			expected: models.RolePatient,
		},
		{
			name:     "newest indicative message wins",
			window:   logs("paciente detectado", "ahora es doctor"),
			expected: models.RoleDoctor,
		},
		{
			name:     "newest wins the other way",
			window:   logs("doctor detectado", "reasignado a paciente"),
			expected: models.RolePatient,
		},
		{
			name:     "doctor terms take precedence within one message",
			window:   logs("doctor consultando sobre su paciente"),
			expected: models.RoleDoctor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClassifyRole(tt.window)
			if result != tt.expected {
				t.Errorf("ClassifyRole(%d events) = %s, want %s", len(tt.window), result, tt.expected)
			}
		})
	}
}

func TestClassifyRoleWindowBound(t *testing.T) {
	// An indicative message older than the window must be invisible.
	window := logs("usuario es doctor")
	for i := 0; i < classifierWindow; i++ {
		window = append(window, models.LogEvent{Message: fmt.Sprintf("neutro %d", i)})
	}

	if got := ClassifyRole(window); got != models.RoleUnknown {
		t.Errorf("ClassifyRole = %s, want unknown when the match fell out of the window", got)
	}

	// At exactly the window edge it still counts.
	window = window[:len(window)-1]
	if got := ClassifyRole(window); got != models.RoleDoctor {
		t.Errorf("ClassifyRole = %s, want doctor at the window edge", got)
	}
}
