package engine

import (
	"testing"

	"github.com/medflow-io/medflow/internal/models"
)

// pathGraph covers the three edge classes: shared prefix, doctor-only
// branch, patient-only branch, and an edge fully off both paths.
func pathGraph() *models.Graph {
	return &models.Graph{
		Edges: []models.GraphEdge{
			{ID: "shared", Source: "n1", Target: "n2", Kind: models.EdgeFlow},
			{ID: "doc", Source: "n2b", Target: "n3b", Kind: models.EdgeFlow},
			{ID: "pat", Source: "n2a", Target: "n3a", Kind: models.EdgeFlow},
			{ID: "off", Source: "n8", Target: "db_postgres", Kind: models.EdgeData},
			{ID: "half", Source: "n2", Target: "n6r", Kind: models.EdgeConditional},
		},
	}
}

func TestComputeEdgeStyles(t *testing.T) {
	tests := []struct {
		name     string
		role     models.SessionRole
		expected map[string]EdgeTone
	}{
		{
			name: "unknown role leaves everything neutral",
			role: models.RoleUnknown,
			expected: map[string]EdgeTone{
				"shared": ToneNeutral, "doc": ToneNeutral, "pat": ToneNeutral,
				"off": ToneNeutral, "half": ToneNeutral,
			},
		},
		{
			name: "doctor role lights shared and doctor edges",
			role: models.RoleDoctor,
			expected: map[string]EdgeTone{
				"shared": ToneDoctor, "doc": ToneDoctor, "pat": ToneNeutral,
				"off": ToneNeutral, "half": ToneNeutral,
			},
		},
		{
			name: "patient role lights shared and patient edges",
			role: models.RolePatient,
			expected: map[string]EdgeTone{
				"shared": TonePatient, "doc": ToneNeutral, "pat": TonePatient,
				"off": ToneNeutral, "half": ToneNeutral,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			styles := ComputeEdgeStyles(pathGraph(), tt.role)
			for id, tone := range tt.expected {
				style, ok := styles[id]
				if !ok {
					t.Fatalf("edge %s missing from styles", id)
				}
				if style.Tone != tone {
					t.Errorf("edge %s tone = %s, want %s", id, style.Tone, tone)
				}
				active := tone != ToneNeutral
				if style.Animated != active || style.Glow != active {
					t.Errorf("edge %s animated/glow = %v/%v, want %v", id, style.Animated, style.Glow, active)
				}
			}
		})
	}
}

func TestComputeEdgeStylesNilGraph(t *testing.T) {
	styles := ComputeEdgeStyles(nil, models.RoleDoctor)
	if len(styles) != 0 {
		t.Errorf("styles for nil graph = %d entries, want 0", len(styles))
	}
}

func TestCanonicalPathsShareEnds(t *testing.T) {
	doctor := DoctorPath()
	patient := PatientPath()

	if len(doctor) != 11 || len(patient) != 11 {
		t.Fatalf("path lengths = %d/%d, want 11/11", len(doctor), len(patient))
	}
	if doctor[0] != "whatsapp" || patient[0] != "whatsapp" {
		t.Error("both paths must start at whatsapp")
	}
	if doctor[10] != "response" || patient[10] != "response" {
		t.Error("both paths must end at response")
	}

	// Returned slices are copies; mutating them must not corrupt styling.
	doctor[0] = "tampered"
	styles := ComputeEdgeStyles(&models.Graph{Edges: []models.GraphEdge{
		{ID: "e", Source: "whatsapp", Target: "n0"},
	}}, models.RoleDoctor)
	if styles["e"].Tone != ToneDoctor {
		t.Error("mutating a returned path copy affected edge styling")
	}
}

func TestDescribeNode(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		label     string
		role      models.SessionRole
		wantTitle string
		wantBody  string
	}{
		{
			name:      "routing node unknown role",
			id:        "n2",
			label:     "Routing",
			role:      models.RoleUnknown,
			wantTitle: "Routing",
			wantBody:  "Classifying the request and choosing the matching workflow branch...",
		},
		{
			name:      "routing node doctor variant",
			id:        "n2",
			label:     "Routing",
			role:      models.RoleDoctor,
			wantTitle: "Routing",
			wantBody:  "User identified as DOCTOR. Redirecting to the specialized medical flow...",
		},
		{
			name:      "routing node patient variant",
			id:        "n2",
			label:     "Routing",
			role:      models.RolePatient,
			wantTitle: "Routing",
			wantBody:  "User identified as PATIENT. Preparing the personal assistant Maya...",
		},
		{
			name:      "node without role variants ignores role",
			id:        "n7",
			label:     "Persistence",
			role:      models.RoleDoctor,
			wantTitle: "Persistence",
			wantBody:  "Saving the conversation context to keep continuity across interactions...",
		},
		{
			name:      "unknown node falls back to label",
			id:        "n99",
			label:     "Mystery",
			role:      models.RolePatient,
			wantTitle: "Mystery",
			wantBody:  "Processing Mystery...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body := describeNode(tt.id, tt.label, tt.role)
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}
