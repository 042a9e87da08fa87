package engine

import (
	"github.com/medflow-io/medflow/internal/models"
)

// EdgeTone is the semantic color of an edge; the rendering layer maps it to
// concrete styling (doctor white, patient blue, neutral gray).
type EdgeTone string

// Edge tones.
const (
	ToneNeutral EdgeTone = "neutral"
	ToneDoctor  EdgeTone = "doctor"
	TonePatient EdgeTone = "patient"
)

// EdgeStyle is the derived visual state of one edge. It is a pure function
// of the session role and static path membership, fully recomputed on every
// role change.
type EdgeStyle struct {
	Tone     EdgeTone
	Animated bool
	Glow     bool
}

// Canonical role paths through the workflow, ordered entry to exit. Both
// share the whatsapp..n2 prefix and the n6..response suffix; the middle
// differs per role branch.
var (
	doctorPath = []string{
		"whatsapp", "n0", "n1", "n2",
		"n2b", "n3b", "n4b", "n5b",
		"n6", "n7", "response",
	}

	patientPath = []string{
		"whatsapp", "n0", "n1", "n2",
		"n2a", "n3a", "n4a", "n5a",
		"n6", "n7", "response",
	}
)

// DoctorPath returns the canonical doctor path node sequence.
func DoctorPath() []string {
	return append([]string(nil), doctorPath...)
}

// PatientPath returns the canonical patient path node sequence.
func PatientPath() []string {
	return append([]string(nil), patientPath...)
}

// ComputeEdgeStyles derives the style of every edge for the given role. An
// edge is on the active path iff both its endpoints are members of the
// active role's sequence; everything else renders neutral and static.
func ComputeEdgeStyles(g *models.Graph, role models.SessionRole) map[string]EdgeStyle {
	styles := map[string]EdgeStyle{}
	if g == nil {
		return styles
	}

	var members map[string]bool
	var tone EdgeTone
	switch role {
	case models.RoleDoctor:
		members = pathSet(doctorPath)
		tone = ToneDoctor
	case models.RolePatient:
		members = pathSet(patientPath)
		tone = TonePatient
	}

	for _, e := range g.Edges {
		style := EdgeStyle{Tone: ToneNeutral}
		if members != nil && members[e.Source] && members[e.Target] {
			style = EdgeStyle{Tone: tone, Animated: true, Glow: true}
		}
		styles[e.ID] = style
	}
	return styles
}

func pathSet(path []string) map[string]bool {
	set := make(map[string]bool, len(path))
	for _, id := range path {
		set[id] = true
	}
	return set
}
