package engine

import (
	"strings"

	"github.com/medflow-io/medflow/internal/models"
)

// classifierWindow is how many trailing log entries classification scans.
const classifierWindow = 20

// Keyword sets the classifier matches case-insensitively against log
// messages. The backend logs in Spanish, with English terms mixed in by the
// tooling around it, so both appear here. Doctor terms are checked first:
// a message matching both sets classifies as doctor.
var (
	doctorTerms = []string{
		"doctor",
		"médico",
		"medico",
		"maya doctor",
		"flujo médico",
		"n2b",
	}

	patientTerms = []string{
		"paciente",
		"patient",
		"maya paciente",
		"asistente personal",
		"n2a",
	}
)

// ClassifyRole infers the session role from the trailing log window. It
// scans newest to oldest so the latest indicative message wins, and returns
// RoleUnknown when nothing in the window matches; callers keep their
// current role in that case.
func ClassifyRole(window []models.LogEvent) models.SessionRole {
	start := len(window) - classifierWindow
	if start < 0 {
		start = 0
	}

	for i := len(window) - 1; i >= start; i-- {
		message := strings.ToLower(window[i].Message)
		if matchesAny(message, doctorTerms) {
			return models.RoleDoctor
		}
		if matchesAny(message, patientTerms) {
			return models.RolePatient
		}
	}
	return models.RoleUnknown
}

func matchesAny(message string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(message, term) {
			return true
		}
	}
	return false
}
