package engine

import (
	"fmt"

	"github.com/medflow-io/medflow/internal/models"
)

// descriptionTemplate is one entry of the per-node description table. When
// the doctor or patient variant is empty the default body is used, so only
// role-sensitive nodes carry variants.
type descriptionTemplate struct {
	title       string
	body        string
	doctorBody  string
	patientBody string
}

// nodeTemplates maps workflow node ids to their human-readable templates.
// Nodes missing from this table fall back to a generic "Processing ..."
// body so every node stays observable.
var nodeTemplates = map[string]descriptionTemplate{
	"n0": {
		title: "Identification",
		body:  "Analyzing the incoming message to identify whether the user is a patient, a doctor, or a new user...",
	},
	"n1": {
		title: "Session cache",
		body:  "Checking the cache for a similar previous response to speed things up...",
	},
	"n2": {
		title:       "Routing",
		body:        "Classifying the request and choosing the matching workflow branch...",
		doctorBody:  "User identified as DOCTOR. Redirecting to the specialized medical flow...",
		patientBody: "User identified as PATIENT. Preparing the personal assistant Maya...",
	},
	"n2a": {
		title: "Maya (patient)",
		body:  "Maya (personal assistant) activated. Handling the patient's request with empathy and clarity...",
	},
	"n2b": {
		title: "Maya (doctor)",
		body:  "Maya (medical assistant) activated. Unlocking advanced functionality for doctors...",
	},
	"n3a": {
		title: "Episodic memory",
		body:  "Searching episodic memory for relevant previous conversations with the patient...",
	},
	"n3b": {
		title: "Medical records",
		body:  "Accessing the doctor's medical records and scheduled appointments...",
	},
	"n4a": {
		title: "Tool selection",
		body:  "Analyzing the patient's intent and selecting the appropriate tools...",
	},
	"n4b": {
		title: "Tool selection",
		body:  "Analyzing the doctor's request and preparing medical actions...",
	},
	"n5a": {
		title: "Personal execution",
		body:  "Running a personal-calendar action: creating, updating, or querying events...",
	},
	"n5b": {
		title: "Medical execution",
		body:  "Running a medical action: managing appointments, checking availability, or updating records...",
	},
	"n6": {
		title: "Summary",
		body:  "Generating a natural, friendly response from the collected results...",
	},
	"n6r": {
		title: "Receptionist",
		body:  "Virtual receptionist handling a scheduling or information request...",
	},
	"n7": {
		title: "Persistence",
		body:  "Saving the conversation context to keep continuity across interactions...",
	},
	"n8": {
		title: "Synchronizer",
		body:  "Synchronizing data with Google Calendar and PostgreSQL...",
	},
	"n9": {
		title: "Reminders",
		body:  "Scheduling automatic reminders 24h and 2h before appointments...",
	},
	"conv": {
		title: "Conversational reply",
		body:  "Generating a friendly conversational response for the user...",
	},
	"db_postgres": {
		title: "PostgreSQL",
		body:  "Primary database holding users, appointments, and conversations...",
	},
	"db_pgvector": {
		title: "pgVector",
		body:  "Storing and searching embeddings for semantic memory...",
	},
	"db_cache": {
		title: "Redis",
		body:  "Caching active sessions for fast responses...",
	},
	"llm_deepseek": {
		title: "DeepSeek",
		body:  "Processing natural language with the primary model...",
	},
	"llm_claude": {
		title: "Claude Sonnet",
		body:  "Fallback model with advanced capabilities...",
	},
	"tool_calendar": {
		title: "Google Calendar",
		body:  "Managing events and synchronization through the Calendar API...",
	},
	"tool_citas": {
		title: "Appointment manager",
		body:  "Managing the medical agenda and availability...",
	},
	"tool_search": {
		title: "Search",
		body:  "Querying relevant information...",
	},
	"whatsapp": {
		title: "WhatsApp",
		body:  "Receiving the user's message...",
	},
	"response": {
		title: "Response",
		body:  "Sending the reply back to the user over WhatsApp...",
	},
}

// describeNode resolves the template for a node, picking the role variant
// when the template has one. Unknown ids fall back to a generic description
// built from the node label.
func describeNode(id, label string, role models.SessionRole) (title, body string) {
	tmpl, ok := nodeTemplates[id]
	if !ok {
		return label, fmt.Sprintf("Processing %s...", label)
	}

	body = tmpl.body
	switch role {
	case models.RoleDoctor:
		if tmpl.doctorBody != "" {
			body = tmpl.doctorBody
		}
	case models.RolePatient:
		if tmpl.patientBody != "" {
			body = tmpl.patientBody
		}
	}

	return tmpl.title, body
}
