package models

// SessionRole is the inferred actor behind the current session. Derived
// from the log stream, never authoritative; sticky until a newer
// classification or an explicit reset overwrites it.
type SessionRole string

// Session roles.
const (
	RoleUnknown SessionRole = "unknown"
	RolePatient SessionRole = "patient"
	RoleDoctor  SessionRole = "doctor"
)
