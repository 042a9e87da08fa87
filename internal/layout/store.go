// Package layout persists user-dragged node positions across sessions.
package layout

import (
	"github.com/medflow-io/medflow/internal/models"
)

// Namespace is the key under which the workflow layout snapshot is stored.
// Changing the graph version means changing this namespace.
const Namespace = "workflow-v1"

// Store persists a layout snapshot: node id to position. Save overwrites
// the whole snapshot; it never merges. A missing snapshot is a valid "no
// override" state and loads as an empty map.
type Store interface {
	Load() (map[string]models.Position, error)
	Save(positions map[string]models.Position) error
	Clear() error
}
