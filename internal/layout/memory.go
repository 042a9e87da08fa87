package layout

import (
	"github.com/medflow-io/medflow/internal/models"
)

// MemoryStore is an in-memory Store used in tests and as a fallback when no
// durable storage is available.
type MemoryStore struct {
	positions map[string]models.Position
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored positions.
func (s *MemoryStore) Load() (map[string]models.Position, error) {
	out := make(map[string]models.Position, len(s.positions))
	for id, pos := range s.positions {
		out[id] = pos
	}
	return out, nil
}

// Save replaces the stored snapshot.
func (s *MemoryStore) Save(positions map[string]models.Position) error {
	out := make(map[string]models.Position, len(positions))
	for id, pos := range positions {
		out[id] = pos
	}
	s.positions = out
	return nil
}

// Clear removes the stored snapshot.
func (s *MemoryStore) Clear() error {
	s.positions = nil
	return nil
}
