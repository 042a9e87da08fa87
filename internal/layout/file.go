package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/medflow-io/medflow/internal/config"
	"github.com/medflow-io/medflow/internal/models"
)

// FileStore persists the layout snapshot as a JSON file under
// ~/.medflow/layouts/.
type FileStore struct {
	path string
}

// NewFileStore creates a file store for the given namespace.
func NewFileStore(namespace string) (*FileStore, error) {
	path, err := config.LayoutFile(namespace)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

// Path returns the file the snapshot is stored in.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the persisted positions. A missing or unparsable file loads
// as empty: corruption is treated as absence, never surfaced to callers.
func (s *FileStore) Load() (map[string]models.Position, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]models.Position{}, nil
		}
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}

	positions := map[string]models.Position{}
	if err := json.Unmarshal(data, &positions); err != nil {
		return map[string]models.Position{}, nil
	}
	return positions, nil
}

// Save overwrites the persisted snapshot. The write is atomic (temp file
// plus rename) so a concurrent reader never sees a partial snapshot.
func (s *FileStore) Save(positions map[string]models.Position) error {
	data, err := json.MarshalIndent(positions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create layouts dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write layout file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace layout file: %w", err)
	}
	return nil
}

// Clear removes the persisted snapshot. Callers fall back to server-default
// positions on the next graph load.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove layout file: %w", err)
	}
	return nil
}
