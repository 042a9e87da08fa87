package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/medflow-io/medflow/internal/config"
	"github.com/medflow-io/medflow/internal/models"
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	store, err := NewFileStore(Namespace)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return store
}

func TestFileStoreLoadMissing(t *testing.T) {
	store := tempStore(t)

	positions, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(positions) != 0 {
		t.Errorf("missing file loaded %d positions, want 0", len(positions))
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := tempStore(t)

	saved := map[string]models.Position{
		"n0": {X: 100, Y: 200},
		"n2": {X: 300.5, Y: -40},
	}
	if err := store.Save(saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d positions, want 2", len(loaded))
	}
	if loaded["n0"] != saved["n0"] || loaded["n2"] != saved["n2"] {
		t.Errorf("loaded = %+v, want %+v", loaded, saved)
	}

	// The temp file from the atomic write must not linger.
	if _, err := os.Stat(store.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after save")
	}
}

func TestFileStoreCorruptionLoadsEmpty(t *testing.T) {
	store := tempStore(t)

	if err := os.MkdirAll(filepath.Dir(store.Path()), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.Path(), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	positions, err := store.Load()
	if err != nil {
		t.Fatalf("Load on corrupt file: %v, want nil error", err)
	}
	if len(positions) != 0 {
		t.Errorf("corrupt file loaded %d positions, want 0", len(positions))
	}
}

func TestFileStoreClear(t *testing.T) {
	store := tempStore(t)

	// Clearing a store that never saved is fine.
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear on missing file: %v", err)
	}

	if err := store.Save(map[string]models.Position{"n0": {X: 1, Y: 2}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	positions, err := store.Load()
	if err != nil {
		t.Fatalf("Load after clear: %v", err)
	}
	if len(positions) != 0 {
		t.Errorf("loaded %d positions after clear, want 0", len(positions))
	}
}

func TestFileStorePathUsesNamespace(t *testing.T) {
	store := tempStore(t)

	dir, err := config.GlobalLayoutsDir()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, Namespace+".json")
	if store.Path() != want {
		t.Errorf("Path = %q, want %q", store.Path(), want)
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore()

	original := map[string]models.Position{"n0": {X: 1, Y: 1}}
	if err := store.Save(original); err != nil {
		t.Fatal(err)
	}

	// Mutating the caller's map after save must not leak into the store.
	original["n0"] = models.Position{X: 99, Y: 99}

	loaded, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded["n0"].X != 1 {
		t.Errorf("stored position mutated through caller's map: %+v", loaded["n0"])
	}

	// Mutating a loaded map must not leak either.
	loaded["n0"] = models.Position{X: 50, Y: 50}
	again, _ := store.Load()
	if again["n0"].X != 1 {
		t.Errorf("stored position mutated through loaded map: %+v", again["n0"])
	}
}
