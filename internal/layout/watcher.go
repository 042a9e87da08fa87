package layout

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the layouts directory and reports when the snapshot for a
// namespace changes on disk, so a layout saved by another medflow process
// reloads live.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	eventsChan chan string // namespace
	done       chan struct{}
	target     string // watched snapshot file name, e.g. "workflow-v1.json"
	namespace  string
	debounce   map[string]*time.Timer
	debounceMu sync.Mutex
}

// NewWatcher creates a watcher for the given layouts directory and namespace.
func NewWatcher(dir, namespace string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher:  fsWatcher,
		eventsChan: make(chan string, 16),
		done:       make(chan struct{}),
		target:     namespace + ".json",
		namespace:  namespace,
		debounce:   make(map[string]*time.Timer),
	}

	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()
		return nil, err
	}

	go w.processEvents()
	return w, nil
}

// Events returns the channel delivering changed namespaces.
func (w *Watcher) Events() <-chan string {
	return w.eventsChan
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.fsWatcher.Close()
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Accept write, create, rename, and remove events. Rename matters:
	// the store writes atomically (temp file then rename onto the target),
	// which surfaces as Rename/Create on the snapshot file. Remove covers
	// Clear from another process.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}
	if filepath.Base(event.Name) != w.target {
		return
	}

	w.debounceEvent(event.Name, func() {
		select {
		case w.eventsChan <- w.namespace:
		case <-w.done:
		}
	})
}

// debounceEvent debounces events for the same path.
func (w *Watcher) debounceEvent(path string, fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}

	w.debounce[path] = time.AfterFunc(100*time.Millisecond, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		fn()
	})
}
