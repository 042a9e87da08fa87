// Package tui implements the interactive execution-graph dashboard.
package tui

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/medflow-io/medflow/internal/backend"
	"github.com/medflow-io/medflow/internal/config"
	"github.com/medflow-io/medflow/internal/layout"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Run launches the dashboard against the configured backend.
func Run() error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := config.EnsureLayoutsDir(); err != nil {
		return fmt.Errorf("failed to prepare layouts dir: %w", err)
	}

	store, err := layout.NewFileStore(layout.Namespace)
	if err != nil {
		return fmt.Errorf("failed to open layout store: %w", err)
	}

	layoutsDir, err := config.GlobalLayoutsDir()
	if err != nil {
		return err
	}
	watcher, err := layout.NewWatcher(layoutsDir, layout.Namespace)
	if err != nil {
		// The watcher is a convenience; the dashboard works without it.
		watcher = nil
	}

	client := backend.New(settings.BackendURL)
	ref := &programRef{}
	model := NewModel(client, store, watcher, settings, ref)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	ref.Set(p)

	_, err = p.Run()
	return err
}
