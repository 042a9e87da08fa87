package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/medflow-io/medflow/internal/backend"
	"github.com/medflow-io/medflow/internal/config"
	"github.com/medflow-io/medflow/internal/layout"
	"github.com/medflow-io/medflow/internal/models"
)

func fetchGraphCmd(client *backend.Client, store layout.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		graph, warnings, err := client.FetchGraph(ctx)
		if err != nil {
			return GraphLoadFailedMsg{Err: err}
		}

		overrides, err := store.Load()
		if err != nil {
			// Store trouble must not block the graph; render defaults.
			overrides = map[string]models.Position{}
		}

		return GraphLoadedMsg{Graph: graph, Overrides: overrides, Warnings: warnings}
	}
}

func openStreamCmd(client *backend.Client, namespace string, program *programRef) tea.Cmd {
	return func() tea.Msg {
		stream, err := client.OpenStream(namespace, backend.StreamEvents{
			OnConnect: func() {
				program.Send(StreamConnectedMsg{})
			},
			OnDisconnect: func() {
				program.Send(StreamDisconnectedMsg{})
			},
			OnLog: func(event models.LogEvent) {
				program.Send(LogEventMsg{Event: event})
			},
			OnExecutionUpdate: func(snapshot models.ExecutionSnapshot) {
				program.Send(ExecutionUpdateMsg{Snapshot: snapshot})
			},
		})
		if err != nil {
			return StreamFailedMsg{Err: err}
		}
		return StreamOpenedMsg{Stream: stream}
	}
}

func probeCmd(client *backend.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := client.Probe(ctx)
		return ProbeResultMsg{Reachable: err == nil}
	}
}

func probeTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(_ time.Time) tea.Msg {
		return probeTickMsg{}
	})
}

func saveLayoutCmd(store layout.Store, positions map[string]models.Position) tea.Cmd {
	return func() tea.Msg {
		return LayoutSavedMsg{Err: store.Save(positions)}
	}
}

func clearLayoutCmd(store layout.Store) tea.Cmd {
	return func() tea.Msg {
		return LayoutClearedMsg{Err: store.Clear()}
	}
}

func reloadLayoutCmd(store layout.Store) tea.Cmd {
	return func() tea.Msg {
		overrides, err := store.Load()
		if err != nil {
			overrides = map[string]models.Position{}
		}
		return LayoutReloadedMsg{Overrides: overrides}
	}
}

// watchLayoutCmd forwards layout-file change notifications into the event
// loop for as long as the watcher runs.
func watchLayoutCmd(watcher *layout.Watcher, program *programRef) tea.Cmd {
	return func() tea.Msg {
		go func() {
			for range watcher.Events() {
				program.Send(LayoutFileChangedMsg{})
			}
		}()
		return nil
	}
}

func writeReportCmd(report models.SessionReport) tea.Cmd {
	return func() tea.Msg {
		path, err := config.WriteSessionReport(report)
		return ReportWrittenMsg{Path: path, Err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(_ time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

func clearSavedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearSavedMsg{}
	})
}
