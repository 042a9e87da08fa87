package backend

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/medflow-io/medflow/internal/models"
)

// StreamEvents are the callbacks a stream delivers events through. All of
// them run on socket goroutines; the TUI forwards into its own event loop.
// Nil callbacks are skipped.
type StreamEvents struct {
	OnConnect         func()
	OnDisconnect      func()
	OnLog             func(models.LogEvent)
	OnExecutionUpdate func(models.ExecutionSnapshot)
}

// Stream is an open Socket.IO subscription to the backend's live events.
type Stream struct {
	manager *socket.Manager
	io      *socket.Socket
}

// OpenStream connects to the backend's Socket.IO endpoint and subscribes to
// the "log" and "execution_update" events. Malformed payloads are dropped;
// a bad event must never take the stream down.
func (c *Client) OpenStream(namespace string, events StreamEvents) (*Stream, error) {
	parsed, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse backend URL: %w", err)
	}

	baseURL := fmt.Sprintf("%s://%s", parsed.Scheme, parsed.Host)
	opts := socket.DefaultOptions()
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(namespace, opts)

	io.On(types.EventName("connect"), func(...any) {
		if events.OnConnect != nil {
			events.OnConnect()
		}
	})

	io.On(types.EventName("disconnect"), func(...any) {
		if events.OnDisconnect != nil {
			events.OnDisconnect()
		}
	})

	io.On(types.EventName("log"), func(data ...any) {
		if events.OnLog == nil || len(data) == 0 {
			return
		}
		var event models.LogEvent
		if err := decodePayload(data[0], &event); err != nil {
			return
		}
		events.OnLog(event)
	})

	io.On(types.EventName("execution_update"), func(data ...any) {
		if events.OnExecutionUpdate == nil || len(data) == 0 {
			return
		}
		var snapshot models.ExecutionSnapshot
		if err := decodePayload(data[0], &snapshot); err != nil {
			return
		}
		events.OnExecutionUpdate(snapshot)
	})

	io.Connect()
	return &Stream{manager: manager, io: io}, nil
}

// Close disconnects the stream.
func (s *Stream) Close() {
	if s == nil || s.io == nil {
		return
	}
	s.io.Disconnect()
}

// decodePayload converts a Socket.IO payload (generic maps) into a typed
// struct through a JSON round trip, tolerating missing or extra fields.
func decodePayload(data any, v any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
