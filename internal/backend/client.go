// Package backend talks to the external agent backend: REST endpoints for
// the graph structure and reachability, and a Socket.IO stream for live
// execution events.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/medflow-io/medflow/internal/models"
)

// Client is an HTTP client for the agent backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:8000".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// graphPayload mirrors the wire shape of GET /api/graph. Edges carry no id
// on the wire and the category is split across two fields.
type graphPayload struct {
	Nodes []struct {
		ID       string          `json:"id"`
		Label    string          `json:"label"`
		Type     string          `json:"type"`
		Category string          `json:"category"`
		Position models.Position `json:"position"`
	} `json:"nodes"`
	Edges []struct {
		Source string `json:"source"`
		Target string `json:"target"`
		Type   string `json:"type"`
		Label  string `json:"label"`
	} `json:"edges"`
}

// FetchGraph retrieves the workflow graph. Duplicate node ids resolve
// last-write-wins, each occurrence reported as a warning. Edge ids are
// synthesized in load order since the backend does not assign them.
func (c *Client) FetchGraph(ctx context.Context) (*models.Graph, []string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/graph", nil)
	if err != nil {
		return nil, nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch graph: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("graph fetch returned %s", resp.Status)
	}

	var payload graphPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, nil, fmt.Errorf("failed to parse graph payload: %w", err)
	}

	var warnings []string
	graph := &models.Graph{}
	index := map[string]int{}
	for _, n := range payload.Nodes {
		node := models.GraphNode{
			ID:       n.ID,
			Label:    n.Label,
			Category: models.NormalizeCategory(n.Type, n.Category),
			Position: n.Position,
		}
		if at, ok := index[n.ID]; ok {
			warnings = append(warnings, fmt.Sprintf("duplicate node id %q, keeping the later definition", n.ID))
			graph.Nodes[at] = node
			continue
		}
		index[n.ID] = len(graph.Nodes)
		graph.Nodes = append(graph.Nodes, node)
	}

	for i, e := range payload.Edges {
		graph.Edges = append(graph.Edges, models.GraphEdge{
			ID:     fmt.Sprintf("e%d", i),
			Source: e.Source,
			Target: e.Target,
			Kind:   models.EdgeKind(e.Type),
			Label:  e.Label,
		})
	}

	return graph, warnings, nil
}

// Probe checks backend reachability. Used only for the connectivity
// indicator; the reconciler does not depend on it.
func (c *Client) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status probe returned %s", resp.Status)
	}
	return nil
}

// ListExecutions retrieves the backend's recent executions (newest last).
func (c *Client) ListExecutions(ctx context.Context) ([]models.ExecutionSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/executions", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("executions fetch returned %s", resp.Status)
	}

	var executions []models.ExecutionSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&executions); err != nil {
		return nil, fmt.Errorf("failed to parse executions payload: %w", err)
	}
	return executions, nil
}
