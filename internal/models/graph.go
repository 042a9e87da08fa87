package models

// NodeCategory classifies a workflow node for styling and grouping.
type NodeCategory string

// Node categories as served by the backend graph endpoint.
const (
	CategoryProcess  NodeCategory = "process"
	CategoryDatabase NodeCategory = "database"
	CategoryLLM      NodeCategory = "llm"
	CategoryTool     NodeCategory = "tool"
	CategoryService  NodeCategory = "service"
	CategoryExternal NodeCategory = "external"
	CategoryOutput   NodeCategory = "output"
)

// Position is a node's coordinates on the graph canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GraphNode is a single workflow node. Nodes are created once from the
// graph fetch and never deleted during a session; only Position mutates
// afterwards (layout overrides and user moves).
type GraphNode struct {
	ID       string       `json:"id"`
	Label    string       `json:"label"`
	Category NodeCategory `json:"category"`
	Position Position     `json:"position"`
}

// EdgeKind describes the relationship an edge represents.
type EdgeKind string

// Edge kinds as served by the backend graph endpoint.
const (
	EdgeFlow        EdgeKind = "flow"
	EdgeConditional EdgeKind = "conditional"
	EdgeData        EdgeKind = "data"
	EdgeAPI         EdgeKind = "api"
	EdgeFallback    EdgeKind = "fallback"
)

// GraphEdge connects two nodes. Immutable after graph load; derived visual
// styling lives outside the model.
type GraphEdge struct {
	ID     string   `json:"id"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Kind   EdgeKind `json:"type"`
	Label  string   `json:"label,omitempty"`
}

// Graph is the static workflow structure loaded once per session.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (GraphNode, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return GraphNode{}, false
}

// HasNode reports whether a node with the given id exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.Node(id)
	return ok
}

// NormalizeCategory maps the raw type/category pair from the backend payload
// onto a NodeCategory. The backend's "type" field carries the coarse class
// ("node", "database", "llm", "tool", "service") while "category" refines
// external/output placement.
func NormalizeCategory(rawType, rawCategory string) NodeCategory {
	switch rawCategory {
	case "external":
		return CategoryExternal
	case "output":
		return CategoryOutput
	}
	switch rawType {
	case "database":
		return CategoryDatabase
	case "llm":
		return CategoryLLM
	case "tool":
		return CategoryTool
	case "service":
		return CategoryService
	default:
		return CategoryProcess
	}
}
