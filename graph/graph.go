package graph

import "fmt"

// Graph is a validated, immutable snapshot of a Data description.
// All query methods are safe for concurrent readers; nothing mutates a Graph
// after New returns.
type Graph struct {
	ids      []string         // node ids in declared order
	index    map[string]int   // id -> position in ids
	edges    []Edge           // declared edges, defensively copied
	adj      map[string][]Arc // outgoing arcs in declared edge order
	directed bool
	weighted bool
}

// New validates data and builds an immutable Graph from it.
// The returned Graph holds its own copies of the node and edge lists, so the
// caller may mutate data freely afterwards.
func New(data Data) (*Graph, error) {
	g := &Graph{
		ids:      make([]string, 0, len(data.Nodes)),
		index:    make(map[string]int, len(data.Nodes)),
		edges:    make([]Edge, 0, len(data.Edges)),
		adj:      make(map[string][]Arc, len(data.Nodes)),
		directed: data.IsDirected,
		weighted: data.IsWeighted,
	}

	// 1. Register nodes, rejecting empty and duplicate ids.
	for _, n := range data.Nodes {
		if n.ID == "" {
			return nil, ErrEmptyNodeID
		}
		if _, dup := g.index[n.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID)
		}
		g.index[n.ID] = len(g.ids)
		g.ids = append(g.ids, n.ID)
	}

	// 2. Validate edges and build adjacency in declared order.
	for _, e := range data.Edges {
		if _, ok := g.index[e.Node1]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, e.Node1)
		}
		if _, ok := g.index[e.Node2]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEndpoint, e.Node2)
		}
		if g.weighted && e.Weight == nil {
			return nil, fmt.Errorf("%w: edge %s-%s", ErrMissingWeight, e.Node1, e.Node2)
		}
		if !g.weighted && e.Weight != nil {
			return nil, fmt.Errorf("%w: edge %s-%s", ErrUnexpectedWeight, e.Node1, e.Node2)
		}

		w := 1.0
		if e.Weight != nil {
			wc := *e.Weight // copy so the caller's pointer stays theirs
			w = wc
			e.Weight = &wc
		}
		g.edges = append(g.edges, e)

		g.adj[e.Node1] = append(g.adj[e.Node1], Arc{To: e.Node2, Weight: w})
		if !g.directed {
			g.adj[e.Node2] = append(g.adj[e.Node2], Arc{To: e.Node1, Weight: w})
		}
	}

	return g, nil
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether edges carry explicit weights.
func (g *Graph) Weighted() bool { return g.weighted }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.ids) }

// EdgeCount returns the number of declared edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasNode reports whether id names a node in the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]
	return ok
}

// NodeIDs returns all node ids in declared order. The slice is a copy.
func (g *Graph) NodeIDs() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)
	return out
}

// Edges returns the declared edge list. The slice is a copy.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Neighbors returns the arcs leaving id, in declared edge-list order.
// A directed edge contributes an arc only in its declared direction; an
// undirected edge contributes one arc from each endpoint. The slice is a
// copy; an unknown id yields nil.
func (g *Graph) Neighbors(id string) []Arc {
	arcs := g.adj[id]
	if len(arcs) == 0 {
		return nil
	}
	out := make([]Arc, len(arcs))
	copy(out, arcs)
	return out
}
