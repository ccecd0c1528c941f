// Package registry maps algorithm names to their run procedures and
// human-readable descriptions. It is pure dispatch: the recognized names are
// "dfs", "bfs", "dijkstra", and "toposort", and every runner shares the same
// signature whether or not it uses the start id.
package registry

import (
	"errors"
	"fmt"

	"github.com/kimestelle/algorithm-visualizer/bfs"
	"github.com/kimestelle/algorithm-visualizer/dfs"
	"github.com/kimestelle/algorithm-visualizer/dijkstra"
	"github.com/kimestelle/algorithm-visualizer/graph"
	"github.com/kimestelle/algorithm-visualizer/toposort"
	"github.com/kimestelle/algorithm-visualizer/traversal"
)

// ErrUnknownAlgorithm is returned by Lookup and Run for unrecognized names.
var ErrUnknownAlgorithm = errors.New("registry: unknown algorithm")

// Runner is the shared invocation signature. startID is ignored by
// algorithms that take no start node.
type Runner func(g *graph.Graph, startID string) (*traversal.Result, error)

// Algorithm pairs a runner with its registry name and description.
type Algorithm struct {
	Name        string
	Description string
	Run         Runner
}

// algorithms is keyed and ordered by registration; names holds the stable
// listing order.
var (
	algorithms = map[string]Algorithm{
		"dfs": {
			Name:        "dfs",
			Description: "depth-first search (iterative, covers disconnected components)",
			Run:         dfs.Run,
		},
		"bfs": {
			Name:        "bfs",
			Description: "breadth-first search from a start node",
			Run:         bfs.Run,
		},
		"dijkstra": {
			Name:        "dijkstra",
			Description: "single-source shortest paths (non-negative weights)",
			Run:         dijkstra.Run,
		},
		"toposort": {
			Name:        "toposort",
			Description: "topological ordering of a directed acyclic graph",
			Run: func(g *graph.Graph, _ string) (*traversal.Result, error) {
				return toposort.Run(g)
			},
		},
	}

	names = []string{"dfs", "bfs", "dijkstra", "toposort"}
)

// Names returns the recognized algorithm names in stable order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Algorithm, bool) {
	a, ok := algorithms[name]
	return a, ok
}

// Run dispatches to the named algorithm.
func Run(name string, g *graph.Graph, startID string) (*traversal.Result, error) {
	a, ok := algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return a.Run(g, startID)
}
