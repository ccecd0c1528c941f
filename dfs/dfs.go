package dfs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kimestelle/algorithm-visualizer/graph"
	"github.com/kimestelle/algorithm-visualizer/traversal"
)

// walker holds the mutable state of one DFS invocation.
type walker struct {
	g     *graph.Graph
	rec   *traversal.Recorder
	stack []string
	order []string
	seen  map[string]bool
	log   map[string]traversal.Number
}

// Run performs an iterative depth-first search on g.
//
// startID is optional: when it names a node, traversal begins there; when it
// is empty or unknown, coverage starts directly from the declared node
// order. DFS defines no start-node failure, every node is reached either
// way.
//
// Returns ErrNilGraph for a nil graph and ErrUnsupportedGraphKind when g is
// weighted; depth-first search here is defined only for unweighted graphs.
func Run(g *graph.Graph, startID string) (*traversal.Result, error) {
	if g == nil {
		return nil, traversal.ErrNilGraph
	}
	if g.Weighted() {
		return nil, fmt.Errorf("%w: dfs requires an unweighted graph", traversal.ErrUnsupportedGraphKind)
	}

	n := g.NodeCount()
	w := &walker{
		g:     g,
		rec:   traversal.NewRecorder(n),
		stack: make([]string, 0, n),
		order: make([]string, 0, n),
		seen:  make(map[string]bool, n),
		log:   make(map[string]traversal.Number, n),
	}

	// Explicit start first, then sweep the declared order for anything the
	// start's component did not reach.
	if startID != "" && g.HasNode(startID) {
		w.component(startID)
	}
	for _, id := range g.NodeIDs() {
		if !w.seen[id] {
			w.component(id)
		}
	}

	return w.rec.Result(w.order, w.log), nil
}

// component drains one traversal tree rooted at root.
func (w *walker) component(root string) {
	w.stack = append(w.stack, root)
	for len(w.stack) > 0 {
		top := len(w.stack) - 1
		id := w.stack[top]
		w.stack = w.stack[:top]
		if w.seen[id] {
			continue // stale stack entry, lazily deleted
		}
		w.visit(id)
	}
}

// visit finalizes id, pushes its unvisited neighbors in reverse declared
// order, and records exactly one step.
func (w *walker) visit(id string) {
	w.seen[id] = true
	w.order = append(w.order, id)
	w.log[id] = traversal.Number(len(w.order) - 1)
	w.rec.Annotate(id, strconv.Itoa(len(w.order)))

	arcs := w.g.Neighbors(id)
	for i := len(arcs) - 1; i >= 0; i-- {
		if !w.seen[arcs[i].To] {
			w.stack = append(w.stack, arcs[i].To)
		}
	}

	frontier := w.frontier()
	display := fmt.Sprintf("visit %s, stack [%s]", id, strings.Join(frontier, " "))
	w.rec.Record(id, w.order, frontier, display)
}

// frontier returns the stack contents next-to-pop first, dropping stale
// entries whose node has been visited since it was pushed and collapsing
// nodes pushed more than once to their topmost occurrence.
func (w *walker) frontier() []string {
	out := make([]string, 0, len(w.stack))
	emitted := make(map[string]bool, len(w.stack))
	for i := len(w.stack) - 1; i >= 0; i-- {
		id := w.stack[i]
		if w.seen[id] || emitted[id] {
			continue
		}
		emitted[id] = true
		out = append(out, id)
	}
	return out
}
