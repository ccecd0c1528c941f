package bfs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kimestelle/algorithm-visualizer/graph"
	"github.com/kimestelle/algorithm-visualizer/traversal"
)

// walker holds the mutable state of one BFS invocation.
type walker struct {
	g          *graph.Graph
	rec        *traversal.Recorder
	queue      []string
	order      []string
	seen       map[string]bool
	log        map[string]traversal.Number
	discovered int
}

// Run performs a breadth-first traversal of g from startID.
//
// Returns ErrNilGraph for a nil graph, ErrUnsupportedGraphKind when g is
// weighted, and ErrInvalidStartNode when startID is empty or unknown.
func Run(g *graph.Graph, startID string) (*traversal.Result, error) {
	if g == nil {
		return nil, traversal.ErrNilGraph
	}
	if g.Weighted() {
		return nil, fmt.Errorf("%w: bfs requires an unweighted graph", traversal.ErrUnsupportedGraphKind)
	}
	if startID == "" || !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", traversal.ErrInvalidStartNode, startID)
	}

	n := g.NodeCount()
	w := &walker{
		g:     g,
		rec:   traversal.NewRecorder(n),
		queue: make([]string, 0, n),
		order: make([]string, 0, n),
		seen:  make(map[string]bool, n),
		log:   make(map[string]traversal.Number, n),
	}

	w.enqueue(startID)
	for len(w.queue) > 0 {
		w.visit(w.dequeue())
	}

	return w.rec.Result(w.order, w.log), nil
}

// enqueue marks id discovered and assigns its visit-rank annotation.
func (w *walker) enqueue(id string) {
	w.seen[id] = true
	w.discovered++
	w.rec.Annotate(id, strconv.Itoa(w.discovered))
	w.queue = append(w.queue, id)
}

func (w *walker) dequeue() string {
	id := w.queue[0]
	w.queue = w.queue[1:]
	return id
}

// visit finalizes id, enqueues its undiscovered neighbors in declared order,
// and records exactly one step.
func (w *walker) visit(id string) {
	w.order = append(w.order, id)
	w.log[id] = traversal.Number(len(w.order) - 1)

	for _, arc := range w.g.Neighbors(id) {
		if !w.seen[arc.To] {
			w.enqueue(arc.To)
		}
	}

	display := fmt.Sprintf("dequeue %s, queue [%s]", id, strings.Join(w.queue, " "))
	w.rec.Record(id, w.order, w.queue, display)
}
