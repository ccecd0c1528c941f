package dijkstra

import (
	"fmt"
	"strings"

	"github.com/kimestelle/algorithm-visualizer/graph"
	"github.com/kimestelle/algorithm-visualizer/pqueue"
	"github.com/kimestelle/algorithm-visualizer/traversal"
)

// runner holds the mutable state of one Dijkstra invocation.
type runner struct {
	g     *graph.Graph
	rec   *traversal.Recorder
	queue *pqueue.Queue
	dist  map[string]traversal.Number
	done  map[string]bool
	order []string
}

// Run computes shortest distances from startID to every node of g.
//
// Validation order: ErrNilGraph for a nil graph, ErrInvalidStartNode when
// startID is empty or unknown, ErrUnsupportedGraphKind when g is not
// weighted, and ErrNegativeWeight if any edge weight is below zero (checked
// eagerly before the main loop).
//
// The result's Log maps every node to its shortest distance from the
// source; unreachable nodes keep the infinity sentinel, which annotations
// render as the infinity symbol.
func Run(g *graph.Graph, startID string) (*traversal.Result, error) {
	if g == nil {
		return nil, traversal.ErrNilGraph
	}
	if startID == "" || !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", traversal.ErrInvalidStartNode, startID)
	}
	if !g.Weighted() {
		return nil, fmt.Errorf("%w: dijkstra requires a weighted graph", traversal.ErrUnsupportedGraphKind)
	}
	for _, e := range g.Edges() {
		if e.Weight != nil && *e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s-%s weight=%v",
				traversal.ErrNegativeWeight, e.Node1, e.Node2, *e.Weight)
		}
	}

	n := g.NodeCount()
	r := &runner{
		g:     g,
		rec:   traversal.NewRecorder(n),
		queue: pqueue.New(n),
		dist:  make(map[string]traversal.Number, n),
		done:  make(map[string]bool, n),
		order: make([]string, 0, n),
	}

	r.init(startID)
	r.process()

	return r.rec.Result(r.order, r.dist), nil
}

// init seeds all distances at infinity, the source at zero, and enqueues
// only the source; other nodes enter the queue when first reached.
func (r *runner) init(startID string) {
	for _, id := range r.g.NodeIDs() {
		r.dist[id] = traversal.Inf
		r.rec.Annotate(id, traversal.Inf.String())
	}
	r.dist[startID] = 0
	r.rec.Annotate(startID, traversal.Number(0).String())
	_ = r.queue.Push(startID, 0) // queue is empty, Push cannot fail
}

// process drains the queue, finalizing one node per iteration.
func (r *runner) process() {
	for r.queue.Len() > 0 {
		id, d, err := r.queue.Pop()
		if err != nil {
			return // unreachable: Len was just checked
		}
		r.done[id] = true
		r.order = append(r.order, id)
		r.relax(id, d)

		frontier := r.queue.IDs()
		display := fmt.Sprintf("finalize %s at distance %s, queue [%s]",
			id, traversal.Number(d).String(), strings.Join(frontier, " "))
		r.rec.Record(id, r.order, frontier, display)
	}
}

// relax attempts to improve the distance of every unfinalized neighbor of
// id, inserting it into the queue or decreasing its key.
func (r *runner) relax(id string, d float64) {
	for _, arc := range r.g.Neighbors(id) {
		if r.done[arc.To] {
			continue
		}
		next := traversal.Number(d + arc.Weight)
		if next >= r.dist[arc.To] {
			continue
		}
		r.dist[arc.To] = next
		r.rec.Annotate(arc.To, next.String())
		if r.queue.Contains(arc.To) {
			_ = r.queue.DecreaseKey(arc.To, float64(next)) // strictly smaller, cannot fail
		} else {
			_ = r.queue.Push(arc.To, float64(next)) // not queued, cannot fail
		}
	}
}
