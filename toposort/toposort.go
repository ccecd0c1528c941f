package toposort

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kimestelle/algorithm-visualizer/graph"
	"github.com/kimestelle/algorithm-visualizer/traversal"
)

// sorter holds the mutable state of one topological-sort invocation.
type sorter struct {
	g     *graph.Graph
	rec   *traversal.Recorder
	indeg map[string]int
	queue []string
	order []string
	log   map[string]traversal.Number
}

// Run computes a topological ordering of g.
//
// Returns ErrNilGraph for a nil graph, ErrUnsupportedGraphKind when g is not
// directed, and ErrCycleDetected when a directed cycle leaves part of the
// graph unorderable; no partial result is returned in any failure case.
func Run(g *graph.Graph) (*traversal.Result, error) {
	if g == nil {
		return nil, traversal.ErrNilGraph
	}
	if !g.Directed() {
		return nil, fmt.Errorf("%w: toposort requires a directed graph", traversal.ErrUnsupportedGraphKind)
	}

	n := g.NodeCount()
	s := &sorter{
		g:     g,
		rec:   traversal.NewRecorder(n),
		indeg: make(map[string]int, n),
		queue: make([]string, 0, n),
		order: make([]string, 0, n),
		log:   make(map[string]traversal.Number, n),
	}

	s.seed()
	for len(s.queue) > 0 {
		s.emit(s.dequeue())
	}

	if len(s.order) < n {
		return nil, fmt.Errorf("%w: ordered %d of %d nodes", traversal.ErrCycleDetected, len(s.order), n)
	}
	return s.rec.Result(s.order, s.log), nil
}

// seed computes every in-degree and queues the zero-in-degree nodes in
// declared order.
func (s *sorter) seed() {
	ids := s.g.NodeIDs()
	for _, id := range ids {
		s.indeg[id] = 0
	}
	for _, e := range s.g.Edges() {
		s.indeg[e.Node2]++
	}
	for _, id := range ids {
		if s.indeg[id] == 0 {
			s.queue = append(s.queue, id)
		}
	}
}

func (s *sorter) dequeue() string {
	id := s.queue[0]
	s.queue = s.queue[1:]
	return id
}

// emit appends id to the ordering, releases its successors, and records
// exactly one step.
func (s *sorter) emit(id string) {
	s.order = append(s.order, id)
	s.log[id] = traversal.Number(len(s.order) - 1)
	s.rec.Annotate(id, strconv.Itoa(len(s.order)))

	for _, arc := range s.g.Neighbors(id) {
		s.indeg[arc.To]--
		if s.indeg[arc.To] == 0 {
			s.queue = append(s.queue, arc.To)
		}
	}

	display := fmt.Sprintf("order %s, queue [%s]", id, strings.Join(s.queue, " "))
	s.rec.Record(id, s.order, s.queue, display)
}
