package dfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kimestelle/algorithm-visualizer/dfs"
	"github.com/kimestelle/algorithm-visualizer/graph"
	"github.com/kimestelle/algorithm-visualizer/traversal"
)

// fiveNodeRing is the shared scenario graph: undirected, unweighted,
// edges A-B, A-C, B-D, C-E, D-E.
func fiveNodeRing(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(graph.Data{
		Nodes: []graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}, {ID: "E"}},
		Edges: []graph.Edge{
			{Node1: "A", Node2: "B"},
			{Node1: "A", Node2: "C"},
			{Node1: "B", Node2: "D"},
			{Node1: "C", Node2: "E"},
			{Node1: "D", Node2: "E"},
		},
	})
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	return g
}

func TestRun_Errors(t *testing.T) {
	if _, err := dfs.Run(nil, "A"); !errors.Is(err, traversal.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}
	w := 1.0
	g, err := graph.New(graph.Data{
		Nodes:      []graph.Node{{ID: "A"}, {ID: "B"}},
		Edges:      []graph.Edge{{Node1: "A", Node2: "B", Weight: &w}},
		IsWeighted: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := dfs.Run(g, "A"); !errors.Is(err, traversal.ErrUnsupportedGraphKind) {
		t.Errorf("weighted graph: want ErrUnsupportedGraphKind, got %v", err)
	}
}

func TestRun_VisitOrder(t *testing.T) {
	res, err := dfs.Run(fiveNodeRing(t), "A")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// First-declared neighbor pops first, so the order is fixed.
	want := []string{"A", "B", "D", "E", "C"}
	if !reflect.DeepEqual(res.Traversal, want) {
		t.Errorf("Traversal = %v; want %v", res.Traversal, want)
	}
	for i, id := range want {
		if res.Log[id] != traversal.Number(i) {
			t.Errorf("Log[%s] = %v; want %d", id, res.Log[id], i)
		}
	}
}

// TestRun_Coverage checks every node appears exactly once, whatever the
// start node or connectivity.
func TestRun_Coverage(t *testing.T) {
	g, err := graph.New(graph.Data{
		Nodes: []graph.Node{{ID: "A"}, {ID: "B"}, {ID: "P"}, {ID: "Q"}, {ID: "lone"}},
		Edges: []graph.Edge{
			{Node1: "A", Node2: "B"},
			{Node1: "P", Node2: "Q"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, start := range []string{"", "A", "Q", "lone", "unknown-id"} {
		res, err := dfs.Run(g, start)
		if err != nil {
			t.Fatalf("Run(start=%q): %v", start, err)
		}
		if len(res.Traversal) != 5 {
			t.Fatalf("Run(start=%q) visited %d nodes; want 5", start, len(res.Traversal))
		}
		seen := map[string]int{}
		for _, id := range res.Traversal {
			seen[id]++
		}
		for id, count := range seen {
			if count != 1 {
				t.Errorf("Run(start=%q) visited %s %d times", start, id, count)
			}
		}
	}
}

// TestRun_DisconnectedSweepOrder pins the sweep order: start component
// first, then remaining nodes in declared order.
func TestRun_DisconnectedSweepOrder(t *testing.T) {
	g, err := graph.New(graph.Data{
		Nodes: []graph.Node{{ID: "A"}, {ID: "B"}, {ID: "P"}, {ID: "Q"}},
		Edges: []graph.Edge{
			{Node1: "A", Node2: "B"},
			{Node1: "P", Node2: "Q"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	res, err := dfs.Run(g, "P")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"P", "Q", "A", "B"}
	if !reflect.DeepEqual(res.Traversal, want) {
		t.Errorf("Traversal = %v; want %v", res.Traversal, want)
	}
}

func TestRun_Steps(t *testing.T) {
	res, err := dfs.Run(fiveNodeRing(t), "A")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Steps) != 5 {
		t.Fatalf("got %d steps; want 5 (one per visit, none for stale pops)", len(res.Steps))
	}

	first := res.Steps[0]
	if first.Current != "A" {
		t.Errorf("first step current = %s; want A", first.Current)
	}
	if want := []string{"B", "C"}; !reflect.DeepEqual(first.Structure, want) {
		t.Errorf("first step structure = %v; want %v", first.Structure, want)
	}
	if first.NodeAnnotations["A"] != "1" {
		t.Errorf("first step annotation A = %q; want 1", first.NodeAnnotations["A"])
	}

	last := res.Steps[len(res.Steps)-1]
	if last.Current != res.Traversal[len(res.Traversal)-1] {
		t.Errorf("last step current = %s; want %s", last.Current, res.Traversal[len(res.Traversal)-1])
	}
	if !reflect.DeepEqual(last.Visited, res.Traversal) {
		t.Errorf("last step visited = %v; want %v", last.Visited, res.Traversal)
	}
	if len(last.Structure) != 0 {
		t.Errorf("last step structure = %v; want empty frontier", last.Structure)
	}
	if !reflect.DeepEqual(last.NodeAnnotations, res.NodeAnnotations) {
		t.Errorf("final step annotations = %v; want %v", last.NodeAnnotations, res.NodeAnnotations)
	}
}

// TestRun_Deterministic runs the same input twice and compares results deeply.
func TestRun_Deterministic(t *testing.T) {
	g := fiveNodeRing(t)
	a, err := dfs.Run(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	b, err := dfs.Run(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated runs differ")
	}
}
