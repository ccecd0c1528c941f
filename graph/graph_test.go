package graph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kimestelle/algorithm-visualizer/graph"
)

func fp(v float64) *float64 { return &v }

func nodes(ids ...string) []graph.Node {
	out := make([]graph.Node, len(ids))
	for i, id := range ids {
		out[i] = graph.Node{ID: id}
	}
	return out
}

// TestNew_Validation verifies every construction sentinel fires.
func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name string
		data graph.Data
		want error
	}{
		{
			name: "empty id",
			data: graph.Data{Nodes: []graph.Node{{ID: ""}}},
			want: graph.ErrEmptyNodeID,
		},
		{
			name: "duplicate id",
			data: graph.Data{Nodes: nodes("A", "A")},
			want: graph.ErrDuplicateNodeID,
		},
		{
			name: "unknown endpoint",
			data: graph.Data{
				Nodes: nodes("A"),
				Edges: []graph.Edge{{Node1: "A", Node2: "B"}},
			},
			want: graph.ErrUnknownEndpoint,
		},
		{
			name: "missing weight",
			data: graph.Data{
				Nodes:      nodes("A", "B"),
				Edges:      []graph.Edge{{Node1: "A", Node2: "B"}},
				IsWeighted: true,
			},
			want: graph.ErrMissingWeight,
		},
		{
			name: "unexpected weight",
			data: graph.Data{
				Nodes: nodes("A", "B"),
				Edges: []graph.Edge{{Node1: "A", Node2: "B", Weight: fp(2)}},
			},
			want: graph.ErrUnexpectedWeight,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := graph.New(tc.data); !errors.Is(err, tc.want) {
				t.Errorf("New() error = %v; want %v", err, tc.want)
			}
		})
	}
}

// TestNeighbors_DeclaredOrder checks arcs come back in edge-list order.
func TestNeighbors_DeclaredOrder(t *testing.T) {
	g, err := graph.New(graph.Data{
		Nodes: nodes("A", "B", "C", "D"),
		Edges: []graph.Edge{
			{Node1: "A", Node2: "C"},
			{Node1: "A", Node2: "B"},
			{Node1: "D", Node2: "A"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := g.Neighbors("A")
	want := []graph.Arc{
		{To: "C", Weight: 1},
		{To: "B", Weight: 1},
		{To: "D", Weight: 1}, // undirected D-A seen from A
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(A) = %v; want %v", got, want)
	}
}

// TestNeighbors_Directed ensures directed edges are one-way only.
func TestNeighbors_Directed(t *testing.T) {
	g, err := graph.New(graph.Data{
		Nodes:      nodes("A", "B"),
		Edges:      []graph.Edge{{Node1: "A", Node2: "B"}},
		IsDirected: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := g.Neighbors("A"); len(got) != 1 || got[0].To != "B" {
		t.Errorf("Neighbors(A) = %v; want one arc to B", got)
	}
	if got := g.Neighbors("B"); got != nil {
		t.Errorf("Neighbors(B) = %v; want nil", got)
	}
}

// TestNew_DefensiveSnapshot verifies caller-side mutation after New is
// invisible to the graph.
func TestNew_DefensiveSnapshot(t *testing.T) {
	w := 3.0
	data := graph.Data{
		Nodes:      nodes("A", "B"),
		Edges:      []graph.Edge{{Node1: "A", Node2: "B", Weight: &w}},
		IsWeighted: true,
	}
	g, err := graph.New(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data.Nodes[0].ID = "Z"
	data.Edges[0].Node2 = "Z"
	w = 99

	if !g.HasNode("A") || g.HasNode("Z") {
		t.Error("node snapshot shared with caller")
	}
	if arcs := g.Neighbors("A"); len(arcs) != 1 || arcs[0].Weight != 3 {
		t.Errorf("Neighbors(A) = %v; want weight 3 arc to B", arcs)
	}
}

// TestAccessors_ReturnCopies guards against aliasing of internal slices.
func TestAccessors_ReturnCopies(t *testing.T) {
	g, err := graph.New(graph.Data{
		Nodes: nodes("A", "B"),
		Edges: []graph.Edge{{Node1: "A", Node2: "B"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids := g.NodeIDs()
	ids[0] = "mutated"
	if got := g.NodeIDs(); got[0] != "A" {
		t.Errorf("NodeIDs aliased internal state: %v", got)
	}

	arcs := g.Neighbors("A")
	arcs[0].To = "mutated"
	if got := g.Neighbors("A"); got[0].To != "B" {
		t.Errorf("Neighbors aliased internal state: %v", got)
	}
}
