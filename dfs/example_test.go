package dfs_test

import (
	"fmt"

	"github.com/kimestelle/algorithm-visualizer/dfs"
	"github.com/kimestelle/algorithm-visualizer/graph"
)

// ExampleRun traverses a five-node undirected graph. The first-declared
// neighbor of every node is visited first, so the order is fixed.
func ExampleRun() {
	g, _ := graph.New(graph.Data{
		Nodes: []graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}, {ID: "E"}},
		Edges: []graph.Edge{
			{Node1: "A", Node2: "B"},
			{Node1: "A", Node2: "C"},
			{Node1: "B", Node2: "D"},
			{Node1: "C", Node2: "E"},
			{Node1: "D", Node2: "E"},
		},
	})

	res, _ := dfs.Run(g, "A")
	fmt.Println(res.Traversal)
	fmt.Println(res.Steps[0].Display)
	// Output:
	// [A B D E C]
	// visit A, stack [B C]
}
