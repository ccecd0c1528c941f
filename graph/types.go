package graph

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrEmptyNodeID indicates a node with an empty id.
	ErrEmptyNodeID = errors.New("graph: node id is empty")

	// ErrDuplicateNodeID indicates two nodes sharing the same id.
	ErrDuplicateNodeID = errors.New("graph: duplicate node id")

	// ErrUnknownEndpoint indicates an edge endpoint absent from Nodes.
	ErrUnknownEndpoint = errors.New("graph: edge endpoint not found among nodes")

	// ErrMissingWeight indicates an unweighted edge in a weighted graph.
	ErrMissingWeight = errors.New("graph: weighted graph requires a weight on every edge")

	// ErrUnexpectedWeight indicates a weighted edge in an unweighted graph.
	ErrUnexpectedWeight = errors.New("graph: unweighted graph cannot carry edge weights")
)

// Node is a single vertex. ID is unique within a graph and doubles as the
// display label.
type Node struct {
	ID string `json:"id" yaml:"id"`
}

// Edge connects Node1 and Node2. Weight is present if and only if the graph
// is weighted; for a directed graph the edge runs Node1 to Node2, for an
// undirected graph the pair is unordered.
type Edge struct {
	Node1  string   `json:"node1" yaml:"node1"`
	Node2  string   `json:"node2" yaml:"node2"`
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Data is the wire-level graph description a caller hands to New.
type Data struct {
	Nodes      []Node `json:"nodes" yaml:"nodes"`
	Edges      []Edge `json:"edges" yaml:"edges"`
	IsDirected bool   `json:"isDirected" yaml:"isDirected"`
	IsWeighted bool   `json:"isWeighted" yaml:"isWeighted"`
}

// Arc is one traversable direction of an edge, as seen from a fixed node.
type Arc struct {
	// To is the id of the adjacent node.
	To string

	// Weight is the edge cost. Unweighted edges count as unit cost.
	Weight float64
}
