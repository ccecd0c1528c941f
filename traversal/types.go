package traversal

import (
	"errors"
	"math"
	"strconv"
)

// Sentinel errors shared by every algorithm. See the package documentation
// for the taxonomy.
var (
	// ErrNilGraph is returned when a nil *graph.Graph is passed to Run.
	ErrNilGraph = errors.New("traversal: graph is nil")

	// ErrUnsupportedGraphKind is returned when the graph's weighted or
	// directed flag is incompatible with the invoked algorithm.
	ErrUnsupportedGraphKind = errors.New("traversal: unsupported graph kind")

	// ErrInvalidStartNode is returned when a required start id is missing
	// or names no node in the graph.
	ErrInvalidStartNode = errors.New("traversal: invalid start node")

	// ErrNegativeWeight is returned when an edge weight below zero is
	// detected before a shortest-path run.
	ErrNegativeWeight = errors.New("traversal: negative edge weight")

	// ErrCycleDetected is returned when a directed cycle prevents a full
	// topological ordering.
	ErrCycleDetected = errors.New("traversal: cycle detected")
)

// InfinitySymbol is how an infinite distance renders in node annotations.
const InfinitySymbol = "∞"

// Inf is the sentinel for an unreachable node's distance.
var Inf = Number(math.Inf(1))

// Number is a log/distance value. JSON has no infinity literal, so +Inf
// marshals to null and null unmarshals back to +Inf; finite values are plain
// JSON numbers.
type Number float64

// IsInf reports whether n is the unreachable sentinel.
func (n Number) IsInf() bool { return math.IsInf(float64(n), 1) }

// String renders n for node annotations: the infinity symbol for +Inf,
// otherwise the shortest decimal form ("5", "2.5").
func (n Number) String() string {
	if n.IsInf() {
		return InfinitySymbol
	}
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if n.IsInf() {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(n), 'f', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = Inf
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// Step is one frozen instant of an algorithm's execution.
type Step struct {
	// Current is the node being processed at this instant.
	Current string `json:"current"`

	// Visited is the ordered list of nodes finalized so far, Current included.
	Visited []string `json:"visited"`

	// Structure is the frontier contents (stack, queue, or priority queue)
	// as an ordered node-id sequence.
	Structure []string `json:"structure"`

	// Display is a precomputed human-readable summary of this step.
	Display string `json:"display"`

	// NodeAnnotations maps node ids to the algorithm's current label for
	// them: visit rank, or running distance for shortest paths.
	NodeAnnotations map[string]string `json:"nodeAnnotations"`
}

// Result is the complete outcome of one algorithm invocation. It is produced
// exactly once, is immutable thereafter, and its json field names are the
// stable wire contract any replay consumer can rely on.
type Result struct {
	// Traversal is the final visit or finalization order.
	Traversal []string `json:"traversal"`

	// Log maps each node to its traversal index, or to its shortest
	// distance from the source for Dijkstra.
	Log map[string]Number `json:"log"`

	// Steps is the ordered, append-only trace of the run.
	Steps []Step `json:"steps"`

	// NodeAnnotations is the final label state after the last step.
	NodeAnnotations map[string]string `json:"nodeAnnotations"`
}
