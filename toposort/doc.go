// Package toposort implements Kahn's algorithm over a directed graph.Graph,
// recording one traversal step per ordered node.
//
// In-degrees are computed for every node, a FIFO queue is seeded with all
// zero-in-degree nodes in their declared order, and each dequeue appends to
// the ordering and releases any successor whose in-degree drops to zero.
// When the queue drains before every node is ordered, a directed cycle is
// the only possible cause and the run fails with ErrCycleDetected, producing
// no partial result.
//
// Rank annotations are assigned at output time and are 1-indexed.
package toposort
