// Package bfs implements breadth-first level-order traversal from a single
// mandatory start node, recording one traversal step per dequeue.
//
// A node is marked discovered the moment it is enqueued, never when it is
// dequeued, so nothing enters the queue twice; visit-rank annotations are
// likewise assigned at discovery time. Neighbors enqueue in declared
// edge-list order, which fixes the visit order completely.
//
// BFS deliberately does not sweep disconnected components: it explores only
// the component of the start node. That asymmetry with dfs is observed
// behavior of this engine, not an accident.
package bfs
