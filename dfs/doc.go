// Package dfs implements depth-first search over an unweighted graph.Graph,
// recording one traversal step per visited node.
//
// The search is iterative and stack-based: no recursion, so visit order is
// observable at the point of every pop and graph depth cannot overflow the
// call stack. Candidate neighbors are pushed in reverse declared order, so
// the first-declared neighbor is popped and visited first; the whole visit
// order is therefore a deterministic function of the edge list.
//
// If a start node is supplied and known, traversal begins there. Once that
// component is exhausted the walker sweeps the remaining node ids in their
// declared order and launches a fresh traversal from each unvisited one, so
// disconnected graphs are always fully covered.
//
// Stack entries are deleted lazily: a popped id that is already visited is
// dropped without producing a step, and stale entries are likewise omitted
// from step snapshots. Each recorded step carries the popped node, the
// cumulative visit order, the remaining frontier top-first, and 1-indexed
// visit-rank annotations.
package dfs
