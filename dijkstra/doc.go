// Package dijkstra implements single-source shortest paths over a weighted
// graph.Graph with non-negative edge weights, recording one traversal step
// per finalized node.
//
// The queue is a real decrease-key structure (pqueue), not a lazy
// re-insertion heap: relaxing an edge either inserts the target with its new
// distance or lowers its existing key in O(log n). Edge weights are scanned
// eagerly before the main loop, so a negative weight fails the run before
// any step is recorded.
//
// Every step carries the finalized node, the finalization order so far, the
// current queue membership, and a complete distance annotation for all
// nodes, with unreachable distances rendered as the infinity symbol. Ties in
// distance extract in queue insertion order, which is itself fixed by the
// edge list, so results are deterministic.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
package dijkstra
