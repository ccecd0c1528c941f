// Package visualizer is the root of the algorithm-visualizer traversal
// engine: classical graph traversals (depth-first, breadth-first, Dijkstra
// shortest paths, topological ordering) that record a complete, replayable
// trace of their internal state at every step, so an external consumer can
// animate the run at its own pace.
//
// Library layout:
//
//   - graph     - the immutable input model (nodes, edges, directed/weighted flags)
//   - traversal - the shared step/result contract, recorder, and replay cursor
//   - pqueue    - indexed min-priority queue with decrease-key, used by dijkstra
//   - dfs, bfs, dijkstra, toposort - the four algorithm packages
//   - registry  - name-keyed dispatch over the four algorithms
//   - graphio   - graph files (YAML/JSON) in, trace JSON out
//
// The cmd/trace CLI runs one algorithm over a graph file; cmd/traced serves
// the same engine over HTTP. Everything above the library packages is a thin
// consumer: the engine itself is synchronous, deterministic, and free of
// shared mutable state across invocations.
package visualizer
