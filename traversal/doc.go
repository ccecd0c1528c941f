// Package traversal defines the contract every algorithm in this module
// produces: a Result carrying the final answer plus an ordered, append-only
// trace of Steps, one frozen instant of execution each.
//
// A Result is computed eagerly and in full before it is returned; nothing in
// this package streams or yields. Replay is a restartable pull cursor over a
// finished Result, so a UI timer, a test harness, or a batch exporter can
// step through the trace at its own pace with no engine-side state machine.
//
// Determinism
//
//	For a fixed graph and start node, repeated runs of the same algorithm
//	produce byte-identical Results: same traversal order, same steps, same
//	annotations. Recorder snapshots (copies) every slice and map it is
//	handed, so later mutation by the running algorithm cannot reach back
//	into an already recorded step.
//
// Errors
//
// The four precondition failures shared by the algorithms form a closed set,
// matched with errors.Is:
//
//   - ErrUnsupportedGraphKind - weighted/directed flags incompatible with the algorithm.
//   - ErrInvalidStartNode     - missing or unknown start id where one is required.
//   - ErrNegativeWeight       - a negative edge weight handed to Dijkstra.
//   - ErrCycleDetected        - topological sort on a cyclic graph.
//
// ErrNilGraph covers the nil-pointer case common to all of them. Every
// failure is raised before any partial Result exists; callers never see a
// half-built trace.
package traversal
