// Package pqueue implements the indexed min-priority queue the shortest-path
// algorithm depends on: an array-backed binary heap plus an id-to-position
// side table kept in sync on every swap, so DecreaseKey restores heap order
// in O(log n) without a remove-and-reinsert.
//
// Equal keys extract in insertion order (oldest first), which keeps every
// consumer of the queue fully deterministic.
//
// Complexity (n = entries in the queue):
//
//   - Push:        O(log n)
//   - Pop:         O(log n)
//   - DecreaseKey: O(log n)
//   - Contains/Key/Len: O(1)
package pqueue
