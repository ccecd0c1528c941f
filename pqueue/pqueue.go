package pqueue

import (
	"container/heap"
	"errors"
	"fmt"
)

// Sentinel errors for queue operations.
var (
	// ErrEmpty is returned by Pop on an empty queue.
	ErrEmpty = errors.New("pqueue: queue is empty")

	// ErrDuplicateID is returned by Push when the id is already queued.
	ErrDuplicateID = errors.New("pqueue: id already present")

	// ErrUnknownID is returned by DecreaseKey when the id is not queued.
	ErrUnknownID = errors.New("pqueue: id not present")

	// ErrKeyIncrease is returned by DecreaseKey when the new key is larger
	// than the current one.
	ErrKeyIncrease = errors.New("pqueue: new key exceeds current key")
)

// item is one queued entry. index tracks its current slot in the heap array
// and is updated by every Swap.
type item struct {
	id    string
	key   float64
	seq   int // insertion sequence; ties on key extract oldest first
	index int
}

// itemHeap implements heap.Interface over *item.
type itemHeap []*item

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].seq < h[j].seq
}

func (h itemHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *itemHeap) Push(x any) {
	it := x.(*item)
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}

// Queue is an indexed min-priority queue over string ids. The zero value is
// not usable; call New.
type Queue struct {
	h    itemHeap
	byID map[string]*item
	seq  int
}

// New returns an empty queue sized for n entries.
func New(n int) *Queue {
	return &Queue{
		h:    make(itemHeap, 0, n),
		byID: make(map[string]*item, n),
	}
}

// Len returns the number of queued entries.
func (q *Queue) Len() int { return len(q.h) }

// Contains reports whether id is currently queued.
func (q *Queue) Contains(id string) bool {
	_, ok := q.byID[id]
	return ok
}

// Key returns the current key for id, and whether id is queued.
func (q *Queue) Key(id string) (float64, bool) {
	it, ok := q.byID[id]
	if !ok {
		return 0, false
	}
	return it.key, true
}

// Push inserts id with the given key.
func (q *Queue) Push(id string, key float64) error {
	if _, dup := q.byID[id]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	it := &item{id: id, key: key, seq: q.seq}
	q.seq++
	q.byID[id] = it
	heap.Push(&q.h, it)
	return nil
}

// DecreaseKey lowers the key for id and restores heap order in place.
// The entry keeps its original insertion sequence for tie-breaking.
func (q *Queue) DecreaseKey(id string, key float64) error {
	it, ok := q.byID[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownID, id)
	}
	if key > it.key {
		return fmt.Errorf("%w: %q %v -> %v", ErrKeyIncrease, id, it.key, key)
	}
	it.key = key
	heap.Fix(&q.h, it.index)
	return nil
}

// Pop removes and returns the minimum-key entry.
func (q *Queue) Pop() (id string, key float64, err error) {
	if len(q.h) == 0 {
		return "", 0, ErrEmpty
	}
	it := heap.Pop(&q.h).(*item)
	delete(q.byID, it.id)
	return it.id, it.key, nil
}

// IDs returns a snapshot of the queued ids in heap-array order (minimum
// first, remainder in the heap's internal layout). The layout is a pure
// function of the operation history, so snapshots are deterministic.
func (q *Queue) IDs() []string {
	out := make([]string, len(q.h))
	for i, it := range q.h {
		out[i] = it.id
	}
	return out
}
