package walk

import (
	"container/heap"
	"errors"

	"github.com/matzehuels/graphwalk/pkg/graph"
)

// ErrEmptyQueue is returned by [MinQueue.PopMin] when the queue holds no
// entries. The drivers guard every pop behind [MinQueue.Empty], so this
// error surfacing from a run means the engine itself is broken.
var ErrEmptyQueue = errors.New("pop from empty queue")

// entry is one heap slot. seq orders entries with equal keys by push
// time, keeping pop order stable and animations reproducible.
type entry struct {
	id  graph.NodeID
	key float64
	seq int
}

type entryHeap []entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(entry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// MinQueue is a min-heap of node ids keyed by float64 priority, with
// decrease-key by lazy re-insertion: pushing an id that is already
// queued adds a second entry instead of mutating the first, and the
// caller discards the stale entry when it eventually pops. Dijkstra
// detects staleness by checking whether the popped node is finalized.
//
// Equal keys pop in push order, first pushed first.
type MinQueue struct {
	entries entryHeap
	pushes  int
}

// NewMinQueue creates an empty queue.
func NewMinQueue() *MinQueue { return &MinQueue{} }

// Push queues id under the given key. Duplicate ids are allowed; see the
// type comment for how stale entries are handled.
func (q *MinQueue) Push(id graph.NodeID, key float64) {
	heap.Push(&q.entries, entry{id: id, key: key, seq: q.pushes})
	q.pushes++
}

// PopMin removes and returns the entry with the smallest key, breaking
// ties by push order. Returns ErrEmptyQueue if the queue is empty.
func (q *MinQueue) PopMin() (graph.NodeID, float64, error) {
	if len(q.entries) == 0 {
		return NoNode, 0, ErrEmptyQueue
	}
	e := heap.Pop(&q.entries).(entry)
	return e.id, e.key, nil
}

// Empty reports whether the queue holds no entries.
func (q *MinQueue) Empty() bool { return len(q.entries) == 0 }

// Len returns the number of queued entries, stale duplicates included.
func (q *MinQueue) Len() int { return len(q.entries) }
