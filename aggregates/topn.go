package aggregates

import (
	"container/heap"
	"sort"

	cmp "cmp"
)

// Entry pairs a ranked key with its ordering value. Seq is the key's
// first-appearance index in the input and breaks value ties, so equal
// values rank in arrival order and reruns on identical input produce
// identical rankings.
type Entry[K any, V cmp.Ordered] struct {
	Key   K
	Value V
	Seq   int
}

// ranksAbove reports whether a outranks b: higher value first, earlier
// arrival on equal values.
func ranksAbove[K any, V cmp.Ordered](a, b Entry[K, V]) bool {
	if a.Value != b.Value {
		return a.Value > b.Value
	}
	return a.Seq < b.Seq
}

// min-heap on rank, the root is the weakest retained entry
type entryHeap[K any, V cmp.Ordered] struct {
	items []Entry[K, V]
}

func (h entryHeap[K, V]) Len() int      { return len(h.items) }
func (h entryHeap[K, V]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h entryHeap[K, V]) Less(i, j int) bool {
	return ranksAbove(h.items[j], h.items[i])
}
func (h *entryHeap[K, V]) Push(x interface{}) { h.items = append(h.items, x.(Entry[K, V])) }
func (h *entryHeap[K, V]) Pop() interface{} {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[:n-1]
	return x
}

// TopN retains the capacity highest-ranked entries seen so far in a
// bounded min-heap, so ranking never sorts more than capacity items no
// matter how many groups stream through it.
type TopN[K any, V cmp.Ordered] struct {
	h        *entryHeap[K, V]
	capacity int
}

// NewTopN builds a retainer for the given capacity. A capacity of zero
// or less retains nothing.
func NewTopN[K any, V cmp.Ordered](capacity int) *TopN[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	h := &entryHeap[K, V]{items: make([]Entry[K, V], 0, capacity)}
	heap.Init(h)
	return &TopN[K, V]{h: h, capacity: capacity}
}

// Insert offers an entry. It is kept only while it ranks among the
// capacity best seen so far.
func (t *TopN[K, V]) Insert(e Entry[K, V]) {
	if t.capacity == 0 {
		return
	}
	if t.h.Len() < t.capacity {
		heap.Push(t.h, e)
		return
	}
	if ranksAbove(e, t.h.items[0]) {
		t.h.items[0] = e
		heap.Fix(t.h, 0)
	}
}

// Values returns the retained entries best-first.
func (t *TopN[K, V]) Values() []Entry[K, V] {
	out := make([]Entry[K, V], len(t.h.items))
	copy(out, t.h.items)
	sort.Slice(out, func(i, j int) bool { return ranksAbove(out[i], out[j]) })
	return out
}
