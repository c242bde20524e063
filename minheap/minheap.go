// Package minheap implements an array-backed binary min-heap with decrease-key,
// generic over any payload that exposes a lookup key and a cost.
//
// Layout: data[0] is the root; the children of i are 2i+1 and 2i+2, the
// parent of i is (i-1)/2. For every non-root i, data[parent(i)].Cost() <=
// data[i].Cost(); ties are broken arbitrarily.
//
// Complexity:
//
//   - Push, PopMin, DecreaseKey: O(log n)
//   - FindIndex: O(n) linear scan by default, O(1) with WithIndex()
//   - FromSlice: O(n) bottom-up heapify
//
// FindIndex is linear unless the heap is indexed. That keeps a Dijkstra
// decrease-key at O(n) overall; WithIndex trades a map for O(log n).
package minheap

import (
	"fmt"

	"github.com/katalvlaran/lvroute/cost"
)

// MinHeap is a binary min-heap ordered by Item.Cost.
type MinHeap[K comparable, T Item[K]] struct {
	data []T
	pos  map[K]int // nil unless indexed
}

// New returns an empty heap.
func New[K comparable, T Item[K]](opts ...Option) *MinHeap[K, T] {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	h := &MinHeap[K, T]{data: make([]T, 0, cfg.Capacity)}
	if cfg.Indexed {
		h.pos = make(map[K]int, cfg.Capacity)
	}

	return h
}

// FromSlice builds a heap over a copy of items in O(n).
// Panics with ErrDuplicateKey if the heap is indexed and two items share a key.
func FromSlice[K comparable, T Item[K]](items []T, opts ...Option) *MinHeap[K, T] {
	opts = append(opts, WithCapacity(len(items)))
	h := New[K, T](opts...)
	h.data = append(h.data, items...)
	if h.pos != nil {
		for i, it := range h.data {
			if _, dup := h.pos[it.Key()]; dup {
				panic(fmt.Errorf("%w: %v", ErrDuplicateKey, it.Key()))
			}
			h.pos[it.Key()] = i
		}
	}
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.down(i)
	}

	return h
}

// Len returns the number of items.
func (h *MinHeap[K, T]) Len() int { return len(h.data) }

// Empty reports whether the heap has no items.
func (h *MinHeap[K, T]) Empty() bool { return len(h.data) == 0 }

// Indexed reports whether the Key → position side table is maintained.
func (h *MinHeap[K, T]) Indexed() bool { return h.pos != nil }

// Peek returns the minimum item without removing it.
func (h *MinHeap[K, T]) Peek() (T, bool) {
	var zero T
	if len(h.data) == 0 {
		return zero, false
	}

	return h.data[0], true
}

// At returns the item stored at position i.
func (h *MinHeap[K, T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(h.data) {
		return zero, false
	}

	return h.data[i], true
}

// Push inserts item and sifts it up.
// Panics with ErrDuplicateKey if the heap is indexed and item's key is present.
func (h *MinHeap[K, T]) Push(item T) {
	if h.pos != nil {
		if _, dup := h.pos[item.Key()]; dup {
			panic(fmt.Errorf("%w: %v", ErrDuplicateKey, item.Key()))
		}
		h.pos[item.Key()] = len(h.data)
	}
	h.data = append(h.data, item)
	h.up(len(h.data) - 1)
}

// PopMin removes and returns the minimum item. ok is false on an empty heap.
func (h *MinHeap[K, T]) PopMin() (item T, ok bool) {
	n := len(h.data)
	if n == 0 {
		return item, false
	}
	item = h.data[0]
	last := n - 1
	h.swap(0, last)

	var zero T
	h.data[last] = zero
	h.data = h.data[:last]
	if h.pos != nil {
		delete(h.pos, item.Key())
	}
	if last > 0 {
		h.down(0)
	}

	return item, true
}

// FindIndex returns the position of the item whose Key equals item.Key().
// Only the key is compared; item's cost is ignored.
func (h *MinHeap[K, T]) FindIndex(item T) (int, bool) {
	return h.IndexOf(item.Key())
}

// IndexOf returns the position of the item with key k.
func (h *MinHeap[K, T]) IndexOf(k K) (int, bool) {
	if h.pos != nil {
		i, ok := h.pos[k]
		return i, ok
	}
	for i, it := range h.data {
		if it.Key() == k {
			return i, true
		}
	}

	return -1, false
}

// DecreaseKey sets the cost of the item at index and restores heap order,
// sifting up when the cost went down and down when it went up.
func (h *MinHeap[K, T]) DecreaseKey(index int, c cost.Cost) error {
	if index < 0 || index >= len(h.data) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(h.data))
	}
	old := h.data[index].Cost()
	h.data[index].SetCost(c)
	switch c.Compare(old) {
	case -1:
		h.up(index)
	case 1:
		h.down(index)
	}

	return nil
}

func (h *MinHeap[K, T]) less(i, j int) bool {
	return h.data[i].Cost().Less(h.data[j].Cost())
}

func (h *MinHeap[K, T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	if h.pos != nil {
		h.pos[h.data[i].Key()] = i
		h.pos[h.data[j].Key()] = j
	}
}

func (h *MinHeap[K, T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *MinHeap[K, T]) down(i int) {
	n := len(h.data)
	for {
		m := 2*i + 1
		if m >= n {
			return
		}
		if r := m + 1; r < n && h.less(r, m) {
			m = r
		}
		if !h.less(m, i) {
			return
		}
		h.swap(i, m)
		i = m
	}
}
