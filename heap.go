package huffcode

import (
	"github.com/chronos-tachyon/assert"
)

// MinHeap is a priority queue: a mutable collection with an extractable
// least element.
//
// In a MinHeap h, the elements of h.xs have the heap property: for element n,
//
//     left(n) >= len(xs) || !less(xs[left(n)], xs[n])
// and right(n) >= len(xs) || !less(xs[right(n)], xs[n])
//
// The less function must be a strict total order.  Elements that are equal
// under less come out in an unspecified order, so callers that need
// reproducible output must break ties inside less.
//
type MinHeap[T any] struct {
	xs   []T
	less func(T, T) bool
}

// NewMinHeap returns a MinHeap holding items, which are reordered in O(n).
// The heap acquires ownership of items.
func NewMinHeap[T any](less func(T, T) bool, items ...T) *MinHeap[T] {
	assert.Assertf(less != nil, "less function is nil")
	h := &MinHeap[T]{xs: items, less: less}
	for i := len(h.xs)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
	return h
}

// Size returns the number of elements in the heap.
func (h *MinHeap[T]) Size() int {
	return len(h.xs)
}

// Min returns the least element without removing it.  The heap must not be
// empty.
func (h *MinHeap[T]) Min() T {
	assert.Assertf(len(h.xs) != 0, "Min called on an empty heap")
	return h.xs[0]
}

// Insert adds an element in O(log n).
func (h *MinHeap[T]) Insert(x T) {
	h.xs = append(h.xs, x)
	h.up(len(h.xs) - 1)
}

// RemoveMin removes and returns the least element in O(log n).  The heap
// must not be empty.
func (h *MinHeap[T]) RemoveMin() T {
	n := len(h.xs)
	assert.Assertf(n != 0, "RemoveMin called on an empty heap")

	var zero T
	min := h.xs[0]
	last := n - 1
	h.xs[0] = h.xs[last]
	h.xs[last] = zero
	h.xs = h.xs[:last]
	if last > 1 {
		h.down(0)
	}
	return min
}

// HasHeapProperty returns true iff xs is a valid min-heap under less.
func HasHeapProperty[T any](xs []T, less func(T, T) bool) bool {
	for i := 1; i < len(xs); i++ {
		if less(xs[i], xs[parent(i)]) {
			return false
		}
	}
	return true
}

// up moves xs[i] toward the root until its parent is not greater.
func (h *MinHeap[T]) up(i int) {
	x := h.xs[i]
	for i > 0 {
		p := parent(i)
		if !h.less(x, h.xs[p]) {
			break
		}
		h.xs[i] = h.xs[p]
		i = p
	}
	h.xs[i] = x
}

// down moves xs[i] toward the leaves until neither child is less.
func (h *MinHeap[T]) down(i int) {
	n := len(h.xs)
	for {
		least := i
		if l := left(i); l < n && h.less(h.xs[l], h.xs[least]) {
			least = l
		}
		if r := right(i); r < n && h.less(h.xs[r], h.xs[least]) {
			least = r
		}
		if least == i {
			return
		}
		h.xs[i], h.xs[least] = h.xs[least], h.xs[i]
		i = least
	}
}

func parent(i int) int {
	return (i - 1) / 2
}

func left(i int) int {
	return i*2 + 1
}

func right(i int) int {
	return i*2 + 2
}
