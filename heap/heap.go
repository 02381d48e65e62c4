// Package heap exposes a generic priority queue implemented using an array-backed binary heap.
package heap

import (
	"fmt"
	"reflect"
	"strings"
)

const (
	// defaultInitialCapacity is the number of slots allocated when no capacity is given.
	defaultInitialCapacity = 8

	// growthFactor is the factor by which the storage grows once it's full.
	growthFactor = 2
)

// IterFunc is a function which will be executed for every element in the heap.
type IterFunc[T any] func(v T)

// Heap is a priority queue which always exposes its smallest element, as defined by its comparator or, when it has
// none, the natural ordering of its elements. Insertion and removal take logarithmic time.
//
// The zero value of Heap is ready for use and uses natural ordering.
//
// NOTE: Heap is not safe for concurrent use and needs to be wrapped in a lock to be shared safely between goroutines.
type Heap[T any] struct {
	// items is the backing storage, live elements occupy items[:count] and the remaining slots hold the zero value.
	items []T
	count int

	// cmp orders the elements, nil means natural ordering.
	cmp Comparator[T]
}

// NewHeap creates an empty heap with the default capacity which orders its elements using their natural ordering.
func NewHeap[T any]() *Heap[T] {
	return newHeap[T](defaultInitialCapacity, nil)
}

// NewHeapWithComparator creates an empty heap with the default capacity which orders its elements using cmp.
func NewHeapWithComparator[T any](cmp Comparator[T]) *Heap[T] {
	return newHeap(defaultInitialCapacity, cmp)
}

// NewHeapWithCapacity creates an empty heap with the given initial capacity which orders its elements using their
// natural ordering.
func NewHeapWithCapacity[T any](capacity int) (*Heap[T], error) {
	return NewHeapWithCapacityAndComparator[T](capacity, nil)
}

// NewHeapWithCapacityAndComparator creates an empty heap with the given initial capacity which orders its elements
// using cmp. A nil comparator selects natural ordering.
//
// NOTE: The capacity behaves like a slices capacity, the heap grows beyond it as required.
func NewHeapWithCapacityAndComparator[T any](capacity int, cmp Comparator[T]) (*Heap[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidConfiguration, capacity)
	}

	return newHeap(capacity, cmp), nil
}

func newHeap[T any](capacity int, cmp Comparator[T]) *Heap[T] {
	return &Heap[T]{items: make([]T, capacity), cmp: cmp}
}

// Len returns the number of elements currently in the heap.
func (h *Heap[T]) Len() int {
	return h.count
}

// IsEmpty returns whether the heap contains no elements.
func (h *Heap[T]) IsEmpty() bool {
	return h.count == 0
}

// Cap returns the number of elements the heap can hold before it has to grow.
func (h *Heap[T]) Cap() int {
	return len(h.items)
}

// Insert adds the given value to the heap.
//
// A nil value is rejected with 'ErrNilElement'. When the heap has no comparator, inserting a value which can't be
// compared with the elements it's checked against returns a '*NotOrderableError'. In both cases the heap is left
// unmodified.
func (h *Heap[T]) Insert(value T) error {
	if isNil(value) {
		return ErrNilElement
	}

	slot, err := h.upSlot(value)
	if err != nil {
		return err
	}

	h.reallocIfRequired()

	for i := h.count; i > slot; i = parent(i) {
		h.items[i] = h.items[parent(i)]
	}

	h.items[slot] = value
	h.count++

	return nil
}

// InsertAll inserts each of the given values, values which are rejected are skipped and reported in the returned
// '*InsertError'.
func (h *Heap[T]) InsertAll(values ...T) error {
	errs := &InsertError{}

	for i, value := range values {
		if err := h.Insert(value); err != nil {
			errs.add(i, err)
		}
	}

	return errs.ErrOrNil()
}

// Peek returns the smallest element without removing it, returning the default value and false if the heap is empty.
func (h *Heap[T]) Peek() (T, bool) {
	if h.count == 0 {
		return *new(T), false
	}

	return h.items[0], true
}

// Poll removes and returns the smallest element, returning the default value and false if the heap is empty.
//
// NOTE: Heaps without a comparator which hold values of different dynamic types (e.g. a 'Heap[any]') may hold two
// elements which were never compared on insertion; should those turn out not to be comparable Poll panics with a
// '*NotOrderableError' and leaves the heap unmodified.
func (h *Heap[T]) Poll() (T, bool) {
	if h.count == 0 {
		return *new(T), false
	}

	var (
		root = h.items[0]
		last = h.items[h.count-1]
		n    = h.count - 1
	)

	slot, err := h.down(last, n)
	if err != nil {
		h.restore(slot, root)
		panic(err)
	}

	h.items[slot] = last
	h.items[n] = *new(T)
	h.count = n

	return root, true
}

// Clear removes all the elements from the heap, the storage is retained.
func (h *Heap[T]) Clear() {
	for i := 0; i < h.count; i++ {
		h.items[i] = *new(T)
	}

	h.count = 0
}

// Iter calls fn on each element in storage order, which is not the order they would be polled in.
func (h *Heap[T]) Iter(fn IterFunc[T]) {
	for i := 0; i < h.count; i++ {
		fn(h.items[i])
	}
}

// Drain polls all the elements from the heap running the given function on each one. In the event of an error,
// draining stops early, and returns the error.
func (h *Heap[T]) Drain(fn func(v T) error) error {
	for !h.IsEmpty() {
		v, _ := h.Poll()

		if err := fn(v); err != nil {
			return err
		}
	}

	return nil
}

// String renders the elements in storage order, for example "[A, B, C]".
func (h *Heap[T]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')

	for i := 0; i < h.count; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprintf(&sb, "%v", h.items[i])
	}

	sb.WriteByte(']')

	return sb.String()
}

// compare dispatches to the heaps comparator, or the natural ordering when it doesn't have one.
func (h *Heap[T]) compare(a, b T) (int, error) {
	if h.cmp != nil {
		return h.cmp(a, b), nil
	}

	return natural(a, b)
}

// upSlot returns the index value should occupy once inserted, found by walking up from the first free slot while value
// compares less than the parent. No elements are moved.
func (h *Heap[T]) upSlot(value T) (int, error) {
	i := h.count

	for i > 0 {
		p := parent(i)

		c, err := h.compare(value, h.items[p])
		if err != nil {
			return 0, err
		}

		if c >= 0 {
			break
		}

		i = p
	}

	return i, nil
}

// down sifts the hole at the root of a heap of n elements downwards, moving the smaller child up at each step until
// value compares less than or equal to both children. It returns the final index of the hole.
//
// NOTE: On error, the index of the hole is still returned so the moved elements can be restored.
func (h *Heap[T]) down(value T, n int) (int, error) {
	i := 0

	for left(i) < n {
		child := left(i)

		if r := right(i); r < n {
			c, err := h.compare(h.items[r], h.items[child])
			if err != nil {
				return i, err
			}

			if c < 0 {
				child = r
			}
		}

		c, err := h.compare(value, h.items[child])
		if err != nil {
			return i, err
		}

		if c <= 0 {
			break
		}

		h.items[i] = h.items[child]
		i = child
	}

	return i, nil
}

// restore undoes a partial 'down' which left the hole at the given index, putting root back at the top.
func (h *Heap[T]) restore(hole int, root T) {
	for hole > 0 {
		p := parent(hole)
		h.items[hole] = h.items[p]
		hole = p
	}

	h.items[0] = root
}

// reallocIfRequired replaces the storage with one grown by growthFactor, copying the existing elements across, if the
// existing storage is full.
func (h *Heap[T]) reallocIfRequired() {
	if h.count < len(h.items) {
		return
	}

	size := len(h.items) * growthFactor
	if size == 0 {
		size = defaultInitialCapacity
	}

	items := make([]T, size)
	copy(items, h.items[:h.count])

	h.items = items
}

func parent(i int) int {
	return (i - 1) / 2
}

func left(i int) int {
	return 2*i + 1
}

func right(i int) int {
	return 2*i + 2
}

// isNil returns whether v is nil, which is only possible when T is an interface or one of the nilable kinds.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}

	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice,
		reflect.UnsafePointer:
		return rv.IsNil()
	}

	return false
}
