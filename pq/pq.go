// Package pq exposes a generic priority queue of payloads with an integer priority.
package pq

import "github.com/mnp/heapq/heap"

// PriorityQueue implements a basic priority queue which accepts a generic payload with an integer priority.
type PriorityQueue[T any] struct {
	inner *heap.Heap[Item[T]]
}

// NewPriorityQueue creates a new priority queue where the underlying capacity is set to the given value, a
// non-positive capacity uses the default capacity of 'heap.Heap'.
//
// NOTE: The 'PriorityQueue' capacity has the same behavior as a slices capacity meaning it may grow beyond the given
// capacity, the capacity is there for performance optimizations.
func NewPriorityQueue[T any](capacity int) *PriorityQueue[T] {
	inner, err := heap.NewHeapWithCapacityAndComparator(capacity, byPriority[T])
	if err != nil {
		inner = heap.NewHeapWithComparator(byPriority[T])
	}

	return &PriorityQueue[T]{inner: inner}
}

// Enqueue adds the given item to the priority queue.
func (p *PriorityQueue[T]) Enqueue(item Item[T]) {
	// Items are structs and the queue has a comparator so insertion can't fail.
	_ = p.inner.Insert(item)
}

// Dequeue returns the item from the queue with the highest priority, where multiple items have the same priority,
// they're returned in an arbitrary order. The bool return value is false if the queue is empty.
func (p *PriorityQueue[T]) Dequeue() (Item[T], bool) {
	return p.inner.Poll()
}

// Peek returns the item with the highest priority without removing it from the queue.
func (p *PriorityQueue[T]) Peek() (Item[T], bool) {
	return p.inner.Peek()
}

// Len returns the number of items in the priority queue.
func (p *PriorityQueue[T]) Len() int {
	return p.inner.Len()
}

// Drain removes all items from the queue running the given function on each item. In the event of an error, dequeuing
// stops early, and returns the error.
func (p *PriorityQueue[T]) Drain(fn func(item Item[T]) error) error {
	return p.inner.Drain(fn)
}
