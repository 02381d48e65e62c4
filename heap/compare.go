package heap

import "golang.org/x/exp/constraints"

// Comparator defines a total order over Ts; it returns a negative number when a sorts before b, zero when they are
// equal and a positive number otherwise.
type Comparator[T any] func(a, b T) int

// Comparable is implemented by types with a natural ordering, it's used by heaps constructed without a Comparator.
//
// NOTE: The method must accept the element type of the heap, elements of an interface-typed heap (e.g. 'Heap[any]')
// need a 'Compare(other any) int' method; 'Compare(other Person) int' is only recognized by a 'Heap[Person]'.
type Comparable[T any] interface {
	Compare(other T) int
}

// Ordered returns a comparator which sorts built-in ordered types in ascending order.
//
// NOTE: NaNs sort before any other float and are equal to each other.
func Ordered[T constraints.Ordered]() Comparator[T] {
	return compareOrdered[T]
}

// Reverse returns a comparator which inverts the order defined by cmp.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int { return cmp(b, a) }
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	// Only NaN is not equal to itself.
	var (
		aNaN = a != a
		bNaN = b != b
	)

	switch {
	case aNaN && bNaN:
		return 0
	case aNaN || a < b:
		return -1
	case bNaN || a > b:
		return 1
	}

	return 0
}

// natural compares a and b using their natural ordering, returning a '*NotOrderableError' naming a if it does not have
// one or b is of a type a can't be compared with.
//
// NOTE: Only the built-in ordered types are recognized, named types (e.g. 'type Age int') must implement 'Comparable'.
func natural[T any](a, b T) (int, error) {
	if c, ok := any(a).(Comparable[T]); ok {
		return c.Compare(b), nil
	}

	switch v := any(a).(type) {
	case int:
		return sameType(v, b)
	case int8:
		return sameType(v, b)
	case int16:
		return sameType(v, b)
	case int32:
		return sameType(v, b)
	case int64:
		return sameType(v, b)
	case uint:
		return sameType(v, b)
	case uint8:
		return sameType(v, b)
	case uint16:
		return sameType(v, b)
	case uint32:
		return sameType(v, b)
	case uint64:
		return sameType(v, b)
	case uintptr:
		return sameType(v, b)
	case float32:
		return sameType(v, b)
	case float64:
		return sameType(v, b)
	case string:
		return sameType(v, b)
	}

	return 0, &NotOrderableError{Value: a}
}

// sameType compares a with b when b has the same dynamic type as a.
func sameType[O constraints.Ordered](a O, b any) (int, error) {
	o, ok := b.(O)
	if !ok {
		return 0, &NotOrderableError{Value: a, With: b}
	}

	return compareOrdered(a, o), nil
}
