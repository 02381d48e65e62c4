package heap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfiguration is returned when constructing a heap with a non-positive capacity.
	ErrInvalidConfiguration = errors.New("capacity must be > 0")

	// ErrNilElement is returned when attempting to insert a nil value, the heap never stores nil values.
	ErrNilElement = errors.New("can't store nil elements")

	// ErrNotOrderable is the sentinel wrapped by 'NotOrderableError' for use with 'errors.Is'.
	ErrNotOrderable = errors.New("value is not orderable")
)

// NotOrderableError is returned when a heap without a comparator has to compare a value which has no natural ordering,
// or two values whose types can't be compared with each other.
type NotOrderableError struct {
	// Value is the value being compared, when inserting this is the new value.
	Value any

	// With is the value it was compared against when the two have different types, nil if Value has no natural
	// ordering at all.
	With any
}

func (e *NotOrderableError) Error() string {
	if e.With != nil {
		return fmt.Sprintf("can't compare %T with %T: %v", e.Value, e.With, e.Value)
	}

	return fmt.Sprintf("value does not implement Comparable: %v", e.Value)
}

func (e *NotOrderableError) Unwrap() error {
	return ErrNotOrderable
}

// InsertError is returned by 'InsertAll' and records every value which was rejected, values which were inserted
// successfully remain in the heap.
type InsertError struct {
	indexes []int
	errs    []error
}

// add records that the value at the given index was rejected.
func (e *InsertError) add(index int, err error) {
	e.indexes = append(e.indexes, index)
	e.errs = append(e.errs, err)
}

func (e *InsertError) Error() string {
	if len(e.errs) == 0 {
		return ""
	}

	msg := strings.Builder{}

	msg.WriteString(fmt.Sprintf("failed to insert %d value(s): ", len(e.errs)))

	for i, err := range e.errs {
		if i > 0 {
			msg.WriteString("; ")
		}

		msg.WriteString(fmt.Sprintf("value %d: %s", e.indexes[i], err))
	}

	return msg.String()
}

// Errors returns the errors for the rejected values, in the order the values were given.
//
// NOTE: Callers must not modify the returned slice.
func (e *InsertError) Errors() []error {
	return e.errs
}

// Indexes returns the argument positions of the rejected values, Indexes()[i] corresponds to Errors()[i].
func (e *InsertError) Indexes() []int {
	return e.indexes
}

// Unwrap allows matching any of the underlying errors using 'errors.Is' and 'errors.As'.
func (e *InsertError) Unwrap() []error {
	return e.errs
}

// ErrOrNil returns this error if at least one value was rejected, or nil otherwise.
func (e *InsertError) ErrOrNil() error {
	if len(e.errs) > 0 {
		return e
	}

	return nil
}
