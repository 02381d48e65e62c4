package pq

// Item encapsulates a payload and its priority.
type Item[T any] struct {
	Payload  T
	Priority int
}

// byPriority orders items so that those with a higher priority come first.
func byPriority[T any](a, b Item[T]) int {
	switch {
	case a.Priority > b.Priority:
		return -1
	case a.Priority < b.Priority:
		return 1
	}

	return 0
}
