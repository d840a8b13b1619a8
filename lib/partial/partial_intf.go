package partial

// Comparable is bound to one partial value. CompareTo returns a negative
// number, zero or a positive number as the bound partial value is less
// than, matches or is greater than the full value.
type Comparable[T any] interface {
	CompareTo(full T) int
}

type ComparableFunc[T any] func(full T) int

func (fn ComparableFunc[T]) CompareTo(full T) int {
	return fn(full)
}

// Server is a node of the comparator chain. P is the shape of the partial
// tuple the node consumes and T the shape of the full tuple it compares.
// Servers are immutable, so one Server may bind partial values for any
// number of goroutines.
type Server[P, T any] interface {
	Comparable(partial P) Comparable[T]
}
