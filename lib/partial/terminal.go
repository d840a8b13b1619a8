package partial

import "github.com/benz9527/xpartial/lib/tuple"

var _ Server[tuple.End, tuple.End] = terminal[tuple.End]{}

// terminal ends the chain. It is reached only after every shared field
// agreed, so whatever remains of the full tuple is a match.
type terminal[R any] struct{}

func (terminal[R]) Comparable(tuple.End) Comparable[R] {
	return terminal[R]{}
}

func (terminal[R]) CompareTo(R) int {
	return 0
}

// Terminal accepts any remainder R of the full tuple. Use tuple.End as R
// when the chain shares every field of the full tuple.
func Terminal[R any]() Server[tuple.End, R] {
	return terminal[R]{}
}

// Ignore is the terminal for a full tuple with exactly one unshared field.
func Ignore[F any]() Server[tuple.End, tuple.Tuple[F, tuple.End]] {
	return terminal[tuple.Tuple[F, tuple.End]]{}
}

// PrependIgnore widens a terminal by one more unshared field in front. The
// argument only pins the remainder type; field nodes never consume
// tuple.End, so they cannot be passed here.
func PrependIgnore[F, R any](Server[tuple.End, R]) Server[tuple.End, tuple.Tuple[F, R]] {
	return terminal[tuple.Tuple[F, R]]{}
}
