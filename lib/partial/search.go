package partial

import "sort"

// LowerBound returns the index of the first element of sorted that c matches
// or orders before. sorted must be in ascending order of the same chain.
func LowerBound[S ~[]E, E any](sorted S, c Comparable[E]) int {
	before := ForZero(c, -1)
	return sort.Search(len(sorted), func(i int) bool {
		return before.CompareTo(sorted[i]) < 0
	})
}

// UpperBound returns the index of the first element c orders before.
func UpperBound[S ~[]E, E any](sorted S, c Comparable[E]) int {
	after := ForZero(c, 1)
	return sort.Search(len(sorted), func(i int) bool {
		return after.CompareTo(sorted[i]) < 0
	})
}

// EqualRange returns the half-open range [lo, hi) of elements matching c.
func EqualRange[S ~[]E, E any](sorted S, c Comparable[E]) (lo, hi int) {
	lo = LowerBound(sorted, c)
	hi = lo + UpperBound(sorted[lo:], c)
	return lo, hi
}

// Matches returns the sub-slice of sorted matching c. It shares the backing
// array of sorted.
func Matches[S ~[]E, E any](sorted S, c Comparable[E]) S {
	lo, hi := EqualRange(sorted, c)
	return sorted[lo:hi:hi]
}

// CompareFunc orders full tuples by a chain sharing all of their fields,
// for slices.SortFunc and friends.
func CompareFunc[T any](server Server[T, T]) func(a, b T) int {
	return func(a, b T) int {
		return server.Comparable(a).CompareTo(b)
	}
}
