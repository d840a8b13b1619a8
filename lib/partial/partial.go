// Package partial performs type safe comparisons of a smaller tuple against
// a larger one.
//
// It was written for searching compound indexes with fewer fields than the
// index defines. An index of people ordered by last name then first name can
// be searched by last name only, the first name is simply ignored:
//
//	byLastName := partial.OneOf(partial.Pair[string, string]())
//	cmp := byLastName.Compare(tuple.From1("Gutierrez"))
//	cmp.CompareTo(tuple.From2("Gutierrez", "Alan")) // 0
//
// The chain behind a Partial is composed of field nodes (Shared, SharedFunc,
// SharedComparable) ending with a terminal (Terminal, Ignore). Field types
// and arities are checked by the compiler, nothing is checked at runtime.
//
// A partial tuple matching the leading fields of a full tuple compares as 0.
// Wrap the comparable with ForZero to report the match as -1 (the partial
// tuple sorts before its matches) or +1 (after them).
package partial

import "github.com/benz9527/xpartial/lib/tuple"

// Partial builds comparables of the partial tuple type Part against the full
// tuple type Full. It is immutable.
type Partial[Full, Part any] struct {
	server Server[Part, Full]
}

// Compare binds partial and returns a comparable for any number of full
// tuples.
func (p *Partial[Full, Part]) Compare(partial Part) Comparable[Full] {
	return p.server.Comparable(partial)
}

func assemble[Full tuple.Named[R], Part tuple.Named[P], P, R any](chain Server[P, R]) *Partial[Full, Part] {
	return &Partial[Full, Part]{
		server: castPartial[P, Part, Full]{
			next: castFull[P, R, Full]{
				next: chain,
			},
		},
	}
}

// ForZero reports forZero wherever c reports a match.
func ForZero[T any](c Comparable[T], forZero int) Comparable[T] {
	return ComparableFunc[T](func(full T) int {
		if res := c.CompareTo(full); res != 0 {
			return res
		}
		return forZero
	})
}
