package partial

import "github.com/benz9527/xpartial/lib/tuple"

// castFull exposes a chain built against the right-nested shape R as a chain
// comparing the named full tuple type.
type castFull[P, R any, Full tuple.Named[R]] struct {
	next Server[P, R]
}

func (c castFull[P, R, Full]) Comparable(partial P) Comparable[Full] {
	cmp := c.next.Comparable(partial)
	return ComparableFunc[Full](func(full Full) int {
		return cmp.CompareTo(full.Tuple())
	})
}

// castPartial exposes a chain consuming the right-nested shape P as a chain
// consuming the named partial tuple type.
type castPartial[P any, Part tuple.Named[P], T any] struct {
	next Server[P, T]
}

func (c castPartial[P, Part, T]) Comparable(partial Part) Comparable[T] {
	return c.next.Comparable(partial.Tuple())
}
