package partial

import (
	"github.com/benz9527/xpartial/lib/infra"
	"github.com/benz9527/xpartial/lib/tuple"
)

var _ Server[tuple.Tuple[int, tuple.End], tuple.Tuple[int, tuple.End]] = (*shared[int, tuple.End, tuple.End])(nil)

// shared compares one field present in both the partial and the full tuple,
// then defers to next for the rest of both.
type shared[F, PR, R any] struct {
	next    Server[PR, R]
	compare infra.FieldComparator[F]
}

func (node *shared[F, PR, R]) Comparable(partial tuple.Tuple[F, PR]) Comparable[tuple.Tuple[F, R]] {
	f1, ok1, r1 := partial.Extract()
	// Bound once here, reused by every CompareTo below.
	next := node.next.Comparable(r1)
	compare := node.compare
	return ComparableFunc[tuple.Tuple[F, R]](func(full tuple.Tuple[F, R]) int {
		f2, ok2, r2 := full.Extract()
		switch {
		case !ok1 && !ok2:
			// Both null, the field gives no order at all.
			return next.CompareTo(r2)
		case !ok1:
			return -1
		case !ok2:
			return 1
		default:
		}
		if res := compare(f1, f2); res != 0 {
			return res
		}
		return next.CompareTo(r2)
	})
}

// Shared prepends a field of an ordered key type to the chain. The field is
// compared before every field of next.
func Shared[F infra.OrderedKey, PR, R any](next Server[PR, R]) Server[tuple.Tuple[F, PR], tuple.Tuple[F, R]] {
	return SharedFunc[F](next, infra.CompareOrderedKey[F])
}

// SharedComparable prepends a field whose type owns its order, e.g. time.Time.
func SharedComparable[F infra.Comparable[F], PR, R any](next Server[PR, R]) Server[tuple.Tuple[F, PR], tuple.Tuple[F, R]] {
	return SharedFunc[F](next, infra.CompareComparable[F])
}

// SharedFunc prepends a field ordered by compare, which must be a total order
// over F.
func SharedFunc[F, PR, R any](next Server[PR, R], compare infra.FieldComparator[F]) Server[tuple.Tuple[F, PR], tuple.Tuple[F, R]] {
	if next == nil || compare == nil {
		panic( /* debug assertion */ "[partial] shared field without next node or comparator")
	}
	return &shared[F, PR, R]{
		next:    next,
		compare: compare,
	}
}
