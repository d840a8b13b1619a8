package infra

import "cmp"

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

type Float interface {
	~float32 | ~float64
}

// OrderedKey
// byte => ~uint8
// Complex numbers have no total order, so they are left out.
type OrderedKey interface {
	Integer | Float | ~string
}

// Comparable is implemented by field types owning their total order,
// e.g. time.Time.
type Comparable[T any] interface {
	Compare(other T) int
}

// FieldComparator
// Assume i is the partial field value.
//  1. i == j, return 0
//  2. i > j, return a positive number
//  3. i < j, return a negative number
type FieldComparator[T any] func(i, j T) int

// CompareOrderedKey orders NaN before any other float, the same as cmp.Compare.
func CompareOrderedKey[K OrderedKey](i, j K) int {
	return cmp.Compare(i, j)
}

func CompareComparable[T Comparable[T]](i, j T) int {
	return i.Compare(j)
}
