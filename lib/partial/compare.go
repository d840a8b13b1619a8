package partial

import (
	"github.com/benz9527/xpartial/lib/infra"
	"github.com/benz9527/xpartial/lib/tuple"
)

// Type carries the type declarations of a full tuple: the named tuple type,
// its first field type and the right-nested shape of the remaining fields.
// It has no value of its own, it only pins the type parameters of the
// OneOf...NineOf builders.
type Type[Named, First, Rest any] struct{}

func Pair[A, B any]() Type[tuple.Pair[A, B], A, tuple.Tuple[B, tuple.End]] {
	return Type[tuple.Pair[A, B], A, tuple.Tuple[B, tuple.End]]{}
}

func Triple[A, B, C any]() Type[tuple.Triple[A, B, C], A, tuple.Tuple[B, tuple.Tuple[C, tuple.End]]] {
	return Type[tuple.Triple[A, B, C], A, tuple.Tuple[B, tuple.Tuple[C, tuple.End]]]{}
}

func Quadruple[A, B, C, D any]() Type[tuple.Quadruple[A, B, C, D], A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.End]]]] {
	return Type[tuple.Quadruple[A, B, C, D], A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.End]]]]{}
}

func Quintuple[A, B, C, D, E any]() Type[tuple.Quintuple[A, B, C, D, E], A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.End]]]]] {
	return Type[tuple.Quintuple[A, B, C, D, E], A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.End]]]]]{}
}

func Sextuple[A, B, C, D, E, F any]() Type[tuple.Sextuple[A, B, C, D, E, F], A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, tuple.End]]]]]] {
	return Type[tuple.Sextuple[A, B, C, D, E, F], A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, tuple.End]]]]]]{}
}

func Septuple[A, B, C, D, E, F, G any]() Type[tuple.Septuple[A, B, C, D, E, F, G], A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, tuple.Tuple[G, tuple.End]]]]]]] {
	return Type[tuple.Septuple[A, B, C, D, E, F, G], A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, tuple.Tuple[G, tuple.End]]]]]]]{}
}

func Octuple[A, B, C, D, E, F, G, H any]() Type[tuple.Octuple[A, B, C, D, E, F, G, H], A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, tuple.Tuple[G, tuple.Tuple[H, tuple.End]]]]]]]] {
	return Type[tuple.Octuple[A, B, C, D, E, F, G, H], A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, tuple.Tuple[G, tuple.Tuple[H, tuple.End]]]]]]]]{}
}

func Nonuple[A, B, C, D, E, F, G, H, I any]() Type[tuple.Nonuple[A, B, C, D, E, F, G, H, I], A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, tuple.Tuple[G, tuple.Tuple[H, tuple.Tuple[I, tuple.End]]]]]]]]] {
	return Type[tuple.Nonuple[A, B, C, D, E, F, G, H, I], A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, tuple.Tuple[G, tuple.Tuple[H, tuple.Tuple[I, tuple.End]]]]]]]]]{}
}

func Decuple[A, B, C, D, E, F, G, H, I, J any]() Type[tuple.Decuple[A, B, C, D, E, F, G, H, I, J], A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, tuple.Tuple[G, tuple.Tuple[H, tuple.Tuple[I, tuple.Tuple[J, tuple.End]]]]]]]]]] {
	return Type[tuple.Decuple[A, B, C, D, E, F, G, H, I, J], A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, tuple.Tuple[G, tuple.Tuple[H, tuple.Tuple[I, tuple.Tuple[J, tuple.End]]]]]]]]]]{}
}

// OneOf compares the first field of a full tuple with at least two fields.
func OneOf[
	A infra.OrderedKey,
	B, Rest any,
	Full tuple.Named[tuple.Tuple[A, tuple.Tuple[B, Rest]]],
](_ Type[Full, A, tuple.Tuple[B, Rest]]) *Partial[Full, tuple.Single[A]] {
	chain := Shared[A](Terminal[tuple.Tuple[B, Rest]]())
	return assemble[Full, tuple.Single[A]](chain)
}

// TwoOf compares the first two fields of a full tuple with at least three
// fields.
//
//	byBucket := partial.TwoOf(partial.Triple[string, int, *os.File]())
//	cmp := byBucket.Compare(tuple.From2("A", 1))
func TwoOf[
	A, B infra.OrderedKey,
	C, Rest any,
	Full tuple.Named[tuple.Tuple[A, tuple.Tuple[B, tuple.Tuple[C, Rest]]]],
](_ Type[Full, A, tuple.Tuple[B, tuple.Tuple[C, Rest]]]) *Partial[Full, tuple.Pair[A, B]] {
	chain := Shared[A](Shared[B](Terminal[tuple.Tuple[C, Rest]]()))
	return assemble[Full, tuple.Pair[A, B]](chain)
}

// ThreeOf compares the first three fields of a full tuple with at least four
// fields.
func ThreeOf[
	A, B, C infra.OrderedKey,
	D, Rest any,
	Full tuple.Named[tuple.Tuple[A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, Rest]]]]],
](_ Type[Full, A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, Rest]]]]) *Partial[Full, tuple.Triple[A, B, C]] {
	chain := Shared[A](Shared[B](Shared[C](Terminal[tuple.Tuple[D, Rest]]())))
	return assemble[Full, tuple.Triple[A, B, C]](chain)
}

func FourOf[
	A, B, C, D infra.OrderedKey,
	E, Rest any,
	Full tuple.Named[tuple.Tuple[A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, Rest]]]]]],
](_ Type[Full, A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, Rest]]]]]) *Partial[Full, tuple.Quadruple[A, B, C, D]] {
	chain := Shared[A](Shared[B](Shared[C](Shared[D](Terminal[tuple.Tuple[E, Rest]]()))))
	return assemble[Full, tuple.Quadruple[A, B, C, D]](chain)
}

func FiveOf[
	A, B, C, D, E infra.OrderedKey,
	F, Rest any,
	Full tuple.Named[tuple.Tuple[A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, Rest]]]]]]],
](_ Type[Full, A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, Rest]]]]]]) *Partial[Full, tuple.Quintuple[A, B, C, D, E]] {
	chain := Shared[A](Shared[B](Shared[C](Shared[D](Shared[E](Terminal[tuple.Tuple[F, Rest]]())))))
	return assemble[Full, tuple.Quintuple[A, B, C, D, E]](chain)
}

func SixOf[
	A, B, C, D, E, F infra.OrderedKey,
	G, Rest any,
	Full tuple.Named[tuple.Tuple[A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, tuple.Tuple[G, Rest]]]]]]]],
](_ Type[Full, A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, tuple.Tuple[G, Rest]]]]]]]) *Partial[Full, tuple.Sextuple[A, B, C, D, E, F]] {
	chain := Shared[A](Shared[B](Shared[C](Shared[D](Shared[E](Shared[F](Terminal[tuple.Tuple[G, Rest]]()))))))
	return assemble[Full, tuple.Sextuple[A, B, C, D, E, F]](chain)
}

func SevenOf[
	A, B, C, D, E, F, G infra.OrderedKey,
	H, Rest any,
	Full tuple.Named[tuple.Tuple[A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, tuple.Tuple[G, tuple.Tuple[H, Rest]]]]]]]]],
](_ Type[Full, A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, tuple.Tuple[G, tuple.Tuple[H, Rest]]]]]]]]) *Partial[Full, tuple.Septuple[A, B, C, D, E, F, G]] {
	chain := Shared[A](Shared[B](Shared[C](Shared[D](Shared[E](Shared[F](Shared[G](Terminal[tuple.Tuple[H, Rest]]())))))))
	return assemble[Full, tuple.Septuple[A, B, C, D, E, F, G]](chain)
}

func EightOf[
	A, B, C, D, E, F, G, H infra.OrderedKey,
	I, Rest any,
	Full tuple.Named[tuple.Tuple[A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, tuple.Tuple[G, tuple.Tuple[H, tuple.Tuple[I, Rest]]]]]]]]]],
](_ Type[Full, A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, tuple.Tuple[G, tuple.Tuple[H, tuple.Tuple[I, Rest]]]]]]]]]) *Partial[Full, tuple.Octuple[A, B, C, D, E, F, G, H]] {
	chain := Shared[A](Shared[B](Shared[C](Shared[D](Shared[E](Shared[F](Shared[G](Shared[H](Terminal[tuple.Tuple[I, Rest]]()))))))))
	return assemble[Full, tuple.Octuple[A, B, C, D, E, F, G, H]](chain)
}

func NineOf[
	A, B, C, D, E, F, G, H, I infra.OrderedKey,
	J, Rest any,
	Full tuple.Named[tuple.Tuple[A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, tuple.Tuple[G, tuple.Tuple[H, tuple.Tuple[I, tuple.Tuple[J, Rest]]]]]]]]]]],
](_ Type[Full, A, tuple.Tuple[B, tuple.Tuple[C, tuple.Tuple[D, tuple.Tuple[E, tuple.Tuple[F, tuple.Tuple[G, tuple.Tuple[H, tuple.Tuple[I, tuple.Tuple[J, Rest]]]]]]]]]]) *Partial[Full, tuple.Nonuple[A, B, C, D, E, F, G, H, I]] {
	chain := Shared[A](Shared[B](Shared[C](Shared[D](Shared[E](Shared[F](Shared[G](Shared[H](Shared[I](Terminal[tuple.Tuple[J, Rest]]())))))))))
	return assemble[Full, tuple.Nonuple[A, B, C, D, E, F, G, H, I]](chain)
}
