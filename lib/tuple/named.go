package tuple

// Named tuples of arity 1 through 10. Each one is a defined type over the
// right-nested chain, so a chain converts to it and back with a plain
// conversion, e.g. Pair[string, int](PrependNull[string](Prepend(1, End{}))).

type Single[A any] Tuple[A, End]

func From1[A any](a A) Single[A] {
	return Single[A](Prepend(a, End{}))
}

func (t Single[A]) Tuple() Tuple[A, End] {
	return Tuple[A, End](t)
}

func (t Single[A]) String() string {
	return t.Tuple().String()
}

type Pair[A, B any] Tuple[A, Tuple[B, End]]

func From2[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B](Prepend(a, Prepend(b, End{})))
}

func (t Pair[A, B]) Tuple() Tuple[A, Tuple[B, End]] {
	return Tuple[A, Tuple[B, End]](t)
}

func (t Pair[A, B]) String() string {
	return t.Tuple().String()
}

type Triple[A, B, C any] Tuple[A, Tuple[B, Tuple[C, End]]]

func From3[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C](Prepend(a, Prepend(b, Prepend(c, End{}))))
}

func (t Triple[A, B, C]) Tuple() Tuple[A, Tuple[B, Tuple[C, End]]] {
	return Tuple[A, Tuple[B, Tuple[C, End]]](t)
}

func (t Triple[A, B, C]) String() string {
	return t.Tuple().String()
}

type Quadruple[A, B, C, D any] Tuple[A, Tuple[B, Tuple[C, Tuple[D, End]]]]

func From4[A, B, C, D any](a A, b B, c C, d D) Quadruple[A, B, C, D] {
	return Quadruple[A, B, C, D](Prepend(a, Prepend(b, Prepend(c, Prepend(d, End{})))))
}

func (t Quadruple[A, B, C, D]) Tuple() Tuple[A, Tuple[B, Tuple[C, Tuple[D, End]]]] {
	return Tuple[A, Tuple[B, Tuple[C, Tuple[D, End]]]](t)
}

func (t Quadruple[A, B, C, D]) String() string {
	return t.Tuple().String()
}

type Quintuple[A, B, C, D, E any] Tuple[A, Tuple[B, Tuple[C, Tuple[D, Tuple[E, End]]]]]

func From5[A, B, C, D, E any](a A, b B, c C, d D, e E) Quintuple[A, B, C, D, E] {
	return Quintuple[A, B, C, D, E](Prepend(a, Prepend(b, Prepend(c, Prepend(d, Prepend(e, End{}))))))
}

func (t Quintuple[A, B, C, D, E]) Tuple() Tuple[A, Tuple[B, Tuple[C, Tuple[D, Tuple[E, End]]]]] {
	return Tuple[A, Tuple[B, Tuple[C, Tuple[D, Tuple[E, End]]]]](t)
}

func (t Quintuple[A, B, C, D, E]) String() string {
	return t.Tuple().String()
}

type Sextuple[A, B, C, D, E, F any] Tuple[A, Tuple[B, Tuple[C, Tuple[D, Tuple[E, Tuple[F, End]]]]]]

func From6[A, B, C, D, E, F any](a A, b B, c C, d D, e E, f F) Sextuple[A, B, C, D, E, F] {
	return Sextuple[A, B, C, D, E, F](Prepend(a, Prepend(b, Prepend(c, Prepend(d, Prepend(e, Prepend(f, End{})))))))
}

func (t Sextuple[A, B, C, D, E, F]) Tuple() Tuple[A, Tuple[B, Tuple[C, Tuple[D, Tuple[E, Tuple[F, End]]]]]] {
	return Tuple[A, Tuple[B, Tuple[C, Tuple[D, Tuple[E, Tuple[F, End]]]]]](t)
}

func (t Sextuple[A, B, C, D, E, F]) String() string {
	return t.Tuple().String()
}

type Septuple[A, B, C, D, E, F, G any] Tuple[A, Tuple[B, Tuple[C, Tuple[D, Tuple[E, Tuple[F, Tuple[G, End]]]]]]]

func From7[A, B, C, D, E, F, G any](a A, b B, c C, d D, e E, f F, g G) Septuple[A, B, C, D, E, F, G] {
	return Septuple[A, B, C, D, E, F, G](Prepend(a, Prepend(b, Prepend(c, Prepend(d, Prepend(e, Prepend(f, Prepend(g, End{}))))))))
}

func (t Septuple[A, B, C, D, E, F, G]) Tuple() Tuple[A, Tuple[B, Tuple[C, Tuple[D, Tuple[E, Tuple[F, Tuple[G, End]]]]]]] {
	return Tuple[A, Tuple[B, Tuple[C, Tuple[D, Tuple[E, Tuple[F, Tuple[G, End]]]]]]](t)
}

func (t Septuple[A, B, C, D, E, F, G]) String() string {
	return t.Tuple().String()
}

type Octuple[A, B, C, D, E, F, G, H any] Tuple[A, Tuple[B, Tuple[C, Tuple[D, Tuple[E, Tuple[F, Tuple[G, Tuple[H, End]]]]]]]]

func From8[A, B, C, D, E, F, G, H any](a A, b B, c C, d D, e E, f F, g G, h H) Octuple[A, B, C, D, E, F, G, H] {
	return Octuple[A, B, C, D, E, F, G, H](Prepend(a, Prepend(b, Prepend(c, Prepend(d, Prepend(e, Prepend(f, Prepend(g, Prepend(h, End{})))))))))
}

func (t Octuple[A, B, C, D, E, F, G, H]) Tuple() Tuple[A, Tuple[B, Tuple[C, Tuple[D, Tuple[E, Tuple[F, Tuple[G, Tuple[H, End]]]]]]]] {
	return Tuple[A, Tuple[B, Tuple[C, Tuple[D, Tuple[E, Tuple[F, Tuple[G, Tuple[H, End]]]]]]]](t)
}

func (t Octuple[A, B, C, D, E, F, G, H]) String() string {
	return t.Tuple().String()
}

type Nonuple[A, B, C, D, E, F, G, H, I any] Tuple[A, Tuple[B, Tuple[C, Tuple[D, Tuple[E, Tuple[F, Tuple[G, Tuple[H, Tuple[I, End]]]]]]]]]

func From9[A, B, C, D, E, F, G, H, I any](a A, b B, c C, d D, e E, f F, g G, h H, i I) Nonuple[A, B, C, D, E, F, G, H, I] {
	return Nonuple[A, B, C, D, E, F, G, H, I](Prepend(a, Prepend(b, Prepend(c, Prepend(d, Prepend(e, Prepend(f, Prepend(g, Prepend(h, Prepend(i, End{}))))))))))
}

func (t Nonuple[A, B, C, D, E, F, G, H, I]) Tuple() Tuple[A, Tuple[B, Tuple[C, Tuple[D, Tuple[E, Tuple[F, Tuple[G, Tuple[H, Tuple[I, End]]]]]]]]] {
	return Tuple[A, Tuple[B, Tuple[C, Tuple[D, Tuple[E, Tuple[F, Tuple[G, Tuple[H, Tuple[I, End]]]]]]]]](t)
}

func (t Nonuple[A, B, C, D, E, F, G, H, I]) String() string {
	return t.Tuple().String()
}

type Decuple[A, B, C, D, E, F, G, H, I, J any] Tuple[A, Tuple[B, Tuple[C, Tuple[D, Tuple[E, Tuple[F, Tuple[G, Tuple[H, Tuple[I, Tuple[J, End]]]]]]]]]]

func From10[A, B, C, D, E, F, G, H, I, J any](a A, b B, c C, d D, e E, f F, g G, h H, i I, j J) Decuple[A, B, C, D, E, F, G, H, I, J] {
	return Decuple[A, B, C, D, E, F, G, H, I, J](Prepend(a, Prepend(b, Prepend(c, Prepend(d, Prepend(e, Prepend(f, Prepend(g, Prepend(h, Prepend(i, Prepend(j, End{})))))))))))
}

func (t Decuple[A, B, C, D, E, F, G, H, I, J]) Tuple() Tuple[A, Tuple[B, Tuple[C, Tuple[D, Tuple[E, Tuple[F, Tuple[G, Tuple[H, Tuple[I, Tuple[J, End]]]]]]]]]] {
	return Tuple[A, Tuple[B, Tuple[C, Tuple[D, Tuple[E, Tuple[F, Tuple[G, Tuple[H, Tuple[I, Tuple[J, End]]]]]]]]]](t)
}

func (t Decuple[A, B, C, D, E, F, G, H, I, J]) String() string {
	return t.Tuple().String()
}
