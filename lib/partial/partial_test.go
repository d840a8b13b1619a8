package partial

import (
	randv2 "math/rand/v2"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xpartial/lib/tuple"
)

type file struct {
	path string
}

func TestPartialBucketed(t *testing.T) {
	twoOfTriple := TwoOf(Triple[string, int, file]())
	cmp := twoOfTriple.Compare(tuple.From2("A", 1))
	require.Equal(t, 0, cmp.CompareTo(tuple.From3("A", 1, file{"A"})))
	require.Equal(t, 0, cmp.CompareTo(tuple.From3("A", 1, file{"B"})))
	require.Equal(t, -1, cmp.CompareTo(tuple.From3("A", 2, file{"A"})))
	require.Equal(t, 1, cmp.CompareTo(tuple.From3("A", 0, file{"A"})))
	require.Equal(t, -1, cmp.CompareTo(tuple.From3("B", 0, file{"A"})))
}

func TestPartialReversedChain(t *testing.T) {
	res := Shared[string](Shared[int](Ignore[rune]())).
		Comparable(tuple.Prepend("A", tuple.Prepend(1, tuple.End{}))).
		CompareTo(tuple.Prepend("A", tuple.Prepend(1, tuple.Prepend('A', tuple.End{}))))
	require.Equal(t, 0, res)
}

func TestPartialByLastName(t *testing.T) {
	byLastName := OneOf(Pair[string, string]())
	cmp := byLastName.Compare(tuple.From1("Gutierrez"))
	require.Equal(t, 0, cmp.CompareTo(tuple.From2("Gutierrez", "Alan")))
	require.Equal(t, 0, cmp.CompareTo(tuple.From2("Gutierrez", "Zed")))
	require.Less(t, cmp.CompareTo(tuple.From2("Huang", "Alan")), 0)
	require.Greater(t, cmp.CompareTo(tuple.From2("Alvarez", "Alan")), 0)
}

func TestTerminal(t *testing.T) {
	cmp := Terminal[tuple.Tuple[string, tuple.End]]().Comparable(tuple.End{})
	require.Equal(t, 0, cmp.CompareTo(tuple.Prepend("anything", tuple.End{})))
	require.Equal(t, 0, cmp.CompareTo(tuple.PrependNull[string](tuple.End{})))

	ignored := PrependIgnore[int](PrependIgnore[string](Ignore[float64]())).Comparable(tuple.End{})
	require.Equal(t, 0, ignored.CompareTo(
		tuple.Prepend(1, tuple.Prepend("x", tuple.Prepend(0.5, tuple.End{}))),
	))

	exhausted := Terminal[tuple.End]().Comparable(tuple.End{})
	require.Equal(t, 0, exhausted.CompareTo(tuple.End{}))
}

func TestSharedShortCircuit(t *testing.T) {
	calls := 0
	counting := func(i, j int) int {
		calls++
		return compareInts(i, j)
	}
	chain := Shared[string](SharedFunc[int](Ignore[string](), counting))
	cmp := chain.Comparable(tuple.Prepend("b", tuple.Prepend(1, tuple.End{})))

	require.Equal(t, -1, cmp.CompareTo(tuple.Prepend("c", tuple.Prepend(0, tuple.Prepend("", tuple.End{})))))
	require.Equal(t, 1, cmp.CompareTo(tuple.Prepend("a", tuple.Prepend(9, tuple.Prepend("", tuple.End{})))))
	require.Equal(t, 0, calls, "second field must not be inspected once the first differs")

	require.Equal(t, -1, cmp.CompareTo(tuple.Prepend("b", tuple.Prepend(2, tuple.Prepend("", tuple.End{})))))
	require.Equal(t, 1, calls)
}

func compareInts(i, j int) int {
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	default:
	}
	return 0
}

func TestSharedNullOrdering(t *testing.T) {
	chain := Shared[string](Shared[int](Terminal[tuple.End]()))
	type row = tuple.Tuple[string, tuple.Tuple[int, tuple.End]]
	present := func(s string, n int) row { return tuple.Prepend(s, tuple.Prepend(n, tuple.End{})) }
	nullFirst := func(n int) row { return tuple.PrependNull[string](tuple.Prepend(n, tuple.End{})) }

	testcases := []struct {
		name     string
		partial  row
		full     row
		expected int
	}{
		{"null vs present", nullFirst(1), present("a", 1), -1},
		{"present vs null", present("a", 1), nullFirst(1), 1},
		{"null vs null defers to rest, equal", nullFirst(1), nullFirst(1), 0},
		{"null vs null defers to rest, less", nullFirst(1), nullFirst(2), -1},
		{"null vs null defers to rest, greater", nullFirst(3), nullFirst(2), 1},
		{"null vs present ignores rest", nullFirst(9), present("a", 0), -1},
		{"present vs null ignores rest", present("a", 0), nullFirst(9), 1},
		{"null in second position", present("a", 1), tuple.Prepend("a", tuple.PrependNull[int](tuple.End{})), 1},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			require.Equal(tt, tc.expected, chain.Comparable(tc.partial).CompareTo(tc.full))
		})
	}
}

type countingTerminal[R any] struct {
	binds *atomic.Int32
}

func (c countingTerminal[R]) Comparable(end tuple.End) Comparable[R] {
	c.binds.Add(1)
	return Terminal[R]().Comparable(end)
}

func TestSharedBindsNextOnce(t *testing.T) {
	binds := &atomic.Int32{}
	var next Server[tuple.End, tuple.End] = countingTerminal[tuple.End]{binds: binds}
	cmp := Shared[int](next).Comparable(tuple.Prepend(5, tuple.End{}))
	require.Equal(t, int32(1), binds.Load())

	for i := 0; i < 100; i++ {
		_ = cmp.CompareTo(tuple.Prepend(5, tuple.End{}))
	}
	require.Equal(t, int32(1), binds.Load())

	_ = Shared[int](next).Comparable(tuple.Prepend(6, tuple.End{}))
	require.Equal(t, int32(2), binds.Load())
}

func TestSharedComparable(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	chain := SharedComparable[time.Time](Ignore[string]())
	cmp := chain.Comparable(tuple.Prepend(base, tuple.End{}))
	require.Equal(t, 0, cmp.CompareTo(tuple.Prepend(base, tuple.Prepend("log-1", tuple.End{}))))
	require.Equal(t, -1, cmp.CompareTo(tuple.Prepend(base.Add(time.Hour), tuple.Prepend("log-2", tuple.End{}))))
	require.Equal(t, 1, cmp.CompareTo(tuple.Prepend(base.Add(-time.Hour), tuple.Prepend("log-0", tuple.End{}))))
}

func TestSharedFuncPanicsWithoutComparator(t *testing.T) {
	require.Panics(t, func() {
		_ = SharedFunc[int](Ignore[int](), nil)
	})
	require.Panics(t, func() {
		_ = Shared[int](Server[tuple.End, tuple.End](nil))
	})
}

func TestForZero(t *testing.T) {
	results := map[int]int{1: -3, 2: 0, 3: 7}
	var c Comparable[int] = ComparableFunc[int](func(full int) int { return results[full] })
	for _, z := range []int{-1, 0, 1, 42} {
		wrapped := ForZero(c, z)
		require.Equal(t, -3, wrapped.CompareTo(1))
		require.Equal(t, z, wrapped.CompareTo(2))
		require.Equal(t, 7, wrapped.CompareTo(3))
	}
}

func randomRow(r *randv2.Rand) tuple.Triple[string, int, float64] {
	return tuple.From3(strconv.Itoa(r.IntN(5)), r.IntN(5), r.Float64())
}

func TestPartialProperties(t *testing.T) {
	r := randv2.New(randv2.NewPCG(42, 1024))
	oneOf := OneOf(Triple[string, int, float64]())
	twoOf := TwoOf(Triple[string, int, float64]())
	full := CompareFunc(Shared[string](Shared[int](Shared[float64](Terminal[tuple.End]()))))

	for i := 0; i < 1000; i++ {
		f1, f2 := randomRow(r), randomRow(r)
		a, _, rest := f1.Tuple().Extract()
		b, _ := rest.First()

		// Prefix match.
		require.Equal(t, 0, oneOf.Compare(tuple.From1(a)).CompareTo(f1))
		require.Equal(t, 0, twoOf.Compare(tuple.From2(a, b)).CompareTo(f1))

		// Suffix irrelevance.
		a2, _, rest2 := f2.Tuple().Extract()
		b2, _ := rest2.First()
		if a == a2 && b == b2 {
			require.Equal(t, 0, twoOf.Compare(tuple.From2(a, b)).CompareTo(f2))
		}
		if a == a2 {
			require.Equal(t, 0, oneOf.Compare(tuple.From1(a)).CompareTo(f2))
		}

		// Lexicographic order agrees with the full ordering on the prefix.
		prefix := twoOf.Compare(tuple.From2(a, b)).CompareTo(f2)
		if prefix != 0 {
			require.Equal(t, prefix, full(f1.Tuple(), f2.Tuple()))
		}
	}
}

func TestPartialLexicographic(t *testing.T) {
	fourOf := FourOf(Quintuple[int, int, int, int, string]())
	base := [4]int{3, 3, 3, 3}
	for pos := 0; pos < 4; pos++ {
		higher := base
		higher[pos]++
		f2 := tuple.From5(higher[0], higher[1], higher[2], higher[3], "suffix")
		cmp := fourOf.Compare(tuple.From4(base[0], base[1], base[2], base[3]))
		require.Less(t, cmp.CompareTo(f2), 0, "position %d", pos)

		lower := base
		lower[pos]--
		f3 := tuple.From5(lower[0], lower[1], lower[2], lower[3], "suffix")
		require.Greater(t, cmp.CompareTo(f3), 0, "position %d", pos)
	}
}

func TestPartialConcurrentReuse(t *testing.T) {
	twoOf := TwoOf(Triple[string, int, string]())
	shared := twoOf.Compare(tuple.From2("k", 5))
	wg := sync.WaitGroup{}
	failures := &atomic.Int32{}
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			own := twoOf.Compare(tuple.From2("k", g))
			for i := 0; i < 1000; i++ {
				if shared.CompareTo(tuple.From3("k", 5, strconv.Itoa(i))) != 0 {
					failures.Add(1)
				}
				if own.CompareTo(tuple.From3("k", g, "x")) != 0 {
					failures.Add(1)
				}
			}
		}(g)
	}
	wg.Wait()
	require.Equal(t, int32(0), failures.Load())
}

func BenchmarkPartialCompare(b *testing.B) {
	threeOf := ThreeOf(Quadruple[string, string, int, int64]())
	full := tuple.From4("Gutierrez", "Alan", 42, int64(7))
	b.Run("bind once", func(b *testing.B) {
		cmp := threeOf.Compare(tuple.From3("Gutierrez", "Alan", 42))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = cmp.CompareTo(full)
		}
	})
	b.Run("bind per compare", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = threeOf.Compare(tuple.From3("Gutierrez", "Alan", 42)).CompareTo(full)
		}
	})
}
