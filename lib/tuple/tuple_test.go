package tuple

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTupleExtract(t *testing.T) {
	tup := Prepend("Gutierrez", Prepend("Alan", Prepend(42, End{})))
	last, ok, rest := tup.Extract()
	require.True(t, ok)
	require.Equal(t, "Gutierrez", last)

	first, ok := rest.First()
	require.True(t, ok)
	require.Equal(t, "Alan", first)

	age, ok, end := rest.Rest().Extract()
	require.True(t, ok)
	require.Equal(t, 42, age)
	require.Equal(t, End{}, end)
	require.Equal(t, 3, tup.Len())
	require.Equal(t, 0, End{}.Len())
}

func TestTupleNullField(t *testing.T) {
	tup := PrependNull[string](Prepend(1, End{}))
	v, ok := tup.First()
	require.False(t, ok)
	require.Equal(t, "", v)

	n, ok := tup.Rest().First()
	require.True(t, ok)
	require.Equal(t, 1, n)

	var zero Tuple[int, Tuple[string, End]]
	_, ok = zero.First()
	require.False(t, ok)
	_, ok = zero.Rest().First()
	require.False(t, ok)
	require.Equal(t, "(<nil>, <nil>)", zero.String())
}

func TestNamedTupleConversion(t *testing.T) {
	pair := From2("A", 1)
	chain := pair.Tuple()
	a, ok, rest := chain.Extract()
	require.True(t, ok)
	require.Equal(t, "A", a)
	b, _ := rest.First()
	require.Equal(t, 1, b)

	// A chain carrying a null converts to the named type directly.
	withNull := Pair[string, int](PrependNull[string](Prepend(2, End{})))
	_, ok = withNull.Tuple().First()
	require.False(t, ok)
	require.Equal(t, "(<nil>, 2)", withNull.String())

	require.Equal(t, Prepend("A", Prepend(1, End{})), Tuple[string, Tuple[int, End]](pair))
}

func TestNamedTupleString(t *testing.T) {
	testcases := []struct {
		name     string
		tuple    interface{ String() string }
		expected string
	}{
		{"single", From1("x"), "(x)"},
		{"pair", From2("x", 1), "(x, 1)"},
		{"triple", From3("x", 1, 2.5), "(x, 1, 2.5)"},
		{"quadruple", From4(1, 2, 3, 4), "(1, 2, 3, 4)"},
		{"quintuple", From5(1, 2, 3, 4, 5), "(1, 2, 3, 4, 5)"},
		{"sextuple", From6(1, 2, 3, 4, 5, 6), "(1, 2, 3, 4, 5, 6)"},
		{"septuple", From7(1, 2, 3, 4, 5, 6, 7), "(1, 2, 3, 4, 5, 6, 7)"},
		{"octuple", From8(1, 2, 3, 4, 5, 6, 7, 8), "(1, 2, 3, 4, 5, 6, 7, 8)"},
		{"nonuple", From9(1, 2, 3, 4, 5, 6, 7, 8, 9), "(1, 2, 3, 4, 5, 6, 7, 8, 9)"},
		{"decuple", From10(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), "(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)"},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			require.Equal(tt, tc.expected, tc.tuple.String())
		})
	}
	require.Equal(t, 10, From10(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).Tuple().Len())
}
