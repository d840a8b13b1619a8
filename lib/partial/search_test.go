package partial

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xpartial/lib/tuple"
)

type person = tuple.Triple[string, string, int]

func sortedPeople() []person {
	people := []person{
		tuple.From3("Gutierrez", "Alan", 40),
		tuple.From3("Adams", "Zoe", 31),
		tuple.From3("Gutierrez", "Alan", 12),
		tuple.From3("Young", "Ann", 77),
		tuple.From3("Gutierrez", "Bea", 22),
		tuple.From3("Huang", "Li", 35),
		person(tuple.PrependNull[string](tuple.Prepend("Nobody", tuple.Prepend(0, tuple.End{})))),
	}
	full := CompareFunc(Shared[string](Shared[string](Shared[int](Terminal[tuple.End]()))))
	slices.SortFunc(people, func(a, b person) int {
		return full(a.Tuple(), b.Tuple())
	})
	return people
}

func TestCompareFuncSorts(t *testing.T) {
	people := sortedPeople()
	expected := []string{
		"(<nil>, Nobody, 0)",
		"(Adams, Zoe, 31)",
		"(Gutierrez, Alan, 12)",
		"(Gutierrez, Alan, 40)",
		"(Gutierrez, Bea, 22)",
		"(Huang, Li, 35)",
		"(Young, Ann, 77)",
	}
	for i, p := range people {
		require.Equal(t, expected[i], p.String())
	}
}

func TestEqualRange(t *testing.T) {
	people := sortedPeople()
	byLast := OneOf(Triple[string, string, int]())
	byLastFirst := TwoOf(Triple[string, string, int]())

	testcases := []struct {
		name   string
		cmp    Comparable[person]
		lo, hi int
	}{
		{"last name", byLast.Compare(tuple.From1("Gutierrez")), 2, 5},
		{"last and first name", byLastFirst.Compare(tuple.From2("Gutierrez", "Alan")), 2, 4},
		{"single match", byLast.Compare(tuple.From1("Young")), 6, 7},
		{"absent, in the middle", byLast.Compare(tuple.From1("Brown")), 2, 2},
		{"absent, before all", byLastFirst.Compare(tuple.From2("Adams", "Aaron")), 1, 1},
		{"absent, after all", byLast.Compare(tuple.From1("Zhang")), 7, 7},
		{"null last name", byLast.Compare(tuple.Single[string](tuple.PrependNull[string](tuple.End{}))), 0, 1},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			lo, hi := EqualRange(people, tc.cmp)
			require.Equal(tt, tc.lo, lo)
			require.Equal(tt, tc.hi, hi)
			require.Equal(tt, tc.lo, LowerBound(people, tc.cmp))
			require.Equal(tt, tc.hi, UpperBound(people, tc.cmp))
			require.Len(tt, Matches(people, tc.cmp), tc.hi-tc.lo)
		})
	}
}

func TestMatchesEmpty(t *testing.T) {
	var people []person
	cmp := OneOf(Triple[string, string, int]()).Compare(tuple.From1("Gutierrez"))
	require.Empty(t, Matches(people, cmp))
	lo, hi := EqualRange(people, cmp)
	require.Equal(t, 0, lo)
	require.Equal(t, 0, hi)
}
