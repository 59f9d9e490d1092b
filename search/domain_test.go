package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gametree/search"
)

func TestNegateIsInvolution(t *testing.T) {
	d := search.Ordered[int]()

	values := []search.Value[int]{
		search.NegInf[int](),
		search.PosInf[int](),
		search.Finite(0),
		search.Finite(42),
		search.Finite(-17),
	}
	for _, v := range values {
		require.Equal(t, v, d.Negate(d.Negate(v)), "negate(negate(%s)) should be %s", v, v)
	}

	require.Equal(t, search.PosInf[int](), d.Negate(search.NegInf[int]()))
	require.Equal(t, search.NegInf[int](), d.Negate(search.PosInf[int]()))
	require.Equal(t, search.Finite(-5), d.Negate(search.Finite(5)))
}

func TestInfinitiesBoundEveryFiniteValue(t *testing.T) {
	d := search.Ordered[int]()

	for _, x := range []int{-1 << 40, -1, 0, 1, 1 << 40} {
		require.Negative(t, d.Compare(search.NegInf[int](), search.Finite(x)),
			"-inf should compare below %d", x)
		require.Negative(t, d.Compare(search.Finite(x), search.PosInf[int]()),
			"%d should compare below +inf", x)
	}

	require.Zero(t, d.Compare(search.NegInf[int](), search.NegInf[int]()))
	require.Zero(t, d.Compare(search.PosInf[int](), search.PosInf[int]()))
	require.Negative(t, d.Compare(search.NegInf[int](), search.PosInf[int]()))
}

func TestFiniteComparisonUsesTheSuppliedComparator(t *testing.T) {
	// Scores need not be numeric: order strings by length.
	d := search.Domain[string]{
		Cmp: func(a, b string) int { return len(a) - len(b) },
	}

	require.Positive(t, d.Compare(search.Finite("aa"), search.Finite("b")))
	require.Zero(t, d.Compare(search.Finite("ab"), search.Finite("cd")))
	require.True(t, d.Less(search.NegInf[string](), search.Finite("")))
	require.True(t, d.Less(search.Finite("zzzz"), search.PosInf[string]()))
}

func TestMaxAndMinPreferTheFirstArgumentOnTies(t *testing.T) {
	d := search.Ordered[int]()

	require.Equal(t, search.Finite(3), d.Max(search.Finite(3), search.Finite(1)))
	require.Equal(t, search.Finite(3), d.Max(search.Finite(1), search.Finite(3)))
	require.Equal(t, search.Finite(1), d.Min(search.Finite(3), search.Finite(1)))
	require.Equal(t, search.PosInf[int](), d.Max(search.Finite(1), search.PosInf[int]()))
	require.Equal(t, search.NegInf[int](), d.Min(search.Finite(1), search.NegInf[int]()))
}

func TestValueAccessors(t *testing.T) {
	v, ok := search.Finite(7).Finite()
	require.True(t, ok)
	require.Equal(t, 7, v)

	_, ok = search.NegInf[int]().Finite()
	require.False(t, ok)
	require.True(t, search.NegInf[int]().IsNegInf())
	require.True(t, search.PosInf[int]().IsPosInf())

	require.Equal(t, "-inf", search.NegInf[int]().String())
	require.Equal(t, "+inf", search.PosInf[int]().String())
	require.Equal(t, "7", search.Finite(7).String())
}
