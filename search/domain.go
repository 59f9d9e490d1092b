package search

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// bound tags a Value as one of the two infinities or a finite score.
type bound int8

const (
	boundNegInf bound = iota - 1
	boundFinite
	boundPosInf
)

// Value extends the caller's score type T with negative and positive
// infinity, so search bounds can start strictly outside the range of any
// heuristic the caller produces. The zero Value is Finite with T's zero.
type Value[T any] struct {
	bound bound
	score T
}

// Finite wraps a heuristic score.
func Finite[T any](score T) Value[T] {
	return Value[T]{bound: boundFinite, score: score}
}

// NegInf compares below every finite value.
func NegInf[T any]() Value[T] {
	return Value[T]{bound: boundNegInf}
}

// PosInf compares above every finite value.
func PosInf[T any]() Value[T] {
	return Value[T]{bound: boundPosInf}
}

// Finite returns the underlying score and whether the value is finite.
func (v Value[T]) Finite() (T, bool) {
	return v.score, v.bound == boundFinite
}

func (v Value[T]) IsNegInf() bool { return v.bound == boundNegInf }

func (v Value[T]) IsPosInf() bool { return v.bound == boundPosInf }

func (v Value[T]) String() string {
	switch v.bound {
	case boundNegInf:
		return "-inf"
	case boundPosInf:
		return "+inf"
	default:
		return fmt.Sprintf("%v", v.score)
	}
}

// Domain supplies the ordering and negation for the score type T. Scores are
// never assumed to be numeric: any totally ordered type works.
type Domain[T any] struct {
	// Cmp follows the cmp.Compare convention: negative when a < b, zero when
	// equal, positive when a > b.
	Cmp func(a, b T) int
	// Neg negates a finite score.
	Neg func(v T) T
}

// Compare orders two extended values: NegInf < Finite(x) < PosInf for all x.
func (d Domain[T]) Compare(a, b Value[T]) int {
	if a.bound != b.bound {
		if a.bound < b.bound {
			return -1
		}
		return 1
	}
	if a.bound != boundFinite {
		return 0
	}
	return d.Cmp(a.score, b.score)
}

func (d Domain[T]) Less(a, b Value[T]) bool {
	return d.Compare(a, b) < 0
}

// Max returns the greater value, preferring a on ties.
func (d Domain[T]) Max(a, b Value[T]) Value[T] {
	if d.Compare(a, b) >= 0 {
		return a
	}
	return b
}

// Min returns the lesser value, preferring a on ties.
func (d Domain[T]) Min(a, b Value[T]) Value[T] {
	if d.Compare(a, b) <= 0 {
		return a
	}
	return b
}

// Negate swaps the infinities and negates a finite score via Neg. It is an
// involution: Negate(Negate(v)) == v.
func (d Domain[T]) Negate(v Value[T]) Value[T] {
	switch v.bound {
	case boundNegInf:
		return PosInf[T]()
	case boundPosInf:
		return NegInf[T]()
	default:
		return Finite(d.Neg(v.score))
	}
}

// Ordered builds the Domain for the built-in signed numeric types.
func Ordered[T constraints.Signed | constraints.Float]() Domain[T] {
	return Domain[T]{
		Cmp: func(a, b T) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			}
			return 0
		},
		Neg: func(v T) T { return -v },
	}
}
