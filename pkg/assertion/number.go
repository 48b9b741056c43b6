package assertion

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Numeric is the set of types accepted by Number.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// NumberAssertion guards a numeric value.
type NumberAssertion[N Numeric] struct {
	*Assertion[N]
}

// Number starts an assertion over v.
func Number[N Numeric](v N, name ...string) *NumberAssertion[N] {
	return &NumberAssertion[N]{newAssertion(v, false, typeName[N](), name)}
}

// Int starts an assertion over an int.
func Int(v int, name ...string) *NumberAssertion[int] {
	return Number(v, name...)
}

// Int64 starts an assertion over an int64.
func Int64(v int64, name ...string) *NumberAssertion[int64] {
	return Number(v, name...)
}

// Float64 starts an assertion over a float64.
func Float64(v float64, name ...string) *NumberAssertion[float64] {
	return Number(v, name...)
}

func (n *NumberAssertion[N]) Extend(fn func(N) Result) *NumberAssertion[N] {
	n.Assertion.Extend(fn)
	return n
}

func (n *NumberAssertion[N]) IsTrue(pred func(N) bool, msg ...string) *NumberAssertion[N] {
	n.Assertion.IsTrue(pred, msg...)
	return n
}

func (n *NumberAssertion[N]) IsFalse(pred func(N) bool, msg ...string) *NumberAssertion[N] {
	n.Assertion.IsFalse(pred, msg...)
	return n
}

func (n *NumberAssertion[N]) IsEqualTo(v N) *NumberAssertion[N] {
	n.Assertion.IsEqualTo(v)
	return n
}

func (n *NumberAssertion[N]) IsNotEqualTo(v N) *NumberAssertion[N] {
	n.Assertion.IsNotEqualTo(v)
	return n
}

// Or adds another number that later checks also run against.
func (n *NumberAssertion[N]) Or(v N, name string) *NumberAssertion[N] {
	n.Assertion.Or(v, name)
	return n
}

func (n *NumberAssertion[N]) OrWith(other Asserter, sep ...string) *NumberAssertion[N] {
	n.Assertion.OrWith(other, sep...)
	return n
}

func (n *NumberAssertion[N]) StopIfNotValid() *NumberAssertion[N] {
	n.Assertion.StopIfNotValid()
	return n
}

// IsZero reports v == 0.
func (n *NumberAssertion[N]) IsZero() *NumberAssertion[N] {
	n.check("is_zero", func(s subject[N]) bool { return s.value == 0 })
	return n
}

// IsNotZero reports v != 0.
func (n *NumberAssertion[N]) IsNotZero() *NumberAssertion[N] {
	n.check("is_not_zero", func(s subject[N]) bool { return s.value != 0 })
	return n
}

// IsPositive reports v > 0.
func (n *NumberAssertion[N]) IsPositive() *NumberAssertion[N] {
	n.check("is_positive", func(s subject[N]) bool { return s.value > 0 })
	return n
}

// IsNegative reports v < 0.
func (n *NumberAssertion[N]) IsNegative() *NumberAssertion[N] {
	n.check("is_negative", func(s subject[N]) bool { return s.value < 0 })
	return n
}

// IsWithin reports lower <= v <= upper.
func (n *NumberAssertion[N]) IsWithin(lower, upper N) *NumberAssertion[N] {
	n.check("is_within", func(s subject[N]) bool {
		return lower <= s.value && s.value <= upper
	}, lower, upper)
	return n
}

// IsNotWithin reports v < lower or v > upper.
func (n *NumberAssertion[N]) IsNotWithin(lower, upper N) *NumberAssertion[N] {
	n.check("is_not_within", func(s subject[N]) bool {
		return s.value < lower || s.value > upper
	}, lower, upper)
	return n
}

// IsSmallerThan reports v < c.
func (n *NumberAssertion[N]) IsSmallerThan(c N) *NumberAssertion[N] {
	n.check("is_smaller_than", func(s subject[N]) bool { return s.value < c }, c)
	return n
}

// IsSmallerThanOrEqualTo reports v <= c.
func (n *NumberAssertion[N]) IsSmallerThanOrEqualTo(c N) *NumberAssertion[N] {
	n.check("is_smaller_than_or_equal_to", func(s subject[N]) bool { return s.value <= c }, c)
	return n
}

// IsGreaterThan reports v > c.
func (n *NumberAssertion[N]) IsGreaterThan(c N) *NumberAssertion[N] {
	n.check("is_greater_than", func(s subject[N]) bool { return s.value > c }, c)
	return n
}

// IsGreaterThanOrEqualTo reports v >= c.
func (n *NumberAssertion[N]) IsGreaterThanOrEqualTo(c N) *NumberAssertion[N] {
	n.check("is_greater_than_or_equal_to", func(s subject[N]) bool { return s.value >= c }, c)
	return n
}

// IsEven reports even integral values. Fractions are neither even
// nor odd.
func (n *NumberAssertion[N]) IsEven() *NumberAssertion[N] {
	n.check("is_even", func(s subject[N]) bool {
		integral, even := parity(s.value)
		return integral && even
	})
	return n
}

// IsOdd reports odd integral values.
func (n *NumberAssertion[N]) IsOdd() *NumberAssertion[N] {
	n.check("is_odd", func(s subject[N]) bool {
		integral, even := parity(s.value)
		return integral && !even
	})
	return n
}

func parity[N Numeric](v N) (integral, even bool) {
	i := int64(v)
	if N(i) == v {
		return true, i%2 == 0
	}
	f := float64(v)
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return false, false
	}
	return true, math.Mod(f, 2) == 0
}
