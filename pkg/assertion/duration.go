package assertion

import "time"

// DurationAssertion guards a time.Duration.
type DurationAssertion struct {
	*Assertion[time.Duration]
}

// Duration starts an assertion over d.
func Duration(d time.Duration, name ...string) *DurationAssertion {
	return &DurationAssertion{newAssertion(d, false, "time.Duration", name)}
}

func (d *DurationAssertion) Extend(fn func(time.Duration) Result) *DurationAssertion {
	d.Assertion.Extend(fn)
	return d
}

func (d *DurationAssertion) IsTrue(pred func(time.Duration) bool, msg ...string) *DurationAssertion {
	d.Assertion.IsTrue(pred, msg...)
	return d
}

func (d *DurationAssertion) IsFalse(pred func(time.Duration) bool, msg ...string) *DurationAssertion {
	d.Assertion.IsFalse(pred, msg...)
	return d
}

func (d *DurationAssertion) IsEqualTo(v time.Duration) *DurationAssertion {
	d.Assertion.IsEqualTo(v)
	return d
}

func (d *DurationAssertion) IsNotEqualTo(v time.Duration) *DurationAssertion {
	d.Assertion.IsNotEqualTo(v)
	return d
}

// Or adds another duration subject.
func (d *DurationAssertion) Or(v time.Duration, name string) *DurationAssertion {
	d.Assertion.Or(v, name)
	return d
}

func (d *DurationAssertion) OrWith(other Asserter, sep ...string) *DurationAssertion {
	d.Assertion.OrWith(other, sep...)
	return d
}

func (d *DurationAssertion) StopIfNotValid() *DurationAssertion {
	d.Assertion.StopIfNotValid()
	return d
}

// IsZero reports a zero duration.
func (d *DurationAssertion) IsZero() *DurationAssertion {
	d.check("is_zero", func(s subject[time.Duration]) bool { return s.value == 0 })
	return d
}

// IsPositive reports a duration greater than zero.
func (d *DurationAssertion) IsPositive() *DurationAssertion {
	d.check("is_positive", func(s subject[time.Duration]) bool { return s.value > 0 })
	return d
}

// IsNegative reports a duration below zero.
func (d *DurationAssertion) IsNegative() *DurationAssertion {
	d.check("is_negative", func(s subject[time.Duration]) bool { return s.value < 0 })
	return d
}

// IsShorterThan reports d < c.
func (d *DurationAssertion) IsShorterThan(c time.Duration) *DurationAssertion {
	d.check("duration_is_shorter_than", func(s subject[time.Duration]) bool { return s.value < c }, c)
	return d
}

// IsLongerThan reports d > c.
func (d *DurationAssertion) IsLongerThan(c time.Duration) *DurationAssertion {
	d.check("duration_is_longer_than", func(s subject[time.Duration]) bool { return s.value > c }, c)
	return d
}

// IsWithin reports lower <= d <= upper.
func (d *DurationAssertion) IsWithin(lower, upper time.Duration) *DurationAssertion {
	d.check("is_within", func(s subject[time.Duration]) bool {
		return lower <= s.value && s.value <= upper
	}, lower, upper)
	return d
}

// IsNotWithin reports a duration outside [lower, upper].
func (d *DurationAssertion) IsNotWithin(lower, upper time.Duration) *DurationAssertion {
	d.check("is_not_within", func(s subject[time.Duration]) bool {
		return s.value < lower || s.value > upper
	}, lower, upper)
	return d
}
