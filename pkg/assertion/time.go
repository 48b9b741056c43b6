package assertion

import "time"

// now is replaced in tests.
var now = time.Now

// TimeAssertion guards a time.Time.
type TimeAssertion struct {
	*Assertion[time.Time]
}

// Time starts an assertion over t.
func Time(t time.Time, name ...string) *TimeAssertion {
	return &TimeAssertion{newAssertion(t, false, "time.Time", name)}
}

func (t *TimeAssertion) Extend(fn func(time.Time) Result) *TimeAssertion {
	t.Assertion.Extend(fn)
	return t
}

func (t *TimeAssertion) IsTrue(pred func(time.Time) bool, msg ...string) *TimeAssertion {
	t.Assertion.IsTrue(pred, msg...)
	return t
}

func (t *TimeAssertion) IsFalse(pred func(time.Time) bool, msg ...string) *TimeAssertion {
	t.Assertion.IsFalse(pred, msg...)
	return t
}

func (t *TimeAssertion) IsEqualTo(v time.Time) *TimeAssertion {
	t.Assertion.IsEqualTo(v)
	return t
}

func (t *TimeAssertion) IsNotEqualTo(v time.Time) *TimeAssertion {
	t.Assertion.IsNotEqualTo(v)
	return t
}

// Or adds another time subject.
func (t *TimeAssertion) Or(v time.Time, name string) *TimeAssertion {
	t.Assertion.Or(v, name)
	return t
}

func (t *TimeAssertion) OrWith(other Asserter, sep ...string) *TimeAssertion {
	t.Assertion.OrWith(other, sep...)
	return t
}

func (t *TimeAssertion) StopIfNotValid() *TimeAssertion {
	t.Assertion.StopIfNotValid()
	return t
}

// IsBefore reports a time strictly before c.
func (t *TimeAssertion) IsBefore(c time.Time) *TimeAssertion {
	t.check("is_before", func(s subject[time.Time]) bool { return s.value.Before(c) }, c)
	return t
}

// IsAfter reports a time strictly after c.
func (t *TimeAssertion) IsAfter(c time.Time) *TimeAssertion {
	t.check("is_after", func(s subject[time.Time]) bool { return s.value.After(c) }, c)
	return t
}

// IsWithin reports from <= t <= to.
func (t *TimeAssertion) IsWithin(from, to time.Time) *TimeAssertion {
	t.check("is_within", func(s subject[time.Time]) bool {
		return !s.value.Before(from) && !s.value.After(to)
	}, from, to)
	return t
}

// IsNotWithin reports t < from or t > to.
func (t *TimeAssertion) IsNotWithin(from, to time.Time) *TimeAssertion {
	t.check("is_not_within", func(s subject[time.Time]) bool {
		return s.value.Before(from) || s.value.After(to)
	}, from, to)
	return t
}

// IsInThePast reports a time before now.
func (t *TimeAssertion) IsInThePast() *TimeAssertion {
	t.check("is_in_the_past", func(s subject[time.Time]) bool { return s.value.Before(now()) })
	return t
}

// IsInTheFuture reports a time after now.
func (t *TimeAssertion) IsInTheFuture() *TimeAssertion {
	t.check("is_in_the_future", func(s subject[time.Time]) bool { return s.value.After(now()) })
	return t
}

type calendarUnit int

const (
	unitYear calendarUnit = iota
	unitMonth
	unitDay
	unitHour
	unitMinute
	unitSecond
)

var unitNames = [...]string{"year", "month", "day", "hour", "minute", "second"}

// sameUpTo compares the calendar components of a and b from the
// year down to unit, with b converted to a's location.
func sameUpTo(a, b time.Time, unit calendarUnit) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ah, ami, as := a.Clock()
	bh, bmi, bs := b.Clock()
	got := [...]int{ay, int(am), ad, ah, ami, as}
	want := [...]int{by, int(bm), bd, bh, bmi, bs}
	for i := calendarUnit(0); i <= unit; i++ {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func (t *TimeAssertion) same(c time.Time, unit calendarUnit, want bool) *TimeAssertion {
	key := "is_same_" + unitNames[unit] + "_as"
	if !want {
		key = "is_not_same_" + unitNames[unit] + "_as"
	}
	t.check(key, func(s subject[time.Time]) bool {
		return sameUpTo(s.value, c, unit) == want
	}, c)
	return t
}

// IsSameYearAs reports a time in the same year as c.
func (t *TimeAssertion) IsSameYearAs(c time.Time) *TimeAssertion {
	return t.same(c, unitYear, true)
}

func (t *TimeAssertion) IsNotSameYearAs(c time.Time) *TimeAssertion {
	return t.same(c, unitYear, false)
}

// IsSameMonthAs reports the same year and month as c.
func (t *TimeAssertion) IsSameMonthAs(c time.Time) *TimeAssertion {
	return t.same(c, unitMonth, true)
}

func (t *TimeAssertion) IsNotSameMonthAs(c time.Time) *TimeAssertion {
	return t.same(c, unitMonth, false)
}

// IsSameDayAs reports the same calendar date in the subject's
// location.
func (t *TimeAssertion) IsSameDayAs(c time.Time) *TimeAssertion {
	return t.same(c, unitDay, true)
}

// IsNotSameDayAs reports a different calendar day than c.
func (t *TimeAssertion) IsNotSameDayAs(c time.Time) *TimeAssertion {
	return t.same(c, unitDay, false)
}

// IsSameHourAs reports the same day and hour as c.
func (t *TimeAssertion) IsSameHourAs(c time.Time) *TimeAssertion {
	return t.same(c, unitHour, true)
}

func (t *TimeAssertion) IsNotSameHourAs(c time.Time) *TimeAssertion {
	return t.same(c, unitHour, false)
}

func (t *TimeAssertion) IsSameMinuteAs(c time.Time) *TimeAssertion {
	return t.same(c, unitMinute, true)
}

func (t *TimeAssertion) IsNotSameMinuteAs(c time.Time) *TimeAssertion {
	return t.same(c, unitMinute, false)
}

// IsSameSecondAs compares down to the second. Sub-second parts are ignored.
func (t *TimeAssertion) IsSameSecondAs(c time.Time) *TimeAssertion {
	return t.same(c, unitSecond, true)
}

func (t *TimeAssertion) IsNotSameSecondAs(c time.Time) *TimeAssertion {
	return t.same(c, unitSecond, false)
}
