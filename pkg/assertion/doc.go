// Package assertion provides fluent guard clauses for Go values.
//
// A chain starts with a typed entry point, runs zero or more checks
// and ends with a terminal action:
//
//	err := assertion.String(email, "email").
//		IsEmpty().
//		IsNotValidEmail().
//		Err()
//
// A check "reports" when the condition its name describes is
// present: IsEmpty reports an empty string, IsNegative reports a
// negative number. A reporting check makes the assertion valid,
// which is the state that terminal actions such as ThenThrow and
// Then act on. Messages of reporting checks are joined with
// " and " in call order.
//
// Or adds further subjects that share every subsequent check. And
// starts an independent assertion whose message is appended to the
// previous one with " when ", so that
//
//	assertion.Int(x, "x").IsEqualTo(1).
//		And().Int(y, "y").IsEqualTo(2).
//		And().Int(z, "z").IsEqualTo(3).
//		Err()
//
// yields "x must not be equal to 1 when y is equal to 2 and z is
// equal to 3" only when all three conditions hold.
//
// New checks are plain functions calling Extend on a facade; the
// engine never inspects which check produced a Result.
//
// Assertions are not safe for concurrent use. Create one per
// statement and consume it with exactly one terminal action.
package assertion
