package assertion

import (
	"fmt"
	"strings"
	"time"

	"digital.vasic.assertions/pkg/logging"
)

// Asserter is the read side shared by every assertion, used to
// merge evaluated assertions with OrWith and to build Validations.
type Asserter interface {
	// IsValid reports whether the guarded condition was detected.
	IsValid() bool
	// ErrorCount is the number of contributed messages.
	ErrorCount() int
	// String renders the composed message, empty when not valid.
	String() string
}

// chained is implemented by every assertion that can be the left
// side of And.
type chained interface {
	Asserter
	renderOwn(conditional bool) string
	previous() chained
}

type subject[T any] struct {
	value T
	name  string
	null  bool
}

// Assertion is the engine embedded by every typed facade. It holds
// the subjects, the accumulated messages and the short-circuit
// state of one chain.
type Assertion[T any] struct {
	subjects []subject[T]
	acc      accumulator
	count    int
	valid    bool
	stopped  bool
	link     *Conjunction
	location *Location
	settings *settings
	fallback string
}

func newAssertion[T any](value T, null bool, fallback string, names []string) *Assertion[T] {
	s := loadSettings()
	a := &Assertion[T]{
		subjects: []subject[T]{{value: value, name: subjectName(fallback, names), null: null}},
		settings: s,
		fallback: fallback,
	}
	if s.config.Trace {
		a.location = callerLocation()
	}
	return a
}

func subjectName(fallback string, names []string) string {
	for _, n := range names {
		if n != "" {
			return n
		}
	}
	return fallback
}

// Extend evaluates fn against the subject and every Or subject.
// Reported messages may use the <name> placeholder.
func (a *Assertion[T]) Extend(fn func(T) Result) *Assertion[T] {
	if fn == nil {
		panic(misuse(ErrInvalidArgument, "Extend requires a predicate"))
	}
	a.evaluate("extend", func(s subject[T]) Result { return fn(s.value) })
	return a
}

func (a *Assertion[T]) evaluate(key string, fn func(subject[T]) Result) {
	if a.stopped {
		return
	}
	for _, s := range a.subjects {
		r := fn(s)
		a.settings.recorder.RecordCheck(key, r.Valid)
		if r.Valid {
			a.valid = true
		}
		if r.reported() {
			a.acc = a.acc.add(
				withName(r.Message, s.name),
				withName(r.condition(), s.name),
				andSeparator,
			)
			a.count++
		}
	}
}

// check reports the catalog message for key when pred holds.
func (a *Assertion[T]) check(key string, pred func(subject[T]) bool, args ...any) {
	a.evaluate(key, func(s subject[T]) Result {
		if !pred(s) {
			return Passed()
		}
		return CheckResult(key, args...)
	})
}

func (a *Assertion[T]) predicate(key string, pred func(T) bool, msg []string) {
	a.evaluate(key, func(s subject[T]) Result {
		if !pred(s.value) {
			return Passed()
		}
		if len(msg) > 0 && msg[0] != "" {
			text := expand(msg[0], nil)
			return Result{Valid: true, Message: text, Condition: text}
		}
		return CheckResult(key)
	})
}

// IsTrue reports when pred holds for the subject.
func (a *Assertion[T]) IsTrue(pred func(T) bool, msg ...string) *Assertion[T] {
	if pred == nil {
		panic(misuse(ErrInvalidArgument, "IsTrue requires a predicate"))
	}
	a.predicate("is_true", pred, msg)
	return a
}

// IsFalse reports when pred does not hold for the subject.
func (a *Assertion[T]) IsFalse(pred func(T) bool, msg ...string) *Assertion[T] {
	if pred == nil {
		panic(misuse(ErrInvalidArgument, "IsFalse requires a predicate"))
	}
	a.predicate("is_false", func(v T) bool { return !pred(v) }, msg)
	return a
}

// IsEqualTo reports when the subject equals v.
func (a *Assertion[T]) IsEqualTo(v T) *Assertion[T] {
	a.check("is_equal_to", func(s subject[T]) bool { return sameValue(s, v) }, v)
	return a
}

// IsNotEqualTo reports when the subject differs from v.
func (a *Assertion[T]) IsNotEqualTo(v T) *Assertion[T] {
	a.check("is_not_equal_to", func(s subject[T]) bool { return !sameValue(s, v) }, v)
	return a
}

func sameValue[T any](s subject[T], v T) bool {
	if s.null {
		return isNil(any(v))
	}
	return equal(s.value, v)
}

func (a *Assertion[T]) isNull() {
	a.check("is_null", func(s subject[T]) bool { return s.null })
	a.StopIfNotValid()
}

func (a *Assertion[T]) isNotNull() {
	a.check("is_not_null", func(s subject[T]) bool { return !s.null })
	a.StopIfNotValid()
}

// StopIfNotValid turns every later check into a no-op once the
// assertion is valid.
func (a *Assertion[T]) StopIfNotValid() *Assertion[T] {
	if a.valid {
		a.stopped = true
	}
	return a
}

// Or adds a subject that every later check is also run against.
func (a *Assertion[T]) Or(v T, name string) *Assertion[T] {
	a.or(v, isNil(any(v)), name)
	return a
}

func (a *Assertion[T]) or(v T, null bool, name string) {
	a.subjects = append(a.subjects, subject[T]{
		value: v,
		name:  subjectName(valueName(v, a.fallback), []string{name}),
		null:  null,
	})
}

// OrWith merges an evaluated assertion. When other is valid its
// message is appended with sep, ". " unless configured otherwise.
func (a *Assertion[T]) OrWith(other Asserter, sep ...string) *Assertion[T] {
	if isNil(other) {
		panic(misuse(ErrInvalidArgument, "OrWith requires an assertion"))
	}
	if !other.IsValid() {
		return a
	}
	separator := a.settings.config.OrSeparator
	if len(sep) > 0 {
		separator = sep[0]
	}
	guard := other.String()
	condition := guard
	if c, ok := other.(chained); ok && c.previous() == nil {
		condition = c.renderOwn(true)
	}
	if guard != "" {
		a.acc = a.acc.add(guard, condition, separator)
	}
	a.count += other.ErrorCount()
	a.valid = true
	return a
}

// And starts the next assertion of a combined guard.
func (a *Assertion[T]) And() *Conjunction {
	return &Conjunction{prev: a}
}

func (a *Assertion[T]) renderOwn(conditional bool) string {
	return a.acc.render(conditional)
}

func (a *Assertion[T]) previous() chained {
	if a.link == nil {
		return nil
	}
	return a.link.prev
}

// IsValid reports whether the guarded condition was detected. In
// an And-combination every part has to be valid.
func (a *Assertion[T]) IsValid() bool {
	if !a.valid {
		return false
	}
	if p := a.previous(); p != nil {
		return p.IsValid()
	}
	return true
}

// True is IsValid.
func (a *Assertion[T]) True() bool { return a.IsValid() }

// False is !IsValid.
func (a *Assertion[T]) False() bool { return !a.IsValid() }

// ErrorCount returns the number of messages this assertion added.
func (a *Assertion[T]) ErrorCount() int { return a.count }

// Name returns the name of the primary subject.
func (a *Assertion[T]) Name() string { return a.subjects[0].name }

// Value returns the primary subject.
func (a *Assertion[T]) Value() T { return a.subjects[0].value }

// Location returns the captured call site, nil unless tracing.
func (a *Assertion[T]) Location() *Location { return a.location }

// String renders the composed message, or "" when not valid.
func (a *Assertion[T]) String() string {
	if !a.IsValid() {
		return ""
	}
	if a.link == nil {
		return a.acc.render(false)
	}

	var parts []chained
	for c := chained(a); c != nil; c = c.previous() {
		parts = append(parts, c)
	}
	head := parts[len(parts)-1].renderOwn(false)
	clauses := make([]string, 0, len(parts)-1)
	for i := len(parts) - 2; i >= 0; i-- {
		if text := parts[i].renderOwn(true); text != "" {
			clauses = append(clauses, text)
		}
	}
	if len(clauses) == 0 {
		return head
	}
	return head + " when " + strings.Join(clauses, andSeparator)
}

func (a *Assertion[T]) buildError(opts []ThrowOption) error {
	o := throwOptions{kind: ErrRequired}
	for _, opt := range opts {
		opt(&o)
	}
	msg := a.String()
	if o.message != "" {
		msg = o.message
	}
	if o.factory != nil {
		if err := o.factory(msg); err != nil {
			return err
		}
	}
	return &Error{
		Kind:     o.kind,
		Message:  msg,
		Subject:  a.Name(),
		Inner:    o.inner,
		Location: a.location,
	}
}

// Err returns the composed error when valid, nil otherwise.
func (a *Assertion[T]) Err(opts ...ThrowOption) error {
	if !a.IsValid() {
		a.fire("err", nil)
		return nil
	}
	err := a.buildError(opts)
	a.fire("err", err)
	return err
}

// ThenThrow computes the error of the assertion. The returned
// Outcome carries it and runs Otherwise callbacks when there is
// none.
func (a *Assertion[T]) ThenThrow(opts ...ThrowOption) *Outcome[T] {
	var err error
	if a.IsValid() {
		err = a.buildError(opts)
	}
	a.fire("then_throw", err)
	return &Outcome[T]{err: err, value: a.Value()}
}

// ThenPanic panics with the composed error when valid.
func (a *Assertion[T]) ThenPanic(opts ...ThrowOption) {
	if !a.IsValid() {
		a.fire("then_panic", nil)
		return
	}
	err := a.buildError(opts)
	a.fire("then_panic", err)
	panic(err)
}

// Then runs fn with the subject when valid and reports whether it
// ran.
func (a *Assertion[T]) Then(fn func(T)) bool {
	if fn == nil {
		panic(misuse(ErrRequired, "Then requires an action"))
	}
	fired := a.IsValid()
	a.notify("then", fired)
	if fired {
		fn(a.Value())
	}
	return fired
}

// Try runs try with the subject, recovering panics into errors.
// catch runs when try fails; every finally runs afterwards
// regardless. The error from try is returned.
func (a *Assertion[T]) Try(try func(T) error, catch func(T, error), finally ...func(T)) (err error) {
	if try == nil || catch == nil {
		panic(misuse(ErrInvalidArgument, "Try requires try and catch actions"))
	}
	v := a.Value()
	defer func() {
		for _, fn := range finally {
			if fn != nil {
				fn(v)
			}
		}
	}()

	err = a.protect(try, v)
	a.settings.recorder.RecordOutcome("try", err != nil)
	if err != nil {
		catch(v, err)
	}
	return err
}

func (a *Assertion[T]) protect(try func(T) error, v T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &Error{
				Kind:     ErrRecoveredPanic,
				Message:  fmt.Sprintf("%s: %v", ErrRecoveredPanic, r),
				Subject:  a.Name(),
				Inner:    asError(r),
				Location: a.location,
			}
			a.settings.logger.Warn("recovered panic in Try",
				logging.StringField("subject", a.Name()),
				logging.ValueField("panic", r),
			)
		}
	}()
	return try(v)
}

func asError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return nil
}

// fire records an error-producing terminal action.
func (a *Assertion[T]) fire(action string, err error) {
	a.settings.recorder.RecordOutcome(action, err != nil)
	if err == nil {
		return
	}
	failure := logging.FailureLog{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Action:     action,
		Subject:    a.Name(),
		Message:    err.Error(),
		ErrorCount: a.count,
	}
	if e, ok := err.(*Error); ok && e.Kind != nil {
		failure.Kind = e.Kind.Error()
	}
	if a.location != nil {
		failure.File = a.location.File
		failure.Line = a.location.Line
		failure.Function = a.location.Function
	}
	a.settings.logger.LogFailure(failure)
}

// notify records a callback terminal action.
func (a *Assertion[T]) notify(action string, fired bool) {
	a.settings.recorder.RecordOutcome(action, fired)
	if !fired {
		return
	}
	fields := []logging.Field{
		logging.StringField("action", action),
		logging.StringField("subject", a.Name()),
		logging.StringField("message", a.String()),
	}
	if a.location != nil {
		fields = append(fields, logging.StringField("location", a.location.String()))
	}
	log := a.settings.logger
	switch a.settings.level {
	case logging.LevelInfo:
		log.Info("assertion fired", fields...)
	case logging.LevelWarn:
		log.Warn("assertion fired", fields...)
	case logging.LevelError:
		log.Error("assertion fired", fields...)
	default:
		log.Debug("assertion fired", fields...)
	}
}

// Outcome is returned by ThenThrow.
type Outcome[T any] struct {
	err   error
	value T
}

// Err returns the error produced by ThenThrow, nil if none.
func (o *Outcome[T]) Err() error {
	return o.err
}

// Otherwise runs fn with the subject when ThenThrow produced no
// error and returns that error.
func (o *Outcome[T]) Otherwise(fn func(T)) error {
	if fn == nil {
		panic(misuse(ErrRequired, "Otherwise requires an action"))
	}
	if o.err == nil {
		fn(o.value)
	}
	return o.err
}

// Subject is satisfied by every facade.
type Subject[T any] interface {
	IsValid() bool
	Value() T
}

// ThenReturn returns fn(subject) and true when a is valid.
func ThenReturn[T, R any](a Subject[T], fn func(T) R) (R, bool) {
	var zero R
	if isNil(a) || fn == nil {
		panic(misuse(ErrRequired, "ThenReturn requires an assertion and a function"))
	}
	if n, ok := a.(interface{ notify(string, bool) }); ok {
		n.notify("then_return", a.IsValid())
	}
	if !a.IsValid() {
		return zero, false
	}
	return fn(a.Value()), true
}
