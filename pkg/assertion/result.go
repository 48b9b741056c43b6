package assertion

// Result is the outcome of one predicate evaluation. Valid is true
// when the checked condition is present. Message is the text added
// to the assertion; Condition is the wording used when the check is
// a clause after " when " in an And-combination and defaults to
// Message.
type Result struct {
	Valid     bool
	Message   string
	Condition string
}

// NewResult builds a Result. message may contain the <name>
// placeholder and {0}, {1}... placeholders filled from args.
func NewResult(valid bool, message string, args ...any) Result {
	if !valid {
		return Result{}
	}
	text := expand(message, args)
	return Result{Valid: true, Message: text, Condition: text}
}

// Passed is the Result of a predicate that found nothing.
func Passed() Result {
	return Result{}
}

func (r Result) reported() bool {
	return r.Valid && r.Message != ""
}

func (r Result) condition() string {
	if r.Condition == "" {
		return r.Message
	}
	return r.Condition
}
