package assertion

import "strings"

const andSeparator = " and "

type entry struct {
	guard     string
	condition string
	sep       string
}

// accumulator is the ordered list of reported messages. add returns
// a new value so that copies never share a backing array.
type accumulator struct {
	entries []entry
}

func (a accumulator) add(guard, condition, sep string) accumulator {
	entries := make([]entry, len(a.entries), len(a.entries)+1)
	copy(entries, a.entries)
	return accumulator{entries: append(entries, entry{
		guard:     guard,
		condition: condition,
		sep:       sep,
	})}
}

func (a accumulator) len() int {
	return len(a.entries)
}

// render joins the entries. The first entry has no prefix, each
// later one is prefixed with its separator. conditional selects the
// wording used after " when ".
func (a accumulator) render(conditional bool) string {
	var b strings.Builder
	for i, e := range a.entries {
		if i > 0 {
			b.WriteString(e.sep)
		}
		if conditional {
			b.WriteString(e.condition)
		} else {
			b.WriteString(e.guard)
		}
	}
	return b.String()
}
