package assertion

import (
	"fmt"
	"runtime"
	"strings"
)

// Location is the source position of the entry point that started
// an assertion. It is only captured when tracing is enabled.
type Location struct {
	File     string
	Line     int
	Function string
}

// String returns "file:line (function)".
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	return fmt.Sprintf("%s:%d (%s)", l.File, l.Line, l.Function)
}

const packagePath = "digital.vasic.assertions/pkg/assertion."

// callerLocation returns the first frame outside this package.
// Frames from this package's own tests count as callers.
func callerLocation() *Location {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		internal := strings.HasPrefix(frame.Function, packagePath) &&
			!strings.HasSuffix(frame.File, "_test.go")
		if !internal && frame.Function != "" {
			return &Location{
				File:     frame.File,
				Line:     frame.Line,
				Function: frame.Function,
			}
		}
		if !more {
			return nil
		}
	}
}
