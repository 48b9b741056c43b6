package assertion

import (
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// equalOptions allow unexported fields and treat NaN as equal to NaN.
var equalOptions = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateNaNs(),
}

// equal compares values structurally. Two nils are equal.
func equal(a, b any) bool {
	return cmp.Equal(a, b, equalOptions...)
}

// diffPaths lists the paths at which a and b differ.
func diffPaths(a, b any) []string {
	var r pathReporter
	opts := append([]cmp.Option{cmp.Reporter(&r)}, equalOptions...)
	cmp.Equal(a, b, opts...)
	return r.paths
}

type pathReporter struct {
	path  cmp.Path
	paths []string
}

func (r *pathReporter) PushStep(ps cmp.PathStep) {
	r.path = append(r.path, ps)
}

func (r *pathReporter) Report(rs cmp.Result) {
	if rs.Equal() {
		return
	}
	p := strings.TrimPrefix(r.path.String(), ".")
	if p == "" {
		p = "value"
	}
	if n := len(r.paths); n > 0 && r.paths[n-1] == p {
		return
	}
	r.paths = append(r.paths, p)
}

func (r *pathReporter) PopStep() {
	r.path = r.path[:len(r.path)-1]
}

// typeName is the default subject name.
func typeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t == nil {
		return "value"
	}
	return t.String()
}

// valueName is the default name of v. Interface-typed subjects are
// named after their dynamic type, or "value" when nil.
func valueName[T any](v T, static string) string {
	if reflect.TypeOf((*T)(nil)).Elem().Kind() != reflect.Interface {
		return static
	}
	if t := reflect.TypeOf(any(v)); t != nil {
		return t.String()
	}
	return "value"
}

// isNil reports whether v is nil or a nil pointer, map, slice,
// channel, function or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
