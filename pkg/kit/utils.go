package kit

import (
	"fmt"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Describe renders a payload for error messages. Errors and Stringers use
// their own text. Nil values render as "nil", including nil maps and slices
// that fmt would print as map[] or [].
func Describe(v any) string {
	if IsNil(v) {
		return "nil"
	}

	switch t := v.(type) {
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}
