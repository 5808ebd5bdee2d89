package validator

import (
	"math"
	"reflect"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether email looks like local@domain.tld.
// It is a shape check for form feedback, not RFC 5322 parsing.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsRequired reports whether value is present. Strings must contain
// something other than whitespace; nil values and nil pointers, maps,
// slices, channels, funcs and interfaces are absent. Everything else,
// including zero numbers and false, counts as present.
func IsRequired(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// IsValidQuantity reports whether q is a whole number greater than zero.
func IsValidQuantity[T Numeric](q T) bool {
	f := float64(q)
	if math.IsInf(f, 0) || f != math.Trunc(f) {
		return false
	}
	return f > 0
}
