package toast

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/dmitrymomot/storekit/pkg/validator"
)

// APIError is a failed call to the storefront API. Message carries the
// server-supplied text (the response body's data.message), if any.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return "api: request failed"
}

func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExtractMessage finds a human-readable message in an arbitrary error value.
// It tries, in order:
//
//  1. a nested response.data.message (maps with string keys, structs and
//     pointers to them; struct fields match by name or json tag, ignoring case)
//  2. the Message of a wrapped *APIError, or the first validator.ValidationErrors entry
//  3. a top-level message field
//  4. err.Error() when v is an error
//
// Missing levels, non-string values and empty strings fall through to the
// next step. The second result is false when nothing was found.
// ExtractMessage never panics.
func ExtractMessage(v any) (msg string, ok bool) {
	defer func() {
		if recover() != nil {
			msg, ok = "", false
		}
	}()

	if v == nil {
		return "", false
	}

	if s, ok := lookupString(v, "response", "data", "message"); ok {
		return s, true
	}

	err, isErr := v.(error)
	if isErr {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr != nil && apiErr.Message != "" {
			return apiErr.Message, true
		}
		if verrs := validator.ExtractValidationErrors(err); verrs != nil {
			if first, ok := verrs.First(); ok && first.Message != "" {
				return strings.TrimSpace(first.Field + " " + first.Message), true
			}
		}
	}

	if s, ok := lookupString(v, "message"); ok {
		return s, true
	}

	if isErr {
		if s := err.Error(); s != "" {
			return s, true
		}
	}

	return "", false
}

// lookupString walks path through v and returns a non-empty string leaf.
func lookupString(v any, path ...string) (string, bool) {
	rv := reflect.ValueOf(v)
	for _, key := range path {
		rv = child(indirect(rv), key)
		if !rv.IsValid() {
			return "", false
		}
	}

	rv = indirect(rv)
	if !rv.IsValid() || rv.Kind() != reflect.String || rv.String() == "" {
		return "", false
	}
	return rv.String(), true
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func child(rv reflect.Value, key string) reflect.Value {
	if !rv.IsValid() {
		return reflect.Value{}
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return reflect.Value{}
		}
		if v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key())); v.IsValid() {
			return v
		}
		iter := rv.MapRange()
		for iter.Next() {
			if strings.EqualFold(iter.Key().String(), key) {
				return iter.Value()
			}
		}
	case reflect.Struct:
		t := rv.Type()
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if strings.EqualFold(f.Name, key) || strings.EqualFold(name, key) {
				return rv.Field(i)
			}
		}
	}
	return reflect.Value{}
}
