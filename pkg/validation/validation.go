// Package validation provides field-level checks for request bodies decoded
// into loose JSON values. Checks report problems as FieldError records and
// never panic; a nil result means the value passed.
//
// Handlers decode bodies into structs with `any` fields so that type errors
// ("name must be a string" for a JSON number) can be reported the same way as
// missing or out-of-bounds values.
package validation

import (
	"fmt"
	"math"
	"regexp"
)

// FieldError is a single validation failure tied to a named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// StringOptions configures String. The zero value means: required, length
// between 1 and 500.
type StringOptions struct {
	Optional  bool
	MinLength int // default 1
	MaxLength int // default 500
}

// NumberOptions configures Number. The zero value means: required, no bounds.
type NumberOptions struct {
	Optional bool
	Min      *float64
	Max      *float64
}

// emailPattern requires exactly one @ with non-whitespace on both sides and a
// dot-separated, non-whitespace domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// String checks a decoded JSON value against string constraints. Absent (nil)
// values and the empty string are both treated as "no value"; length bounds
// apply only when a non-empty string is present.
func String(value any, field string, opts StringOptions) *FieldError {
	minLen := opts.MinLength
	if minLen == 0 {
		minLen = 1
	}
	maxLen := opts.MaxLength
	if maxLen == 0 {
		maxLen = 500
	}

	if value == nil || value == "" {
		if opts.Optional {
			return nil
		}
		return &FieldError{Field: field, Message: field + " is required"}
	}

	s, ok := value.(string)
	if !ok {
		return &FieldError{Field: field, Message: field + " must be a string"}
	}

	if len(s) < minLen {
		return &FieldError{Field: field, Message: fmt.Sprintf("%s must be at least %d characters", field, minLen)}
	}
	if len(s) > maxLen {
		return &FieldError{Field: field, Message: fmt.Sprintf("%s must be at most %d characters", field, maxLen)}
	}

	return nil
}

// Number checks a decoded JSON value against numeric constraints. encoding/json
// decodes every JSON number into float64; anything else present is a type
// error. Bounds apply only when a value is present.
func Number(value any, field string, opts NumberOptions) *FieldError {
	if value == nil || value == "" {
		if opts.Optional {
			return nil
		}
		return &FieldError{Field: field, Message: field + " is required"}
	}

	n, ok := toFloat(value)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return &FieldError{Field: field, Message: field + " must be a number"}
	}

	if opts.Min != nil && n < *opts.Min {
		return &FieldError{Field: field, Message: fmt.Sprintf("%s must be at least %v", field, *opts.Min)}
	}
	if opts.Max != nil && n > *opts.Max {
		return &FieldError{Field: field, Message: fmt.Sprintf("%s must be at most %v", field, *opts.Max)}
	}

	return nil
}

// Email checks a decoded JSON value as a required email address: the string
// rules with a 255-character cap, then the address pattern.
func Email(value any, field string) *FieldError {
	if err := String(value, field, StringOptions{MaxLength: 255}); err != nil {
		return err
	}

	if !emailPattern.MatchString(value.(string)) {
		return &FieldError{Field: field, Message: field + " must be a valid email address"}
	}

	return nil
}

// Collect gathers check results in declaration order, dropping passes.
func Collect(errs ...*FieldError) []FieldError {
	var out []FieldError
	for _, err := range errs {
		if err != nil {
			out = append(out, *err)
		}
	}
	return out
}

// Bound is a convenience for NumberOptions.Min/Max literals.
func Bound(v float64) *float64 {
	return &v
}

func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
