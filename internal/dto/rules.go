package dto

import (
	"fmt"
	"regexp"

	"github.com/vendira/commerce/internal/id"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// String requires a string value.
func String() Rule {
	return func(v any) string {
		if _, ok := v.(string); !ok {
			return "must be a string"
		}
		return ""
	}
}

// Length requires a string of min..max characters.
func Length(min, max int) Rule {
	return func(v any) string {
		s, ok := v.(string)
		if !ok {
			return "must be a string"
		}
		if len(s) < min || len(s) > max {
			return fmt.Sprintf("must be between %d and %d characters", min, max)
		}
		return ""
	}
}

// Email requires a plausibly shaped email address.
func Email() Rule {
	return func(v any) string {
		s, ok := v.(string)
		if !ok {
			return "must be a string"
		}
		if !emailPattern.MatchString(s) {
			return "must be a valid email address"
		}
		return ""
	}
}

// Enum requires one of the listed values.
func Enum(values ...string) Rule {
	allowed := make(map[string]struct{}, len(values))
	for _, s := range values {
		allowed[s] = struct{}{}
	}
	return func(v any) string {
		s, ok := v.(string)
		if !ok {
			return "must be a string"
		}
		if _, ok := allowed[s]; !ok {
			return fmt.Sprintf("must be one of %v", values)
		}
		return ""
	}
}

// Int requires an integral number.
func Int() Rule {
	return func(v any) string {
		if _, ok := asInt(v); !ok {
			return "must be an integer"
		}
		return ""
	}
}

// Range requires an integer within min..max inclusive.
func Range(min, max int64) Rule {
	return func(v any) string {
		n, ok := asInt(v)
		if !ok {
			return "must be an integer"
		}
		if n < min || n > max {
			return fmt.Sprintf("must be between %d and %d", min, max)
		}
		return ""
	}
}

// Positive requires an integer greater than zero.
func Positive() Rule {
	return func(v any) string {
		n, ok := asInt(v)
		if !ok {
			return "must be an integer"
		}
		if n <= 0 {
			return "must be positive"
		}
		return ""
	}
}

// Bool requires a boolean.
func Bool() Rule {
	return func(v any) string {
		if _, ok := v.(bool); !ok {
			return "must be a boolean"
		}
		return ""
	}
}

// ResourceID requires a well-formed resource identifier with the given
// entity prefix.
func ResourceID(prefix string) Rule {
	return func(v any) string {
		s, ok := v.(string)
		if !ok {
			return "must be a string"
		}
		if !id.Valid(prefix, s) {
			return fmt.Sprintf("must be a valid %q resource id", prefix)
		}
		return ""
	}
}

// MinItems requires an array with at least n elements.
func MinItems(n int) Rule {
	return func(v any) string {
		arr, ok := v.([]any)
		if !ok {
			return "must be an array"
		}
		if len(arr) < n {
			return fmt.Sprintf("must contain at least %d items", n)
		}
		return ""
	}
}
