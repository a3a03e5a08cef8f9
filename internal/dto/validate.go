package dto

import (
	"encoding/json"
	"strconv"
)

// FieldError names one failed field by its dotted path.
type FieldError struct {
	Path    string
	Message string
}

// Validate runs the contract's rules over a sanitized object and returns the
// flat list of failures. Nested contracts recurse with a dotted path prefix;
// array elements use their index as a path segment.
func Validate(c *Contract, m Object) []FieldError {
	return validate(c, m, "")
}

// FieldErrorMap flattens errors into the path -> message map carried by
// INVALID_REQUEST responses.
func FieldErrorMap(errs []FieldError) map[string]string {
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		if _, ok := out[fe.Path]; !ok {
			out[fe.Path] = fe.Message
		}
	}
	return out
}

func validate(c *Contract, m Object, prefix string) []FieldError {
	var errs []FieldError
	for _, f := range c.Fields {
		if !f.Exposed {
			continue
		}
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}
		v, present := m[f.Name]
		if !present {
			if !f.Optional {
				errs = append(errs, FieldError{Path: path, Message: "is required"})
			}
			continue
		}
		if v == nil {
			if !f.Nullable {
				errs = append(errs, FieldError{Path: path, Message: "must not be null"})
			}
			continue
		}
		if msg := firstRuleFailure(f.Rules, v); msg != "" {
			errs = append(errs, FieldError{Path: path, Message: msg})
			continue
		}
		switch {
		case f.Nested != nil:
			nm, ok := v.(map[string]any)
			if !ok {
				errs = append(errs, FieldError{Path: path, Message: "must be an object"})
				continue
			}
			errs = append(errs, validate(f.Nested, nm, path)...)
		case f.Elem != nil:
			arr, ok := v.([]any)
			if !ok {
				errs = append(errs, FieldError{Path: path, Message: "must be an array"})
				continue
			}
			for i, el := range arr {
				elPath := path + "." + strconv.Itoa(i)
				em, isMap := el.(map[string]any)
				if !isMap {
					errs = append(errs, FieldError{Path: elPath, Message: "must be an object"})
					continue
				}
				errs = append(errs, validate(f.Elem, em, elPath)...)
			}
		}
	}
	return errs
}

func firstRuleFailure(rules []Rule, v any) string {
	for _, r := range rules {
		if msg := r(v); msg != "" {
			return msg
		}
	}
	return ""
}

// asInt normalizes the numeric representations a JSON decode or an internal
// round-trip can produce. Non-integral floats are rejected.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		i := int64(n)
		if float64(i) != n {
			return 0, false
		}
		return i, true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	return 0, false
}
