// Package dto implements the declarative request/response contracts: a
// per-resource schema listing which fields cross the API boundary and how
// each one is validated. Contracts are plain values built once at startup;
// sanitization walks them instead of reflecting over structs.
//
// The distinction between a missing field and an explicit JSON null is
// load-bearing: a missing key is only tolerated when the field is Optional,
// a null value only when the field is Nullable.
package dto

// Object is a loosely-typed JSON object as decoded from a request body.
type Object = map[string]any

// Rule checks a single field value and returns a message on failure, or ""
// when the value passes.
type Rule func(v any) string

// Field describes one contract entry.
type Field struct {
	// Name is the JSON key.
	Name string
	// Exposed marks the field as crossing the boundary; undeclared and
	// unexposed fields are stripped by sanitization.
	Exposed bool
	// Optional permits the key to be absent.
	Optional bool
	// Nullable permits an explicit null value.
	Nullable bool
	// Rules run in order; only the first failure is reported.
	Rules []Rule
	// Nested validates an object field against a sub-contract.
	Nested *Contract
	// Elem validates each element of an array field against a sub-contract.
	Elem *Contract
}

// Contract is an ordered set of fields. Contracts are immutable once built.
type Contract struct {
	Fields []Field
}

// SanitizeIn projects a decoded request body down to the contract: declared
// exposed fields are copied, everything else is dropped. Absent fields stay
// absent, and a nested object emptied by the projection is removed with it.
func SanitizeIn(c *Contract, v any) Object {
	m, ok := v.(map[string]any)
	if !ok {
		return Object{}
	}
	out := make(Object, len(c.Fields))
	for _, f := range c.Fields {
		if !f.Exposed {
			continue
		}
		raw, present := m[f.Name]
		if !present {
			continue
		}
		switch {
		case f.Nested != nil:
			nm, isMap := raw.(map[string]any)
			if !isMap {
				out[f.Name] = raw
				continue
			}
			s := SanitizeIn(f.Nested, nm)
			if len(s) == 0 && len(nm) > 0 {
				continue
			}
			out[f.Name] = s
		case f.Elem != nil:
			arr, isArr := raw.([]any)
			if !isArr {
				out[f.Name] = raw
				continue
			}
			items := make([]any, 0, len(arr))
			for _, el := range arr {
				if em, isMap := el.(map[string]any); isMap {
					items = append(items, SanitizeIn(f.Elem, em))
				} else {
					items = append(items, el)
				}
			}
			out[f.Name] = items
		default:
			out[f.Name] = raw
		}
	}
	return out
}
