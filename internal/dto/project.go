package dto

import (
	"encoding/json"
	"reflect"

	apperrors "github.com/vendira/commerce/internal/errors"
)

// SanitizeOut projects an internal model onto a response contract so that
// only exposed fields reach the wire. The model is flattened through its
// JSON form first, which keeps the projection independent of struct layout.
func SanitizeOut(c *Contract, model any) (Object, error) {
	m, err := toMap(model)
	if err != nil {
		return nil, err
	}
	return SanitizeIn(c, m), nil
}

// Project sanitizes a handler result for the wire: slices are projected
// element-wise, anything else as a single object.
func Project(c *Contract, result any) (any, error) {
	switch {
	// Slices first: a nil slice is an empty list, not a missing result.
	case isSlice(result):
		raw, err := json.Marshal(result)
		if err != nil {
			return nil, apperrors.Internal("response encoding: %v", err)
		}
		var items []any
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, apperrors.Internal("response decoding: %v", err)
		}
		out := make([]Object, 0, len(items))
		for _, it := range items {
			out = append(out, SanitizeIn(c, it))
		}
		return out, nil
	case isNil(result):
		return nil, apperrors.Internal("handler produced no response value")
	default:
		return SanitizeOut(c, result)
	}
}

// Decode converts a sanitized object into a typed input struct.
func Decode(obj Object, dst any) error {
	raw, err := json.Marshal(obj)
	if err != nil {
		return apperrors.Internal("request decoding: %v", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return apperrors.Internal("request decoding: %v", err)
	}
	return nil
}

func toMap(model any) (Object, error) {
	raw, err := json.Marshal(model)
	if err != nil {
		return nil, apperrors.Internal("response encoding: %v", err)
	}
	var m Object
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, apperrors.Internal("response encoding: %v", err)
	}
	return m, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func isSlice(v any) bool {
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}
