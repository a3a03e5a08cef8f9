// Package api implements the HTTP surface: the endpoint pipeline wrapping
// every handler with contract sanitization and validation, the single
// error-to-response mapper, and the route table.
package api

import (
	"context"
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/vendira/commerce/internal/dto"
	apperrors "github.com/vendira/commerce/internal/errors"
)

// Endpoint wraps a handler with the request pipeline. Per request it merges
// declared path parameters into the body, sanitizes and validates the result
// against the request contract, invokes the handler, projects the result
// through the response contract and writes the success status. Any failure
// along the way goes through respondError; nothing leaks unhandled.
type Endpoint struct {
	// MergeParams lists path parameter names copied into the body. A body
	// field with the same name must agree with the path value exactly.
	MergeParams []string
	// Request is the input contract. Required.
	Request *dto.Contract
	// Response is the output contract; nil for NO_CONTENT endpoints.
	Response *dto.Contract
	// SuccessStatus is written on the happy path.
	SuccessStatus int
	// Handle receives the sanitized, validated body.
	Handle func(ctx context.Context, body dto.Object) (any, error)
}

func (e Endpoint) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := readBody(c)
		if err != nil {
			respondError(c, err)
			return
		}
		if _, isArray := body.([]any); isArray {
			respondError(c, apperrors.InvalidRequest("request body must be an object"))
			return
		}
		m, ok := body.(map[string]any)
		if !ok {
			m = dto.Object{}
		}

		for _, name := range e.MergeParams {
			value := c.Param(name)
			if value == "" {
				respondError(c, apperrors.InvalidRequest("missing path parameter %q", name))
				return
			}
			if existing, present := m[name]; present {
				if s, _ := existing.(string); s != value {
					respondError(c, apperrors.InvalidRequest("body field %q conflicts with path parameter", name))
					return
				}
			}
			m[name] = value
		}

		obj := dto.SanitizeIn(e.Request, m)
		if errs := dto.Validate(e.Request, obj); len(errs) > 0 {
			respondError(c, apperrors.InvalidRequestFields(dto.FieldErrorMap(errs)))
			return
		}

		result, err := e.Handle(c.Request.Context(), obj)
		if err != nil {
			respondError(c, err)
			return
		}

		if e.Response == nil {
			c.Status(e.SuccessStatus)
			return
		}
		out, err := dto.Project(e.Response, result)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(e.SuccessStatus, out)
	}
}

// readBody decodes the request body leniently: an absent or empty body is an
// empty object, a syntactically broken one surfaces as INVALID_REQUEST via
// the error mapper.
func readBody(c *gin.Context) (any, error) {
	if c.Request.Body == nil {
		return dto.Object{}, nil
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, apperrors.InvalidRequest("unreadable request body")
	}
	if len(raw) == 0 {
		return dto.Object{}, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		// Surfaces as INVALID_REQUEST through classify.
		return nil, err
	}
	if v == nil {
		return dto.Object{}, nil
	}
	return v, nil
}
