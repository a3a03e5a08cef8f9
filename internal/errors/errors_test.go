package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindInvalidRequest.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, KindNotFound.HTTPStatus())
	assert.Equal(t, http.StatusConflict, KindDuplicate.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, KindInternal.HTTPStatus())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("company %s not found", "com_x")))
	assert.Equal(t, KindInternal, KindOf(fmt.Errorf("plain error")))

	wrapped := fmt.Errorf("service: %w", Duplicate("email taken"))
	assert.Equal(t, KindDuplicate, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindDuplicate))
	assert.False(t, Is(wrapped, KindNotFound))
}

func TestInvalidRequestFields(t *testing.T) {
	err := InvalidRequestFields(map[string]string{"email": "must be a valid email address"})
	assert.Equal(t, KindInvalidRequest, err.Kind)
	assert.Equal(t, "must be a valid email address", err.Params["email"])
	assert.Contains(t, err.Error(), "INVALID_REQUEST")
}
