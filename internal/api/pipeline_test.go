package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendira/commerce/internal/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var echoContract = &dto.Contract{Fields: []dto.Field{
	{Name: "id", Exposed: true, Rules: []dto.Rule{dto.String()}},
	{Name: "name", Exposed: true, Optional: true, Rules: []dto.Rule{dto.Length(1, 10)}},
}}

// echoRouter mounts a single endpoint that hands the sanitized body back.
func echoRouter(t *testing.T) *gin.Engine {
	t.Helper()
	r := gin.New()
	r.PATCH("/things/:id", Endpoint{
		MergeParams:   []string{"id"},
		Request:       echoContract,
		Response:      echoContract,
		SuccessStatus: http.StatusOK,
		Handle: func(_ context.Context, body dto.Object) (any, error) {
			return body, nil
		},
	}.handler())
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPipelineMergesPathParam(t *testing.T) {
	r := echoRouter(t)

	w := doRequest(t, r, http.MethodPatch, "/things/abc", `{"name":"x"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"abc","name":"x"}`, w.Body.String())
}

func TestPipelineEmptyBodyStillMerges(t *testing.T) {
	r := echoRouter(t)

	w := doRequest(t, r, http.MethodPatch, "/things/abc", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"abc"}`, w.Body.String())
}

func TestPipelineBodyPathConflict(t *testing.T) {
	r := echoRouter(t)

	// Agreement is fine, disagreement is not.
	w := doRequest(t, r, http.MethodPatch, "/things/abc", `{"id":"abc"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodPatch, "/things/abc", `{"id":"other"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
	assert.Contains(t, w.Body.String(), "conflicts with path parameter")
}

func TestPipelineRejectsArrayBody(t *testing.T) {
	r := echoRouter(t)

	w := doRequest(t, r, http.MethodPatch, "/things/abc", `[{"name":"x"}]`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must be an object")
}

func TestPipelineMalformedJSON(t *testing.T) {
	r := echoRouter(t)

	w := doRequest(t, r, http.MethodPatch, "/things/abc", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
	assert.Contains(t, w.Body.String(), "malformed JSON body")
}

func TestPipelineValidationFailureShape(t *testing.T) {
	r := echoRouter(t)

	w := doRequest(t, r, http.MethodPatch, "/things/abc", `{"name":"way too long for the rule"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_REQUEST", body.Type)
	assert.Equal(t, http.StatusBadRequest, body.Status)
	assert.Contains(t, body.Params, "name")
}

func TestPipelineDropsUndeclaredFields(t *testing.T) {
	r := echoRouter(t)

	w := doRequest(t, r, http.MethodPatch, "/things/abc", `{"name":"x","secret":"shh"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestPipelineNoContentResponse(t *testing.T) {
	r := gin.New()
	r.DELETE("/things/:id", Endpoint{
		MergeParams:   []string{"id"},
		Request:       echoContract,
		SuccessStatus: http.StatusNoContent,
		Handle: func(_ context.Context, _ dto.Object) (any, error) {
			return nil, nil
		},
	}.handler())

	w := doRequest(t, r, http.MethodDelete, "/things/abc", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
