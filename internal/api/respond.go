package api

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apperrors "github.com/vendira/commerce/internal/errors"
)

// errorBody is the wire shape of every failure response.
type errorBody struct {
	Type    string            `json:"type"`
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Params  map[string]string `json:"params,omitempty"`
}

// respondError is the single point translating any error into an HTTP
// response. Domain errors map by kind; storage constraint violations and
// malformed JSON get their fixed mappings; everything else is INTERNAL with
// only its message surfaced.
func respondError(c *gin.Context, err error) {
	appErr := classify(err)
	status := appErr.Kind.HTTPStatus()
	c.JSON(status, errorBody{
		Type:    string(appErr.Kind),
		Status:  status,
		Message: appErr.Message,
		Params:  appErr.Params,
	})
}

func classify(err error) *apperrors.Error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Duplicate("resource already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.InvalidRequest("referenced resource does not exist")
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return apperrors.InvalidRequest("malformed JSON body")
	}
	return apperrors.Internal("%s", err.Error())
}
