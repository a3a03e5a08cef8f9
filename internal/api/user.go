package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendira/commerce/internal/dto"
	"github.com/vendira/commerce/internal/id"
	"github.com/vendira/commerce/internal/service"
)

// Company users have no PATCH route: update is not offered for this
// resource.
func registerCompanyUserRoutes(r gin.IRouter, svc *service.CompanyUser) {
	r.POST("/company-users", Endpoint{
		Request:       dto.CompanyUserCreate,
		Response:      dto.CompanyUserResponse,
		SuccessStatus: http.StatusCreated,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			var in service.CreateCompanyUserInput
			if err := dto.Decode(body, &in); err != nil {
				return nil, err
			}
			return svc.Create(ctx, &in)
		},
	}.handler())

	r.GET("/company-users/:id", Endpoint{
		MergeParams:   []string{"id"},
		Request:       dto.IDOnly(id.CompanyUser),
		Response:      dto.CompanyUserResponse,
		SuccessStatus: http.StatusOK,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			return svc.GetOrFail(ctx, body["id"].(string))
		},
	}.handler())

	r.DELETE("/company-users/:id", Endpoint{
		MergeParams:   []string{"id"},
		Request:       dto.IDOnly(id.CompanyUser),
		SuccessStatus: http.StatusNoContent,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			return nil, svc.Delete(ctx, body["id"].(string))
		},
	}.handler())

	r.GET("/company-users", Endpoint{
		Request:       dto.CompanyUserList,
		Response:      dto.CompanyUserResponse,
		SuccessStatus: http.StatusOK,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			var in service.ListCompanyUsersInput
			if err := dto.Decode(body, &in); err != nil {
				return nil, err
			}
			return svc.List(ctx, &in)
		},
	}.handler())
}
