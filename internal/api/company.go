package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendira/commerce/internal/dto"
	"github.com/vendira/commerce/internal/id"
	"github.com/vendira/commerce/internal/service"
)

func registerCompanyRoutes(r gin.IRouter, svc *service.Company) {
	r.POST("/companies", Endpoint{
		Request:       dto.CompanyCreate,
		Response:      dto.CompanyResponse,
		SuccessStatus: http.StatusCreated,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			var in service.CreateCompanyInput
			if err := dto.Decode(body, &in); err != nil {
				return nil, err
			}
			return svc.Create(ctx, &in)
		},
	}.handler())

	r.GET("/companies/:id", Endpoint{
		MergeParams:   []string{"id"},
		Request:       dto.IDOnly(id.Company),
		Response:      dto.CompanyResponse,
		SuccessStatus: http.StatusOK,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			return svc.GetOrFail(ctx, body["id"].(string))
		},
	}.handler())

	r.PATCH("/companies/:id", Endpoint{
		MergeParams:   []string{"id"},
		Request:       dto.CompanyUpdate,
		Response:      dto.CompanyResponse,
		SuccessStatus: http.StatusOK,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			var in service.UpdateCompanyInput
			if err := dto.Decode(body, &in); err != nil {
				return nil, err
			}
			return svc.Update(ctx, &in)
		},
	}.handler())

	r.DELETE("/companies/:id", Endpoint{
		MergeParams:   []string{"id"},
		Request:       dto.IDOnly(id.Company),
		SuccessStatus: http.StatusNoContent,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			return nil, svc.Delete(ctx, body["id"].(string))
		},
	}.handler())

	r.GET("/companies", Endpoint{
		Request:       dto.CompanyList,
		Response:      dto.CompanyResponse,
		SuccessStatus: http.StatusOK,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			var in service.ListCompaniesInput
			if err := dto.Decode(body, &in); err != nil {
				return nil, err
			}
			return svc.List(ctx, &in)
		},
	}.handler())
}
