package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendira/commerce/internal/dto"
	"github.com/vendira/commerce/internal/id"
	"github.com/vendira/commerce/internal/service"
)

func registerCustomerRoutes(r gin.IRouter, svc *service.Customer) {
	r.POST("/customers", Endpoint{
		Request:       dto.CustomerCreate,
		Response:      dto.CustomerResponse,
		SuccessStatus: http.StatusCreated,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			var in service.CreateCustomerInput
			if err := dto.Decode(body, &in); err != nil {
				return nil, err
			}
			return svc.Create(ctx, &in)
		},
	}.handler())

	r.GET("/customers/:id", Endpoint{
		MergeParams:   []string{"id"},
		Request:       dto.IDOnly(id.Customer),
		Response:      dto.CustomerResponse,
		SuccessStatus: http.StatusOK,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			return svc.GetOrFail(ctx, body["id"].(string))
		},
	}.handler())

	r.PATCH("/customers/:id", Endpoint{
		MergeParams:   []string{"id"},
		Request:       dto.CustomerUpdate,
		Response:      dto.CustomerResponse,
		SuccessStatus: http.StatusOK,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			var in service.UpdateCustomerInput
			if err := dto.Decode(body, &in); err != nil {
				return nil, err
			}
			return svc.Update(ctx, &in)
		},
	}.handler())

	r.DELETE("/customers/:id", Endpoint{
		MergeParams:   []string{"id"},
		Request:       dto.IDOnly(id.Customer),
		SuccessStatus: http.StatusNoContent,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			return nil, svc.Delete(ctx, body["id"].(string))
		},
	}.handler())

	r.GET("/customers", Endpoint{
		Request:       dto.CustomerList,
		Response:      dto.CustomerResponse,
		SuccessStatus: http.StatusOK,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			var in service.ListCustomersInput
			if err := dto.Decode(body, &in); err != nil {
				return nil, err
			}
			return svc.List(ctx, &in)
		},
	}.handler())
}
