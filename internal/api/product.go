package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendira/commerce/internal/dto"
	"github.com/vendira/commerce/internal/id"
	"github.com/vendira/commerce/internal/service"
)

func registerProductRoutes(r gin.IRouter, svc *service.Product) {
	r.POST("/products", Endpoint{
		Request:       dto.ProductCreate,
		Response:      dto.ProductResponse,
		SuccessStatus: http.StatusCreated,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			var in service.CreateProductInput
			if err := dto.Decode(body, &in); err != nil {
				return nil, err
			}
			return svc.Create(ctx, &in)
		},
	}.handler())

	r.GET("/products/:id", Endpoint{
		MergeParams:   []string{"id"},
		Request:       dto.IDOnly(id.Product),
		Response:      dto.ProductResponse,
		SuccessStatus: http.StatusOK,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			return svc.GetOrFail(ctx, body["id"].(string))
		},
	}.handler())

	r.PATCH("/products/:id", Endpoint{
		MergeParams:   []string{"id"},
		Request:       dto.ProductUpdate,
		Response:      dto.ProductResponse,
		SuccessStatus: http.StatusOK,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			var in service.UpdateProductInput
			if err := dto.Decode(body, &in); err != nil {
				return nil, err
			}
			// An explicit null clears the column; an absent key leaves it.
			if v, present := body["description"]; present && v == nil {
				in.ClearDescription = true
			}
			return svc.Update(ctx, &in)
		},
	}.handler())

	r.DELETE("/products/:id", Endpoint{
		MergeParams:   []string{"id"},
		Request:       dto.IDOnly(id.Product),
		SuccessStatus: http.StatusNoContent,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			return nil, svc.Delete(ctx, body["id"].(string))
		},
	}.handler())

	r.GET("/products", Endpoint{
		Request:       dto.ProductList,
		Response:      dto.ProductResponse,
		SuccessStatus: http.StatusOK,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			var in service.ListProductsInput
			if err := dto.Decode(body, &in); err != nil {
				return nil, err
			}
			return svc.List(ctx, &in)
		},
	}.handler())
}
