package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendira/commerce/internal/dto"
	"github.com/vendira/commerce/internal/id"
	"github.com/vendira/commerce/internal/models"
	"github.com/vendira/commerce/internal/service"
)

func registerSaleRoutes(r gin.IRouter, svc *service.Sale) {
	r.POST("/sales", Endpoint{
		Request:       dto.SaleCreate,
		Response:      dto.SaleResponse,
		SuccessStatus: http.StatusCreated,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			var in service.CreateSaleInput
			if err := dto.Decode(body, &in); err != nil {
				return nil, err
			}
			return svc.Create(ctx, &in)
		},
	}.handler())

	r.GET("/sales/:id", Endpoint{
		MergeParams:   []string{"id"},
		Request:       dto.IDOnly(id.Sale),
		Response:      dto.SaleResponse,
		SuccessStatus: http.StatusOK,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			return svc.GetOrFail(ctx, body["id"].(string))
		},
	}.handler())

	r.PATCH("/sales/:id", Endpoint{
		MergeParams:   []string{"id"},
		Request:       dto.SaleUpdate,
		Response:      dto.SaleResponse,
		SuccessStatus: http.StatusOK,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			var in service.UpdateSaleInput
			if err := dto.Decode(body, &in); err != nil {
				return nil, err
			}
			if v, present := body["comments"]; present && v == nil {
				in.ClearComments = true
			}
			return svc.Update(ctx, &in)
		},
	}.handler())

	r.DELETE("/sales/:id", Endpoint{
		MergeParams:   []string{"id"},
		Request:       dto.IDOnly(id.Sale),
		SuccessStatus: http.StatusNoContent,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			return nil, svc.Delete(ctx, body["id"].(string))
		},
	}.handler())

	r.GET("/sales", Endpoint{
		Request:       dto.SaleList,
		Response:      dto.SaleResponse,
		SuccessStatus: http.StatusOK,
		Handle: func(ctx context.Context, body dto.Object) (any, error) {
			var in service.ListSalesInput
			if err := dto.Decode(body, &in); err != nil {
				return nil, err
			}
			return svc.List(ctx, &in)
		},
	}.handler())

	transitions := map[string]func(context.Context, string) (*models.Sale, error){
		"cancel": svc.Cancel,
		"pay":    svc.Pay,
		"refund": svc.Refund,
	}
	for action, transition := range transitions {
		transition := transition
		r.POST("/sales/:id/"+action, Endpoint{
			MergeParams:   []string{"id"},
			Request:       dto.IDOnly(id.Sale),
			Response:      dto.SaleResponse,
			SuccessStatus: http.StatusOK,
			Handle: func(ctx context.Context, body dto.Object) (any, error) {
				return transition(ctx, body["id"].(string))
			},
		}.handler())
	}
}
