package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/vendira/commerce/internal/errors"
	"github.com/vendira/commerce/internal/service"
)

// Services bundles the service layer for route registration.
type Services struct {
	Companies    *service.Company
	Customers    *service.Customer
	Products     *service.Product
	Sales        *service.Sale
	CompanyUsers *service.CompanyUser
}

// NewRouter builds the full route table. Panics recover to an INTERNAL
// response and unknown routes answer with the NOT_FOUND body, so every
// failure mode produces exactly one taxonomy-shaped response.
func NewRouter(logger *zap.Logger, svcs Services) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		respondError(c, apperrors.Internal("internal server error"))
	}))
	r.NoRoute(func(c *gin.Context) {
		respondError(c, apperrors.NotFound("route not found"))
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	registerCompanyRoutes(r, svcs.Companies)
	registerCustomerRoutes(r, svcs.Customers)
	registerProductRoutes(r, svcs.Products)
	registerSaleRoutes(r, svcs.Sales)
	registerCompanyUserRoutes(r, svcs.CompanyUsers)

	return r
}
