package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vendira/commerce/internal/db"
	apperrors "github.com/vendira/commerce/internal/errors"
	"github.com/vendira/commerce/internal/events"
	"github.com/vendira/commerce/internal/id"
	"github.com/vendira/commerce/internal/models"
)

// Product is plain CRUD; the only aggregate concern is the owning company
// existence check on create.
type Product struct {
	store    *db.Store
	producer EventProducer
	logger   *zap.Logger
}

func NewProduct(store *db.Store, producer EventProducer, logger *zap.Logger) *Product {
	return &Product{
		store:    store,
		producer: producer,
		logger:   logger.Named("product_service"),
	}
}

type CreateProductInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	SKU         string  `json:"sku"`
	Price       int64   `json:"price"`
	Currency    string  `json:"currency"`
	CompanyID   string  `json:"companyId"`
}

type UpdateProductInput struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	SKU         *string `json:"sku"`
	Price       *int64  `json:"price"`
	Currency    *string `json:"currency"`

	// ClearDescription distinguishes an explicit null from an absent field;
	// the API layer sets it from the sanitized request object.
	ClearDescription bool `json:"-"`
}

type ListProductsInput struct {
	Name      *string           `json:"name"`
	SKU       *string           `json:"sku"`
	Currency  *string           `json:"currency"`
	CompanyID *string           `json:"companyId"`
	Options   *ListOptionsInput `json:"options"`
}

func (s *Product) Create(ctx context.Context, in *CreateProductInput) (*models.Product, error) {
	productID, err := id.New(id.Product)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:          productID,
		Name:        in.Name,
		Description: in.Description,
		SKU:         in.SKU,
		Price:       in.Price,
		Currency:    in.Currency,
		CompanyID:   in.CompanyID,
	}

	err = s.store.WithTransaction(ctx, func(tx *db.Store) error {
		if _, err := tx.GetCompany(ctx, in.CompanyID); err != nil {
			if apperrors.Is(err, apperrors.KindNotFound) {
				return apperrors.InvalidRequest("company %s does not exist", in.CompanyID)
			}
			return err
		}
		return tx.CreateProduct(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	go s.producer.Produce(events.ProductCreated, product.ID, product)
	return product, nil
}

func (s *Product) Get(ctx context.Context, productID string) (*models.Product, error) {
	product, err := s.store.GetProduct(ctx, productID)
	if apperrors.Is(err, apperrors.KindNotFound) {
		return nil, nil
	}
	return product, err
}

func (s *Product) GetOrFail(ctx context.Context, productID string) (*models.Product, error) {
	return s.store.GetProduct(ctx, productID)
}

func (s *Product) Update(ctx context.Context, in *UpdateProductInput) (*models.Product, error) {
	changes := map[string]any{}
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.Description != nil {
		changes["description"] = *in.Description
	} else if in.ClearDescription {
		changes["description"] = nil
	}
	if in.SKU != nil {
		changes["sku"] = *in.SKU
	}
	if in.Price != nil {
		changes["price"] = *in.Price
	}
	if in.Currency != nil {
		changes["currency"] = *in.Currency
	}

	err := s.store.WithTransaction(ctx, func(tx *db.Store) error {
		if len(changes) == 0 {
			_, err := tx.GetProduct(ctx, in.ID)
			return err
		}
		return tx.UpdateProduct(ctx, in.ID, changes)
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.store.GetProduct(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	go s.producer.Produce(events.ProductUpdated, updated.ID, updated)
	return updated, nil
}

func (s *Product) Delete(ctx context.Context, productID string) error {
	product, err := s.store.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if err := s.store.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	go s.producer.Produce(events.ProductDeleted, product.ID, product)
	return nil
}

func (s *Product) List(ctx context.Context, in *ListProductsInput) ([]models.Product, error) {
	filter := db.ProductFilter{
		Name:      in.Name,
		SKU:       in.SKU,
		Currency:  in.Currency,
		CompanyID: in.CompanyID,
	}
	return s.store.ListProducts(ctx, filter, listOptions(in.Options))
}
