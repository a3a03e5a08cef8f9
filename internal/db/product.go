package db

import (
	"context"
	"errors"

	apperrors "github.com/vendira/commerce/internal/errors"
	"github.com/vendira/commerce/internal/models"
	"gorm.io/gorm"
)

type ProductFilter struct {
	Name      *string
	SKU       *string
	Currency  *string
	CompanyID *string
}

func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	return translateError(s.db.WithContext(ctx).Create(product).Error)
}

func (s *Store) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).First(&product, "id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product %s not found", productID)
		}
		return nil, translateError(err)
	}
	return &product, nil
}

// GetProductsByIDs fetches all listed products in one query; missing ids are
// simply absent from the result.
func (s *Store) GetProductsByIDs(ctx context.Context, productIDs []string) ([]models.Product, error) {
	var products []models.Product
	if len(productIDs) == 0 {
		return products, nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ?", productIDs).Find(&products).Error; err != nil {
		return nil, translateError(err)
	}
	return products, nil
}

func (s *Store) UpdateProduct(ctx context.Context, productID string, changes map[string]any) error {
	result := s.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", productID).Updates(changes)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("product %s not found", productID)
	}
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, productID string) error {
	result := s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", productID)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("product %s not found", productID)
	}
	return nil
}

func (s *Store) ListProducts(ctx context.Context, filter ProductFilter, opts ListOptions) ([]models.Product, error) {
	limit, offset := opts.limitOffset()
	q := s.db.WithContext(ctx).Model(&models.Product{})
	if filter.Name != nil {
		q = q.Where("name = ?", *filter.Name)
	}
	if filter.SKU != nil {
		q = q.Where("sku = ?", *filter.SKU)
	}
	if filter.Currency != nil {
		q = q.Where("currency = ?", *filter.Currency)
	}
	if filter.CompanyID != nil {
		q = q.Where("company_id = ?", *filter.CompanyID)
	}

	var products []models.Product
	if err := q.Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		return nil, translateError(err)
	}
	return products, nil
}
