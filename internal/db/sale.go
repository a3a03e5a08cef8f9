package db

import (
	"context"
	"errors"

	apperrors "github.com/vendira/commerce/internal/errors"
	"github.com/vendira/commerce/internal/models"
	"gorm.io/gorm"
)

type SaleFilter struct {
	CompanyID  *string
	CustomerID *string
	StatusCode *models.SaleStatus
}

func (s *Store) CreateSale(ctx context.Context, sale *models.Sale) error {
	return translateError(s.db.WithContext(ctx).Create(sale).Error)
}

func (s *Store) CreateSaleItem(ctx context.Context, item *models.SaleItem) error {
	return translateError(s.db.WithContext(ctx).Create(item).Error)
}

func (s *Store) GetSale(ctx context.Context, saleID string) (*models.Sale, error) {
	var sale models.Sale
	err := s.db.WithContext(ctx).Preload("Items").First(&sale, "id = ?", saleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("sale %s not found", saleID)
		}
		return nil, translateError(err)
	}
	return &sale, nil
}

func (s *Store) UpdateSale(ctx context.Context, saleID string, changes map[string]any) error {
	result := s.db.WithContext(ctx).Model(&models.Sale{}).Where("id = ?", saleID).Updates(changes)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("sale %s not found", saleID)
	}
	return nil
}

func (s *Store) DeleteSale(ctx context.Context, saleID string) error {
	result := s.db.WithContext(ctx).Delete(&models.Sale{}, "id = ?", saleID)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("sale %s not found", saleID)
	}
	return nil
}

// DeleteSaleItems removes every line of a sale. Zero lines is not an error
// here; the sale row itself is the existence check.
func (s *Store) DeleteSaleItems(ctx context.Context, saleID string) error {
	return translateError(s.db.WithContext(ctx).Delete(&models.SaleItem{}, "sale_id = ?", saleID).Error)
}

func (s *Store) ListSales(ctx context.Context, filter SaleFilter, opts ListOptions) ([]models.Sale, error) {
	limit, offset := opts.limitOffset()
	q := s.db.WithContext(ctx).Model(&models.Sale{}).Preload("Items")
	if filter.CompanyID != nil {
		q = q.Where("company_id = ?", *filter.CompanyID)
	}
	if filter.CustomerID != nil {
		q = q.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.StatusCode != nil {
		q = q.Where("status_code = ?", *filter.StatusCode)
	}

	var sales []models.Sale
	if err := q.Limit(limit).Offset(offset).Find(&sales).Error; err != nil {
		return nil, translateError(err)
	}
	return sales, nil
}
