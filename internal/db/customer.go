package db

import (
	"context"
	"errors"

	apperrors "github.com/vendira/commerce/internal/errors"
	"github.com/vendira/commerce/internal/models"
	"gorm.io/gorm"
)

type CustomerFilter struct {
	FirstName *string
	LastName  *string
	Email     *string
	CompanyID *string
	Address   AddressFilter
}

func (s *Store) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	return translateError(s.db.WithContext(ctx).Create(customer).Error)
}

func (s *Store) GetCustomer(ctx context.Context, customerID string) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.WithContext(ctx).Preload("Address").First(&customer, "id = ?", customerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("customer %s not found", customerID)
		}
		return nil, translateError(err)
	}
	return &customer, nil
}

func (s *Store) UpdateCustomer(ctx context.Context, customerID string, changes map[string]any) error {
	result := s.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", customerID).Updates(changes)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("customer %s not found", customerID)
	}
	return nil
}

func (s *Store) DeleteCustomer(ctx context.Context, customerID string) error {
	result := s.db.WithContext(ctx).Delete(&models.Customer{}, "id = ?", customerID)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("customer %s not found", customerID)
	}
	return nil
}

func (s *Store) ListCustomers(ctx context.Context, filter CustomerFilter, opts ListOptions) ([]models.Customer, error) {
	limit, offset := opts.limitOffset()
	q := s.db.WithContext(ctx).Model(&models.Customer{}).Preload("Address")
	if filter.FirstName != nil {
		q = q.Where("customers.first_name = ?", *filter.FirstName)
	}
	if filter.LastName != nil {
		q = q.Where("customers.last_name = ?", *filter.LastName)
	}
	if filter.Email != nil {
		q = q.Where("customers.email = ?", *filter.Email)
	}
	if filter.CompanyID != nil {
		q = q.Where("customers.company_id = ?", *filter.CompanyID)
	}
	q = joinAddressFilter(q, "customers.address_id", filter.Address)

	var customers []models.Customer
	if err := q.Limit(limit).Offset(offset).Find(&customers).Error; err != nil {
		return nil, translateError(err)
	}
	return customers, nil
}
