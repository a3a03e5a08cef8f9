package db

import (
	"context"
	"errors"

	apperrors "github.com/vendira/commerce/internal/errors"
	"github.com/vendira/commerce/internal/models"
	"gorm.io/gorm"
)

// AddressFilter is the nested filter fragment usable one level deep under
// company and customer list filters.
type AddressFilter struct {
	Postcode *string
	City     *string
	Province *string
	Country  *string
}

// CompanyFilter is an AND-conjunction of equality predicates.
type CompanyFilter struct {
	Name    *string
	Email   *string
	Address AddressFilter
}

func (s *Store) CreateAddress(ctx context.Context, address *models.Address) error {
	return translateError(s.db.WithContext(ctx).Create(address).Error)
}

func (s *Store) UpdateAddress(ctx context.Context, addressID string, changes map[string]any) error {
	result := s.db.WithContext(ctx).Model(&models.Address{}).Where("id = ?", addressID).Updates(changes)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("address %s not found", addressID)
	}
	return nil
}

func (s *Store) DeleteAddress(ctx context.Context, addressID string) error {
	result := s.db.WithContext(ctx).Delete(&models.Address{}, "id = ?", addressID)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("address %s not found", addressID)
	}
	return nil
}

func (s *Store) CreateCompany(ctx context.Context, company *models.Company) error {
	return translateError(s.db.WithContext(ctx).Create(company).Error)
}

func (s *Store) GetCompany(ctx context.Context, companyID string) (*models.Company, error) {
	var company models.Company
	err := s.db.WithContext(ctx).Preload("Address").First(&company, "id = ?", companyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("company %s not found", companyID)
		}
		return nil, translateError(err)
	}
	return &company, nil
}

func (s *Store) UpdateCompany(ctx context.Context, companyID string, changes map[string]any) error {
	result := s.db.WithContext(ctx).Model(&models.Company{}).Where("id = ?", companyID).Updates(changes)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("company %s not found", companyID)
	}
	return nil
}

func (s *Store) DeleteCompany(ctx context.Context, companyID string) error {
	result := s.db.WithContext(ctx).Delete(&models.Company{}, "id = ?", companyID)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("company %s not found", companyID)
	}
	return nil
}

func (s *Store) ListCompanies(ctx context.Context, filter CompanyFilter, opts ListOptions) ([]models.Company, error) {
	limit, offset := opts.limitOffset()
	q := s.db.WithContext(ctx).Model(&models.Company{}).Preload("Address")
	if filter.Name != nil {
		q = q.Where("companies.name = ?", *filter.Name)
	}
	if filter.Email != nil {
		q = q.Where("companies.email = ?", *filter.Email)
	}
	q = joinAddressFilter(q, "companies.address_id", filter.Address)

	var companies []models.Company
	if err := q.Limit(limit).Offset(offset).Find(&companies).Error; err != nil {
		return nil, translateError(err)
	}
	return companies, nil
}

// joinAddressFilter translates nested address predicates into joined-table
// qualified conditions. The join is only added when a predicate needs it.
func joinAddressFilter(q *gorm.DB, fkColumn string, f AddressFilter) *gorm.DB {
	preds := map[string]*string{
		"addresses.postcode": f.Postcode,
		"addresses.city":     f.City,
		"addresses.province": f.Province,
		"addresses.country":  f.Country,
	}
	joined := false
	for column, value := range preds {
		if value == nil {
			continue
		}
		if !joined {
			q = q.Joins("JOIN addresses ON addresses.id = " + fkColumn)
			joined = true
		}
		q = q.Where(column+" = ?", *value)
	}
	return q
}
