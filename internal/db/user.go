package db

import (
	"context"
	"errors"

	apperrors "github.com/vendira/commerce/internal/errors"
	"github.com/vendira/commerce/internal/models"
	"gorm.io/gorm"
)

type CompanyUserFilter struct {
	CompanyID *string
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return translateError(s.db.WithContext(ctx).Create(user).Error)
}

func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	result := s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", userID)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("user %s not found", userID)
	}
	return nil
}

func (s *Store) CreateCompanyUser(ctx context.Context, companyUser *models.CompanyUser) error {
	return translateError(s.db.WithContext(ctx).Create(companyUser).Error)
}

func (s *Store) GetCompanyUser(ctx context.Context, companyUserID string) (*models.CompanyUser, error) {
	var companyUser models.CompanyUser
	err := s.db.WithContext(ctx).Preload("User").First(&companyUser, "id = ?", companyUserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("company user %s not found", companyUserID)
		}
		return nil, translateError(err)
	}
	return &companyUser, nil
}

func (s *Store) DeleteCompanyUser(ctx context.Context, companyUserID string) error {
	result := s.db.WithContext(ctx).Delete(&models.CompanyUser{}, "id = ?", companyUserID)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("company user %s not found", companyUserID)
	}
	return nil
}

func (s *Store) ListCompanyUsers(ctx context.Context, filter CompanyUserFilter, opts ListOptions) ([]models.CompanyUser, error) {
	limit, offset := opts.limitOffset()
	q := s.db.WithContext(ctx).Model(&models.CompanyUser{}).Preload("User")
	if filter.CompanyID != nil {
		q = q.Where("company_id = ?", *filter.CompanyID)
	}

	var companyUsers []models.CompanyUser
	if err := q.Limit(limit).Offset(offset).Find(&companyUsers).Error; err != nil {
		return nil, translateError(err)
	}
	return companyUsers, nil
}
