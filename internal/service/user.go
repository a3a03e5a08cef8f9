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

// CompanyUser provisions login users bound one-to-one to a company. The
// password exists only in flight; storage holds an argon2id hash and its
// salt. Update is intentionally not offered.
type CompanyUser struct {
	store    *db.Store
	producer EventProducer
	logger   *zap.Logger
}

func NewCompanyUser(store *db.Store, producer EventProducer, logger *zap.Logger) *CompanyUser {
	return &CompanyUser{
		store:    store,
		producer: producer,
		logger:   logger.Named("company_user_service"),
	}
}

type CreateCompanyUserInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	CompanyID string `json:"companyId"`
}

type ListCompanyUsersInput struct {
	CompanyID *string           `json:"companyId"`
	Options   *ListOptionsInput `json:"options"`
}

func view(cu *models.CompanyUser) *models.CompanyUserView {
	v := &models.CompanyUserView{
		ID:        cu.ID,
		CompanyID: cu.CompanyID,
		UserID:    cu.UserID,
		CreatedAt: cu.CreatedAt,
		UpdatedAt: cu.UpdatedAt,
	}
	if cu.User != nil {
		v.Email = cu.User.Email
	}
	return v
}

// Create hashes the password and inserts User and CompanyUser in one
// transaction after verifying the company exists.
func (s *CompanyUser) Create(ctx context.Context, in *CreateCompanyUserInput) (*models.CompanyUserView, error) {
	userID, err := id.New(id.User)
	if err != nil {
		return nil, err
	}
	companyUserID, err := id.New(id.CompanyUser)
	if err != nil {
		return nil, err
	}
	hash, salt, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           userID,
		Email:        in.Email,
		PasswordHash: hash,
		Salt:         salt,
	}
	companyUser := &models.CompanyUser{
		ID:        companyUserID,
		CompanyID: in.CompanyID,
		UserID:    userID,
		User:      user,
	}

	err = s.store.WithTransaction(ctx, func(tx *db.Store) error {
		if _, err := tx.GetCompany(ctx, in.CompanyID); err != nil {
			if apperrors.Is(err, apperrors.KindNotFound) {
				return apperrors.InvalidRequest("company %s does not exist", in.CompanyID)
			}
			return err
		}
		if err := tx.CreateUser(ctx, user); err != nil {
			return err
		}
		return tx.CreateCompanyUser(ctx, companyUser)
	})
	if err != nil {
		return nil, err
	}

	result := view(companyUser)
	go s.producer.Produce(events.CompanyUserCreated, result.ID, result)
	return result, nil
}

func (s *CompanyUser) Get(ctx context.Context, companyUserID string) (*models.CompanyUserView, error) {
	cu, err := s.store.GetCompanyUser(ctx, companyUserID)
	if apperrors.Is(err, apperrors.KindNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return view(cu), nil
}

func (s *CompanyUser) GetOrFail(ctx context.Context, companyUserID string) (*models.CompanyUserView, error) {
	cu, err := s.store.GetCompanyUser(ctx, companyUserID)
	if err != nil {
		return nil, err
	}
	return view(cu), nil
}

// Delete removes the link and its user in one transaction.
func (s *CompanyUser) Delete(ctx context.Context, companyUserID string) error {
	var deleted *models.CompanyUserView
	err := s.store.WithTransaction(ctx, func(tx *db.Store) error {
		cu, err := tx.GetCompanyUser(ctx, companyUserID)
		if err != nil {
			return err
		}
		if err := tx.DeleteCompanyUser(ctx, companyUserID); err != nil {
			return err
		}
		if err := tx.DeleteUser(ctx, cu.UserID); err != nil {
			return err
		}
		deleted = view(cu)
		return nil
	})
	if err != nil {
		return err
	}

	go s.producer.Produce(events.CompanyUserDeleted, deleted.ID, deleted)
	return nil
}

func (s *CompanyUser) List(ctx context.Context, in *ListCompanyUsersInput) ([]models.CompanyUserView, error) {
	companyUsers, err := s.store.ListCompanyUsers(ctx, db.CompanyUserFilter{CompanyID: in.CompanyID}, listOptions(in.Options))
	if err != nil {
		return nil, err
	}
	views := make([]models.CompanyUserView, 0, len(companyUsers))
	for i := range companyUsers {
		views = append(views, *view(&companyUsers[i]))
	}
	return views, nil
}
