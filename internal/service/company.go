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

// Company manages the Company+Address aggregate. The owned address is
// created, updated and deleted in the same transaction as its parent.
type Company struct {
	store    *db.Store
	producer EventProducer
	logger   *zap.Logger
}

func NewCompany(store *db.Store, producer EventProducer, logger *zap.Logger) *Company {
	return &Company{
		store:    store,
		producer: producer,
		logger:   logger.Named("company_service"),
	}
}

type CreateCompanyInput struct {
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Address AddressInput `json:"address"`
}

type UpdateCompanyInput struct {
	ID      string        `json:"id"`
	Name    *string       `json:"name"`
	Email   *string       `json:"email"`
	Address *AddressPatch `json:"address"`
}

type ListCompaniesInput struct {
	Name    *string             `json:"name"`
	Email   *string             `json:"email"`
	Address *AddressFilterInput `json:"address"`
	Options *ListOptionsInput   `json:"options"`
}

// Create inserts the owned address and the company in one transaction; if
// either insert fails nothing is persisted.
func (s *Company) Create(ctx context.Context, in *CreateCompanyInput) (*models.Company, error) {
	companyID, err := id.New(id.Company)
	if err != nil {
		return nil, err
	}
	addressID, err := id.New(id.Address)
	if err != nil {
		return nil, err
	}

	company := &models.Company{
		ID:        companyID,
		Name:      in.Name,
		Email:     in.Email,
		AddressID: addressID,
		Address: &models.Address{
			ID:       addressID,
			Line1:    in.Address.Line1,
			Postcode: in.Address.Postcode,
			City:     in.Address.City,
			Province: in.Address.Province,
			Country:  in.Address.Country,
		},
	}

	err = s.store.WithTransaction(ctx, func(tx *db.Store) error {
		if err := tx.CreateAddress(ctx, company.Address); err != nil {
			return err
		}
		return tx.CreateCompany(ctx, company)
	})
	if err != nil {
		return nil, err
	}

	go s.producer.Produce(events.CompanyCreated, company.ID, company)
	return company, nil
}

// Get returns nil without error when the company does not exist.
func (s *Company) Get(ctx context.Context, companyID string) (*models.Company, error) {
	company, err := s.store.GetCompany(ctx, companyID)
	if apperrors.Is(err, apperrors.KindNotFound) {
		return nil, nil
	}
	return company, err
}

// GetOrFail returns NOT_FOUND when the company does not exist.
func (s *Company) GetOrFail(ctx context.Context, companyID string) (*models.Company, error) {
	return s.store.GetCompany(ctx, companyID)
}

// Update patches the company's own columns and, when an address patch is
// supplied, re-fetches the parent inside the transaction to locate the owned
// address and patches it too.
func (s *Company) Update(ctx context.Context, in *UpdateCompanyInput) (*models.Company, error) {
	changes := map[string]any{}
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.Email != nil {
		changes["email"] = *in.Email
	}

	err := s.store.WithTransaction(ctx, func(tx *db.Store) error {
		if len(changes) > 0 {
			if err := tx.UpdateCompany(ctx, in.ID, changes); err != nil {
				return err
			}
		}
		if in.Address == nil {
			return nil
		}
		company, err := tx.GetCompany(ctx, in.ID)
		if err != nil {
			return err
		}
		addrChanges := in.Address.changes()
		if len(addrChanges) == 0 {
			return nil
		}
		return tx.UpdateAddress(ctx, company.AddressID, addrChanges)
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.store.GetCompany(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	go s.producer.Produce(events.CompanyUpdated, updated.ID, updated)
	return updated, nil
}

// Delete removes the company and its owned address in one transaction.
func (s *Company) Delete(ctx context.Context, companyID string) error {
	var deleted *models.Company
	err := s.store.WithTransaction(ctx, func(tx *db.Store) error {
		company, err := tx.GetCompany(ctx, companyID)
		if err != nil {
			return err
		}
		if err := tx.DeleteCompany(ctx, companyID); err != nil {
			return err
		}
		if err := tx.DeleteAddress(ctx, company.AddressID); err != nil {
			return err
		}
		deleted = company
		return nil
	})
	if err != nil {
		return err
	}

	go s.producer.Produce(events.CompanyDeleted, deleted.ID, deleted)
	return nil
}

// List applies an AND-conjunction of equality filters, address predicates
// included, with limit/page pagination.
func (s *Company) List(ctx context.Context, in *ListCompaniesInput) ([]models.Company, error) {
	filter := db.CompanyFilter{
		Name:    in.Name,
		Email:   in.Email,
		Address: addressFilter(in.Address),
	}
	return s.store.ListCompanies(ctx, filter, listOptions(in.Options))
}
