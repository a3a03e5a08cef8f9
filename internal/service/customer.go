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

// Customer manages the Customer+Address aggregate.
type Customer struct {
	store    *db.Store
	producer EventProducer
	logger   *zap.Logger
}

func NewCustomer(store *db.Store, producer EventProducer, logger *zap.Logger) *Customer {
	return &Customer{
		store:    store,
		producer: producer,
		logger:   logger.Named("customer_service"),
	}
}

type CreateCustomerInput struct {
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Email     string       `json:"email"`
	CompanyID string       `json:"companyId"`
	Address   AddressInput `json:"address"`
}

type UpdateCustomerInput struct {
	ID        string        `json:"id"`
	FirstName *string       `json:"firstName"`
	LastName  *string       `json:"lastName"`
	Email     *string       `json:"email"`
	Address   *AddressPatch `json:"address"`
}

type ListCustomersInput struct {
	FirstName *string             `json:"firstName"`
	LastName  *string             `json:"lastName"`
	Email     *string             `json:"email"`
	CompanyID *string             `json:"companyId"`
	Address   *AddressFilterInput `json:"address"`
	Options   *ListOptionsInput   `json:"options"`
}

// Create verifies the owning company and inserts address plus customer in
// one transaction.
func (s *Customer) Create(ctx context.Context, in *CreateCustomerInput) (*models.Customer, error) {
	customerID, err := id.New(id.Customer)
	if err != nil {
		return nil, err
	}
	addressID, err := id.New(id.Address)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		ID:        customerID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		CompanyID: in.CompanyID,
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
		if _, err := tx.GetCompany(ctx, in.CompanyID); err != nil {
			if apperrors.Is(err, apperrors.KindNotFound) {
				return apperrors.InvalidRequest("company %s does not exist", in.CompanyID)
			}
			return err
		}
		if err := tx.CreateAddress(ctx, customer.Address); err != nil {
			return err
		}
		return tx.CreateCustomer(ctx, customer)
	})
	if err != nil {
		return nil, err
	}

	go s.producer.Produce(events.CustomerCreated, customer.ID, customer)
	return customer, nil
}

func (s *Customer) Get(ctx context.Context, customerID string) (*models.Customer, error) {
	customer, err := s.store.GetCustomer(ctx, customerID)
	if apperrors.Is(err, apperrors.KindNotFound) {
		return nil, nil
	}
	return customer, err
}

func (s *Customer) GetOrFail(ctx context.Context, customerID string) (*models.Customer, error) {
	return s.store.GetCustomer(ctx, customerID)
}

func (s *Customer) Update(ctx context.Context, in *UpdateCustomerInput) (*models.Customer, error) {
	changes := map[string]any{}
	if in.FirstName != nil {
		changes["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		changes["last_name"] = *in.LastName
	}
	if in.Email != nil {
		changes["email"] = *in.Email
	}

	err := s.store.WithTransaction(ctx, func(tx *db.Store) error {
		if len(changes) > 0 {
			if err := tx.UpdateCustomer(ctx, in.ID, changes); err != nil {
				return err
			}
		}
		if in.Address == nil {
			return nil
		}
		customer, err := tx.GetCustomer(ctx, in.ID)
		if err != nil {
			return err
		}
		addrChanges := in.Address.changes()
		if len(addrChanges) == 0 {
			return nil
		}
		return tx.UpdateAddress(ctx, customer.AddressID, addrChanges)
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.store.GetCustomer(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	go s.producer.Produce(events.CustomerUpdated, updated.ID, updated)
	return updated, nil
}

func (s *Customer) Delete(ctx context.Context, customerID string) error {
	var deleted *models.Customer
	err := s.store.WithTransaction(ctx, func(tx *db.Store) error {
		customer, err := tx.GetCustomer(ctx, customerID)
		if err != nil {
			return err
		}
		if err := tx.DeleteCustomer(ctx, customerID); err != nil {
			return err
		}
		if err := tx.DeleteAddress(ctx, customer.AddressID); err != nil {
			return err
		}
		deleted = customer
		return nil
	})
	if err != nil {
		return err
	}

	go s.producer.Produce(events.CustomerDeleted, deleted.ID, deleted)
	return nil
}

func (s *Customer) List(ctx context.Context, in *ListCustomersInput) ([]models.Customer, error) {
	filter := db.CustomerFilter{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		CompanyID: in.CompanyID,
		Address:   addressFilter(in.Address),
	}
	return s.store.ListCustomers(ctx, filter, listOptions(in.Options))
}
