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

// Sale manages the Sale+SaleItems aggregate and the status lifecycle.
type Sale struct {
	store    *db.Store
	producer EventProducer
	logger   *zap.Logger
}

func NewSale(store *db.Store, producer EventProducer, logger *zap.Logger) *Sale {
	return &Sale{
		store:    store,
		producer: producer,
		logger:   logger.Named("sale_service"),
	}
}

type SaleItemInput struct {
	ProductID    string `json:"productId"`
	Quantity     int64  `json:"quantity"`
	PricePerUnit int64  `json:"pricePerUnit"`
}

type CreateSaleInput struct {
	CompanyID  string          `json:"companyId"`
	CustomerID string          `json:"customerId"`
	Comments   *string         `json:"comments"`
	Items      []SaleItemInput `json:"items"`
}

type UpdateSaleInput struct {
	ID       string  `json:"id"`
	Comments *string `json:"comments"`

	// ClearComments distinguishes an explicit null from an absent field.
	ClearComments bool `json:"-"`
}

type ListSalesInput struct {
	CompanyID  *string           `json:"companyId"`
	CustomerID *string           `json:"customerId"`
	StatusCode *string           `json:"statusCode"`
	Options    *ListOptionsInput `json:"options"`
}

// Create validates that every line's product belongs to the sale's company,
// recomputes line totals from quantity and unit price, and inserts the sale
// and its lines in one transaction. Line totals are never trusted from the
// client.
func (s *Sale) Create(ctx context.Context, in *CreateSaleInput) (*models.Sale, error) {
	saleID, err := id.New(id.Sale)
	if err != nil {
		return nil, err
	}

	sale := &models.Sale{
		ID:         saleID,
		StatusCode: models.SaleCreated,
		Comments:   in.Comments,
		CompanyID:  in.CompanyID,
		CustomerID: in.CustomerID,
	}
	for _, line := range in.Items {
		itemID, err := id.New(id.SaleItem)
		if err != nil {
			return nil, err
		}
		total := line.Quantity * line.PricePerUnit
		sale.Items = append(sale.Items, models.SaleItem{
			ID:           itemID,
			SaleID:       saleID,
			ProductID:    line.ProductID,
			Quantity:     line.Quantity,
			PricePerUnit: line.PricePerUnit,
			Total:        total,
		})
		sale.Total += total
	}

	// The header is inserted with its items detached so the insert fills the
	// timestamps on the struct the caller gets back; lines are inserted one
	// by one below, not as a gorm association.
	items := sale.Items
	sale.Items = nil

	err = s.store.WithTransaction(ctx, func(tx *db.Store) error {
		customer, err := tx.GetCustomer(ctx, in.CustomerID)
		if err != nil {
			if apperrors.Is(err, apperrors.KindNotFound) {
				return apperrors.InvalidRequest("customer %s does not exist", in.CustomerID)
			}
			return err
		}
		if customer.CompanyID != in.CompanyID {
			return apperrors.InvalidRequest("customer %s does not belong to company %s", in.CustomerID, in.CompanyID)
		}
		if err := s.checkItemCompanies(ctx, tx, in); err != nil {
			return err
		}
		if err := tx.CreateSale(ctx, sale); err != nil {
			return err
		}
		for i := range items {
			if err := tx.CreateSaleItem(ctx, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sale.Items = items

	go s.producer.Produce(events.SaleCreated, sale.ID, sale)
	return sale, nil
}

// checkItemCompanies enforces the cross-entity invariant: every referenced
// product must exist and belong to the sale's company. Items from two
// different companies can never share a sale.
func (s *Sale) checkItemCompanies(ctx context.Context, tx *db.Store, in *CreateSaleInput) error {
	ids := make([]string, 0, len(in.Items))
	for _, line := range in.Items {
		ids = append(ids, line.ProductID)
	}
	products, err := tx.GetProductsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[string]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	for _, line := range in.Items {
		product, ok := byID[line.ProductID]
		if !ok {
			return apperrors.InvalidRequest("product %s does not exist", line.ProductID)
		}
		if product.CompanyID != in.CompanyID {
			return apperrors.InvalidRequest("product %s does not belong to company %s", line.ProductID, in.CompanyID)
		}
	}
	return nil
}

func (s *Sale) Get(ctx context.Context, saleID string) (*models.Sale, error) {
	sale, err := s.store.GetSale(ctx, saleID)
	if apperrors.Is(err, apperrors.KindNotFound) {
		return nil, nil
	}
	return sale, err
}

func (s *Sale) GetOrFail(ctx context.Context, saleID string) (*models.Sale, error) {
	return s.store.GetSale(ctx, saleID)
}

// Update patches the sale's comments, the only mutable non-derived column.
// Status changes go exclusively through the transition methods.
func (s *Sale) Update(ctx context.Context, in *UpdateSaleInput) (*models.Sale, error) {
	changes := map[string]any{}
	if in.Comments != nil {
		changes["comments"] = *in.Comments
	} else if in.ClearComments {
		changes["comments"] = nil
	}

	err := s.store.WithTransaction(ctx, func(tx *db.Store) error {
		if len(changes) == 0 {
			_, err := tx.GetSale(ctx, in.ID)
			return err
		}
		return tx.UpdateSale(ctx, in.ID, changes)
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.store.GetSale(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	go s.producer.Produce(events.SaleUpdated, updated.ID, updated)
	return updated, nil
}

// Delete removes all lines and then the sale row in one transaction.
func (s *Sale) Delete(ctx context.Context, saleID string) error {
	var deleted *models.Sale
	err := s.store.WithTransaction(ctx, func(tx *db.Store) error {
		sale, err := tx.GetSale(ctx, saleID)
		if err != nil {
			return err
		}
		if err := tx.DeleteSaleItems(ctx, saleID); err != nil {
			return err
		}
		if err := tx.DeleteSale(ctx, saleID); err != nil {
			return err
		}
		deleted = sale
		return nil
	})
	if err != nil {
		return err
	}

	go s.producer.Produce(events.SaleDeleted, deleted.ID, deleted)
	return nil
}

func (s *Sale) List(ctx context.Context, in *ListSalesInput) ([]models.Sale, error) {
	filter := db.SaleFilter{
		CompanyID:  in.CompanyID,
		CustomerID: in.CustomerID,
	}
	if in.StatusCode != nil {
		status := models.SaleStatus(*in.StatusCode)
		filter.StatusCode = &status
	}
	return s.store.ListSales(ctx, filter, listOptions(in.Options))
}

// Pay moves the sale from CREATED to PAID.
func (s *Sale) Pay(ctx context.Context, saleID string) (*models.Sale, error) {
	return s.transition(ctx, saleID, models.SalePaid)
}

// Cancel moves the sale from CREATED to CANCELLED.
func (s *Sale) Cancel(ctx context.Context, saleID string) (*models.Sale, error) {
	return s.transition(ctx, saleID, models.SaleCancelled)
}

// Refund moves the sale from PAID to REFUNDED.
func (s *Sale) Refund(ctx context.Context, saleID string) (*models.Sale, error) {
	return s.transition(ctx, saleID, models.SaleRefunded)
}

// transition performs the guarded status update: fetch current state, assert
// the precondition, write the new status, all inside one transaction.
func (s *Sale) transition(ctx context.Context, saleID string, next models.SaleStatus) (*models.Sale, error) {
	var updated *models.Sale
	err := s.store.WithTransaction(ctx, func(tx *db.Store) error {
		sale, err := tx.GetSale(ctx, saleID)
		if err != nil {
			return err
		}
		if !sale.StatusCode.CanTransition(next) {
			return apperrors.InvalidRequest("sale %s cannot transition from %s to %s", saleID, sale.StatusCode, next)
		}
		if err := tx.UpdateSale(ctx, saleID, map[string]any{"status_code": next}); err != nil {
			return err
		}
		sale.StatusCode = next
		updated = sale
		return nil
	})
	if err != nil {
		return nil, err
	}

	go s.producer.Produce(events.SaleStatusChanged, updated.ID, updated)
	return updated, nil
}
