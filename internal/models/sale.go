package models

import "time"

// SaleStatus enumerates the sale lifecycle states.
type SaleStatus string

const (
	SaleCreated   SaleStatus = "CREATED"
	SalePaid      SaleStatus = "PAID"
	SaleCancelled SaleStatus = "CANCELLED"
	SaleRefunded  SaleStatus = "REFUNDED"
)

// saleTransitions is the full transition relation. CANCELLED and REFUNDED
// are terminal.
var saleTransitions = map[SaleStatus][]SaleStatus{
	SaleCreated: {SalePaid, SaleCancelled},
	SalePaid:    {SaleRefunded},
}

// CanTransition reports whether the status may move to next.
func (s SaleStatus) CanTransition(next SaleStatus) bool {
	for _, allowed := range saleTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Sale aggregates its line items; Total always equals the sum of the line
// totals at creation time and never changes afterwards.
type Sale struct {
	ID         string     `gorm:"size:25;primaryKey" json:"id"`
	StatusCode SaleStatus `gorm:"size:20" json:"statusCode"`
	Total      int64      `json:"total"`
	Comments   *string    `gorm:"size:3000" json:"comments"`
	CompanyID  string     `gorm:"size:25;index" json:"companyId"`
	CustomerID string     `gorm:"size:25;index" json:"customerId"`
	Items      []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// SaleItem is one product line of a sale; a product appears at most once
// per sale. Total = Quantity * PricePerUnit, computed at creation.
type SaleItem struct {
	ID           string    `gorm:"size:25;primaryKey" json:"id"`
	SaleID       string    `gorm:"size:25;uniqueIndex:idx_sale_items_sale_product" json:"saleId"`
	ProductID    string    `gorm:"size:25;uniqueIndex:idx_sale_items_sale_product" json:"productId"`
	Quantity     int64     `gorm:"check:quantity > 0" json:"quantity"`
	PricePerUnit int64     `json:"pricePerUnit"`
	Total        int64     `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
