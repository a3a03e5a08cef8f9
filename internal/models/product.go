package models

import "time"

// Product prices are integer minor currency units, capped at 99,999,999.
// SKU is unique within the owning company.
type Product struct {
	ID          string    `gorm:"size:25;primaryKey" json:"id"`
	Name        string    `gorm:"size:255" json:"name"`
	Description *string   `gorm:"size:3000" json:"description"`
	SKU         string    `gorm:"size:100;uniqueIndex:idx_products_company_sku" json:"sku"`
	Price       int64     `gorm:"check:price >= 0" json:"price"`
	Currency    string    `gorm:"size:3" json:"currency"`
	CompanyID   string    `gorm:"size:25;index;uniqueIndex:idx_products_company_sku" json:"companyId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
