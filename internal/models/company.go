// Package models defines the storage entities. Every entity carries a
// prefixed 25-character resource id as its primary key plus create/update
// timestamps maintained by the ORM.
package models

import "time"

// Address is owned by exactly one parent (Company or Customer). It is
// created and deleted in lock-step with its parent and has no routes of
// its own.
type Address struct {
	ID        string    `gorm:"size:25;primaryKey" json:"id"`
	Line1     string    `gorm:"size:255" json:"line1"`
	Postcode  string    `gorm:"size:20" json:"postcode"`
	City      string    `gorm:"size:100" json:"city"`
	Province  string    `gorm:"size:100" json:"province"`
	Country   string    `gorm:"size:100" json:"country"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Company aggregates a single owned Address. Email is globally unique.
type Company struct {
	ID        string    `gorm:"size:25;primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex" json:"email"`
	AddressID string    `gorm:"size:25" json:"-"`
	Address   *Address  `gorm:"foreignKey:AddressID" json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Customer belongs to a Company and aggregates a single owned Address.
// Email is unique within the owning company only.
type Customer struct {
	ID        string    `gorm:"size:25;primaryKey" json:"id"`
	FirstName string    `gorm:"size:100" json:"firstName"`
	LastName  string    `gorm:"size:100" json:"lastName"`
	Email     string    `gorm:"size:255;uniqueIndex:idx_customers_company_email" json:"email"`
	CompanyID string    `gorm:"size:25;index;uniqueIndex:idx_customers_company_email" json:"companyId"`
	AddressID string    `gorm:"size:25" json:"-"`
	Address   *Address  `gorm:"foreignKey:AddressID" json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
