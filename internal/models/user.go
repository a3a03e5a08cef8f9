package models

import "time"

// User holds login credentials. The hash and salt never marshal, which is a
// second line of defense behind the response contracts.
type User struct {
	ID           string    `gorm:"size:25;primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	Salt         string    `gorm:"size:64" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CompanyUser links a Company to its User one-to-one.
type CompanyUser struct {
	ID        string    `gorm:"size:25;primaryKey" json:"id"`
	CompanyID string    `gorm:"size:25;uniqueIndex" json:"companyId"`
	UserID    string    `gorm:"size:25;uniqueIndex" json:"userId"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CompanyUserView is the flattened shape served by the API.
type CompanyUserView struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
