package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sellpoint/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User represents an admin, cashier or customer account. Loyalty points are
// tracked on the same record for customers; the balance never goes negative.
type User struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Email         string         `gorm:"size:255;unique;not null" json:"email"`
	Mobile        *string        `gorm:"size:50" json:"mobile,omitempty"`
	Birthdate     *time.Time     `json:"birthdate,omitempty"`
	Password      string         `gorm:"size:255" json:"-"`
	Role          enum.Role      `gorm:"size:20;default:'customer';index" json:"role"`
	LoyaltyPoints int            `gorm:"default:0;check:loyalty_points >= 0" json:"loyalty_points"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Bills []Bill `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsCustomer reports whether the account can hold a loyalty balance
func (u *User) IsCustomer() bool {
	return u.Role == enum.RoleCustomer
}
