package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category groups items for browsing and event eligibility
type Category struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;unique;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []Item `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// Item represents a sellable catalog entry. Stock is decremented at checkout
// and must never go negative.
type Item struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name             string          `gorm:"size:255;not null" json:"name"`
	Description      string          `gorm:"type:text" json:"description"`
	Price            decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Stock            int             `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	CategoryID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Barcode          string          `gorm:"size:100;unique;not null" json:"barcode"`
	Discount         decimal.Decimal `gorm:"type:numeric(5,2);default:0" json:"discount"`
	LowStockAlert    int             `gorm:"default:5" json:"low_stock_alert"`
	LoyaltyPoints    int             `gorm:"default:0" json:"loyalty_points"`
	InventoryUpdated *time.Time      `json:"inventory_updated,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// IsLowStock reports whether the item is at or below its alert threshold
func (i *Item) IsLowStock() bool {
	return i.Stock <= i.LowStockAlert
}
