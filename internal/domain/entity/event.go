package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Event is a promotion active for a single calendar day. An item qualifies
// when it is listed directly or when its category is listed.
type Event struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Discount    decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"discount"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Categories []Category `gorm:"many2many:event_categories" json:"categories,omitempty"`
	Items      []Item     `gorm:"many2many:event_items" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new event
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Event model
func (Event) TableName() string {
	return "events"
}

// AppliesTo reports whether the event's discount covers the given item, either
// directly or through its category.
func (e *Event) AppliesTo(itemID, categoryID uuid.UUID) bool {
	for _, it := range e.Items {
		if it.ID == itemID {
			return true
		}
	}
	for _, c := range e.Categories {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}
