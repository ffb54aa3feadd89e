package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sellpoint/pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bill is the immutable record of a completed transaction. Names are cached at
// transaction time so receipts survive later catalog or account renames. There
// is no update or delete path for bills.
type Bill struct {
	ID                uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID        *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CustomerName      string             `gorm:"size:255" json:"customer_name"`
	CashierID         uuid.UUID          `gorm:"type:uuid;not null;index" json:"cashier_id"`
	CashierName       string             `gorm:"size:255;not null" json:"cashier_name"`
	TotalAmount       decimal.Decimal    `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	TaxAmount         decimal.Decimal    `gorm:"type:numeric(12,2);default:0" json:"tax_amount"`
	PaymentMethod     enum.PaymentMethod `gorm:"size:20;not null" json:"payment_method"`
	LoyaltyPointsUsed int                `gorm:"default:0" json:"loyalty_points_used"`
	CreatedAt         time.Time          `gorm:"index" json:"created_at"`

	// Relationships
	Customer *User      `gorm:"foreignKey:CustomerID" json:"-"`
	Cashier  User       `gorm:"foreignKey:CashierID" json:"-"`
	Items    []BillItem `gorm:"foreignKey:BillID" json:"items"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// BillItem is one fully priced cart line embedded in a bill. The discount
// order is fixed: the item discount applies to the original price, the event
// discount applies to what remains.
type BillItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	BillID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"bill_id"`
	ItemID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"item_id"`
	ItemName      string          `gorm:"size:255;not null" json:"item_name"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	OriginalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"original_price"`
	ItemDiscount  decimal.Decimal `gorm:"type:numeric(5,2);default:0" json:"item_discount"`
	EventDiscount decimal.Decimal `gorm:"type:numeric(5,2);default:0" json:"event_discount"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	LoyaltyPoints int             `gorm:"default:0" json:"loyalty_points"`

	// Relationships
	Bill Bill `gorm:"foreignKey:BillID" json:"-"`
	Item Item `gorm:"foreignKey:ItemID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bill item
func (bi *BillItem) BeforeCreate(tx *gorm.DB) error {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}
