package request

import "github.com/google/uuid"

// BillLineRequest represents one cart line on a checkout request
type BillLineRequest struct {
	ItemID   uuid.UUID `json:"item" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,gt=0"`
}

// CompleteBillRequest represents a checkout request. The cashier comes from
// the authenticated token, not the body.
type CompleteBillRequest struct {
	CustomerID    *uuid.UUID        `json:"customer"`
	Items         []BillLineRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	TaxAmount     float64           `json:"tax_amount" binding:"min=0"`
}

// BillFilterRequest represents bill list filter parameters
type BillFilterRequest struct {
	CashierID  string `form:"cashier_id"`
	CustomerID string `form:"customer_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
