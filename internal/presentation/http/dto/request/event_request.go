package request

import "github.com/google/uuid"

// EventRequest represents an event create/update request. Discount covers the
// listed items plus every item in the listed categories, on the given day.
type EventRequest struct {
	Title       string      `json:"title" binding:"required,min=2,max=255"`
	Description string      `json:"description" binding:"required"`
	Discount    float64     `json:"discount" binding:"required,gt=0,max=100"`
	Date        string      `json:"date" binding:"required,datetime=2006-01-02"`
	CategoryIDs []uuid.UUID `json:"category_ids"`
	ItemIDs     []uuid.UUID `json:"item_ids"`
}
