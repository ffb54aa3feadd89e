package request

import "github.com/google/uuid"

// CreateItemRequest represents an item creation request
type CreateItemRequest struct {
	Name          string    `json:"name" binding:"required,min=2,max=255"`
	Description   string    `json:"description"`
	Price         float64   `json:"price" binding:"min=0"`
	Stock         int       `json:"stock" binding:"min=0"`
	CategoryID    uuid.UUID `json:"category_id" binding:"required"`
	Barcode       string    `json:"barcode" binding:"omitempty,max=100"`
	Discount      float64   `json:"discount" binding:"min=0,max=100"`
	LowStockAlert *int      `json:"low_stock_alert" binding:"omitempty,min=0"`
	LoyaltyPoints int       `json:"loyalty_points" binding:"min=0"`
}

// UpdateItemRequest represents an item update request
type UpdateItemRequest struct {
	Name          *string    `json:"name" binding:"omitempty,min=2,max=255"`
	Description   *string    `json:"description"`
	Price         *float64   `json:"price" binding:"omitempty,min=0"`
	Stock         *int       `json:"stock" binding:"omitempty,min=0"`
	CategoryID    *uuid.UUID `json:"category_id"`
	Discount      *float64   `json:"discount" binding:"omitempty,min=0,max=100"`
	LowStockAlert *int       `json:"low_stock_alert" binding:"omitempty,min=0"`
	LoyaltyPoints *int       `json:"loyalty_points" binding:"omitempty,min=0"`
}

// ItemFilterRequest represents item filter parameters
type ItemFilterRequest struct {
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	LowStock   bool   `form:"low_stock"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// CategoryRequest represents a category create/update request
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Description string `json:"description"`
}
