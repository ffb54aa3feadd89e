package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sellpoint/pos-api/internal/domain/entity"
	"github.com/sellpoint/pos-api/pkg/pagination"
)

// BillRepository defines the interface for bill data operations. Bills are
// immutable: there is no update or delete.
type BillRepository interface {
	// CreateWithItems persists the bill and its lines in one transaction.
	CreateWithItems(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

// BillFilterParams contains filtering parameters for bill queries
type BillFilterParams struct {
	Pagination *pagination.PaginationParams
	CashierID  *uuid.UUID
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// CategorySalesResult aggregates sold quantity and revenue per category
type CategorySalesResult struct {
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	QuantitySold int64     `json:"quantity_sold"`
	Revenue      float64   `json:"revenue"`
}

// MostSoldItemResult aggregates sold quantity per item name
type MostSoldItemResult struct {
	ItemName     string `json:"item_name"`
	QuantitySold int64  `json:"quantity_sold"`
}

// MonthlyRevenueResult aggregates revenue per calendar month
type MonthlyRevenueResult struct {
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
}

// ReportRepository defines aggregate queries backing the reporting endpoints
type ReportRepository interface {
	GetCategorySales(ctx context.Context) ([]CategorySalesResult, error)
	GetMostSoldItems(ctx context.Context, limit int) ([]MostSoldItemResult, error)
	GetMonthlyRevenue(ctx context.Context) ([]MonthlyRevenueResult, error)
	GetRevenueBetween(ctx context.Context, start, end time.Time) (float64, error)
}

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	Create(ctx context.Context, key *entity.IdempotencyKey) error
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	DeleteExpired(ctx context.Context) error
}
