package service

import (
	"context"
	"time"

	"github.com/sellpoint/pos-api/internal/domain/entity"
	"github.com/sellpoint/pos-api/internal/domain/enum"
	"github.com/sellpoint/pos-api/internal/domain/repository"
	"github.com/sellpoint/pos-api/pkg/pagination"
)

// ReportService provides sales, inventory and dashboard reporting
type ReportService struct {
	reportRepo repository.ReportRepository
	billRepo   repository.BillRepository
	itemRepo   repository.ItemRepository
	userRepo   repository.UserRepository
	now        func() time.Time
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo repository.ReportRepository,
	billRepo repository.BillRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		billRepo:   billRepo,
		itemRepo:   itemRepo,
		userRepo:   userRepo,
		now:        time.Now,
	}
}

// GetSalesReport lists bills within an optional date range, sorted and paginated
func (s *ReportService) GetSalesReport(ctx context.Context, params *repository.BillFilterParams) (*pagination.PaginatedResult[entity.Bill], error) {
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}

// InventoryReport represents the inventory report payload
type InventoryReport struct {
	Items         []entity.Item `json:"items"`
	LowStockItems []entity.Item `json:"low_stock_items"`
	TotalItems    int64         `json:"total_items"`
}

// GetInventoryReport returns current stock levels with low-stock items broken out
func (s *ReportService) GetInventoryReport(ctx context.Context, params *repository.ItemFilterParams) (*InventoryReport, error) {
	items, total, err := s.itemRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.itemRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}

	return &InventoryReport{
		Items:         items,
		LowStockItems: lowStock,
		TotalItems:    total,
	}, nil
}

// GetCategorySales returns quantity sold and revenue per category
func (s *ReportService) GetCategorySales(ctx context.Context) ([]repository.CategorySalesResult, error) {
	return s.reportRepo.GetCategorySales(ctx)
}

// GetMostSoldItems returns the top selling items by quantity
func (s *ReportService) GetMostSoldItems(ctx context.Context, limit int) ([]repository.MostSoldItemResult, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.reportRepo.GetMostSoldItems(ctx, limit)
}

// GetMonthlyRevenue returns revenue grouped by calendar month
func (s *ReportService) GetMonthlyRevenue(ctx context.Context) ([]repository.MonthlyRevenueResult, error) {
	return s.reportRepo.GetMonthlyRevenue(ctx)
}

// DashboardStats represents the admin dashboard statistics
type DashboardStats struct {
	TotalCustomers int64   `json:"total_customers"`
	TotalItems     int64   `json:"total_items"`
	BillsToday     int64   `json:"bills_today"`
	RevenueToday   float64 `json:"revenue_today"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	LowStockCount  int64   `json:"low_stock_count"`
}

// GetDashboardStats returns the admin dashboard statistics
func (s *ReportService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	countParams := pagination.DefaultPagination()
	countParams.PerPage = 1 // only the count is needed

	_, customerCount, err := s.userRepo.ListByRole(ctx, enum.RoleCustomer, countParams, "")
	if err != nil {
		return nil, err
	}
	stats.TotalCustomers = customerCount

	_, itemCount, err := s.itemRepo.List(ctx, &repository.ItemFilterParams{Pagination: countParams})
	if err != nil {
		return nil, err
	}
	stats.TotalItems = itemCount

	lowStock, err := s.itemRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockCount = int64(len(lowStock))

	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	billsToday, err := s.billRepo.CountSince(ctx, startOfDay)
	if err != nil {
		return nil, err
	}
	stats.BillsToday = billsToday

	revenueToday, err := s.reportRepo.GetRevenueBetween(ctx, startOfDay, now)
	if err != nil {
		return nil, err
	}
	stats.RevenueToday = revenueToday

	monthlyRevenue, err := s.reportRepo.GetRevenueBetween(ctx, startOfMonth, now)
	if err != nil {
		return nil, err
	}
	stats.MonthlyRevenue = monthlyRevenue

	return stats, nil
}
