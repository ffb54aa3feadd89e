package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sellpoint/pos-api/internal/domain/entity"
	domainRepo "github.com/sellpoint/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

// CreateWithItems persists the bill and its lines in one transaction. Lines
// are created through the association so a partial bill never lands.
func (r *billRepository) CreateWithItems(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(bill).Error
	})
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) List(ctx context.Context, params *domainRepo.BillFilterParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Bill{})

	if params.CashierID != nil {
		query = query.Where("cashier_id = ?", *params.CashierID)
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if params.StartDate != nil && params.EndDate != nil {
		query = query.Where("created_at BETWEEN ? AND ?", *params.StartDate, *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order(sortBy + " " + sortOrder).
		Find(&bills).Error

	return bills, total, err
}

func (r *billRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) GetCategorySales(ctx context.Context) ([]domainRepo.CategorySalesResult, error) {
	var results []domainRepo.CategorySalesResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id as category_id,
			c.name as category_name,
			COALESCE(SUM(bi.quantity), 0) as quantity_sold,
			COALESCE(SUM(bi.subtotal), 0) as revenue
		FROM bill_items bi
		JOIN items i ON i.id = bi.item_id
		JOIN categories c ON c.id = i.category_id
		GROUP BY c.id, c.name
		ORDER BY revenue DESC
	`).Scan(&results).Error

	return results, err
}

func (r *reportRepository) GetMostSoldItems(ctx context.Context, limit int) ([]domainRepo.MostSoldItemResult, error) {
	var results []domainRepo.MostSoldItemResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			bi.item_name,
			COALESCE(SUM(bi.quantity), 0) as quantity_sold
		FROM bill_items bi
		GROUP BY bi.item_name
		ORDER BY quantity_sold DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	return results, err
}

func (r *reportRepository) GetMonthlyRevenue(ctx context.Context) ([]domainRepo.MonthlyRevenueResult, error) {
	var results []domainRepo.MonthlyRevenueResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			EXTRACT(MONTH FROM created_at)::int as month,
			COALESCE(SUM(total_amount), 0) as revenue
		FROM bills
		GROUP BY month
		ORDER BY month ASC
	`).Scan(&results).Error

	return results, err
}

func (r *reportRepository) GetRevenueBetween(ctx context.Context, start, end time.Time) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Where("created_at BETWEEN ? AND ?", start, end).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	return revenue, err
}

type idempotencyRepository struct {
	db *gorm.DB
}

// NewIdempotencyRepository creates a new idempotency key repository
func NewIdempotencyRepository(db *gorm.DB) domainRepo.IdempotencyRepository {
	return &idempotencyRepository{db: db}
}

func (r *idempotencyRepository) Create(ctx context.Context, key *entity.IdempotencyKey) error {
	return r.db.WithContext(ctx).Create(key).Error
}

func (r *idempotencyRepository) GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	var ikey entity.IdempotencyKey
	err := r.db.WithContext(ctx).
		First(&ikey, "key = ? AND user_id = ?", key, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ikey, err
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&entity.IdempotencyKey{}).Error
}
