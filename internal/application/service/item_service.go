package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sellpoint/pos-api/internal/domain/entity"
	"github.com/sellpoint/pos-api/internal/domain/repository"
	"github.com/sellpoint/pos-api/pkg/apperror"
	"github.com/sellpoint/pos-api/pkg/pagination"
	"github.com/sellpoint/pos-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// ItemService handles catalog item operations
type ItemService struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
}

// NewItemService creates a new item service
func NewItemService(itemRepo repository.ItemRepository, categoryRepo repository.CategoryRepository) *ItemService {
	return &ItemService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	Stock         int
	CategoryID    uuid.UUID
	Barcode       string
	Discount      decimal.Decimal
	LowStockAlert *int
	LoyaltyPoints int
}

// CreateItem creates a new catalog item. A barcode is generated when none is
// supplied.
func (s *ItemService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	if err := validateItemNumbers(input.Price, input.Stock, input.Discount, input.LoyaltyPoints); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	barcode := input.Barcode
	if barcode == "" {
		barcode = utils.GenerateBarcode()
	} else {
		existing, err := s.itemRepo.GetByBarcode(ctx, barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Barcode already in use")
		}
	}

	now := time.Now()
	item := &entity.Item{
		Name:             input.Name,
		Description:      input.Description,
		Price:            input.Price,
		Stock:            input.Stock,
		CategoryID:       input.CategoryID,
		Barcode:          barcode,
		Discount:         input.Discount,
		LowStockAlert:    5,
		LoyaltyPoints:    input.LoyaltyPoints,
		InventoryUpdated: &now,
	}
	if input.LowStockAlert != nil {
		item.LowStockAlert = *input.LowStockAlert
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItemInput represents the update item input. Nil fields are untouched.
type UpdateItemInput struct {
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	Stock         *int
	CategoryID    *uuid.UUID
	Discount      *decimal.Decimal
	LowStockAlert *int
	LoyaltyPoints *int
}

// UpdateItem applies a partial update to an item
func (s *ItemService) UpdateItem(ctx context.Context, id uuid.UUID, input *UpdateItemInput) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, apperror.NewValidationError("Price cannot be negative")
		}
		item.Price = *input.Price
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, apperror.NewValidationError("Stock cannot be negative")
		}
		item.Stock = *input.Stock
		now := time.Now()
		item.InventoryUpdated = &now
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		item.CategoryID = *input.CategoryID
	}
	if input.Discount != nil {
		if err := validateDiscountPercent(*input.Discount); err != nil {
			return nil, err
		}
		item.Discount = *input.Discount
	}
	if input.LowStockAlert != nil {
		item.LowStockAlert = *input.LowStockAlert
	}
	if input.LoyaltyPoints != nil {
		if *input.LoyaltyPoints < 0 {
			return nil, apperror.NewValidationError("Loyalty points cannot be negative")
		}
		item.LoyaltyPoints = *input.LoyaltyPoints
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem retrieves an item by ID
func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// GetItemByBarcode retrieves an item by its barcode (cashier scan path)
func (s *ItemService) GetItemByBarcode(ctx context.Context, barcode string) (*entity.Item, error) {
	item, err := s.itemRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// ListItems lists items with filtering and pagination
func (s *ItemService) ListItems(ctx context.Context, params *repository.ItemFilterParams) (*pagination.PaginatedResult[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// GetLowStockItems returns items at or below their alert threshold
func (s *ItemService) GetLowStockItems(ctx context.Context) ([]entity.Item, error) {
	return s.itemRepo.GetLowStock(ctx)
}

// DeleteItem deletes an item
func (s *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Item")
	}
	return s.itemRepo.Delete(ctx, id)
}

func validateItemNumbers(price decimal.Decimal, stock int, discount decimal.Decimal, loyaltyPoints int) error {
	if price.IsNegative() {
		return apperror.NewValidationError("Price cannot be negative")
	}
	if stock < 0 {
		return apperror.NewValidationError("Stock cannot be negative")
	}
	if loyaltyPoints < 0 {
		return apperror.NewValidationError("Loyalty points cannot be negative")
	}
	return validateDiscountPercent(discount)
}

func validateDiscountPercent(discount decimal.Decimal) error {
	if discount.IsNegative() || discount.GreaterThan(oneHundred) {
		return apperror.NewValidationError("Discount must be between 0 and 100")
	}
	return nil
}
