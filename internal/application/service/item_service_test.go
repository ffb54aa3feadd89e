package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sellpoint/pos-api/internal/domain/entity"
	"github.com/sellpoint/pos-api/pkg/apperror"
	"github.com/sellpoint/pos-api/pkg/pagination"
)

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	r.categories[category.ID] = category
	return nil
}
func (r *fakeCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return r.categories[id], nil
}
func (r *fakeCategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error { return nil }
func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }
func (r *fakeCategoryRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Category, int64, error) {
	return nil, 0, nil
}

func TestCreateItemGeneratesBarcode(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{categories: map[uuid.UUID]*entity.Category{}}
	category := &entity.Category{ID: uuid.New(), Name: "Drinks"}
	categoryRepo.categories[category.ID] = category

	svc := NewItemService(&fakeItemRepo{items: map[uuid.UUID]*entity.Item{}}, categoryRepo)

	item, err := svc.CreateItem(context.Background(), &CreateItemInput{
		Name:       "Cola",
		Price:      dec("1.50"),
		Stock:      10,
		CategoryID: category.ID,
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if !strings.HasPrefix(item.Barcode, "ITM-") {
		t.Errorf("barcode = %q, want ITM- prefix", item.Barcode)
	}
	if item.LowStockAlert != 5 {
		t.Errorf("low stock alert = %d, want default 5", item.LowStockAlert)
	}
	if item.InventoryUpdated == nil {
		t.Error("inventory updated should be stamped on create")
	}
}

func TestCreateItemValidation(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{categories: map[uuid.UUID]*entity.Category{}}
	category := &entity.Category{ID: uuid.New(), Name: "Drinks"}
	categoryRepo.categories[category.ID] = category

	svc := NewItemService(&fakeItemRepo{items: map[uuid.UUID]*entity.Item{}}, categoryRepo)

	tests := []struct {
		name     string
		input    *CreateItemInput
		wantCode int
	}{
		{
			name:     "negative price",
			input:    &CreateItemInput{Name: "X", Price: dec("-1"), CategoryID: category.ID},
			wantCode: 400,
		},
		{
			name:     "discount above 100",
			input:    &CreateItemInput{Name: "X", Price: dec("1"), Discount: dec("150"), CategoryID: category.ID},
			wantCode: 400,
		},
		{
			name:     "unknown category",
			input:    &CreateItemInput{Name: "X", Price: dec("1"), CategoryID: uuid.New()},
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateItem(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := apperror.GetAppError(err).Code; got != tt.wantCode {
				t.Errorf("code = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{categories: map[uuid.UUID]*entity.Category{}}
	svc := NewCategoryService(categoryRepo)

	if _, err := svc.CreateCategory(context.Background(), "Snacks", ""); err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	_, err := svc.CreateCategory(context.Background(), "Snacks", "again")
	if err == nil {
		t.Fatal("expected conflict for duplicate name")
	}
	if apperror.GetAppError(err).Code != 409 {
		t.Errorf("code = %d, want 409", apperror.GetAppError(err).Code)
	}
}
