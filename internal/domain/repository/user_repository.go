package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellpoint/pos-api/internal/domain/entity"
	"github.com/sellpoint/pos-api/internal/domain/enum"
	"github.com/sellpoint/pos-api/pkg/pagination"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByRole(ctx context.Context, role enum.Role, params *pagination.PaginationParams, search string) ([]entity.User, int64, error)
	// AtomicDeductLoyaltyPoints deducts points only if the balance covers them.
	// Returns (true, nil) on success, (false, nil) if the balance is short.
	AtomicDeductLoyaltyPoints(ctx context.Context, id uuid.UUID, points int) (bool, error)
	// AddLoyaltyPoints credits earned points to the balance.
	AddLoyaltyPoints(ctx context.Context, id uuid.UUID, points int) error
}
