package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sellpoint/pos-api/internal/domain/entity"
	"github.com/sellpoint/pos-api/pkg/pagination"
)

// EventRepository defines the interface for promotion event data operations
type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Event, int64, error)
	// ActiveOn returns events effective on the calendar day containing t,
	// with eligibility sets preloaded.
	ActiveOn(ctx context.Context, t time.Time) ([]entity.Event, error)
	// ReplaceEligibility swaps the event's eligible category and item sets.
	ReplaceEligibility(ctx context.Context, event *entity.Event, categoryIDs, itemIDs []uuid.UUID) error
}
