package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sellpoint/pos-api/internal/domain/entity"
	"github.com/sellpoint/pos-api/internal/domain/repository"
	"github.com/sellpoint/pos-api/pkg/apperror"
	"github.com/sellpoint/pos-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// EventService handles promotion event operations
type EventService struct {
	eventRepo    repository.EventRepository
	categoryRepo repository.CategoryRepository
	itemRepo     repository.ItemRepository
	now          func() time.Time
}

// NewEventService creates a new event service
func NewEventService(
	eventRepo repository.EventRepository,
	categoryRepo repository.CategoryRepository,
	itemRepo repository.ItemRepository,
) *EventService {
	return &EventService{
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		now:          time.Now,
	}
}

// EventInput represents the create/update event input
type EventInput struct {
	Title       string
	Description string
	Discount    decimal.Decimal
	Date        time.Time
	CategoryIDs []uuid.UUID
	ItemIDs     []uuid.UUID
}

func (s *EventService) validateInput(ctx context.Context, input *EventInput) error {
	if input.Discount.LessThanOrEqual(decimal.Zero) || input.Discount.GreaterThan(oneHundred) {
		return apperror.NewValidationError("Event discount must be between 0 and 100")
	}
	if len(input.CategoryIDs) == 0 && len(input.ItemIDs) == 0 {
		return apperror.NewValidationError("Event must target at least one category or item")
	}
	for _, id := range input.CategoryIDs {
		category, err := s.categoryRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if category == nil {
			return apperror.NewNotFoundError("Category")
		}
	}
	if len(input.ItemIDs) > 0 {
		items, err := s.itemRepo.GetByIDs(ctx, input.ItemIDs)
		if err != nil {
			return err
		}
		found := make(map[uuid.UUID]bool, len(items))
		for _, it := range items {
			found[it.ID] = true
		}
		for _, id := range input.ItemIDs {
			if !found[id] {
				return apperror.NewNotFoundError("Item")
			}
		}
	}
	return nil
}

// CreateEvent creates a new promotion event with its eligibility sets
func (s *EventService) CreateEvent(ctx context.Context, input *EventInput) (*entity.Event, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	event := &entity.Event{
		Title:       input.Title,
		Description: input.Description,
		Discount:    input.Discount,
		Date:        input.Date,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	if err := s.eventRepo.ReplaceEligibility(ctx, event, input.CategoryIDs, input.ItemIDs); err != nil {
		return nil, err
	}

	return s.eventRepo.GetByID(ctx, event.ID)
}

// UpdateEvent replaces an event's fields and eligibility sets
func (s *EventService) UpdateEvent(ctx context.Context, id uuid.UUID, input *EventInput) (*entity.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperror.NewNotFoundError("Event")
	}

	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	event.Title = input.Title
	event.Description = input.Description
	event.Discount = input.Discount
	event.Date = input.Date

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	if err := s.eventRepo.ReplaceEligibility(ctx, event, input.CategoryIDs, input.ItemIDs); err != nil {
		return nil, err
	}

	return s.eventRepo.GetByID(ctx, id)
}

// GetEvent retrieves an event by ID
func (s *EventService) GetEvent(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperror.NewNotFoundError("Event")
	}
	return event, nil
}

// DeleteEvent deletes an event
func (s *EventService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return apperror.NewNotFoundError("Event")
	}
	return s.eventRepo.Delete(ctx, id)
}

// ListEvents lists events with pagination
func (s *EventService) ListEvents(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Event], error) {
	events, total, err := s.eventRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(events, pag), nil
}

// GetActiveEvents returns events effective today
func (s *EventService) GetActiveEvents(ctx context.Context) ([]entity.Event, error) {
	return s.eventRepo.ActiveOn(ctx, s.now())
}
