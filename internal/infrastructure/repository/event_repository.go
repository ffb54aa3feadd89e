package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sellpoint/pos-api/internal/domain/entity"
	domainRepo "github.com/sellpoint/pos-api/internal/domain/repository"
	"github.com/sellpoint/pos-api/pkg/pagination"
	"gorm.io/gorm"
)

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) domainRepo.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var event entity.Event
	err := r.db.WithContext(ctx).
		Preload("Categories").Preload("Items").
		First(&event, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &event, err
}

func (r *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Event{ID: id}).Association("Categories").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&entity.Event{ID: id}).Association("Items").Clear(); err != nil {
			return err
		}
		return tx.Delete(&entity.Event{}, "id = ?", id).Error
	})
}

func (r *eventRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Event, int64, error) {
	var events []entity.Event
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Event{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Categories").Preload("Items").
		Order("date DESC").
		Find(&events).Error

	return events, total, err
}

// ActiveOn returns events whose effective date falls on the calendar day of t.
// The window runs from 00:00:00 to 23:59:59 of that day.
func (r *eventRepository) ActiveOn(ctx context.Context, t time.Time) ([]entity.Event, error) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)

	var events []entity.Event
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", start, end).
		Preload("Categories").Preload("Items").
		Find(&events).Error
	return events, err
}

func (r *eventRepository) ReplaceEligibility(ctx context.Context, event *entity.Event, categoryIDs, itemIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := make([]entity.Category, len(categoryIDs))
		for i, id := range categoryIDs {
			categories[i] = entity.Category{ID: id}
		}
		items := make([]entity.Item, len(itemIDs))
		for i, id := range itemIDs {
			items[i] = entity.Item{ID: id}
		}

		if err := tx.Model(event).Association("Categories").Replace(categories); err != nil {
			return err
		}
		return tx.Model(event).Association("Items").Replace(items)
	})
}
