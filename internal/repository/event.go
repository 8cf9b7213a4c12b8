// internal/repository/event.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/outreachhub/outreachhub/internal/domain"
	"github.com/outreachhub/outreachhub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepositoryIface interface {
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Event, error)
	FindByIDInOrg(ctx context.Context, orgID, id uuid.UUID) (*model.Event, error)
	Create(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, event *model.Event) error
	ReplacePartners(ctx context.Context, event *model.Event, partners []model.Partner) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Event, error) {
	var events []model.Event
	result := r.db.WithContext(ctx).Preload("Partners").
		Where("organization_id = ?", orgID).
		Order("date, start_time").Find(&events)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list events: %w", result.Error)
	}
	return events, nil
}

func (r *EventRepository) FindByIDInOrg(ctx context.Context, orgID, id uuid.UUID) (*model.Event, error) {
	var event model.Event
	result := r.db.WithContext(ctx).Preload("Partners").
		Where("id = ? AND organization_id = ?", id, orgID).First(&event)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event: %w", result.Error)
	}
	return &event, nil
}

func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(event)
	if result.Error != nil {
		return fmt.Errorf("failed to create event: %w", result.Error)
	}
	return nil
}

func (r *EventRepository) Update(ctx context.Context, event *model.Event) error {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Save(event)
	if result.Error != nil {
		return fmt.Errorf("failed to update event: %w", result.Error)
	}
	return nil
}

// ReplacePartners clears the event's partner association and sets it to
// partners. Partners themselves are untouched.
func (r *EventRepository) ReplacePartners(ctx context.Context, event *model.Event, partners []model.Partner) error {
	assoc := r.db.WithContext(ctx).Model(event).Association("Partners")
	if len(partners) == 0 {
		if err := assoc.Clear(); err != nil {
			return fmt.Errorf("failed to clear event partners: %w", err)
		}
		return nil
	}
	if err := assoc.Replace(&partners); err != nil {
		return fmt.Errorf("failed to replace event partners: %w", err)
	}
	return nil
}

// Delete hard-deletes the event row; association rows are removed by the
// storage layer.
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Select(clause.Associations).Delete(&model.Event{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete event: %w", result.Error)
	}
	return nil
}
