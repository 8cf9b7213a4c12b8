// internal/service/event.go
package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/outreachhub/outreachhub/internal/domain"
	"github.com/outreachhub/outreachhub/internal/model"
	"github.com/outreachhub/outreachhub/internal/repository"
	"github.com/outreachhub/outreachhub/internal/validate"
)

// EventService manages events and their partner-association sets. It is
// structurally the partner manager's smaller sibling: no owned sub-entities
// beyond the association rows.
type EventService struct {
	repos    *repository.Repos
	atomic   repository.Atomic
	validate *validator.Validate
}

func NewEventService(repos *repository.Repos, atomic repository.Atomic) *EventService {
	return &EventService{
		repos:    repos,
		atomic:   atomic,
		validate: validator.New(),
	}
}

type EventInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	Partners    string `json:"partners"`
}

type eventTemporal struct {
	date  *time.Time
	start *validate.TimeOfDay
	end   *validate.TimeOfDay
}

// checkTemporal runs the three independent parse checks, then the null
// check. A value error on any of the three is one failure kind; a
// pattern mismatch (parser returned nothing) is a different one.
func checkTemporal(in EventInput) (*eventTemporal, error) {
	date, err := validate.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrTemporalParse
	}
	start, err := validate.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return nil, domain.ErrTemporalParse
	}
	end, err := validate.ParseTimeOfDay(in.EndTime)
	if err != nil {
		return nil, domain.ErrTemporalParse
	}
	if date == nil || start == nil || end == nil {
		return nil, domain.ErrTemporalNull
	}
	return &eventTemporal{date: date, start: start, end: end}, nil
}

// partnerIDs parses the delimited ID list; malformed entries are ignored
// the same way foreign IDs are.
func partnerIDs(raw string) []uuid.UUID {
	var ids []uuid.UUID
	for _, s := range SplitNames(raw) {
		if id, err := uuid.Parse(s); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// List returns the caller's organization's events with partners preloaded.
func (s *EventService) List(ctx context.Context, caller *model.User) ([]model.Event, error) {
	return s.repos.Events.FindByOrganization(ctx, caller.OrganizationID)
}

// Create validates and writes the event plus its partner association in
// one transaction. Requested partner IDs are filtered to the caller's
// organization; foreign IDs are silently dropped.
func (s *EventService) Create(ctx context.Context, caller *model.User, in EventInput) (*model.Event, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, domain.ErrInputMissing
	}
	temporal, err := checkTemporal(in)
	if err != nil {
		return nil, err
	}

	partners, err := s.repos.Partners.FindByIDsInOrg(ctx, caller.OrganizationID, partnerIDs(in.Partners))
	if err != nil {
		return nil, err
	}

	var created *model.Event
	err = s.atomic.Do(ctx, func(r *repository.Repos) error {
		event := &model.Event{
			Name:           in.Name,
			Description:    in.Description,
			Date:           *temporal.date,
			StartTime:      temporal.start.String(),
			EndTime:        temporal.end.String(),
			OrganizationID: caller.OrganizationID,
		}
		if err := r.Events.Create(ctx, event); err != nil {
			return err
		}
		if err := r.Events.ReplacePartners(ctx, event, partners); err != nil {
			return err
		}
		created, err = r.Events.FindByIDInOrg(ctx, caller.OrganizationID, event.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

type EventUpdateInput struct {
	EventID string `json:"event_id" validate:"required"`
	EventInput
}

// Update overwrites the event's fields and resets its partner association.
// The target must exist within the caller's organization.
func (s *EventService) Update(ctx context.Context, caller *model.User, in EventUpdateInput) (*model.Event, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, domain.ErrInputMissing
	}

	eventID, err := uuid.Parse(in.EventID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	event, err := s.repos.Events.FindByIDInOrg(ctx, caller.OrganizationID, eventID)
	if err != nil {
		return nil, err
	}

	temporal, err := checkTemporal(in.EventInput)
	if err != nil {
		return nil, err
	}

	partners, err := s.repos.Partners.FindByIDsInOrg(ctx, caller.OrganizationID, partnerIDs(in.Partners))
	if err != nil {
		return nil, err
	}

	var updated *model.Event
	err = s.atomic.Do(ctx, func(r *repository.Repos) error {
		target := *event
		target.Name = in.Name
		target.Description = in.Description
		target.Date = *temporal.date
		target.StartTime = temporal.start.String()
		target.EndTime = temporal.end.String()
		if err := r.Events.Update(ctx, &target); err != nil {
			return err
		}
		if err := r.Events.ReplacePartners(ctx, &target, partners); err != nil {
			return err
		}
		updated, err = r.Events.FindByIDInOrg(ctx, caller.OrganizationID, event.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete hard-deletes the event; association rows go with it, partners are
// untouched.
func (s *EventService) Delete(ctx context.Context, caller *model.User, rawEventID string) error {
	if rawEventID == "" {
		return domain.ErrInputMissing
	}
	eventID, err := uuid.Parse(rawEventID)
	if err != nil {
		return domain.ErrNotFound
	}
	event, err := s.repos.Events.FindByIDInOrg(ctx, caller.OrganizationID, eventID)
	if err != nil {
		return err
	}

	return s.atomic.Do(ctx, func(r *repository.Repos) error {
		return r.Events.Delete(ctx, event.ID)
	})
}
