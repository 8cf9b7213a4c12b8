package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/outreachhub/outreachhub/internal/domain"
	"github.com/outreachhub/outreachhub/internal/mocks"
	"github.com/outreachhub/outreachhub/internal/model"
	"github.com/outreachhub/outreachhub/internal/repository"
	"github.com/outreachhub/outreachhub/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func validEventInput() service.EventInput {
	return service.EventInput{
		Name:        "Winter Coat Drive",
		Description: "Annual coat collection",
		Date:        "2026-11-14",
		StartTime:   "09:30",
		EndTime:     "16:00",
	}
}

func eventTestFixtures(ctrl *gomock.Controller) (*service.EventService, *mocks.MockEventRepositoryIface, *mocks.MockPartnerRepositoryIface) {
	eventRepo := mocks.NewMockEventRepositoryIface(ctrl)
	partnerRepo := mocks.NewMockPartnerRepositoryIface(ctrl)
	repos := &repository.Repos{Events: eventRepo, Partners: partnerRepo}
	svc := service.NewEventService(repos, &passthroughAtomic{repos: repos})
	return svc, eventRepo, partnerRepo
}

func TestEventCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	caller := &model.User{ID: uuid.New(), OrganizationID: orgID, Role: model.RoleMember}

	t.Run("missing fields", func(t *testing.T) {
		svc, _, _ := eventTestFixtures(ctrl)

		in := validEventInput()
		in.Name = ""

		_, err := svc.Create(context.Background(), caller, in)
		assert.ErrorIs(t, err, domain.ErrInputMissing)
	})

	t.Run("impossible date is a value error", func(t *testing.T) {
		svc, _, _ := eventTestFixtures(ctrl)

		in := validEventInput()
		in.Date = "2026-02-30"

		_, err := svc.Create(context.Background(), caller, in)
		assert.ErrorIs(t, err, domain.ErrTemporalParse)
	})

	t.Run("out-of-range time is a value error", func(t *testing.T) {
		svc, _, _ := eventTestFixtures(ctrl)

		in := validEventInput()
		in.StartTime = "25:00"

		_, err := svc.Create(context.Background(), caller, in)
		assert.ErrorIs(t, err, domain.ErrTemporalParse)
	})

	t.Run("unrecognized date shape is a null result", func(t *testing.T) {
		svc, _, _ := eventTestFixtures(ctrl)

		in := validEventInput()
		in.Date = "14/11/2026"

		_, err := svc.Create(context.Background(), caller, in)
		assert.ErrorIs(t, err, domain.ErrTemporalNull)
	})

	t.Run("malformed and foreign partner ids are dropped", func(t *testing.T) {
		svc, eventRepo, partnerRepo := eventTestFixtures(ctrl)

		mine := model.Partner{ID: uuid.New(), OrganizationID: orgID}
		foreign := uuid.New()

		in := validEventInput()
		in.Partners = mine.ID.String() + ", not-a-uuid, " + foreign.String()

		eventID := uuid.New()
		populated := &model.Event{ID: eventID, Name: in.Name, OrganizationID: orgID}

		gomock.InOrder(
			// The repository filters to the caller's organization; the
			// foreign ID comes back empty-handed rather than as an error.
			partnerRepo.EXPECT().
				FindByIDsInOrg(gomock.Any(), orgID, []uuid.UUID{mine.ID, foreign}).
				Return([]model.Partner{mine}, nil),

			eventRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, e *model.Event) error {
					assert.Equal(t, orgID, e.OrganizationID)
					assert.Equal(t, time.Date(2026, 11, 14, 0, 0, 0, 0, time.UTC), e.Date)
					assert.Equal(t, "09:30:00", e.StartTime)
					assert.Equal(t, "16:00:00", e.EndTime)
					e.ID = eventID
					return nil
				}),

			eventRepo.EXPECT().
				ReplacePartners(gomock.Any(), gomock.Any(), []model.Partner{mine}).
				Return(nil),

			eventRepo.EXPECT().
				FindByIDInOrg(gomock.Any(), orgID, eventID).
				Return(populated, nil),
		)

		created, err := svc.Create(context.Background(), caller, in)
		assert.NoError(t, err)
		assert.Equal(t, populated, created)
	})
}

func TestEventUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	caller := &model.User{ID: uuid.New(), OrganizationID: orgID, Role: model.RoleMember}

	existing := &model.Event{ID: uuid.New(), Name: "Old Name", OrganizationID: orgID}

	t.Run("event of another organization reads as absent", func(t *testing.T) {
		svc, eventRepo, _ := eventTestFixtures(ctrl)

		foreignID := uuid.New()
		eventRepo.EXPECT().
			FindByIDInOrg(gomock.Any(), orgID, foreignID).
			Return(nil, domain.ErrNotFound)

		in := service.EventUpdateInput{EventID: foreignID.String(), EventInput: validEventInput()}

		_, err := svc.Update(context.Background(), caller, in)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("lookup precedes temporal checks", func(t *testing.T) {
		svc, eventRepo, _ := eventTestFixtures(ctrl)

		missingID := uuid.New()
		eventRepo.EXPECT().
			FindByIDInOrg(gomock.Any(), orgID, missingID).
			Return(nil, domain.ErrNotFound)

		in := service.EventUpdateInput{EventID: missingID.String(), EventInput: validEventInput()}
		in.Date = "2026-02-30"

		_, err := svc.Update(context.Background(), caller, in)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("overwrites fields and resets the partner set", func(t *testing.T) {
		svc, eventRepo, partnerRepo := eventTestFixtures(ctrl)

		in := service.EventUpdateInput{EventID: existing.ID.String(), EventInput: validEventInput()}
		populated := &model.Event{ID: existing.ID, Name: in.Name, OrganizationID: orgID}

		gomock.InOrder(
			eventRepo.EXPECT().
				FindByIDInOrg(gomock.Any(), orgID, existing.ID).
				Return(existing, nil),

			partnerRepo.EXPECT().
				FindByIDsInOrg(gomock.Any(), orgID, gomock.Nil()).
				Return(nil, nil),

			eventRepo.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, e *model.Event) error {
					assert.Equal(t, existing.ID, e.ID)
					assert.Equal(t, "Winter Coat Drive", e.Name)
					return nil
				}),

			eventRepo.EXPECT().
				ReplacePartners(gomock.Any(), gomock.Any(), gomock.Nil()).
				Return(nil),

			eventRepo.EXPECT().
				FindByIDInOrg(gomock.Any(), orgID, existing.ID).
				Return(populated, nil),
		)

		updated, err := svc.Update(context.Background(), caller, in)
		assert.NoError(t, err)
		assert.Equal(t, populated, updated)
	})
}

func TestEventDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	caller := &model.User{ID: uuid.New(), OrganizationID: orgID, Role: model.RoleMember}

	t.Run("empty id", func(t *testing.T) {
		svc, _, _ := eventTestFixtures(ctrl)

		err := svc.Delete(context.Background(), caller, "")
		assert.ErrorIs(t, err, domain.ErrInputMissing)
	})

	t.Run("malformed id reads as absent", func(t *testing.T) {
		svc, _, _ := eventTestFixtures(ctrl)

		err := svc.Delete(context.Background(), caller, "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("deletes within the caller's organization", func(t *testing.T) {
		svc, eventRepo, _ := eventTestFixtures(ctrl)

		event := &model.Event{ID: uuid.New(), OrganizationID: orgID}

		gomock.InOrder(
			eventRepo.EXPECT().
				FindByIDInOrg(gomock.Any(), orgID, event.ID).
				Return(event, nil),

			eventRepo.EXPECT().
				Delete(gomock.Any(), event.ID).
				Return(nil),
		)

		err := svc.Delete(context.Background(), caller, event.ID.String())
		assert.NoError(t, err)
	})
}
