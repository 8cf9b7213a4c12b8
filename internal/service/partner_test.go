package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/outreachhub/outreachhub/internal/domain"
	"github.com/outreachhub/outreachhub/internal/mocks"
	"github.com/outreachhub/outreachhub/internal/model"
	"github.com/outreachhub/outreachhub/internal/repository"
	"github.com/outreachhub/outreachhub/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func intPtr(n int) *int { return &n }

func validPartnerInput() service.PartnerInput {
	return service.PartnerInput{
		Name:                "Harbor Light Kitchen",
		Description:         "Community kitchen downtown",
		Type:                intPtr(1),
		Email:               "kitchen@example.com",
		Phone:               "6045550199",
		IndividualFirstName: "Dana",
		IndividualLastName:  "Reyes",
		IndividualEmail:     "dana@example.com",
		IndividualPhone:     "6045550132",
	}
}

func partnerTestFixtures(ctrl *gomock.Controller) (*service.PartnerService, *mocks.MockPartnerRepositoryIface, *mocks.MockTagRepositoryIface) {
	partnerRepo := mocks.NewMockPartnerRepositoryIface(ctrl)
	tagRepo := mocks.NewMockTagRepositoryIface(ctrl)
	repos := &repository.Repos{Partners: partnerRepo, Tags: tagRepo}
	svc := service.NewPartnerService(repos, &passthroughAtomic{repos: repos}, service.NewTagReconciler(), nil, "CA")
	return svc, partnerRepo, tagRepo
}

func TestPartnerCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	caller := &model.User{ID: uuid.New(), OrganizationID: orgID, Role: model.RoleMember}

	t.Run("missing field wins over bad formats", func(t *testing.T) {
		svc, _, _ := partnerTestFixtures(ctrl)

		in := validPartnerInput()
		in.Email = ""
		in.Phone = "not a phone"

		_, err := svc.Create(context.Background(), caller, in)
		assert.ErrorIs(t, err, domain.ErrInputMissing)
	})

	t.Run("partner type outside the known range", func(t *testing.T) {
		svc, _, _ := partnerTestFixtures(ctrl)

		in := validPartnerInput()
		in.Type = intPtr(7)

		_, err := svc.Create(context.Background(), caller, in)
		assert.ErrorIs(t, err, domain.ErrInputMissing)
	})

	t.Run("bad email wins over bad phone", func(t *testing.T) {
		svc, _, _ := partnerTestFixtures(ctrl)

		in := validPartnerInput()
		in.IndividualEmail = "not-an-email"
		in.Phone = "not a phone"

		_, err := svc.Create(context.Background(), caller, in)
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})

	t.Run("bad phone", func(t *testing.T) {
		svc, _, _ := partnerTestFixtures(ctrl)

		in := validPartnerInput()
		in.IndividualPhone = "12"

		_, err := svc.Create(context.Background(), caller, in)
		assert.ErrorIs(t, err, domain.ErrInvalidPhone)
	})

	t.Run("malformed resource lists reject before any write", func(t *testing.T) {
		svc, _, _ := partnerTestFixtures(ctrl)

		in := validPartnerInput()
		in.Types = "0"
		in.Names = "Canned Soup, Blankets"
		in.Amounts = "10, 20"

		_, err := svc.Create(context.Background(), caller, in)
		assert.ErrorIs(t, err, domain.ErrResourceList)
	})

	t.Run("writes individual, partner, tags and resources together", func(t *testing.T) {
		svc, partnerRepo, tagRepo := partnerTestFixtures(ctrl)

		in := validPartnerInput()
		in.Tags = "Food"
		in.Types = "0"
		in.Names = "Canned Soup"
		in.Amounts = "10"

		individualID := uuid.New()
		partnerID := uuid.New()
		foodTag := model.Tag{ID: uuid.New(), Name: "Food", OrganizationID: orgID}
		populated := &model.Partner{ID: partnerID, Name: in.Name, OrganizationID: orgID}

		gomock.InOrder(
			partnerRepo.EXPECT().
				CreateIndividual(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, ind *model.Individual) error {
					assert.Equal(t, "Dana", ind.FirstName)
					assert.Equal(t, "+1 604-555-0132", ind.Phone)
					ind.ID = individualID
					return nil
				}),

			partnerRepo.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p *model.Partner) error {
					assert.Equal(t, individualID, p.IndividualID)
					assert.Equal(t, orgID, p.OrganizationID)
					assert.Equal(t, model.PartnerCommunity, p.Type)
					assert.Equal(t, "+1 604-555-0199", p.Phone)
					p.ID = partnerID
					return nil
				}),

			tagRepo.EXPECT().
				FindByOrgAndNames(gomock.Any(), orgID, []string{"Food"}).
				Return([]model.Tag{foodTag}, nil).
				Times(2),

			partnerRepo.EXPECT().
				ReplaceTags(gomock.Any(), gomock.Any(), []model.Tag{foodTag}).
				Return(nil),

			partnerRepo.EXPECT().
				CreateResources(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, resources []model.Resource) error {
					assert.Len(t, resources, 1)
					assert.Equal(t, partnerID, resources[0].PartnerID)
					assert.Equal(t, "Canned Soup", resources[0].Name)
					return nil
				}),

			partnerRepo.EXPECT().
				FindByIDInOrg(gomock.Any(), orgID, partnerID).
				Return(populated, nil),
		)

		created, err := svc.Create(context.Background(), caller, in)
		assert.NoError(t, err)
		assert.Equal(t, populated, created)
	})
}

func TestPartnerUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	caller := &model.User{ID: uuid.New(), OrganizationID: orgID, Role: model.RoleMember}

	existing := &model.Partner{
		ID:             uuid.New(),
		Name:           "Harbor Light Kitchen",
		OrganizationID: orgID,
		IndividualID:   uuid.New(),
		Individual:     model.Individual{FirstName: "Old", LastName: "Name"},
	}
	existing.Individual.ID = existing.IndividualID

	t.Run("runs the same input ladder as create", func(t *testing.T) {
		svc, _, _ := partnerTestFixtures(ctrl)

		in := service.PartnerUpdateInput{PartnerInput: validPartnerInput()}
		_, err := svc.Update(context.Background(), caller, in)
		assert.ErrorIs(t, err, domain.ErrInputMissing, "missing partner id")

		in = service.PartnerUpdateInput{PartnerID: existing.ID.String(), PartnerInput: validPartnerInput()}
		in.Name = ""
		_, err = svc.Update(context.Background(), caller, in)
		assert.ErrorIs(t, err, domain.ErrInputMissing, "missing field")

		in = service.PartnerUpdateInput{PartnerID: existing.ID.String(), PartnerInput: validPartnerInput()}
		in.Type = intPtr(7)
		_, err = svc.Update(context.Background(), caller, in)
		assert.ErrorIs(t, err, domain.ErrInputMissing, "partner type outside the known range")
	})

	t.Run("malformed id reads as absent", func(t *testing.T) {
		svc, _, _ := partnerTestFixtures(ctrl)

		in := service.PartnerUpdateInput{PartnerID: "not-a-uuid", PartnerInput: validPartnerInput()}

		_, err := svc.Update(context.Background(), caller, in)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("partner of another organization reads as absent", func(t *testing.T) {
		svc, partnerRepo, _ := partnerTestFixtures(ctrl)

		foreignID := uuid.New()
		partnerRepo.EXPECT().
			FindByIDInOrg(gomock.Any(), orgID, foreignID).
			Return(nil, domain.ErrNotFound)

		in := service.PartnerUpdateInput{PartnerID: foreignID.String(), PartnerInput: validPartnerInput()}

		_, err := svc.Update(context.Background(), caller, in)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("bad resource lists leave existing resources untouched", func(t *testing.T) {
		svc, partnerRepo, _ := partnerTestFixtures(ctrl)

		partnerRepo.EXPECT().
			FindByIDInOrg(gomock.Any(), orgID, existing.ID).
			Return(existing, nil)

		in := service.PartnerUpdateInput{PartnerID: existing.ID.String(), PartnerInput: validPartnerInput()}
		in.Types = "0, 1"
		in.Names = "Canned Soup"
		in.Amounts = "10"

		// No delete or create expectations: the request must fail before the
		// write transaction opens.
		_, err := svc.Update(context.Background(), caller, in)
		assert.ErrorIs(t, err, domain.ErrResourceList)
	})

	t.Run("replaces resources, individual, scalars and tags", func(t *testing.T) {
		svc, partnerRepo, tagRepo := partnerTestFixtures(ctrl)

		in := service.PartnerUpdateInput{PartnerID: existing.ID.String(), PartnerInput: validPartnerInput()}
		in.Name = "Harbor Light Pantry"
		in.Tags = "Food"

		foodTag := model.Tag{ID: uuid.New(), Name: "Food", OrganizationID: orgID}
		populated := &model.Partner{ID: existing.ID, Name: in.Name, OrganizationID: orgID}

		partnerRepo.EXPECT().
			FindByIDInOrg(gomock.Any(), orgID, existing.ID).
			Return(existing, nil)

		gomock.InOrder(
			partnerRepo.EXPECT().
				DeleteResourcesByPartner(gomock.Any(), existing.ID).
				Return(nil),

			partnerRepo.EXPECT().
				CreateResources(gomock.Any(), gomock.Any()).
				Return(nil),

			partnerRepo.EXPECT().
				UpdateIndividual(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, ind *model.Individual) error {
					assert.Equal(t, existing.IndividualID, ind.ID)
					assert.Equal(t, "Dana", ind.FirstName)
					return nil
				}),

			partnerRepo.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p *model.Partner) error {
					assert.Equal(t, existing.ID, p.ID)
					assert.Equal(t, "Harbor Light Pantry", p.Name)
					return nil
				}),

			tagRepo.EXPECT().
				FindByOrgAndNames(gomock.Any(), orgID, []string{"Food"}).
				Return([]model.Tag{foodTag}, nil).
				Times(2),

			partnerRepo.EXPECT().
				ReplaceTags(gomock.Any(), gomock.Any(), []model.Tag{foodTag}).
				Return(nil),

			partnerRepo.EXPECT().
				FindByIDInOrg(gomock.Any(), orgID, existing.ID).
				Return(populated, nil),
		)

		updated, err := svc.Update(context.Background(), caller, in)
		assert.NoError(t, err)
		assert.Equal(t, populated, updated)
	})
}

func TestPartnerDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	caller := &model.User{ID: uuid.New(), OrganizationID: orgID, Role: model.RoleMember}

	t.Run("empty id", func(t *testing.T) {
		svc, _, _ := partnerTestFixtures(ctrl)

		err := svc.Delete(context.Background(), caller, "")
		assert.ErrorIs(t, err, domain.ErrInputMissing)
	})

	t.Run("deletes through the owned individual", func(t *testing.T) {
		svc, partnerRepo, _ := partnerTestFixtures(ctrl)

		partner := &model.Partner{ID: uuid.New(), IndividualID: uuid.New(), OrganizationID: orgID}

		gomock.InOrder(
			partnerRepo.EXPECT().
				FindByIDInOrg(gomock.Any(), orgID, partner.ID).
				Return(partner, nil),

			partnerRepo.EXPECT().
				DeleteIndividual(gomock.Any(), partner.IndividualID).
				Return(nil),
		)

		err := svc.Delete(context.Background(), caller, partner.ID.String())
		assert.NoError(t, err)
	})
}
