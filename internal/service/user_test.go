package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/outreachhub/outreachhub/internal/auth"
	"github.com/outreachhub/outreachhub/internal/domain"
	"github.com/outreachhub/outreachhub/internal/mocks"
	"github.com/outreachhub/outreachhub/internal/model"
	"github.com/outreachhub/outreachhub/internal/repository"
	"github.com/outreachhub/outreachhub/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type recordingMailer struct {
	to, firstName, username, organization string
	sent                                  bool
	err                                   error
}

func (m *recordingMailer) SendInvitation(to, firstName, username, organization string) error {
	m.to, m.firstName, m.username, m.organization = to, firstName, username, organization
	m.sent = true
	return m.err
}

func userTestFixtures(ctrl *gomock.Controller, mailer service.InvitationMailer) (*service.UserService, *mocks.MockUserRepositoryIface) {
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	repos := &repository.Repos{Users: userRepo}
	svc := service.NewUserService(repos, &passthroughAtomic{repos: repos}, auth.NewPasswordHasher(), mailer)
	return svc, userRepo
}

func TestAuthenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hashed, err := hasher.Hash("correct horse")
	assert.NoError(t, err)

	user := &model.User{
		ID:       uuid.New(),
		Username: "dreyes",
		Password: hashed,
		Hash:     "aabbcc",
	}

	t.Run("valid credentials return the user", func(t *testing.T) {
		svc, userRepo := userTestFixtures(ctrl, nil)

		userRepo.EXPECT().
			FindByUsername(gomock.Any(), "dreyes").
			Return(user, nil)

		got, err := svc.Authenticate(context.Background(), service.LoginInput{Username: "dreyes", Password: "correct horse"})
		assert.NoError(t, err)
		assert.Equal(t, "aabbcc", got.Hash)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, userRepo := userTestFixtures(ctrl, nil)

		userRepo.EXPECT().
			FindByUsername(gomock.Any(), "dreyes").
			Return(user, nil)

		_, err := svc.Authenticate(context.Background(), service.LoginInput{Username: "dreyes", Password: "wrong"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown username reads the same as a wrong password", func(t *testing.T) {
		svc, userRepo := userTestFixtures(ctrl, nil)

		userRepo.EXPECT().
			FindByUsername(gomock.Any(), "nobody").
			Return(nil, domain.ErrIdentityNotFound)

		_, err := svc.Authenticate(context.Background(), service.LoginInput{Username: "nobody", Password: "whatever"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestUserList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()

	t.Run("members may not list users", func(t *testing.T) {
		svc, _ := userTestFixtures(ctrl, nil)

		caller := &model.User{Role: model.RoleMember, OrganizationID: orgID}
		_, err := svc.List(context.Background(), caller)
		assert.ErrorIs(t, err, domain.ErrAuthorizationDenied)
	})

	t.Run("admins list their organization", func(t *testing.T) {
		svc, userRepo := userTestFixtures(ctrl, nil)

		caller := &model.User{Role: model.RoleAdmin, OrganizationID: orgID}
		userRepo.EXPECT().
			FindByOrganization(gomock.Any(), orgID).
			Return([]model.User{{Username: "dreyes"}}, nil)

		users, err := svc.List(context.Background(), caller)
		assert.NoError(t, err)
		assert.Len(t, users, 1)
	})
}

func validUserCreateInput() service.UserCreateInput {
	return service.UserCreateInput{
		Username:  "newstaff",
		Password:  "s3cret pass",
		Email:     "newstaff@example.com",
		FirstName: "Sam",
		LastName:  "Okafor",
		Role:      intPtr(int(model.RoleMember)),
	}
}

func TestUserCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	admin := &model.User{
		ID:             uuid.New(),
		Role:           model.RoleAdmin,
		OrganizationID: orgID,
		Organization:   model.Organization{ID: orgID, Name: "Harbor Light"},
	}

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := userTestFixtures(ctrl, nil)

		in := validUserCreateInput()
		in.Email = ""

		_, err := svc.Create(context.Background(), admin, in)
		assert.ErrorIs(t, err, domain.ErrInputMissing)
	})

	t.Run("unknown role value", func(t *testing.T) {
		svc, _ := userTestFixtures(ctrl, nil)

		in := validUserCreateInput()
		in.Role = intPtr(9)

		_, err := svc.Create(context.Background(), admin, in)
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})

	t.Run("admin may not mint an owner", func(t *testing.T) {
		svc, _ := userTestFixtures(ctrl, nil)

		in := validUserCreateInput()
		in.Role = intPtr(int(model.RoleOwner))

		_, err := svc.Create(context.Background(), admin, in)
		assert.ErrorIs(t, err, domain.ErrAuthorizationDenied)
	})

	t.Run("member may not create anyone", func(t *testing.T) {
		svc, _ := userTestFixtures(ctrl, nil)

		member := &model.User{Role: model.RoleMember, OrganizationID: orgID}
		_, err := svc.Create(context.Background(), member, validUserCreateInput())
		assert.ErrorIs(t, err, domain.ErrAuthorizationDenied)
	})

	t.Run("duplicate username is a distinct conflict", func(t *testing.T) {
		svc, userRepo := userTestFixtures(ctrl, nil)

		userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(domain.ErrDuplicateUsername)

		_, err := svc.Create(context.Background(), admin, validUserCreateInput())
		assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	})

	t.Run("creates with hashed password, token and invitation", func(t *testing.T) {
		mailer := &recordingMailer{}
		svc, userRepo := userTestFixtures(ctrl, mailer)

		userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User) error {
				assert.Equal(t, orgID, u.OrganizationID)
				assert.Equal(t, model.RoleMember, u.Role)
				assert.NotEqual(t, "s3cret pass", u.Password)
				assert.Len(t, u.Hash, 64)
				return nil
			})

		created, err := svc.Create(context.Background(), admin, validUserCreateInput())
		assert.NoError(t, err)
		assert.Equal(t, "Harbor Light", created.Organization.Name)
		assert.True(t, mailer.sent)
		assert.Equal(t, "newstaff@example.com", mailer.to)
		assert.Equal(t, "Harbor Light", mailer.organization)
	})

	t.Run("a failed invitation does not fail the create", func(t *testing.T) {
		mailer := &recordingMailer{err: assert.AnError}
		svc, userRepo := userTestFixtures(ctrl, mailer)

		userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.Create(context.Background(), admin, validUserCreateInput())
		assert.NoError(t, err)
		assert.True(t, mailer.sent)
	})
}

func TestUserUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	admin := &model.User{ID: uuid.New(), Role: model.RoleAdmin, OrganizationID: orgID}

	in := service.UserUpdateInput{
		Username:  "dreyes",
		Email:     "dana@example.com",
		FirstName: "Dana",
		LastName:  "Reyes",
		Role:      intPtr(int(model.RoleMember)),
	}

	t.Run("admin may not touch the owner", func(t *testing.T) {
		svc, userRepo := userTestFixtures(ctrl, nil)

		owner := &model.User{Username: "dreyes", Role: model.RoleOwner, OrganizationID: orgID}
		userRepo.EXPECT().
			FindByUsernameInOrg(gomock.Any(), orgID, "dreyes").
			Return(owner, nil)

		_, err := svc.Update(context.Background(), admin, in)
		assert.ErrorIs(t, err, domain.ErrAuthorizationDenied)
	})

	t.Run("admin may not assign a role above their own", func(t *testing.T) {
		svc, userRepo := userTestFixtures(ctrl, nil)

		member := &model.User{Username: "dreyes", Role: model.RoleMember, OrganizationID: orgID}
		userRepo.EXPECT().
			FindByUsernameInOrg(gomock.Any(), orgID, "dreyes").
			Return(member, nil)

		elevated := in
		elevated.Role = intPtr(int(model.RoleOwner))

		_, err := svc.Update(context.Background(), admin, elevated)
		assert.ErrorIs(t, err, domain.ErrAuthorizationDenied)
	})

	t.Run("unknown username within the organization", func(t *testing.T) {
		svc, userRepo := userTestFixtures(ctrl, nil)

		userRepo.EXPECT().
			FindByUsernameInOrg(gomock.Any(), orgID, "dreyes").
			Return(nil, domain.ErrIdentityNotFound)

		_, err := svc.Update(context.Background(), admin, in)
		assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
	})

	t.Run("overwrites profile fields and role", func(t *testing.T) {
		svc, userRepo := userTestFixtures(ctrl, nil)

		target := &model.User{
			ID:             uuid.New(),
			Username:       "dreyes",
			Role:           model.RoleAdmin,
			OrganizationID: orgID,
		}

		gomock.InOrder(
			userRepo.EXPECT().
				FindByUsernameInOrg(gomock.Any(), orgID, "dreyes").
				Return(target, nil),

			userRepo.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, u *model.User) error {
					assert.Equal(t, target.ID, u.ID)
					assert.Equal(t, model.RoleMember, u.Role)
					assert.Equal(t, "dana@example.com", u.Email)
					return nil
				}),
		)

		updated, err := svc.Update(context.Background(), admin, in)
		assert.NoError(t, err)
		assert.Equal(t, model.RoleMember, updated.Role)
	})
}

func TestChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hashed, err := hasher.Hash("old pass")
	assert.NoError(t, err)

	caller := &model.User{ID: uuid.New(), Username: "dreyes", Password: hashed}

	t.Run("wrong old password", func(t *testing.T) {
		svc, _ := userTestFixtures(ctrl, nil)

		err := svc.ChangePassword(context.Background(), caller, service.PasswordChangeInput{
			OldPassword: "wrong",
			NewPassword: "new pass",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("rotates after verifying the old password", func(t *testing.T) {
		svc, userRepo := userTestFixtures(ctrl, nil)

		userRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User) error {
				verified, err := hasher.Verify("new pass", u.Password)
				assert.NoError(t, err)
				assert.True(t, verified)
				return nil
			})

		err := svc.ChangePassword(context.Background(), caller, service.PasswordChangeInput{
			OldPassword: "old pass",
			NewPassword: "new pass",
		})
		assert.NoError(t, err)
	})
}

func TestUserDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	admin := &model.User{ID: uuid.New(), Role: model.RoleAdmin, OrganizationID: orgID}

	t.Run("empty username", func(t *testing.T) {
		svc, _ := userTestFixtures(ctrl, nil)

		err := svc.Delete(context.Background(), admin, "")
		assert.ErrorIs(t, err, domain.ErrInputMissing)
	})

	t.Run("admin may not delete the owner", func(t *testing.T) {
		svc, userRepo := userTestFixtures(ctrl, nil)

		owner := &model.User{ID: uuid.New(), Username: "owner", Role: model.RoleOwner, OrganizationID: orgID}
		userRepo.EXPECT().
			FindByUsernameInOrg(gomock.Any(), orgID, "owner").
			Return(owner, nil)

		err := svc.Delete(context.Background(), admin, "owner")
		assert.ErrorIs(t, err, domain.ErrAuthorizationDenied)
	})

	t.Run("deletes a member", func(t *testing.T) {
		svc, userRepo := userTestFixtures(ctrl, nil)

		member := &model.User{ID: uuid.New(), Username: "sokafor", Role: model.RoleMember, OrganizationID: orgID}

		gomock.InOrder(
			userRepo.EXPECT().
				FindByUsernameInOrg(gomock.Any(), orgID, "sokafor").
				Return(member, nil),

			userRepo.EXPECT().
				Delete(gomock.Any(), member.ID).
				Return(nil),
		)

		err := svc.Delete(context.Background(), admin, "sokafor")
		assert.NoError(t, err)
	})
}
