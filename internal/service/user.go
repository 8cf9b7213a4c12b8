// internal/service/user.go
package service

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/outreachhub/outreachhub/internal/auth"
	"github.com/outreachhub/outreachhub/internal/domain"
	"github.com/outreachhub/outreachhub/internal/model"
	"github.com/outreachhub/outreachhub/internal/repository"
	"github.com/outreachhub/outreachhub/internal/validate"
)

// InvitationMailer sends the account-invitation email for a freshly created
// user. Nil mailers are allowed; invitations are then skipped.
type InvitationMailer interface {
	SendInvitation(to, firstName, username, organization string) error
}

// UserService handles authentication and the user CRUD that sits behind the
// access-control gate.
type UserService struct {
	repos    *repository.Repos
	atomic   repository.Atomic
	hasher   *auth.PasswordHasher
	mailer   InvitationMailer
	validate *validator.Validate
}

func NewUserService(repos *repository.Repos, atomic repository.Atomic, hasher *auth.PasswordHasher, mailer InvitationMailer) *UserService {
	return &UserService{
		repos:    repos,
		atomic:   atomic,
		hasher:   hasher,
		mailer:   mailer,
		validate: validator.New(),
	}
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Authenticate verifies a username/password pair and returns the user,
// whose Hash field is the capability token for subsequent requests.
func (s *UserService) Authenticate(ctx context.Context, in LoginInput) (*model.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repos.Users.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	verified, err := s.hasher.Verify(in.Password, user.Password)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// List returns the caller's organization's users. Administrators only.
func (s *UserService) List(ctx context.Context, caller *model.User) ([]model.User, error) {
	if err := auth.RequireAdmin(caller); err != nil {
		return nil, err
	}
	return s.repos.Users.FindByOrganization(ctx, caller.OrganizationID)
}

type UserCreateInput struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Email     string `json:"email" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Role      *int   `json:"role" validate:"required"`
}

// Create adds a user to the caller's organization. The requested role may
// not outrank the caller; duplicate usernames are a distinct conflict.
func (s *UserService) Create(ctx context.Context, caller *model.User, in UserCreateInput) (*model.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, domain.ErrInputMissing
	}
	role := model.Role(*in.Role)
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	if !validate.Email(in.Email) {
		return nil, domain.ErrInvalidEmail
	}
	if err := auth.RequireActOn(caller, role); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	token, err := auth.NewCapabilityToken()
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Hash:           token,
		Username:       in.Username,
		Password:       hashed,
		Email:          in.Email,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Role:           role,
		OrganizationID: caller.OrganizationID,
	}
	err = s.atomic.Do(ctx, func(r *repository.Repos) error {
		return r.Users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	user.Organization = caller.Organization

	if s.mailer != nil {
		if err := s.mailer.SendInvitation(user.Email, user.FirstName, user.Username, caller.Organization.Name); err != nil {
			// The account exists; a lost invitation is not worth failing
			// the request over.
			slog.WarnContext(ctx, "invitation email failed", "error", err, "username", user.Username)
		}
	}
	return user, nil
}

type UserUpdateInput struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Role      *int   `json:"role" validate:"required"`
}

// Update overwrites another user's profile fields and role. The target is
// addressed by username within the caller's organization.
func (s *UserService) Update(ctx context.Context, caller *model.User, in UserUpdateInput) (*model.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, domain.ErrInputMissing
	}

	target, err := s.repos.Users.FindByUsernameInOrg(ctx, caller.OrganizationID, in.Username)
	if err != nil {
		return nil, err
	}

	if !validate.Email(in.Email) {
		return nil, domain.ErrInvalidEmail
	}

	newRole := model.Role(*in.Role)
	if !newRole.Valid() {
		return nil, domain.ErrInvalidRole
	}
	// The caller must outrank (or equal) both the target's current role and
	// the role being assigned; anything else is an elevation.
	if err := auth.RequireActOn(caller, target.Role); err != nil {
		return nil, err
	}
	if err := auth.RequireActOn(caller, newRole); err != nil {
		return nil, err
	}

	target.Email = in.Email
	target.FirstName = in.FirstName
	target.LastName = in.LastName
	target.Role = newRole

	err = s.atomic.Do(ctx, func(r *repository.Repos) error {
		return r.Users.Update(ctx, target)
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}

type PasswordChangeInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// ChangePassword rotates the caller's own password after verifying the old
// one.
func (s *UserService) ChangePassword(ctx context.Context, caller *model.User, in PasswordChangeInput) error {
	if err := s.validate.Struct(in); err != nil {
		return domain.ErrInputMissing
	}

	verified, err := s.hasher.Verify(in.OldPassword, caller.Password)
	if err != nil || !verified {
		return domain.ErrInvalidCredentials
	}

	hashed, err := s.hasher.Hash(in.NewPassword)
	if err != nil {
		return err
	}
	caller.Password = hashed

	return s.atomic.Do(ctx, func(r *repository.Repos) error {
		return r.Users.Update(ctx, caller)
	})
}

// Delete removes a user of the caller's organization, rank permitting.
func (s *UserService) Delete(ctx context.Context, caller *model.User, username string) error {
	if username == "" {
		return domain.ErrInputMissing
	}

	target, err := s.repos.Users.FindByUsernameInOrg(ctx, caller.OrganizationID, username)
	if err != nil {
		return err
	}
	if err := auth.RequireActOn(caller, target.Role); err != nil {
		return err
	}

	return s.atomic.Do(ctx, func(r *repository.Repos) error {
		return r.Users.Delete(ctx, target.ID)
	})
}
