// internal/service/organization.go
package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/outreachhub/outreachhub/internal/auth"
	"github.com/outreachhub/outreachhub/internal/domain"
	"github.com/outreachhub/outreachhub/internal/model"
	"github.com/outreachhub/outreachhub/internal/repository"
)

// OrganizationService covers tenant settings and the two composite
// listings (dashboard and admin).
type OrganizationService struct {
	repos    *repository.Repos
	atomic   repository.Atomic
	validate *validator.Validate
}

func NewOrganizationService(repos *repository.Repos, atomic repository.Atomic) *OrganizationService {
	return &OrganizationService{
		repos:    repos,
		atomic:   atomic,
		validate: validator.New(),
	}
}

type OrganizationUpdateInput struct {
	Name        string  `json:"name" validate:"required"`
	Message     *string `json:"message"`
	MessageIcon *int    `json:"message_icon"`
}

// Update overwrites the caller's organization's name and optional welcome
// message. Administrators only.
func (s *OrganizationService) Update(ctx context.Context, caller *model.User, in OrganizationUpdateInput) (*model.Organization, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, domain.ErrInputMissing
	}
	if err := auth.RequireAdmin(caller); err != nil {
		return nil, err
	}

	org, err := s.repos.Organizations.FindByID(ctx, caller.OrganizationID)
	if err != nil {
		return nil, err
	}

	org.Name = in.Name
	if in.Message != nil && *in.Message == "" {
		in.Message = nil
	}
	org.Message = in.Message
	org.MessageIcon = in.MessageIcon

	err = s.atomic.Do(ctx, func(r *repository.Repos) error {
		return r.Organizations.Update(ctx, org)
	})
	if err != nil {
		return nil, err
	}
	return org, nil
}

// Dashboard bundles the organization's events with the organization itself.
// Any authenticated role may read it.
type Dashboard struct {
	Events       []model.Event
	Organization *model.Organization
}

func (s *OrganizationService) Dashboard(ctx context.Context, caller *model.User) (*Dashboard, error) {
	events, err := s.repos.Events.FindByOrganization(ctx, caller.OrganizationID)
	if err != nil {
		return nil, err
	}
	org, err := s.repos.Organizations.FindByID(ctx, caller.OrganizationID)
	if err != nil {
		return nil, err
	}
	return &Dashboard{Events: events, Organization: org}, nil
}

// AdminOverview bundles the organization's users with the organization
// itself. Administrators only.
type AdminOverview struct {
	Users        []model.User
	Organization *model.Organization
}

func (s *OrganizationService) AdminOverview(ctx context.Context, caller *model.User) (*AdminOverview, error) {
	if err := auth.RequireAdmin(caller); err != nil {
		return nil, err
	}
	users, err := s.repos.Users.FindByOrganization(ctx, caller.OrganizationID)
	if err != nil {
		return nil, err
	}
	org, err := s.repos.Organizations.FindByID(ctx, caller.OrganizationID)
	if err != nil {
		return nil, err
	}
	return &AdminOverview{Users: users, Organization: org}, nil
}
