// internal/repository/organization.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/outreachhub/outreachhub/internal/domain"
	"github.com/outreachhub/outreachhub/internal/model"
	"gorm.io/gorm"
)

type OrganizationRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	Create(ctx context.Context, org *model.Organization) error
	Update(ctx context.Context, org *model.Organization) error
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	result := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = false", id).First(&org)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find organization: %w", result.Error)
	}
	return &org, nil
}

func (r *OrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	result := r.db.WithContext(ctx).Create(org)
	if result.Error != nil {
		return fmt.Errorf("failed to create organization: %w", result.Error)
	}
	return nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org *model.Organization) error {
	result := r.db.WithContext(ctx).Omit("Users").Save(org)
	if result.Error != nil {
		return fmt.Errorf("failed to update organization: %w", result.Error)
	}
	return nil
}
