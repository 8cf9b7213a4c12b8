// internal/repository/partner.go
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

type PartnerRepositoryIface interface {
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Partner, error)
	FindByIDInOrg(ctx context.Context, orgID, id uuid.UUID) (*model.Partner, error)
	FindByIDsInOrg(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]model.Partner, error)
	Create(ctx context.Context, partner *model.Partner) error
	Update(ctx context.Context, partner *model.Partner) error
	ReplaceTags(ctx context.Context, partner *model.Partner, tags []model.Tag) error
	CreateIndividual(ctx context.Context, individual *model.Individual) error
	UpdateIndividual(ctx context.Context, individual *model.Individual) error
	DeleteIndividual(ctx context.Context, id uuid.UUID) error
	DeleteResourcesByPartner(ctx context.Context, partnerID uuid.UUID) error
	CreateResources(ctx context.Context, resources []model.Resource) error
}

type PartnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

func (r *PartnerRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Individual").
		Preload("Tags").
		Preload("Resources")
}

func (r *PartnerRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.Partner, error) {
	var partners []model.Partner
	result := r.preloaded(ctx).
		Where("organization_id = ?", orgID).
		Order("name").Find(&partners)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list partners: %w", result.Error)
	}
	return partners, nil
}

// FindByIDInOrg looks a partner up within one organization. A guessed ID
// from another tenant is indistinguishable from a missing one.
func (r *PartnerRepository) FindByIDInOrg(ctx context.Context, orgID, id uuid.UUID) (*model.Partner, error) {
	var partner model.Partner
	result := r.preloaded(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).First(&partner)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find partner: %w", result.Error)
	}
	return &partner, nil
}

// FindByIDsInOrg resolves a set of partner IDs to rows of the given
// organization. IDs from other tenants drop out of the result.
func (r *PartnerRepository) FindByIDsInOrg(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]model.Partner, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var partners []model.Partner
	result := r.db.WithContext(ctx).
		Where("organization_id = ? AND id IN ?", orgID, ids).Find(&partners)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find partners: %w", result.Error)
	}
	return partners, nil
}

func (r *PartnerRepository) Create(ctx context.Context, partner *model.Partner) error {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(partner)
	if result.Error != nil {
		return fmt.Errorf("failed to create partner: %w", result.Error)
	}
	return nil
}

// Update saves the partner's scalar fields only; associations are managed
// through ReplaceTags and the resource methods.
func (r *PartnerRepository) Update(ctx context.Context, partner *model.Partner) error {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Save(partner)
	if result.Error != nil {
		return fmt.Errorf("failed to update partner: %w", result.Error)
	}
	return nil
}

// ReplaceTags clears the partner's tag association and sets it to tags.
func (r *PartnerRepository) ReplaceTags(ctx context.Context, partner *model.Partner, tags []model.Tag) error {
	assoc := r.db.WithContext(ctx).Model(partner).Association("Tags")
	if len(tags) == 0 {
		if err := assoc.Clear(); err != nil {
			return fmt.Errorf("failed to clear partner tags: %w", err)
		}
		return nil
	}
	if err := assoc.Replace(&tags); err != nil {
		return fmt.Errorf("failed to replace partner tags: %w", err)
	}
	return nil
}

func (r *PartnerRepository) CreateIndividual(ctx context.Context, individual *model.Individual) error {
	result := r.db.WithContext(ctx).Create(individual)
	if result.Error != nil {
		return fmt.Errorf("failed to create individual: %w", result.Error)
	}
	return nil
}

func (r *PartnerRepository) UpdateIndividual(ctx context.Context, individual *model.Individual) error {
	result := r.db.WithContext(ctx).Save(individual)
	if result.Error != nil {
		return fmt.Errorf("failed to update individual: %w", result.Error)
	}
	return nil
}

// DeleteIndividual removes the individual; the owned partner, its resources
// and its association rows go with it through the storage-level cascade.
func (r *PartnerRepository) DeleteIndividual(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Individual{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete individual: %w", result.Error)
	}
	return nil
}

func (r *PartnerRepository) DeleteResourcesByPartner(ctx context.Context, partnerID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("partner_id = ?", partnerID).Delete(&model.Resource{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete resources: %w", result.Error)
	}
	return nil
}

func (r *PartnerRepository) CreateResources(ctx context.Context, resources []model.Resource) error {
	if len(resources) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Create(&resources)
	if result.Error != nil {
		return fmt.Errorf("failed to create resources: %w", result.Error)
	}
	return nil
}
