// internal/repository/user.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/outreachhub/outreachhub/internal/domain"
	"github.com/outreachhub/outreachhub/internal/model"
	"gorm.io/gorm"
)

type UserRepositoryIface interface {
	FindByHash(ctx context.Context, hash string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByUsernameInOrg(ctx context.Context, orgID uuid.UUID, username string) (*model.User, error)
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByHash resolves an opaque capability token to its user, with the
// owning organization preloaded. This is the identity resolver behind every
// authenticated request.
func (r *UserRepository) FindByHash(ctx context.Context, hash string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).Preload("Organization").
		Where("hash = ?", hash).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("failed to find user by hash: %w", result.Error)
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).Preload("Organization").
		Where("username = ?", username).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

// FindByUsernameInOrg looks a user up within one organization. Cross-tenant
// usernames are indistinguishable from missing ones.
func (r *UserRepository) FindByUsernameInOrg(ctx context.Context, orgID uuid.UUID, username string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).Preload("Organization").
		Where("username = ? AND organization_id = ?", username, orgID).
		First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user in organization: %w", result.Error)
	}
	return &user, nil
}

func (r *UserRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]model.User, error) {
	var users []model.User
	result := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("username").Find(&users)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list users: %w", result.Error)
	}
	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if IsUniqueViolation(result.Error) {
			return domain.ErrDuplicateUsername
		}
		return fmt.Errorf("failed to create user: %w", result.Error)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	result := r.db.WithContext(ctx).Omit("Organization").Save(user)
	if result.Error != nil {
		if IsUniqueViolation(result.Error) {
			return domain.ErrDuplicateUsername
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}

// Delete removes the user row outright. Soft deletion is an organization
// concept; a deleted user's capability token dies with the row.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	return nil
}
