// internal/repository/tag.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/outreachhub/outreachhub/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepositoryIface interface {
	FindByOrgAndNames(ctx context.Context, orgID uuid.UUID, names []string) ([]model.Tag, error)
	CountAll(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, tags []model.Tag) error
}

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) FindByOrgAndNames(ctx context.Context, orgID uuid.UUID, names []string) ([]model.Tag, error) {
	var tags []model.Tag
	result := r.db.WithContext(ctx).
		Where("organization_id = ? AND name IN ?", orgID, names).Find(&tags)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find tags: %w", result.Error)
	}
	return tags, nil
}

// CountAll counts tags across every organization. The color palette is
// indexed by this global creation count.
func (r *TagRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Tag{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count tags: %w", result.Error)
	}
	return count, nil
}

// CreateBatch bulk-inserts tags, skipping names that already exist. The
// skip happens at the store (ON CONFLICT DO NOTHING) rather than as a
// unique-violation error: callers run inside a transaction, and on Postgres
// a statement error aborts the whole transaction, so a raised 23505 could
// never be recovered from by further queries.
func (r *TagRepository) CreateBatch(ctx context.Context, tags []model.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&tags)
	if result.Error != nil {
		return fmt.Errorf("failed to create tags: %w", result.Error)
	}
	return nil
}
