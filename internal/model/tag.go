// internal/model/tag.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a shared label scoped to one organization. The storage layer does
// not force names unique globally; the composite index below backs the
// reconciler's treat-as-unique-within-organization contract and is the
// conflict target for its insert-if-absent batch under concurrent creation.
type Tag struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:text;not null;uniqueIndex:idx_tags_org_name" json:"name"`
	ColorRed       int       `gorm:"not null" json:"color_red"`
	ColorGreen     int       `gorm:"not null" json:"color_green"`
	ColorBlue      int       `gorm:"not null" json:"color_blue"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tags_org_name" json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}
