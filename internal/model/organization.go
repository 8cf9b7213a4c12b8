// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the tenant root. Every User, Tag, Partner and Event row
// carries a reference back to one of these; tenant-scoped reads and writes
// always filter on it.
type Organization struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:text;uniqueIndex;not null" json:"name"`
	Message     *string   `gorm:"type:text" json:"message"`
	MessageIcon *int      `json:"message_icon"`
	IsDeleted   bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Users []User `gorm:"foreignKey:OrganizationID" json:"-"`
}
