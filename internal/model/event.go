// internal/model/event.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Event is a scheduled gathering belonging to one organization, associated
// with any number of the organization's partners. Deleting an event removes
// the association rows only; partners are untouched.
type Event struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Description    string    `gorm:"type:text;not null" json:"description"`
	Date           time.Time `gorm:"type:date;not null" json:"date"`
	StartTime      string    `gorm:"type:time;not null" json:"start_time"`
	EndTime        string    `gorm:"type:time;not null" json:"end_time"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null" json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	Partners     []Partner    `gorm:"many2many:event_partners;constraint:OnDelete:CASCADE" json:"partners"`
}
