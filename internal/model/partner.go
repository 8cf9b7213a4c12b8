// internal/model/partner.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type PartnerType int

const (
	PartnerBusiness  PartnerType = 0
	PartnerCommunity PartnerType = 1
	PartnerEducation PartnerType = 2
	PartnerOther     PartnerType = 3
)

func (t PartnerType) Valid() bool {
	return t >= PartnerBusiness && t <= PartnerOther
}

// Partner is an external contact of one organization. It owns exactly one
// Individual (the partner cannot outlive it) and a set of Resources, and
// shares Tags with other partners of the same organization.
type Partner struct {
	ID             uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string      `gorm:"type:text;not null" json:"name"`
	Description    string      `gorm:"type:text;not null" json:"description"`
	Type           PartnerType `gorm:"not null" json:"type"`
	Email          string      `gorm:"type:text;not null" json:"email"`
	Phone          string      `gorm:"type:text;not null" json:"phone"`
	ImageURL       *string     `gorm:"type:text" json:"image_url"`
	IndividualID   uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex" json:"individual_id"`
	OrganizationID uuid.UUID   `gorm:"type:uuid;not null" json:"organization_id"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`

	Individual   Individual   `gorm:"foreignKey:IndividualID;constraint:OnDelete:CASCADE" json:"individual"`
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
	Tags         []Tag        `gorm:"many2many:partner_tags;constraint:OnDelete:CASCADE" json:"tags"`
	Resources    []Resource   `gorm:"foreignKey:PartnerID" json:"resources"`
}
