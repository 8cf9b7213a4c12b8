// internal/model/resource.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ResourceType int

const (
	ResourceFinancial ResourceType = 0
	ResourceHuman     ResourceType = 1
	ResourcePhysical  ResourceType = 2
	ResourceOther     ResourceType = 3
)

func (t ResourceType) Valid() bool {
	return t >= ResourceFinancial && t <= ResourceOther
}

// Resource is exclusively owned by one Partner and replaced wholesale on
// every partner update; there are no partial resource edits.
type Resource struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Type      ResourceType `gorm:"not null" json:"type"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Amount    int          `gorm:"not null" json:"amount"`
	PartnerID uuid.UUID    `gorm:"type:uuid;not null" json:"partner_id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`

	Partner Partner `gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE" json:"-"`
}
