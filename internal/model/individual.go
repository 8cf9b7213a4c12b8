// internal/model/individual.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Individual is the natural person anchoring a Partner. Exactly one
// Individual owns exactly one Partner; deleting the Individual cascades to
// the Partner (and from there to its resources and tag associations).
type Individual struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FirstName string    `gorm:"type:text;not null" json:"first_name"`
	LastName  string    `gorm:"type:text;not null" json:"last_name"`
	Email     string    `gorm:"type:text;not null" json:"email"`
	Phone     string    `gorm:"type:text;not null" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
