// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is an integer privilege ordinal. Lower means more privileged: a
// caller may only act on targets whose role is numerically greater than or
// equal to their own.
type Role int

const (
	RoleOwner  Role = 0
	RoleAdmin  Role = 1
	RoleMember Role = 2
)

// Valid reports whether r is one of the defined ordinals.
func (r Role) Valid() bool {
	return r >= RoleOwner && r <= RoleMember
}

func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleAdmin:
		return "admin"
	case RoleMember:
		return "member"
	default:
		return "unknown"
	}
}

// User is a staff member of exactly one Organization. Hash is the opaque
// capability token presented on every authenticated request.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Hash           string    `gorm:"type:text;uniqueIndex;not null" json:"hash"`
	Username       string    `gorm:"type:text;uniqueIndex;not null" json:"username"`
	Password       string    `gorm:"type:text;not null" json:"-"`
	Email          string    `gorm:"type:text;not null" json:"email"`
	FirstName      string    `gorm:"type:text;not null" json:"first_name"`
	LastName       string    `gorm:"type:text;not null" json:"last_name"`
	Role           Role      `gorm:"not null;default:2" json:"role"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null" json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization"`
}
