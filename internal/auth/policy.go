// internal/auth/policy.go
package auth

import (
	"github.com/outreachhub/outreachhub/internal/domain"
	"github.com/outreachhub/outreachhub/internal/model"
)

// Rank comparison lives here and nowhere else. Role ordinals double as
// privilege ranks (lower is more privileged); handlers and services call
// these functions instead of comparing integers inline.

// CanAdminister reports whether the caller may perform administrative
// mutations: user create/modify/delete, organization modification, and
// admin/dashboard listings.
func CanAdminister(caller *model.User) bool {
	return caller.Role == model.RoleOwner || caller.Role == model.RoleAdmin
}

// CanActOn reports whether the caller may act on the target user: the
// caller must be an administrator and may not touch anyone more privileged
// than themselves. The same comparison applies to the caller acting on
// their own row.
func CanActOn(caller *model.User, targetRole model.Role) bool {
	return CanAdminister(caller) && caller.Role <= targetRole
}

// RequireAdmin is the error-returning form of CanAdminister.
func RequireAdmin(caller *model.User) error {
	if !CanAdminister(caller) {
		return domain.ErrAuthorizationDenied
	}
	return nil
}

// RequireActOn is the error-returning form of CanActOn.
func RequireActOn(caller *model.User, targetRole model.Role) error {
	if !CanActOn(caller, targetRole) {
		return domain.ErrAuthorizationDenied
	}
	return nil
}
