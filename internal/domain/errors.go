// internal/domain/errors.go
package domain

import "errors"

// Every validation and lookup failure below is detected before any mutating
// write; storage failures are the only errors that may surface mid-write,
// and they abort the enclosing transaction.
var (
	// ErrInputMissing is returned when a required field is absent. Presence
	// checks run before every other validation stage.
	ErrInputMissing = errors.New("required input missing")

	// ErrIdentityNotFound covers both an unknown capability token and a
	// target row outside the caller's organization. The two are reported
	// with the same status on the wire; keep the sentinel distinct from
	// ErrNotFound so callers can still tell them apart.
	ErrIdentityNotFound = errors.New("identity not found")
	ErrNotFound         = errors.New("not found")

	// ErrAuthorizationDenied is returned when the caller's rank does not
	// permit the operation.
	ErrAuthorizationDenied = errors.New("authorization denied")

	// Field-format validation failures, one sentinel per failure kind.
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrInvalidPhone  = errors.New("invalid phone number")
	ErrTemporalParse = errors.New("unparseable date or time")
	ErrTemporalNull  = errors.New("date or time did not match any known format")

	// ErrResourceList is returned when the three parallel resource lists
	// disagree in length or an element fails to parse. The whole request is
	// rejected before any existing resource is deleted.
	ErrResourceList = errors.New("malformed resource lists")

	// ErrDuplicateUsername is returned when user creation collides with an
	// existing username.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials covers failed logins and a wrong old password
	// on a password change.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidRole = errors.New("invalid role")
)
