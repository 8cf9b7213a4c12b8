package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/outreachhub/outreachhub/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrInputMissing, http.StatusUnprocessableEntity},
		{domain.ErrIdentityNotFound, http.StatusUnprocessableEntity},
		{domain.ErrNotFound, http.StatusUnprocessableEntity},
		{domain.ErrResourceList, http.StatusUnprocessableEntity},
		{domain.ErrInvalidRole, http.StatusUnprocessableEntity},
		{domain.ErrAuthorizationDenied, http.StatusUnauthorized},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrInvalidEmail, http.StatusMethodNotAllowed},
		{domain.ErrInvalidPhone, http.StatusNotAcceptable},
		{domain.ErrTemporalParse, http.StatusConflict},
		{domain.ErrTemporalNull, http.StatusPreconditionFailed},
		{domain.ErrDuplicateUsername, http.StatusRequestedRangeNotSatisfiable},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.want, statusForError(tc.err))
		})
	}
}

func TestStatusForWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("creating user: %w", domain.ErrDuplicateUsername)
	assert.Equal(t, http.StatusRequestedRangeNotSatisfiable, statusForError(wrapped))
}
