// internal/middleware/identity.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/outreachhub/outreachhub/internal/model"
	"github.com/outreachhub/outreachhub/internal/repository"
)

type callerContextKey string

// CallerKey holds the authenticated *model.User for the request.
const CallerKey = callerContextKey("outreachhub_caller")

// Identity resolves the caller from their capability token: the
// Authorization header ("Bearer <token>" or the bare token) or, for older
// clients, a user_hash query parameter. A missing or unknown token is
// reported the same way as missing input; the token's existence is the
// entire authentication check.
func Identity(users repository.UserRepositoryIface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				respondWithError(w, http.StatusUnprocessableEntity, "identity not found")
				return
			}

			caller, err := users.FindByHash(r.Context(), token)
			if err != nil {
				respondWithError(w, http.StatusUnprocessableEntity, "identity not found")
				return
			}

			ctx := context.WithValue(r.Context(), CallerKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if parts := strings.SplitN(h, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return h
	}
	return r.URL.Query().Get("user_hash")
}

// CallerFromContext returns the user the Identity middleware resolved.
func CallerFromContext(ctx context.Context) *model.User {
	caller, _ := ctx.Value(CallerKey).(*model.User)
	return caller
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
