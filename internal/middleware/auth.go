package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rombit/repair-tracker/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	ClaimsContextKey    contextKey = "claims"
	RequestIDContextKey contextKey = "request_id"
)

// AuthMiddleware gates requests on a valid bearer credential.
type AuthMiddleware struct {
	authService *auth.Service
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(authService *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Authenticate validates the bearer token and stores its claims in the
// request context. A missing credential yields 401, an invalid or expired
// one 403.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := m.authService.ExtractTokenFromHeader(r.Header.Get("Authorization"))
		if err != nil {
			if errors.Is(err, auth.ErrMissingToken) {
				deny(w, http.StatusUnauthorized, "authorization header required")
				return
			}
			deny(w, http.StatusForbidden, "invalid authorization header")
			return
		}

		claims, err := m.authService.ValidateToken(token)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				deny(w, http.StatusForbidden, "token expired")
				return
			}
			deny(w, http.StatusForbidden, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaimsFromContext extracts the verified claims from a request context.
func GetClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*auth.Claims)
	return claims, ok
}

func deny(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
