package handlers

import (
	"net/http"
	"net/url"

	"github.com/rombit/repair-tracker/internal/auth"
)

// TokenHandler serves token issuance and the auth smoke-test endpoints.
type TokenHandler struct {
	authService *auth.Service
	mongoURI    string
}

// NewTokenHandler creates a new token handler.
func NewTokenHandler(authService *auth.Service, mongoURI string) *TokenHandler {
	return &TokenHandler{
		authService: authService,
		mongoURI:    mongoURI,
	}
}

// Root reports that the service is up, with the store target redacted.
func (h *TokenHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"message":  "The repair tracking system is up and running",
		"database": redactURI(h.mongoURI),
	})
}

// GetToken issues a bearer token. Issuance is open by contract; the token's
// signature and expiry are the only gate.
func (h *TokenHandler) GetToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.authService.GenerateToken()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// RefreshToken re-issues a token for a caller holding a valid one. Runs
// behind the auth gate.
func (h *TokenHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.authService.GenerateToken()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Protected is the auth smoke test.
func (h *TokenHandler) Protected(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "This is protected data."})
}

func redactURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "[unparseable]"
	}
	if u.User != nil {
		u.User = url.User("credentials_hidden")
	}
	return u.String()
}
