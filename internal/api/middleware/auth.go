package middleware

import (
	"net/http"

	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/api/response"
	"golang.org/x/crypto/bcrypt"
)

// Auth verifies a shared client API key against a bcrypt hash. The raw key is
// never stored server-side. A nil *Auth (no hash configured) disables checks.
type Auth struct {
	keyHash []byte
}

// NewAuth creates an Auth middleware from the configured bcrypt hash.
// Returns nil when the hash is empty, disabling authentication.
func NewAuth(keyHash string) *Auth {
	if keyHash == "" {
		return nil
	}
	return &Auth{keyHash: []byte(keyHash)}
}

// Require rejects requests whose X-API-Key header does not match the hash.
func (a *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("X-API-Key")
		if key == "" {
			response.Error(w, http.StatusUnauthorized, "MISSING_API_KEY", "X-API-Key header is required")
			return
		}
		if err := bcrypt.CompareHashAndPassword(a.keyHash, []byte(key)); err != nil {
			response.Error(w, http.StatusUnauthorized, "INVALID_API_KEY", "Invalid API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}
