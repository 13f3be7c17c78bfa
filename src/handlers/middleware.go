package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/JayRichh/steamshare/src/database"
	"github.com/JayRichh/steamshare/src/logger"
	"github.com/JayRichh/steamshare/src/model"
	"github.com/JayRichh/steamshare/src/security"
	"github.com/google/uuid"
)

// SessionCookieName is the cookie the web app stores the access token in.
const SessionCookieName = "session_token"

// AuthMiddleware gates handlers on a valid session. The token comes from the
// session cookie or an Authorization header; it must be a valid JWT and match
// a live session row. No upstream call happens for unauthenticated requests,
// and rejections use the same no-store failure envelope as every other error.
type AuthMiddleware struct {
	authService *security.AuthService
}

func NewAuthMiddleware(authService *security.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		tokenString := ""
		if cookie, err := r.Cookie(SessionCookieName); err == nil {
			tokenString = cookie.Value
		}
		if tokenString == "" {
			authHeader := r.Header.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			} else {
				tokenString = authHeader
			}
		}

		if tokenString == "" {
			log.Debug("AuthMiddleware: no session token on request", "path", r.URL.Path)
			writeErrorEnvelope(w, http.StatusUnauthorized, "Authentication required", "no session token on request")
			return
		}

		steamID, err := m.authService.ValidateToken(tokenString)
		if err != nil {
			log.Warn("AuthMiddleware: token validation failed", "path", r.URL.Path, "error", err)
			writeErrorEnvelope(w, http.StatusUnauthorized, "Invalid or expired token", err.Error())
			return
		}

		if _, err := model.GetSessionByToken(database.DB, tokenString); err != nil {
			log.Warn("AuthMiddleware: session lookup failed", "path", r.URL.Path, "steamID", steamID, "error", err)
			writeErrorEnvelope(w, http.StatusUnauthorized, "Invalid or expired session", err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), steamIDContextKey, steamID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDMiddleware assigns every request an id, echoes it back in
// X-Request-ID and attaches a request-scoped logger carrying the id, so
// downstream log lines can be correlated.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		ctx := logger.IntoContext(r.Context(), logger.L.With("requestID", requestID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
