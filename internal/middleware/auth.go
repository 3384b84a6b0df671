package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/steelcraft/catalog-server/internal/model"
	"github.com/steelcraft/catalog-server/internal/service"
)

type contextKey string

const AdminSessionContextKey contextKey = "adminSession"

func GetAdminSession(ctx context.Context) *model.AdminSession {
	if session, ok := ctx.Value(AdminSessionContextKey).(*model.AdminSession); ok {
		return session
	}
	return nil
}

// AdminAuthMiddleware gates endpoints behind a live admin session. The session
// store's Get is the only authorization check; a missing, malformed, unknown,
// or expired token all produce 401 without distinguishing expiry from absence.
type AdminAuthMiddleware struct {
	sessions *service.AdminSessionStore
}

func NewAdminAuthMiddleware(sessions *service.AdminSessionStore) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{sessions: sessions}
}

func (m *AdminAuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ExtractBearerToken(r)
		if token == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"message": "No session token provided",
			})
			return
		}

		session, err := m.sessions.Get(r.Context(), token)
		if err != nil {
			log.Error().Err(err).Msg("admin auth middleware: session lookup failed")
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"message": "Failed to verify session",
			})
			return
		}

		if session == nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"message": "Invalid or expired session",
			})
			return
		}

		ctx := context.WithValue(r.Context(), AdminSessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ExtractBearerToken pulls the token from the Authorization header. A missing
// or malformed header yields the empty string.
func ExtractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
