package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/steelcraft/catalog-server/internal/audit"
	"github.com/steelcraft/catalog-server/internal/middleware"
	"github.com/steelcraft/catalog-server/internal/service"
)

type AdminHandler struct {
	sessions       *service.AdminSessionStore
	dashboard      *service.DashboardService
	keyVerifier    service.KeyVerifier
	authMiddleware func(http.Handler) http.Handler
}

func NewAdminHandler(
	sessions *service.AdminSessionStore,
	dashboard *service.DashboardService,
	keyVerifier service.KeyVerifier,
	authMiddleware func(http.Handler) http.Handler,
) *AdminHandler {
	return &AdminHandler{
		sessions:       sessions,
		dashboard:      dashboard,
		keyVerifier:    keyVerifier,
		authMiddleware: authMiddleware,
	}
}

func (h *AdminHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(h.authMiddleware)
		r.Get("/verify", h.Verify)
		r.Get("/dashboard", h.Dashboard)
	})

	return r
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Admin key is required"})
		return
	}

	if !h.keyVerifier.Verify(req.Key) {
		audit.LogFromRequest(r, audit.Event{Type: audit.EventLoginFailure})
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid admin key"})
		return
	}

	session, err := h.sessions.Create(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("admin login failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Login failed"})
		return
	}

	audit.LogFromRequest(r, audit.Event{Type: audit.EventLoginSuccess})
	writeJSON(w, http.StatusOK, map[string]string{
		"sessionId": session.SessionID,
		"message":   "Login successful",
	})
}

// Logout is not gated by the auth middleware: revoking an already-dead token
// should still succeed.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.ExtractBearerToken(r)
	if token != "" {
		if err := h.sessions.Delete(r.Context(), token); err != nil {
			log.Error().Err(err).Msg("admin logout failed")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Logout failed"})
			return
		}
		audit.LogFromRequest(r, audit.Event{Type: audit.EventLogout})
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

func (h *AdminHandler) Verify(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"valid":   true,
		"message": "Session is valid",
	})
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboard.Dashboard(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to build dashboard")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to fetch dashboard data"})
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}
