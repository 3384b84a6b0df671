package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/steelcraft/catalog-server/internal/audit"
	apperrors "github.com/steelcraft/catalog-server/internal/errors"
	"github.com/steelcraft/catalog-server/internal/model"
	"github.com/steelcraft/catalog-server/internal/service"
)

type QuoteHandler struct {
	quoteService *service.QuoteRequestService
}

func NewQuoteHandler(quoteService *service.QuoteRequestService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

func (h *QuoteHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)

	return r
}

func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName       string  `json:"firstName"`
		LastName        string  `json:"lastName"`
		Email           string  `json:"email"`
		Phone           *string `json:"phone"`
		Company         *string `json:"company"`
		ProductInterest *string `json:"productInterest"`
		Message         string  `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	quote, err := h.quoteService.Submit(r.Context(), model.CreateQuoteRequestParams{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Company:         req.Company,
		ProductInterest: req.ProductInterest,
		Message:         req.Message,
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			writeError(w, err)
			return
		}
		log.Error().Err(err).Msg("failed to create quote request")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "Failed to create quote request"})
		return
	}

	audit.LogFromRequest(r, audit.Event{
		Type:    audit.EventQuoteSubmit,
		Details: map[string]interface{}{"quote_id": quote.ID},
	})

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Quote request submitted successfully",
		"id":      quote.ID,
	})
}
