package service

import (
	"context"
	"strings"

	apperrors "github.com/steelcraft/catalog-server/internal/errors"
	"github.com/steelcraft/catalog-server/internal/model"
	"github.com/steelcraft/catalog-server/internal/repository"
	"github.com/steelcraft/catalog-server/internal/util"
)

// QuoteRequestService validates and records customer inquiries. Validation
// runs entirely before any store access.
type QuoteRequestService struct {
	repo repository.QuoteRequestRepository
}

func NewQuoteRequestService(repo repository.QuoteRequestRepository) *QuoteRequestService {
	return &QuoteRequestService{repo: repo}
}

func (s *QuoteRequestService) Submit(ctx context.Context, params model.CreateQuoteRequestParams) (*model.QuoteRequest, error) {
	if err := validateQuoteRequest(params); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, params)
}

func validateQuoteRequest(params model.CreateQuoteRequestParams) error {
	required := []struct {
		field string
		value string
	}{
		{"firstName", params.FirstName},
		{"lastName", params.LastName},
		{"email", params.Email},
		{"message", params.Message},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.MissingRequired(f.field)
		}
	}

	if !util.IsValidEmail(params.Email) {
		return apperrors.InvalidInput("email", "must be a valid email address")
	}

	return nil
}
