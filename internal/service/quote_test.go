package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/steelcraft/catalog-server/internal/errors"
	"github.com/steelcraft/catalog-server/internal/model"
	"github.com/steelcraft/catalog-server/internal/repository"
)

func validQuoteParams() model.CreateQuoteRequestParams {
	return model.CreateQuoteRequestParams{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Message:   "Please quote 3 units of the hydraulic press.",
	}
}

func TestQuoteRequestService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a valid quote and assigns id and timestamp", func(t *testing.T) {
		svc := NewQuoteRequestService(repository.NewMemoryQuoteRequestRepository())

		quote, err := svc.Submit(ctx, validQuoteParams())
		require.NoError(t, err)
		assert.Equal(t, 1, quote.ID)
		assert.NotNil(t, quote.CreatedAt)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		svc := NewQuoteRequestService(repository.NewMemoryQuoteRequestRepository())

		tests := []struct {
			field  string
			mutate func(*model.CreateQuoteRequestParams)
		}{
			{"firstName", func(p *model.CreateQuoteRequestParams) { p.FirstName = "" }},
			{"lastName", func(p *model.CreateQuoteRequestParams) { p.LastName = "" }},
			{"email", func(p *model.CreateQuoteRequestParams) { p.Email = "" }},
			{"message", func(p *model.CreateQuoteRequestParams) { p.Message = "   " }},
		}

		for _, tc := range tests {
			t.Run(tc.field, func(t *testing.T) {
				params := validQuoteParams()
				tc.mutate(&params)

				_, err := svc.Submit(ctx, params)
				require.Error(t, err)
				appErr, ok := apperrors.AsAppError(err)
				require.True(t, ok)
				assert.Equal(t, apperrors.ErrCodeMissingRequired, appErr.Code)
				assert.Contains(t, appErr.Message, tc.field)
			})
		}
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		svc := NewQuoteRequestService(repository.NewMemoryQuoteRequestRepository())

		params := validQuoteParams()
		params.Email = "not-an-email"

		_, err := svc.Submit(ctx, params)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeInvalidInput, apperrors.GetCode(err))
	})

	t.Run("validation happens before any store access", func(t *testing.T) {
		repo := repository.NewMemoryQuoteRequestRepository()
		svc := NewQuoteRequestService(repo)

		params := validQuoteParams()
		params.Message = ""

		_, err := svc.Submit(ctx, params)
		require.Error(t, err)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("optional fields pass through", func(t *testing.T) {
		svc := NewQuoteRequestService(repository.NewMemoryQuoteRequestRepository())

		params := validQuoteParams()
		params.Phone = strPtr("+1 555 0100")
		params.Company = strPtr("Acme Fabrication")
		params.ProductInterest = strPtr("machinery")

		quote, err := svc.Submit(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, "Acme Fabrication", *quote.Company)
		assert.Equal(t, "machinery", *quote.ProductInterest)
	})
}
