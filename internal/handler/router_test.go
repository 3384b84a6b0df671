package handler

import (
	"context"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/steelcraft/catalog-server/internal/middleware"
	"github.com/steelcraft/catalog-server/internal/repository"
	"github.com/steelcraft/catalog-server/internal/seed"
	"github.com/steelcraft/catalog-server/internal/service"
)

const testAdminKey = "test-admin-key"

type testEnv struct {
	router    chi.Router
	quoteRepo *repository.MemoryQuoteRequestRepository
}

// newTestEnv wires the full API against in-memory repositories, mirroring the
// server's own assembly.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	productRepo := repository.NewMemoryProductRepository()
	for _, p := range seed.Products() {
		_, err := productRepo.Insert(context.Background(), p)
		require.NoError(t, err)
	}
	quoteRepo := repository.NewMemoryQuoteRequestRepository()
	sessionRepo := repository.NewMemoryAdminSessionRepository()

	sessions := service.NewAdminSessionStore(sessionRepo)
	products := service.NewProductService(productRepo, nil)
	quotes := service.NewQuoteRequestService(quoteRepo)
	dashboard := service.NewDashboardService(productRepo, quoteRepo)
	verifier := service.NewKeyVerifier(testAdminKey, "")

	authMiddleware := middleware.NewAdminAuthMiddleware(sessions)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Mount("/products", NewProductHandler(products).Routes())
		r.Mount("/quote-requests", NewQuoteHandler(quotes).Routes())
		r.Mount("/admin", NewAdminHandler(sessions, dashboard, verifier, authMiddleware.Handler).Routes())
	})

	return &testEnv{router: r, quoteRepo: quoteRepo}
}
