package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/steelcraft/catalog-server/internal/model"
)

// In-memory implementations of the repository interfaces. They back the
// server when no DATABASE_URL is configured and stand in for Postgres in
// tests. All methods are safe for concurrent use.

type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[int]model.Product
	nextID   int
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[int]model.Product),
		nextID:   1,
	}
}

func (r *MemoryProductRepository) FindAll(_ context.Context, search string) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(search)
	products := []model.Product{}
	for _, p := range r.products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *MemoryProductRepository) FindByID(_ context.Context, id int) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *MemoryProductRepository) FindByCategory(_ context.Context, category string) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := []model.Product{}
	for _, p := range r.products {
		if p.Category == category {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *MemoryProductRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}

func (r *MemoryProductRepository) Insert(_ context.Context, params model.CreateProductParams) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product := model.Product{
		ID:          r.nextID,
		Name:        params.Name,
		Description: params.Description,
		Category:    params.Category,
		Weight:      params.Weight,
		ImageURL:    params.ImageURL,
	}
	r.products[product.ID] = product
	r.nextID++
	return &product, nil
}

type MemoryQuoteRequestRepository struct {
	mu     sync.RWMutex
	quotes []model.QuoteRequest
	nextID int
}

func NewMemoryQuoteRequestRepository() *MemoryQuoteRequestRepository {
	return &MemoryQuoteRequestRepository{nextID: 1}
}

func (r *MemoryQuoteRequestRepository) Create(_ context.Context, params model.CreateQuoteRequestParams) (*model.QuoteRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	quote := model.QuoteRequest{
		ID:              r.nextID,
		FirstName:       params.FirstName,
		LastName:        params.LastName,
		Email:           params.Email,
		Phone:           params.Phone,
		Company:         params.Company,
		ProductInterest: params.ProductInterest,
		Message:         params.Message,
		CreatedAt:       &now,
	}
	r.quotes = append(r.quotes, quote)
	r.nextID++
	return &quote, nil
}

func (r *MemoryQuoteRequestRepository) FindAll(_ context.Context) ([]model.QuoteRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	quotes := make([]model.QuoteRequest, len(r.quotes))
	copy(quotes, r.quotes)
	return quotes, nil
}

func (r *MemoryQuoteRequestRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.quotes), nil
}

// Append inserts a fully-formed row, bypassing timestamp assignment. Test
// helper for seeding historical quotes.
func (r *MemoryQuoteRequestRepository) Append(quote model.QuoteRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()

	quote.ID = r.nextID
	r.quotes = append(r.quotes, quote)
	r.nextID++
}

type MemoryAdminSessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]model.AdminSession
	nextID   int
}

func NewMemoryAdminSessionRepository() *MemoryAdminSessionRepository {
	return &MemoryAdminSessionRepository{
		sessions: make(map[string]model.AdminSession),
		nextID:   1,
	}
}

func (r *MemoryAdminSessionRepository) Create(_ context.Context, params model.CreateAdminSessionParams) (*model.AdminSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := model.AdminSession{
		ID:        r.nextID,
		SessionID: params.SessionID,
		CreatedAt: time.Now(),
		ExpiresAt: params.ExpiresAt,
	}
	r.sessions[session.SessionID] = session
	r.nextID++
	return &session, nil
}

func (r *MemoryAdminSessionRepository) FindBySessionID(_ context.Context, sessionID string) (*model.AdminSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (r *MemoryAdminSessionRepository) DeleteBySessionID(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}

// Len reports the number of stored sessions, expired or not. Test helper.
func (r *MemoryAdminSessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

var (
	_ ProductRepository      = (*MemoryProductRepository)(nil)
	_ QuoteRequestRepository = (*MemoryQuoteRequestRepository)(nil)
	_ AdminSessionRepository = (*MemoryAdminSessionRepository)(nil)
)
