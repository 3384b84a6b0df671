package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/steelcraft/catalog-server/internal/model"
)

type QuoteRequestRepository interface {
	Create(ctx context.Context, params model.CreateQuoteRequestParams) (*model.QuoteRequest, error)
	FindAll(ctx context.Context) ([]model.QuoteRequest, error)
	Count(ctx context.Context) (int, error)
}

type quoteRequestRepo struct {
	db *sqlx.DB
}

func NewQuoteRequestRepository(db *sqlx.DB) QuoteRequestRepository {
	return &quoteRequestRepo{db: db}
}

func (r *quoteRequestRepo) Create(ctx context.Context, params model.CreateQuoteRequestParams) (*model.QuoteRequest, error) {
	var quote model.QuoteRequest
	err := r.db.GetContext(ctx, &quote, `
		INSERT INTO quote_requests (first_name, last_name, email, phone, company, product_interest, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING *
	`, params.FirstName, params.LastName, params.Email, params.Phone, params.Company, params.ProductInterest, params.Message)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *quoteRequestRepo) FindAll(ctx context.Context) ([]model.QuoteRequest, error) {
	quotes := []model.QuoteRequest{}
	err := r.db.SelectContext(ctx, &quotes, `
		SELECT * FROM quote_requests ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *quoteRequestRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM quote_requests`)
	return count, err
}
