package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/steelcraft/catalog-server/internal/model"
)

// psq is the PostgreSQL statement builder with dollar placeholders.
var psq = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var productColumns = []string{"id", "name", "description", "category", "weight", "image_url"}

type ProductRepository interface {
	FindAll(ctx context.Context, search string) ([]model.Product, error)
	FindByID(ctx context.Context, id int) (*model.Product, error)
	FindByCategory(ctx context.Context, category string) ([]model.Product, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, params model.CreateProductParams) (*model.Product, error)
}

type productRepo struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) FindAll(ctx context.Context, search string) ([]model.Product, error) {
	builder := psq.Select(productColumns...).From("products").OrderBy("id")
	if search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	products := []model.Product{}
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) FindByID(ctx context.Context, id int) (*model.Product, error) {
	var product model.Product
	err := r.db.GetContext(ctx, &product, `
		SELECT * FROM products WHERE id = $1
	`, id)
	return HandleNotFound(&product, err)
}

func (r *productRepo) FindByCategory(ctx context.Context, category string) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.SelectContext(ctx, &products, `
		SELECT * FROM products WHERE category = $1 ORDER BY id
	`, category)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`)
	return count, err
}

func (r *productRepo) Insert(ctx context.Context, params model.CreateProductParams) (*model.Product, error) {
	var product model.Product
	err := r.db.GetContext(ctx, &product, `
		INSERT INTO products (name, description, category, weight, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING *
	`, params.Name, params.Description, params.Category, params.Weight, params.ImageURL)
	if err != nil {
		return nil, err
	}
	return &product, nil
}
