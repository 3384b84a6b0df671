package service

import (
	"context"

	"github.com/steelcraft/catalog-server/internal/cache"
	"github.com/steelcraft/catalog-server/internal/model"
	"github.com/steelcraft/catalog-server/internal/repository"
)

// ProductService serves catalog reads, consulting the Redis cache when one is
// configured. Searches bypass the cache; the cached entries cover the two
// hot, parameterless list shapes.
type ProductService struct {
	repo  repository.ProductRepository
	cache *cache.ProductCache
}

func NewProductService(repo repository.ProductRepository, productCache *cache.ProductCache) *ProductService {
	return &ProductService{repo: repo, cache: productCache}
}

func (s *ProductService) List(ctx context.Context, search string) ([]model.Product, error) {
	if search != "" {
		return s.repo.FindAll(ctx, search)
	}

	if products, ok := s.cache.GetAll(ctx); ok {
		return products, nil
	}

	products, err := s.repo.FindAll(ctx, "")
	if err != nil {
		return nil, err
	}
	s.cache.SetAll(ctx, products)
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id int) (*model.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	if products, ok := s.cache.GetCategory(ctx, category); ok {
		return products, nil
	}

	products, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	s.cache.SetCategory(ctx, category, products)
	return products, nil
}
