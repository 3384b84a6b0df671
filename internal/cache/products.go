package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/steelcraft/catalog-server/internal/model"
)

const (
	productsAllKey      = "products:all"
	productsCategoryKey = "products:category:%s"
)

// ProductCache caches catalog reads in Redis. The catalog is immutable after
// seeding, so entries only ever age out via TTL. Cache failures are logged
// and treated as misses; Redis being down must not take the catalog down.
type ProductCache struct {
	client *Client
	ttl    time.Duration
}

func NewProductCache(client *Client, ttl time.Duration) *ProductCache {
	return &ProductCache{client: client, ttl: ttl}
}

func (c *ProductCache) GetAll(ctx context.Context) ([]model.Product, bool) {
	return c.get(ctx, productsAllKey)
}

func (c *ProductCache) SetAll(ctx context.Context, products []model.Product) {
	c.set(ctx, productsAllKey, products)
}

func (c *ProductCache) GetCategory(ctx context.Context, category string) ([]model.Product, bool) {
	return c.get(ctx, fmt.Sprintf(productsCategoryKey, category))
}

func (c *ProductCache) SetCategory(ctx context.Context, category string, products []model.Product) {
	c.set(ctx, fmt.Sprintf(productsCategoryKey, category), products)
}

func (c *ProductCache) get(ctx context.Context, key string) ([]model.Product, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("product cache read failed")
		}
		return nil, false
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("product cache entry corrupt")
		return nil, false
	}
	return products, true
}

func (c *ProductCache) set(ctx context.Context, key string, products []model.Product) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("product cache write failed")
	}
}
