package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss 快取未命中
var ErrCacheMiss = errors.New("product cache miss")

const productCacheTTL = 5 * time.Minute

type IProductCache interface {
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)
	SetProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, productID uint) error
}

// ProductCache 商品讀取快取，JSON序列化存redis string
type ProductCache struct {
	client *redis.Client
}

func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

func generateProductKey(productID uint) string {
	return fmt.Sprintf("product:%d", productID)
}

func (c *ProductCache) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	data, err := c.client.Get(ctx, generateProductKey(productID)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product cache: %w", err)
	}

	var product model.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product cache: %w", err)
	}
	return &product, nil
}

func (c *ProductCache) SetProduct(ctx context.Context, product *model.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}
	return c.client.Set(ctx, generateProductKey(product.ProductID), data, productCacheTTL).Err()
}

func (c *ProductCache) DeleteProduct(ctx context.Context, productID uint) error {
	return c.client.Del(ctx, generateProductKey(productID)).Err()
}

var _ IProductCache = (*ProductCache)(nil)
