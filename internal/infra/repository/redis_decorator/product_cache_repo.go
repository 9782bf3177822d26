package redis_decorator

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/rs/zerolog/log"
)

/*
cache-aside商品讀取快取
讀取先走redis，未命中回填；任何會改到商品的操作一律先失效快取再委派
庫存是結帳交易在db內扣的，快取只做讀加速，不當真相來源
*/
type CacheAsideProductRepo struct {
	db.IProductRepository
	cache redis_repo.IProductCache
}

func NewCacheAsideProductRepo(dbRepo db.IProductRepository, cache redis_repo.IProductCache) db.IProductRepository {
	return &CacheAsideProductRepo{
		IProductRepository: dbRepo,
		cache:              cache,
	}
}

func (r *CacheAsideProductRepo) GetProductByID(ctx context.Context, productID uint) (*model.Product, error) {
	product, err := r.cache.GetProduct(ctx, productID)
	if err == nil {
		return product, nil
	}

	product, err = r.IProductRepository.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if cacheErr := r.cache.SetProduct(ctx, product); cacheErr != nil {
		// 快取回填失敗不影響主流程
		log.Warn().Err(cacheErr).Uint("product_id", productID).Msg("failed to set product cache")
	}
	return product, nil
}

func (r *CacheAsideProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	if err := r.cache.DeleteProduct(ctx, product.ProductID); err != nil {
		log.Warn().Err(err).Uint("product_id", product.ProductID).Msg("failed to invalidate product cache")
	}
	return r.IProductRepository.UpdateProduct(ctx, product)
}

func (r *CacheAsideProductRepo) AdjustStock(ctx context.Context, productID uint, delta int) (*model.Product, error) {
	if err := r.cache.DeleteProduct(ctx, productID); err != nil {
		log.Warn().Err(err).Uint("product_id", productID).Msg("failed to invalidate product cache")
	}
	return r.IProductRepository.AdjustStock(ctx, productID, delta)
}

// InvalidateProduct 結帳扣庫存走訂單交易，不經過本repo的寫入方法，成交後由service逐項呼叫失效
func (r *CacheAsideProductRepo) InvalidateProduct(ctx context.Context, productID uint) error {
	return r.cache.DeleteProduct(ctx, productID)
}

func (r *CacheAsideProductRepo) DeleteProduct(ctx context.Context, productID uint) error {
	if err := r.cache.DeleteProduct(ctx, productID); err != nil {
		log.Warn().Err(err).Uint("product_id", productID).Msg("failed to invalidate product cache")
	}
	return r.IProductRepository.DeleteProduct(ctx, productID)
}
