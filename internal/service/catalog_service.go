package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
)

var ErrProductNotFound = apperr.New(apperr.NotFoundCode, "product not found")

type ICatalogService interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProduct(ctx context.Context, productID uint) (*model.Product, error)
	GetActiveProducts(ctx context.Context) ([]model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	AdjustStock(ctx context.Context, productID uint, delta int) (*model.Product, error)
	SetProductFile(ctx context.Context, productID uint, fileID string) (*model.Product, error)
	DeleteProduct(ctx context.Context, productID uint) error
	CreateCategory(ctx context.Context, category *model.Category) error
	GetAllCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, categoryID uint) error
}

type CatalogService struct {
	productRepo  db.IProductRepository
	categoryRepo db.ICategoryRepository
}

func NewCatalogService(productRepo db.IProductRepository, categoryRepo db.ICategoryRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo, categoryRepo: categoryRepo}
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *model.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return s.productRepo.CreateProduct(ctx, product)
}

func (s *CatalogService) GetProduct(ctx context.Context, productID uint) (*model.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if errors.Is(err, db.ErrProductNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalCode, "failed to load product", err)
	}
	return product, nil
}

func (s *CatalogService) GetActiveProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.GetActiveProducts(ctx)
}

func (s *CatalogService) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.GetAllProducts(ctx)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, product *model.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return s.productRepo.UpdateProduct(ctx, product)
}

// AdjustStock 後台手動調整，負值調整clamp到0
func (s *CatalogService) AdjustStock(ctx context.Context, productID uint, delta int) (*model.Product, error) {
	product, err := s.productRepo.AdjustStock(ctx, productID, delta)
	if errors.Is(err, db.ErrProductNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalCode, "failed to adjust stock", err)
	}
	return product, nil
}

// SetProductFile 綁定blob store回傳的file id
func (s *CatalogService) SetProductFile(ctx context.Context, productID uint, fileID string) (*model.Product, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	product.FileID = &fileID
	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, apperr.Wrap(apperr.InternalCode, "failed to update product", err)
	}
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, productID uint) error {
	return s.productRepo.DeleteProduct(ctx, productID)
}

func (s *CatalogService) CreateCategory(ctx context.Context, category *model.Category) error {
	if category.Name == "" {
		return apperr.New(apperr.ValidationCode, "category name is required")
	}
	return s.categoryRepo.CreateCategory(ctx, category)
}

func (s *CatalogService) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.GetAllCategories(ctx)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, category *model.Category) error {
	if category.Name == "" {
		return apperr.New(apperr.ValidationCode, "category name is required")
	}
	return s.categoryRepo.UpdateCategory(ctx, category)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, categoryID uint) error {
	return s.categoryRepo.DeleteCategory(ctx, categoryID)
}

func validateProduct(product *model.Product) error {
	if product.Name == "" {
		return apperr.New(apperr.ValidationCode, "product name is required")
	}
	if product.Price.IsNegative() {
		return apperr.New(apperr.ValidationCode, "product price must not be negative")
	}
	switch product.Type {
	case model.ProductTypeAccount, model.ProductTypeCombo:
	default:
		return apperr.New(apperr.ValidationCode, "invalid product type")
	}
	switch product.Status {
	case "", model.ProductStatusActive, model.ProductStatusInactive:
	default:
		return apperr.New(apperr.ValidationCode, "invalid product status")
	}
	return nil
}

var _ ICatalogService = (*CatalogService)(nil)
