package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
)

var (
	ErrCartItemNotFound = apperr.New(apperr.NotFoundCode, "cart item not found")
	ErrInvalidQuantity  = apperr.New(apperr.ValidationCode, "quantity must be at least 1")
)

type ICartService interface {
	AddToCart(ctx context.Context, auth model.AuthContext, productID uint, quantity int) (*model.CartItem, error)
	GetCart(ctx context.Context, auth model.AuthContext) ([]model.CartItem, error)
	UpdateCartItem(ctx context.Context, auth model.AuthContext, cartItemID uint, quantity int) (*model.CartItem, error)
	RemoveFromCart(ctx context.Context, auth model.AuthContext, cartItemID uint) error
	ClearCart(ctx context.Context, auth model.AuthContext) error
}

type CartService struct {
	cartRepo    db.ICartRepository
	productRepo db.IProductRepository
}

func NewCartService(cartRepo db.ICartRepository, productRepo db.IProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// AddToCart 重複加入同商品時合併數量
// 這層不檢查quantity <= stock，庫存在結帳交易內用條件式UPDATE把關
func (s *CartService) AddToCart(ctx context.Context, auth model.AuthContext, productID uint, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if errors.Is(err, db.ErrProductNotFound) {
		return nil, ErrProductUnavailable
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalCode, "failed to load product", err)
	}
	if !product.IsActive() {
		return nil, ErrProductUnavailable
	}

	item, err := s.cartRepo.AddItem(ctx, &model.CartItem{
		UserID:    auth.UserID,
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalCode, "failed to add cart item", err)
	}
	return item, nil
}

func (s *CartService) GetCart(ctx context.Context, auth model.AuthContext) ([]model.CartItem, error) {
	return s.cartRepo.GetItemsByUserID(ctx, auth.UserID)
}

// UpdateCartItem 不存在或不屬於該用戶一律回404
func (s *CartService) UpdateCartItem(ctx context.Context, auth model.AuthContext, cartItemID uint, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.cartRepo.GetItemByID(ctx, cartItemID)
	if errors.Is(err, db.ErrCartItemNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalCode, "failed to load cart item", err)
	}
	if item.UserID != auth.UserID {
		return nil, ErrCartItemNotFound
	}

	updated, err := s.cartRepo.UpdateItemQuantity(ctx, cartItemID, quantity)
	if errors.Is(err, db.ErrCartItemNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalCode, "failed to update cart item", err)
	}
	return updated, nil
}

// RemoveFromCart 冪等，刪不存在的項目不報錯
func (s *CartService) RemoveFromCart(ctx context.Context, auth model.AuthContext, cartItemID uint) error {
	item, err := s.cartRepo.GetItemByID(ctx, cartItemID)
	if errors.Is(err, db.ErrCartItemNotFound) {
		return nil
	}
	if err != nil {
		return apperr.Wrap(apperr.InternalCode, "failed to load cart item", err)
	}
	if item.UserID != auth.UserID {
		return nil
	}
	return s.cartRepo.RemoveItem(ctx, cartItemID)
}

func (s *CartService) ClearCart(ctx context.Context, auth model.AuthContext) error {
	return s.cartRepo.ClearCart(ctx, auth.UserID)
}

var _ ICartService = (*CartService)(nil)
