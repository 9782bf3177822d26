package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrCartItemNotFound 購物車項目不存在
var ErrCartItemNotFound = errors.New("cart item not found")

type ICartRepository interface {
	AddItem(ctx context.Context, item *model.CartItem) (*model.CartItem, error)
	GetItemByID(ctx context.Context, cartItemID uint) (*model.CartItem, error)
	GetItemsByUserID(ctx context.Context, userID uint) ([]model.CartItem, error)
	UpdateItemQuantity(ctx context.Context, cartItemID uint, quantity int) (*model.CartItem, error)
	RemoveItem(ctx context.Context, cartItemID uint) error
	ClearCart(ctx context.Context, userID uint) error
}

type CartRepo struct {
	db *DbDao
}

func NewCartRepo(db *DbDao) *CartRepo {
	return &CartRepo{db: db}
}

// AddItem 加入購物車
// 同一 (user_id, product_id) 已存在時原子合併數量，併發加入同商品不會互相覆蓋
func (s *CartRepo) AddItem(ctx context.Context, item *model.CartItem) (*model.CartItem, error) {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
		}),
	}).Create(item).Error
	if err != nil {
		return nil, err
	}

	// upsert走到merge分支時item內容是舊的，重查取回合併後的row
	var merged model.CartItem
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
		First(&merged).Error
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

func (s *CartRepo) GetItemByID(ctx context.Context, cartItemID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := s.db.WithContext(ctx).First(&item, cartItemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CartRepo) GetItemsByUserID(ctx context.Context, userID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

// UpdateItemQuantity id不存在回傳ErrCartItemNotFound，caller轉404
func (s *CartRepo) UpdateItemQuantity(ctx context.Context, cartItemID uint, quantity int) (*model.CartItem, error) {
	result := s.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("cart_item_id = ?", cartItemID).
		Update("quantity", quantity)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrCartItemNotFound
	}
	return s.GetItemByID(ctx, cartItemID)
}

// RemoveItem 冪等刪除
func (s *CartRepo) RemoveItem(ctx context.Context, cartItemID uint) error {
	return s.db.WithContext(ctx).Unscoped().Delete(&model.CartItem{}, cartItemID).Error
}

// ClearCart 清空用戶購物車，冪等
func (s *CartRepo) ClearCart(ctx context.Context, userID uint) error {
	return clearCartTx(s.db.WithContext(ctx), userID)
}

func clearCartTx(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&model.CartItem{}).Error
}

var _ ICartRepository = (*CartRepo)(nil)
