package model

// CartItem 購物車項目
// (user_id, product_id) 唯一，重複加入同商品時合併數量
type CartItem struct {
	CartItemID uint `gorm:"primaryKey" json:"cart_item_id"`
	UserID     uint `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID  uint `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity   int  `gorm:"not null" json:"quantity"`
	BaseModel
}
