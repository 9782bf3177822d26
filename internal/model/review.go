package model

// Review 商品評價
// 同一用戶對同一商品只能評價一次
type Review struct {
	ReviewID  uint   `gorm:"primaryKey" json:"review_id"`
	ProductID uint   `gorm:"not null;uniqueIndex:idx_review_user_product" json:"product_id"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_review_user_product" json:"user_id"`
	Rating    int    `gorm:"not null" json:"rating"`
	Comment   string `gorm:"type:text" json:"comment"`
	BaseModel
}
