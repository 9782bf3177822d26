package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnlimitedUses total_uses = -1 表示不限使用次數
const UnlimitedUses = -1

type DiscountCode struct {
	DiscountID         uint            `gorm:"primaryKey" json:"discount_id"`
	Code               string          `gorm:"not null;type:varchar(100);uniqueIndex" json:"code"`
	DiscountPercentage decimal.Decimal `gorm:"not null;type:decimal(5,2)" json:"discount_percentage"`
	TotalUses          int             `gorm:"not null;default:-1" json:"total_uses"`
	UsedCount          int             `gorm:"not null;default:0" json:"used_count"`
	Active             bool            `gorm:"not null;default:true" json:"active"`
	ExpiresAt          *time.Time      `json:"expires_at,omitempty"`
	Scopes             []DiscountScope `gorm:"foreignKey:DiscountID;constraint:OnDelete:CASCADE" json:"scopes,omitempty"`
	BaseModel
}

// IsExhausted 使用次數是否已用罄
func (d *DiscountCode) IsExhausted() bool {
	return d.TotalUses != UnlimitedUses && d.UsedCount >= d.TotalUses
}

// IsExpired 過期判斷，無 expires_at 視為永久有效
func (d *DiscountCode) IsExpired(now time.Time) bool {
	return d.ExpiresAt != nil && d.ExpiresAt.Before(now)
}

// AppliesTo 無任何 scope 表示適用全部商品
func (d *DiscountCode) AppliesTo(productID uint) bool {
	if len(d.Scopes) == 0 {
		return true
	}
	for _, s := range d.Scopes {
		if s.ProductID == productID {
			return true
		}
	}
	return false
}

// DiscountScope 折扣碼適用商品範圍
type DiscountScope struct {
	DiscountID uint `gorm:"primaryKey" json:"discount_id"`
	ProductID  uint `gorm:"primaryKey" json:"product_id"`
}
