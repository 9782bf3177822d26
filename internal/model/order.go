package model

import (
	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending    = "pending"    // 待處理
	OrderStatusProcessing = "processing" // 處理中
	OrderStatusCompleted  = "completed"  // 已完成
	OrderStatusCancelled  = "cancelled"  // 已取消

	PaymentStatusPaid = "paid"

	PaymentMethodPaypal  = "paypal"
	PaymentMethodGcash   = "gcash"
	PaymentMethodBinance = "binance"
)

// IsValidPaymentMethod 檢查付款方式是否支援
func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodPaypal, PaymentMethodGcash, PaymentMethodBinance:
		return true
	}
	return false
}

type Order struct {
	OrderID       uint            `gorm:"primaryKey" json:"order_id"`
	OrderNumber   string          `gorm:"not null;type:varchar(40);uniqueIndex" json:"order_number"`
	UserID        uint            `gorm:"not null;index" json:"user_id"`
	OrderItems    []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"` // 一對多，級聯刪除
	TotalAmount   decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_amount"`
	Currency      string          `gorm:"not null;type:varchar(10)" json:"currency"`
	PaymentMethod string          `gorm:"not null;type:varchar(20)" json:"payment_method"`
	PaymentStatus string          `gorm:"not null;type:varchar(20)" json:"payment_status"`
	Status        string          `gorm:"not null;type:varchar(20);default:'pending'" json:"status"`
	DiscountCode  *string         `gorm:"type:varchar(100)" json:"discount_code,omitempty"`
	BaseModel
}

// OrderItem 下單當下的商品快照
// 價格與名稱與商品脫鉤，商品後續改價改名不影響歷史訂單
type OrderItem struct {
	OrderID     uint            `gorm:"primaryKey" json:"order_id"`
	ProductID   uint            `gorm:"primaryKey" json:"product_id"`
	ProductName string          `gorm:"not null;type:varchar(100)" json:"product_name"`
	ProductType string          `gorm:"not null;type:varchar(20)" json:"product_type"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	BaseModel
}
