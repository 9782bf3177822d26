package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RefundStatusPending   = "pending"   // 待審核
	RefundStatusApproved  = "approved"  // 已核准
	RefundStatusRejected  = "rejected"  // 已駁回
	RefundStatusProcessed = "processed" // 已退款
)

// IsValidRefundStatus 檢查退款狀態是否合法
func IsValidRefundStatus(status string) bool {
	switch status {
	case RefundStatusPending, RefundStatusApproved, RefundStatusRejected, RefundStatusProcessed:
		return true
	}
	return false
}

type Refund struct {
	RefundID    uint            `gorm:"primaryKey" json:"refund_id"`
	OrderID     uint            `gorm:"not null;index" json:"order_id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Reason      string          `gorm:"not null;type:text" json:"reason"`
	Amount      decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"amount"`
	Status      string          `gorm:"not null;type:varchar(20);default:'pending'" json:"status"`
	AdminNotes  string          `gorm:"type:text" json:"admin_notes"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
	BaseModel
}
