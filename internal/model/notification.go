package model

import "time"

const (
	NotificationTypeInfo      = "info"
	NotificationTypeOrder     = "order"
	NotificationTypePromotion = "promotion"
	NotificationTypeSystem    = "system"
)

type Notification struct {
	NotificationID uint   `gorm:"primaryKey" json:"notification_id"`
	Title          string `gorm:"not null;type:varchar(200)" json:"title"`
	Message        string `gorm:"not null;type:text" json:"message"`
	Type           string `gorm:"not null;type:varchar(20);default:'info'" json:"type"`
	IsGlobal       bool   `gorm:"not null;default:false" json:"is_global"`
	UserID         *uint  `gorm:"index" json:"user_id,omitempty"` // 全域通知為 null
	BaseModel
}

// NotificationRead 全域通知的已讀狀態
// 全域通知一筆資料由所有用戶共享，已讀狀態不能寫回通知本體，改用關聯表記錄
type NotificationRead struct {
	NotificationID uint      `gorm:"primaryKey" json:"notification_id"`
	UserID         uint      `gorm:"primaryKey" json:"user_id"`
	ReadAt         time.Time `gorm:"not null;default:now()" json:"read_at"`
}

// NotificationView 給前端的通知視圖，附帶該用戶的已讀旗標
type NotificationView struct {
	Notification
	IsRead bool `json:"is_read"`
}
