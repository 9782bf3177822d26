package dto

import "time"

// 後台管理DTO

type ProductDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       uint   `json:"stock"`
	Status      string `json:"status"`
	Type        string `json:"type"`
	CategoryID  *uint  `json:"category_id,omitempty"`
	Featured    bool   `json:"featured"`
}

type AdjustStockDTO struct {
	Adjustment int `json:"adjustment"`
}

type CategoryDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DiscountCodeDTO struct {
	Code               string     `json:"code"`
	DiscountPercentage string     `json:"discount_percentage"`
	TotalUses          int        `json:"total_uses"`
	Active             *bool      `json:"active,omitempty"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
	ProductIDs         []uint     `json:"product_ids,omitempty"`
}

type UpdateOrderStatusDTO struct {
	Status string `json:"status"`
}

type UpdateRefundStatusDTO struct {
	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes"`
}

type CreateNotificationDTO struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Type     string `json:"type"`
	IsGlobal bool   `json:"is_global"`
	UserID   *uint  `json:"user_id,omitempty"`
}

type SettingDTO struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type FileUploadResponse struct {
	FileID string `json:"file_id"`
	Name   string `json:"name"`
	Size   int64  `json:"size"`
}

type DownloadLinkResponse struct {
	URL string `json:"url"`
}
