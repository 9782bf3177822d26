package model

import (
	"github.com/shopspring/decimal"
)

const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"

	ProductTypeAccount = "account"
	ProductTypeCombo   = "combo"
)

type Product struct {
	ProductID   uint            `gorm:"primaryKey" json:"product_id"`
	Name        string          `gorm:"not null;type:varchar(100)" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Stock       uint            `gorm:"not null;type:int" json:"stock"`
	Status      string          `gorm:"not null;type:varchar(20);default:'active'" json:"status"`
	Type        string          `gorm:"not null;type:varchar(20)" json:"type"`
	CategoryID  *uint           `gorm:"index" json:"category_id,omitempty"`
	Featured    bool            `gorm:"not null;default:false" json:"featured"`
	FileID      *string         `gorm:"type:varchar(255)" json:"file_id,omitempty"`
	OrderItems  []OrderItem     `gorm:"foreignKey:ProductID" json:"-"` // 一對多，歷史訂單仍引用商品，不做級聯刪除
	BaseModel
}

func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

type Category struct {
	CategoryID  uint      `gorm:"primaryKey" json:"category_id"`
	Name        string    `gorm:"not null;type:varchar(100);unique" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Products    []Product `gorm:"foreignKey:CategoryID" json:"-"`
	BaseModel
}
