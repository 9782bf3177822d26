package db

import (
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"gorm.io/gorm"
)

type DbDao struct {
	*gorm.DB
}

func NewDbDao(conn *gorm.DB) *DbDao {
	return &DbDao{
		DB: conn,
	}
}

// 初始化db schema
// 冪等性
func (d *DbDao) InitMigrate() error {
	return d.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.DiscountCode{},
		&model.DiscountScope{},
		&model.Refund{},
		&model.Review{},
		&model.Notification{},
		&model.NotificationRead{},
		&model.Setting{},
	)
}
