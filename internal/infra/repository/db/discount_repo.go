package db

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"gorm.io/gorm"
)

var (
	// ErrDiscountNotFound 折扣碼不存在
	ErrDiscountNotFound = errors.New("discount code not found")
	// ErrDiscountConsumeFailed 消耗折扣碼失敗，已用罄或已停用
	ErrDiscountConsumeFailed = errors.New("discount code consume failed")
)

type IDiscountRepository interface {
	CreateDiscountCode(ctx context.Context, code *model.DiscountCode) error
	GetByCode(ctx context.Context, code string) (*model.DiscountCode, error)
	GetAllDiscountCodes(ctx context.Context) ([]model.DiscountCode, error)
	UpdateDiscountCode(ctx context.Context, code *model.DiscountCode) error
	DeleteDiscountCode(ctx context.Context, discountID uint) error
}

type DiscountRepo struct {
	db *DbDao
}

func NewDiscountRepo(db *DbDao) *DiscountRepo {
	return &DiscountRepo{db: db}
}

func (s *DiscountRepo) CreateDiscountCode(ctx context.Context, code *model.DiscountCode) error {
	return s.db.WithContext(ctx).Create(code).Error
}

// GetByCode 大小寫敏感的精確比對
func (s *DiscountRepo) GetByCode(ctx context.Context, code string) (*model.DiscountCode, error) {
	var discount model.DiscountCode
	err := s.db.WithContext(ctx).Preload("Scopes").Where("code = ?", code).First(&discount).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDiscountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &discount, nil
}

func (s *DiscountRepo) GetAllDiscountCodes(ctx context.Context) ([]model.DiscountCode, error) {
	var codes []model.DiscountCode
	err := s.db.WithContext(ctx).Preload("Scopes").Find(&codes).Error
	return codes, err
}

func (s *DiscountRepo) UpdateDiscountCode(ctx context.Context, code *model.DiscountCode) error {
	return s.db.WithContext(ctx).Save(code).Error
}

func (s *DiscountRepo) DeleteDiscountCode(ctx context.Context, discountID uint) error {
	return s.db.WithContext(ctx).Delete(&model.DiscountCode{}, discountID).Error
}

// consumeDiscountTx 結帳交易內原子消耗使用次數
// used_count遞增與上限、效期檢查在同一條UPDATE完成，驗證與消耗之間被搶走名額或過期時RowsAffected=0
func consumeDiscountTx(tx *gorm.DB, code string) error {
	result := tx.Model(&model.DiscountCode{}).
		Where("code = ? AND active = ? AND (total_uses = ? OR used_count < total_uses) AND (expires_at IS NULL OR expires_at > ?)",
			code, true, model.UnlimitedUses, time.Now()).
		Update("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDiscountConsumeFailed
	}
	return nil
}

var _ IDiscountRepository = (*DiscountRepo)(nil)
