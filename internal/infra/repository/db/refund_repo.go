package db

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"gorm.io/gorm"
)

// ErrRefundNotFound 退款單不存在
var ErrRefundNotFound = errors.New("refund not found")

type IRefundRepository interface {
	CreateRefund(ctx context.Context, refund *model.Refund) error
	GetRefundByID(ctx context.Context, refundID uint) (*model.Refund, error)
	GetRefundsByUserID(ctx context.Context, userID uint) ([]model.Refund, error)
	GetAllRefunds(ctx context.Context) ([]model.Refund, error)
	UpdateRefundStatus(ctx context.Context, refundID uint, status, adminNotes string) (*model.Refund, error)
}

type RefundRepo struct {
	db *DbDao
}

func NewRefundRepo(db *DbDao) *RefundRepo {
	return &RefundRepo{db: db}
}

func (s *RefundRepo) CreateRefund(ctx context.Context, refund *model.Refund) error {
	return s.db.WithContext(ctx).Create(refund).Error
}

func (s *RefundRepo) GetRefundByID(ctx context.Context, refundID uint) (*model.Refund, error) {
	var refund model.Refund
	err := s.db.WithContext(ctx).First(&refund, refundID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRefundNotFound
	}
	if err != nil {
		return nil, err
	}
	return &refund, nil
}

func (s *RefundRepo) GetRefundsByUserID(ctx context.Context, userID uint) ([]model.Refund, error) {
	var refunds []model.Refund
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&refunds).Error
	return refunds, err
}

func (s *RefundRepo) GetAllRefunds(ctx context.Context) ([]model.Refund, error) {
	var refunds []model.Refund
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&refunds).Error
	return refunds, err
}

// UpdateRefundStatus 狀態轉移時一併寫入admin notes與processed_at
func (s *RefundRepo) UpdateRefundStatus(ctx context.Context, refundID uint, status, adminNotes string) (*model.Refund, error) {
	now := time.Now()
	result := s.db.WithContext(ctx).Model(&model.Refund{}).
		Where("refund_id = ?", refundID).
		Updates(map[string]interface{}{
			"status":       status,
			"admin_notes":  adminNotes,
			"processed_at": &now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRefundNotFound
	}
	return s.GetRefundByID(ctx, refundID)
}

var _ IRefundRepository = (*RefundRepo)(nil)
