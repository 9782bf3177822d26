package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
)

var (
	ErrRefundNotFound      = apperr.New(apperr.NotFoundCode, "refund not found")
	ErrOrderNotRefundable  = apperr.New(apperr.ValidationCode, "order is not refundable")
	ErrInvalidRefundStatus = apperr.New(apperr.ValidationCode, "invalid refund status")
)

type IRefundService interface {
	RequestRefund(ctx context.Context, auth model.AuthContext, orderID uint, reason string) (*model.Refund, error)
	GetMyRefunds(ctx context.Context, auth model.AuthContext) ([]model.Refund, error)
	GetAllRefunds(ctx context.Context) ([]model.Refund, error)
	UpdateRefundStatus(ctx context.Context, refundID uint, status, adminNotes string) (*model.Refund, error)
}

type RefundService struct {
	refundRepo db.IRefundRepository
	orderRepo  db.IOrderRepository
}

func NewRefundService(refundRepo db.IRefundRepository, orderRepo db.IOrderRepository) *RefundService {
	return &RefundService{refundRepo: refundRepo, orderRepo: orderRepo}
}

// RequestRefund 用戶對自己的已完成訂單申請退款，金額取訂單總額
func (s *RefundService) RequestRefund(ctx context.Context, auth model.AuthContext, orderID uint, reason string) (*model.Refund, error) {
	if reason == "" {
		return nil, apperr.New(apperr.ValidationCode, "refund reason is required")
	}

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if errors.Is(err, db.ErrOrderNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalCode, "failed to load order", err)
	}
	if order.UserID != auth.UserID {
		return nil, ErrOrderForbidden
	}
	if order.Status != model.OrderStatusCompleted {
		return nil, ErrOrderNotRefundable
	}

	refund := &model.Refund{
		OrderID: order.OrderID,
		UserID:  auth.UserID,
		Reason:  reason,
		Amount:  order.TotalAmount,
		Status:  model.RefundStatusPending,
	}
	if err := s.refundRepo.CreateRefund(ctx, refund); err != nil {
		return nil, apperr.Wrap(apperr.InternalCode, "failed to create refund", err)
	}
	return refund, nil
}

func (s *RefundService) GetMyRefunds(ctx context.Context, auth model.AuthContext) ([]model.Refund, error) {
	return s.refundRepo.GetRefundsByUserID(ctx, auth.UserID)
}

func (s *RefundService) GetAllRefunds(ctx context.Context) ([]model.Refund, error) {
	return s.refundRepo.GetAllRefunds(ctx)
}

// UpdateRefundStatus admin審核，狀態轉移時寫入admin notes與processed_at
func (s *RefundService) UpdateRefundStatus(ctx context.Context, refundID uint, status, adminNotes string) (*model.Refund, error) {
	if !model.IsValidRefundStatus(status) {
		return nil, ErrInvalidRefundStatus
	}

	refund, err := s.refundRepo.UpdateRefundStatus(ctx, refundID, status, adminNotes)
	if errors.Is(err, db.ErrRefundNotFound) {
		return nil, ErrRefundNotFound
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.InternalCode, "failed to update refund", err)
	}
	return refund, nil
}

var _ IRefundService = (*RefundService)(nil)
