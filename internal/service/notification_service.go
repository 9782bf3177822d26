package service

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/infra/producer"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/RoyceAzure/lab/storefront/internal/pkg/apperr"
	"github.com/rs/zerolog/log"
)

type INotificationService interface {
	CreateNotification(ctx context.Context, notification *model.Notification) error
	GetMyNotifications(ctx context.Context, auth model.AuthContext) ([]model.NotificationView, error)
	MarkRead(ctx context.Context, auth model.AuthContext, notificationID uint) error
	DeleteNotification(ctx context.Context, notificationID uint) error
}

type NotificationService struct {
	notificationRepo db.INotificationRepository
	producer         producer.INotificationProducer
}

func NewNotificationService(notificationRepo db.INotificationRepository, p producer.INotificationProducer) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo, producer: p}
}

// CreateNotification 後台建立廣播或指定用戶通知
// 落庫成功後發佈到kafka給投遞端，發佈失敗只記錄
func (s *NotificationService) CreateNotification(ctx context.Context, notification *model.Notification) error {
	if notification.Title == "" || notification.Message == "" {
		return apperr.New(apperr.ValidationCode, "title and message are required")
	}
	if !notification.IsGlobal && notification.UserID == nil {
		return apperr.New(apperr.ValidationCode, "user_id is required for non-global notification")
	}
	if notification.IsGlobal {
		// 全域通知不綁定用戶
		notification.UserID = nil
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return apperr.Wrap(apperr.InternalCode, "failed to create notification", err)
	}

	if err := s.producer.ProduceNotificationCreated(ctx, notification); err != nil {
		log.Warn().Err(err).Uint("notification_id", notification.NotificationID).
			Msg("failed to publish notification event")
	}
	return nil
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, auth model.AuthContext) ([]model.NotificationView, error) {
	return s.notificationRepo.GetNotificationsForUser(ctx, auth.UserID)
}

// MarkRead 冪等
func (s *NotificationService) MarkRead(ctx context.Context, auth model.AuthContext, notificationID uint) error {
	return s.notificationRepo.MarkRead(ctx, notificationID, auth.UserID)
}

func (s *NotificationService) DeleteNotification(ctx context.Context, notificationID uint) error {
	return s.notificationRepo.DeleteNotification(ctx, notificationID)
}

var _ INotificationService = (*NotificationService)(nil)
