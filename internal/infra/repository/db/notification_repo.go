package db

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"gorm.io/gorm/clause"
)

type INotificationRepository interface {
	CreateNotification(ctx context.Context, notification *model.Notification) error
	GetNotificationsForUser(ctx context.Context, userID uint) ([]model.NotificationView, error)
	MarkRead(ctx context.Context, notificationID, userID uint) error
	DeleteNotification(ctx context.Context, notificationID uint) error
}

type NotificationRepo struct {
	db *DbDao
}

func NewNotificationRepo(db *DbDao) *NotificationRepo {
	return &NotificationRepo{db: db}
}

func (s *NotificationRepo) CreateNotification(ctx context.Context, notification *model.Notification) error {
	return s.db.WithContext(ctx).Create(notification).Error
}

// GetNotificationsForUser 全域通知 + 該用戶的個人通知
// 已讀旗標從notification_reads LEFT JOIN帶出，不動通知本體
func (s *NotificationRepo) GetNotificationsForUser(ctx context.Context, userID uint) ([]model.NotificationView, error) {
	var views []model.NotificationView
	err := s.db.WithContext(ctx).Model(&model.Notification{}).
		Select("notifications.*, notification_reads.read_at IS NOT NULL AS is_read").
		Joins("LEFT JOIN notification_reads ON notification_reads.notification_id = notifications.notification_id AND notification_reads.user_id = ?", userID).
		Where("notifications.is_global = ? OR notifications.user_id = ?", true, userID).
		Order("notifications.created_at DESC").
		Find(&views).Error
	return views, err
}

// MarkRead 冪等，重複標記已讀不報錯
func (s *NotificationRepo) MarkRead(ctx context.Context, notificationID, userID uint) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.NotificationRead{
			NotificationID: notificationID,
			UserID:         userID,
		}).Error
}

func (s *NotificationRepo) DeleteNotification(ctx context.Context, notificationID uint) error {
	return s.db.WithContext(ctx).Delete(&model.Notification{}, notificationID).Error
}

var _ INotificationRepository = (*NotificationRepo)(nil)
