package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/segmentio/kafka-go"
)

type INotificationProducer interface {
	ProduceNotificationCreated(ctx context.Context, notification *model.Notification) error
	Close() error
}

// NotificationProducer 通知建立後發佈到kafka，下游投遞系統自行消費
// fire-and-forget: 發佈失敗只記錄，不影響通知落庫
type NotificationProducer struct {
	writer *kafka.Writer
}

func NewNotificationProducer(brokers []string, topic string) *NotificationProducer {
	return &NotificationProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: 5 * time.Second,
		},
	}
}

func (p *NotificationProducer) ProduceNotificationCreated(ctx context.Context, notification *model.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	// 個人通知用user id當key保序，全域通知共用固定key
	key := "global"
	if notification.UserID != nil {
		key = fmt.Sprintf("user:%d", *notification.UserID)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}

func (p *NotificationProducer) Close() error {
	return p.writer.Close()
}

var _ INotificationProducer = (*NotificationProducer)(nil)

// NopNotificationProducer 未設定broker時使用
type NopNotificationProducer struct{}

func (NopNotificationProducer) ProduceNotificationCreated(ctx context.Context, notification *model.Notification) error {
	return nil
}

func (NopNotificationProducer) Close() error { return nil }

var _ INotificationProducer = (*NopNotificationProducer)(nil)
