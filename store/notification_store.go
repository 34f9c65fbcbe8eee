package store

import (
	"context"

	"github.com/yfei-chen/circlefeed/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NotificationStore records and lists notifications. Record runs inside
// the caller's transaction, which is what gives post creation its
// all-or-nothing behavior.
type NotificationStore struct {
	DB *gorm.DB
}

func NewNotificationStore(db *gorm.DB) *NotificationStore {
	return &NotificationStore{DB: db}
}

// Record implements engine.NotificationSink.
func (s *NotificationStore) Record(tx *gorm.DB, notification *model.Notification) error {
	return tx.Omit(clause.Associations).Create(notification).Error
}

// ListByOwner returns a user's notifications, newest first.
func (s *NotificationStore) ListByOwner(ctx context.Context, ownerId string) ([]*model.Notification, error) {
	var notifications []*model.Notification
	queryResult := s.DB.WithContext(ctx).
		Where("owner_id = ?", ownerId).
		Order("created_at desc").
		Find(&notifications)
	return notifications, queryResult.Error
}
