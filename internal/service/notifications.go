package service

import (
	"time"

	"amur-backend/internal/domain"
)

// NotificationService handles the in-app notification inbox.
type NotificationService struct {
	notifications NotificationRepository
}

func NewNotificationService(notifications NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) Notify(userID, title, message, kind string) error {
	return s.notifications.InsertNotification(&domain.Notification{
		ID:        newID("notif"),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      kind,
		CreatedAt: time.Now(),
	})
}

func (s *NotificationService) List(userID string) ([]domain.Notification, error) {
	notifications, err := s.notifications.ListUserNotifications(userID)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	return notifications, nil
}

func (s *NotificationService) MarkRead(id, userID string) error {
	affected, err := s.notifications.MarkNotificationRead(id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *NotificationService) MarkAllRead(userID string) (int64, error) {
	return s.notifications.MarkAllNotificationsRead(userID)
}

func (s *NotificationService) UnreadCount(userID string) (int, error) {
	return s.notifications.CountUnreadNotifications(userID)
}
