package storage

import (
	"database/sql"

	"amur-backend/internal/domain"
)

type NotificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) InsertNotification(n *domain.Notification) error {
	_, err := r.DB.Exec(
		`INSERT INTO notifications (id, user_id, title, message, is_read, type, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		n.ID, n.UserID, n.Title, n.Message, n.IsRead, n.Type, n.CreatedAt,
	)
	return err
}

func (r *NotificationRepository) ListUserNotifications(userID string) ([]domain.Notification, error) {
	rows, err := r.DB.Query(
		`SELECT id, user_id, title, message, is_read, type, created_at
		 FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.IsRead, &n.Type, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *NotificationRepository) MarkNotificationRead(id, userID string) (int64, error) {
	result, err := r.DB.Exec(
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *NotificationRepository) MarkAllNotificationsRead(userID string) (int64, error) {
	result, err := r.DB.Exec(
		`UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND NOT is_read`, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *NotificationRepository) CountUnreadNotifications(userID string) (int, error) {
	var count int
	err := r.DB.QueryRow(
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT is_read`, userID).Scan(&count)
	return count, err
}
