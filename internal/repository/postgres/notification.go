package postgres

import (
	"context"
	"fmt"

	"github.com/shenikar/civic_guardian/internal/models"
)

func (r *Repository) CreateNotification(ctx context.Context, d models.NotificationDraft) (int64, error) {
	query := `
		INSERT INTO notifications (title, description, display_time, unread)
		VALUES ($1, $2, $3, $4) RETURNING id;
	`
	var id int64
	err := r.db.QueryRow(ctx, query, d.Title, d.Description, d.DisplayTime, models.FormatUnread(d.Unread)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create notification: %w", err)
	}
	return id, nil
}

func (r *Repository) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	query := `
		SELECT id, title, COALESCE(description, ''), COALESCE(display_time, ''), unread, created_at
		FROM notifications
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0)
	for rows.Next() {
		var (
			n      models.Notification
			unread string
		)
		if err := rows.Scan(&n.ID, &n.Title, &n.Description, &n.DisplayTime, &unread, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		n.Unread = models.ParseUnread(unread)
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return notifications, nil
}

// MarkAllNotificationsRead одним UPDATE помечает прочитанными все непрочитанные уведомления
func (r *Repository) MarkAllNotificationsRead(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `UPDATE notifications SET unread = 'false' WHERE unread = 'true';`)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
