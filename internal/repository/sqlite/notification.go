package sqlite

import (
	"context"
	"fmt"

	"github.com/shenikar/civic_guardian/internal/models"
)

func (r *Repository) CreateNotification(ctx context.Context, d models.NotificationDraft) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (title, description, display_time, unread) VALUES (?, ?, ?, ?);`,
		d.Title, d.Description, d.DisplayTime, models.FormatUnread(d.Unread),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create notification: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read notification id: %w", err)
	}
	return id, nil
}

func (r *Repository) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	query := `
		SELECT id, title, COALESCE(description, ''), COALESCE(display_time, ''), unread, created_at
		FROM notifications
		ORDER BY id;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	notifications := make([]models.Notification, 0)
	for rows.Next() {
		var (
			n                 models.Notification
			unread, createdAt string
		)
		if err := rows.Scan(&n.ID, &n.Title, &n.Description, &n.DisplayTime, &unread, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		n.Unread = models.ParseUnread(unread)
		if n.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, fmt.Errorf("notification %d: %w", n.ID, err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return notifications, nil
}

// MarkAllNotificationsRead - один оператор UPDATE, атомарный для читателей
func (r *Repository) MarkAllNotificationsRead(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE notifications SET unread = 'false' WHERE unread = 'true';`)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return res.RowsAffected()
}
