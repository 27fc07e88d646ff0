package models

import (
	"strings"
	"time"
)

// Notification - уведомление пользователю
type Notification struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DisplayTime string    `json:"display_time"`
	Unread      bool      `json:"unread"`
	CreatedAt   time.Time `json:"created_at"`
}

type NotificationDraft struct {
	Title       string
	Description string
	DisplayTime string
	Unread      bool
}

// NewNotificationDraft создает непрочитанное уведомление
func NewNotificationDraft(title, description, displayTime string) (NotificationDraft, error) {
	d := NotificationDraft{
		Title:       title,
		Description: description,
		DisplayTime: displayTime,
		Unread:      true,
	}
	if err := d.Validate(); err != nil {
		return NotificationDraft{}, err
	}
	return d, nil
}

func (d NotificationDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	return nil
}

func (d NotificationDraft) Materialize(id int64, createdAt time.Time) Notification {
	return Notification{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		DisplayTime: d.DisplayTime,
		Unread:      d.Unread,
		CreatedAt:   createdAt,
	}
}
