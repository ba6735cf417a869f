package usecase

import (
	"context"

	"brewhub/internal/domain/entity"
)

// InboxBadges carries the unread counts shown next to each inbox list. A
// count of zero hides the badge.
type InboxBadges struct {
	Notifications int `json:"notifications"`
	Messages      int `json:"messages"`
}

// InboxUsecase defines the notification and message operations
type InboxUsecase interface {
	// Notifications lists notifications, newest first
	Notifications(ctx context.Context) ([]entity.Notification, error)

	// AddNotification prepends a new unread notification
	AddNotification(ctx context.Context, title, content, from string) (*entity.Notification, error)

	// MarkNotificationRead marks one notification read; unknown ids are ignored
	MarkNotificationRead(ctx context.Context, id string) error

	// MarkAllNotificationsRead marks every notification read, returning
	// how many changed
	MarkAllNotificationsRead(ctx context.Context) (int, error)

	// ClearNotifications removes every notification
	ClearNotifications(ctx context.Context) error

	// Promote moves a notification into the message list, consuming it
	Promote(ctx context.Context, id string) (*entity.Message, error)

	// Messages lists messages, newest first
	Messages(ctx context.Context) ([]entity.Message, error)

	// MarkMessageRead marks one message read; unknown ids are ignored
	MarkMessageRead(ctx context.Context, id string) error

	// MarkAllMessagesRead marks every message read, returning how many changed
	MarkAllMessagesRead(ctx context.Context) (int, error)

	// ClearMessages removes every message and abandons any reply draft
	ClearMessages(ctx context.Context) error

	// StartReply marks the target read and makes it the active reply target
	StartReply(ctx context.Context, id string) (*entity.Message, error)

	// CancelReply abandons the active reply target
	CancelReply(ctx context.Context) error

	// SendReply appends an already-read reply quoting the target and
	// schedules the simulated echo notification from the original sender
	SendReply(ctx context.Context, body string) (*entity.Message, error)

	// Badges returns the unread counts for both lists
	Badges(ctx context.Context) (InboxBadges, error)
}
