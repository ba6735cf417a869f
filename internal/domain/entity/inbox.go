package entity

import "time"

// Notification is an inbox entry produced by system events (a new order, a
// simulated reply). Notifications start unread and may be promoted into the
// message list, which consumes them.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	From      string    `json:"from"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

// Message is an inbox thread entry. Reply messages are created already read.
type Message struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
	IsReply   bool      `json:"is_reply"`
	// OriginalNotificationID back-references the notification a promoted
	// message came from; empty for replies.
	OriginalNotificationID string `json:"original_notification_id,omitempty"`
}
