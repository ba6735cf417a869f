package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"brewhub/internal/domain/entity"
	domainerrors "brewhub/internal/domain/errors"
	"brewhub/internal/domain/repository"
)

// replyQuoteLen bounds how much of the original content a reply quotes.
const replyQuoteLen = 30

// Inbox owns the two parallel admin lists: notifications and messages. At
// most one message can be in replying mode at a time; starting a new reply
// silently abandons the previous draft.
type Inbox struct {
	mu            sync.Mutex
	kv            repository.KVStore
	notifications []entity.Notification
	messages      []entity.Message
	replyTo       string
}

// NewInbox creates an empty inbox backed by kv. Call Load before use.
func NewInbox(kv repository.KVStore) *Inbox {
	return &Inbox{kv: kv}
}

// Load rehydrates both lists from the store. The reply target is transient
// process state and survives a rehydrate; SendReply copes if its message is
// gone.
func (b *Inbox) Load(ctx context.Context) error {
	notifications, err := loadList[entity.Notification](ctx, b.kv, repository.KeyAdminNotifications)
	if err != nil {
		return err
	}

	messages, err := loadList[entity.Message](ctx, b.kv, repository.KeyAdminMessages)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.notifications = notifications
	b.messages = messages

	return nil
}

// AddNotification prepends a new unread notification. An empty sender is
// attributed to "System".
func (b *Inbox) AddNotification(ctx context.Context, title, content, from string) (entity.Notification, error) {
	if strings.TrimSpace(from) == "" {
		from = "System"
	}

	notification := entity.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		From:      from,
		CreatedAt: time.Now(),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.notifications = append([]entity.Notification{notification}, b.notifications...)

	if err := saveList(ctx, b.kv, repository.KeyAdminNotifications, b.notifications); err != nil {
		return entity.Notification{}, err
	}

	return notification, nil
}

// MarkNotificationRead marks one notification read. Unknown ids are ignored.
func (b *Inbox) MarkNotificationRead(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.notifications {
		if b.notifications[i].ID == id && !b.notifications[i].Read {
			b.notifications[i].Read = true

			return saveList(ctx, b.kv, repository.KeyAdminNotifications, b.notifications)
		}
	}

	return nil
}

// MarkAllNotificationsRead marks every unread notification read and returns
// how many changed.
func (b *Inbox) MarkAllNotificationsRead(ctx context.Context) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	marked := 0
	for i := range b.notifications {
		if !b.notifications[i].Read {
			b.notifications[i].Read = true
			marked++
		}
	}

	if marked == 0 {
		return 0, nil
	}

	return marked, saveList(ctx, b.kv, repository.KeyAdminNotifications, b.notifications)
}

// ClearNotifications removes every notification.
func (b *Inbox) ClearNotifications(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.notifications = nil

	return saveList(ctx, b.kv, repository.KeyAdminNotifications, b.notifications)
}

// Promote moves a notification into the message list. The new message sits
// at the head of the messages, carries the notification's sender and content,
// and keeps a back-reference. The notification is consumed, so the combined
// entry count does not change.
func (b *Inbox) Promote(ctx context.Context, id string) (entity.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := -1
	for i := range b.notifications {
		if b.notifications[i].ID == id {
			idx = i

			break
		}
	}
	if idx < 0 {
		return entity.Message{}, domainerrors.ErrNotificationNotFound
	}

	source := b.notifications[idx]
	message := entity.Message{
		ID:                     uuid.NewString(),
		From:                   source.From,
		Content:                source.Content,
		CreatedAt:              time.Now(),
		OriginalNotificationID: source.ID,
	}

	b.messages = append([]entity.Message{message}, b.messages...)
	b.notifications = append(b.notifications[:idx], b.notifications[idx+1:]...)

	if err := saveList(ctx, b.kv, repository.KeyAdminNotifications, b.notifications); err != nil {
		return entity.Message{}, err
	}
	if err := saveList(ctx, b.kv, repository.KeyAdminMessages, b.messages); err != nil {
		return entity.Message{}, err
	}

	return message, nil
}

// MarkMessageRead marks one message read. Unknown ids are ignored.
func (b *Inbox) MarkMessageRead(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.messages {
		if b.messages[i].ID == id && !b.messages[i].Read {
			b.messages[i].Read = true

			return saveList(ctx, b.kv, repository.KeyAdminMessages, b.messages)
		}
	}

	return nil
}

// MarkAllMessagesRead marks every unread message read and returns how many
// changed.
func (b *Inbox) MarkAllMessagesRead(ctx context.Context) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	marked := 0
	for i := range b.messages {
		if !b.messages[i].Read {
			b.messages[i].Read = true
			marked++
		}
	}

	if marked == 0 {
		return 0, nil
	}

	return marked, saveList(ctx, b.kv, repository.KeyAdminMessages, b.messages)
}

// ClearMessages removes every message and abandons any in-progress reply.
func (b *Inbox) ClearMessages(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.messages = nil
	b.replyTo = ""

	return saveList(ctx, b.kv, repository.KeyAdminMessages, b.messages)
}

// StartReply marks the target message read and makes it the active reply
// target, dropping any previous draft target.
func (b *Inbox) StartReply(ctx context.Context, id string) (entity.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.messages {
		if b.messages[i].ID != id {
			continue
		}

		if !b.messages[i].Read {
			b.messages[i].Read = true
			if err := saveList(ctx, b.kv, repository.KeyAdminMessages, b.messages); err != nil {
				return entity.Message{}, err
			}
		}

		b.replyTo = id

		return b.messages[i], nil
	}

	return entity.Message{}, domainerrors.ErrMessageNotFound
}

// CancelReply abandons the active reply target, if any.
func (b *Inbox) CancelReply() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.replyTo = ""
}

// SendReply appends an already-read reply from the current user quoting the
// start of the target message, and clears the reply target. It returns the
// new reply and the original sender so the caller can schedule the echo
// notification.
func (b *Inbox) SendReply(ctx context.Context, body string) (entity.Message, string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return entity.Message{}, "", domainerrors.ErrEmptyReply
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.replyTo == "" {
		return entity.Message{}, "", domainerrors.ErrNoReplyTarget
	}

	var target *entity.Message
	for i := range b.messages {
		if b.messages[i].ID == b.replyTo {
			target = &b.messages[i]

			break
		}
	}
	if target == nil {
		b.replyTo = ""

		return entity.Message{}, "", domainerrors.ErrMessageNotFound
	}

	quote := target.Content
	if runes := []rune(quote); len(runes) > replyQuoteLen {
		quote = string(runes[:replyQuoteLen])
	}

	reply := entity.Message{
		ID:        uuid.NewString(),
		From:      "You",
		Content:   fmt.Sprintf("Reply to %q...: %s", quote, body),
		CreatedAt: time.Now(),
		Read:      true,
		IsReply:   true,
	}

	originalFrom := target.From
	b.messages = append([]entity.Message{reply}, b.messages...)
	b.replyTo = ""

	if err := saveList(ctx, b.kv, repository.KeyAdminMessages, b.messages); err != nil {
		return entity.Message{}, "", err
	}

	return reply, originalFrom, nil
}

// Notifications returns a copy of the notification list, newest first.
func (b *Inbox) Notifications() []entity.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]entity.Notification, len(b.notifications))
	copy(out, b.notifications)

	return out
}

// Messages returns a copy of the message list, newest first.
func (b *Inbox) Messages() []entity.Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]entity.Message, len(b.messages))
	copy(out, b.messages)

	return out
}

// UnreadCounts returns the badge values for both lists.
func (b *Inbox) UnreadCounts() (notifications, messages int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, n := range b.notifications {
		if !n.Read {
			notifications++
		}
	}
	for _, m := range b.messages {
		if !m.Read {
			messages++
		}
	}

	return notifications, messages
}
