package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"brewhub/config"
	"brewhub/internal/domain/entity"
	"brewhub/internal/infra/schedule"
	"brewhub/internal/store"
	"brewhub/internal/usecase"
)

type inboxService struct {
	inbox     *store.Inbox
	scheduler *schedule.Scheduler
	echoDelay time.Duration
	logger    *slog.Logger
}

// NewInboxService creates a new inbox service instance
func NewInboxService(
	cfg *config.Config,
	inbox *store.Inbox,
	scheduler *schedule.Scheduler,
	logger *slog.Logger,
) usecase.InboxUsecase {
	return &inboxService{
		inbox:     inbox,
		scheduler: scheduler,
		echoDelay: cfg.Inbox.ReplyEchoDelay,
		logger:    logger,
	}
}

func (s *inboxService) Notifications(_ context.Context) ([]entity.Notification, error) {
	return s.inbox.Notifications(), nil
}

func (s *inboxService) AddNotification(ctx context.Context, title, content, from string) (*entity.Notification, error) {
	notification, err := s.inbox.AddNotification(ctx, title, content, from)
	if err != nil {
		return nil, wrapStorage(err, "add notification")
	}

	return &notification, nil
}

func (s *inboxService) MarkNotificationRead(ctx context.Context, id string) error {
	if err := s.inbox.MarkNotificationRead(ctx, id); err != nil {
		return wrapStorage(err, "mark notification read")
	}

	return nil
}

func (s *inboxService) MarkAllNotificationsRead(ctx context.Context) (int, error) {
	marked, err := s.inbox.MarkAllNotificationsRead(ctx)
	if err != nil {
		return 0, wrapStorage(err, "mark all notifications read")
	}

	return marked, nil
}

func (s *inboxService) ClearNotifications(ctx context.Context) error {
	if err := s.inbox.ClearNotifications(ctx); err != nil {
		return wrapStorage(err, "clear notifications")
	}

	return nil
}

func (s *inboxService) Promote(ctx context.Context, id string) (*entity.Message, error) {
	message, err := s.inbox.Promote(ctx, id)
	if err != nil {
		return nil, wrapStorage(err, "promote notification")
	}

	return &message, nil
}

func (s *inboxService) Messages(_ context.Context) ([]entity.Message, error) {
	return s.inbox.Messages(), nil
}

func (s *inboxService) MarkMessageRead(ctx context.Context, id string) error {
	if err := s.inbox.MarkMessageRead(ctx, id); err != nil {
		return wrapStorage(err, "mark message read")
	}

	return nil
}

func (s *inboxService) MarkAllMessagesRead(ctx context.Context) (int, error) {
	marked, err := s.inbox.MarkAllMessagesRead(ctx)
	if err != nil {
		return 0, wrapStorage(err, "mark all messages read")
	}

	return marked, nil
}

func (s *inboxService) ClearMessages(ctx context.Context) error {
	if err := s.inbox.ClearMessages(ctx); err != nil {
		return wrapStorage(err, "clear messages")
	}

	return nil
}

func (s *inboxService) StartReply(ctx context.Context, id string) (*entity.Message, error) {
	message, err := s.inbox.StartReply(ctx, id)
	if err != nil {
		return nil, wrapStorage(err, "start reply")
	}

	return &message, nil
}

func (s *inboxService) CancelReply(_ context.Context) error {
	s.inbox.CancelReply()

	return nil
}

// SendReply records the reply and schedules the simulated echo from the
// original sender, keyed by the reply's id so a pending echo can be replaced
// or cancelled.
func (s *inboxService) SendReply(ctx context.Context, body string) (*entity.Message, error) {
	reply, originalFrom, err := s.inbox.SendReply(ctx, body)
	if err != nil {
		return nil, wrapStorage(err, "send reply")
	}

	s.scheduler.After(reply.ID, s.echoDelay, func() {
		echoCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := s.inbox.AddNotification(echoCtx,
			"Response Received",
			fmt.Sprintf("%s replied to your message", originalFrom),
			originalFrom,
		); err != nil {
			s.logger.Warn("failed to record echo notification",
				slog.String("reply_id", reply.ID),
				slog.Any("error", err),
			)
		}
	})

	return &reply, nil
}

func (s *inboxService) Badges(_ context.Context) (usecase.InboxBadges, error) {
	notifications, messages := s.inbox.UnreadCounts()

	return usecase.InboxBadges{Notifications: notifications, Messages: messages}, nil
}
