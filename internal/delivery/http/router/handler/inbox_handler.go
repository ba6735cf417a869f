package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"brewhub/internal/delivery/http/response"
	"brewhub/internal/usecase"
)

// InboxHandler holds dependencies for the notification and message handlers.
type InboxHandler struct {
	uc usecase.InboxUsecase
}

// NewInboxHandler is the constructor for InboxHandler, injected by Fx.
func NewInboxHandler(uc usecase.InboxUsecase) *InboxHandler {
	return &InboxHandler{uc: uc}
}

type addNotificationRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	From    string `json:"from"`
}

type sendReplyRequest struct {
	Body string `json:"body"`
}

// Notifications lists notifications, newest first.
func (h *InboxHandler) Notifications(c echo.Context) error {
	notifications, err := h.uc.Notifications(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "")
}

// AddNotification prepends a new unread notification.
func (h *InboxHandler) AddNotification(c echo.Context) error {
	var input addNotificationRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	notification, err := h.uc.AddNotification(c.Request().Context(), input.Title, input.Content, input.From)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, notification, "Notification added")
}

// MarkNotificationRead marks one notification read.
func (h *InboxHandler) MarkNotificationRead(c echo.Context) error {
	if err := h.uc.MarkNotificationRead(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked read")
}

// MarkAllNotificationsRead marks every notification read.
func (h *InboxHandler) MarkAllNotificationsRead(c echo.Context) error {
	marked, err := h.uc.MarkAllNotificationsRead(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"marked": marked}, "Notifications marked read")
}

// ClearNotifications removes every notification.
func (h *InboxHandler) ClearNotifications(c echo.Context) error {
	if err := h.uc.ClearNotifications(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notifications cleared")
}

// Promote moves a notification into the message list.
func (h *InboxHandler) Promote(c echo.Context) error {
	message, err := h.uc.Promote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, message, "Notification moved to messages")
}

// Messages lists messages, newest first.
func (h *InboxHandler) Messages(c echo.Context) error {
	messages, err := h.uc.Messages(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}

// MarkMessageRead marks one message read.
func (h *InboxHandler) MarkMessageRead(c echo.Context) error {
	if err := h.uc.MarkMessageRead(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Message marked read")
}

// MarkAllMessagesRead marks every message read.
func (h *InboxHandler) MarkAllMessagesRead(c echo.Context) error {
	marked, err := h.uc.MarkAllMessagesRead(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"marked": marked}, "Messages marked read")
}

// ClearMessages removes every message.
func (h *InboxHandler) ClearMessages(c echo.Context) error {
	if err := h.uc.ClearMessages(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Messages cleared")
}

// StartReply makes a message the active reply target.
func (h *InboxHandler) StartReply(c echo.Context) error {
	message, err := h.uc.StartReply(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, message, "Replying")
}

// CancelReply abandons the active reply target.
func (h *InboxHandler) CancelReply(c echo.Context) error {
	if err := h.uc.CancelReply(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Reply cancelled")
}

// SendReply appends a reply to the active target.
func (h *InboxHandler) SendReply(c echo.Context) error {
	var input sendReplyRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reply input")
	}

	message, err := h.uc.SendReply(c.Request().Context(), input.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Reply sent")
}

// Badges returns the unread counts for both lists.
func (h *InboxHandler) Badges(c echo.Context) error {
	badges, err := h.uc.Badges(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, badges, "")
}
