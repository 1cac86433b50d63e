package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/bluo/backend/internal/models"
	"github.com/anonto42/bluo/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepository: notifRepo}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PATCH("/notifications/read-all", h.MarkAllAsRead)
	g.PATCH("/notifications/:id/read", h.MarkAsRead)
}

// GetNotifications returns the caller's notifications, newest first
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	notifications, err := h.notificationRepository.GetNotifications(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return internalError(c, err, "Failed to load notifications")
	}
	return c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	count, err := h.notificationRepository.GetUnreadCount(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return internalError(c, err, "Failed to count notifications")
	}
	return c.JSON(http.StatusOK, models.UnreadCount{Count: count})
}

func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	err := h.notificationRepository.MarkNotificationRead(c.Request().Context(), getUserIDFromContext(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
		}
		return internalError(c, err, "Failed to update notification")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	if err := h.notificationRepository.MarkAllNotificationsRead(c.Request().Context(), getUserIDFromContext(c)); err != nil {
		return internalError(c, err, "Failed to update notifications")
	}
	return c.NoContent(http.StatusNoContent)
}
