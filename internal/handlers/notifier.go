package handlers

import (
	"github.com/anonto42/bluo/backend/internal/models"
	"github.com/anonto42/bluo/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// authorNotifier tells a post's author about activity by other users.
type authorNotifier struct {
	notificationRepository repositories.NotificationRepository
}

// notify delivers a notification to the author of post unless the actor is
// the author. Delivery failures are logged and never fail the request.
func (n authorNotifier) notify(c echo.Context, post *models.Post, actorID string, kind models.NotificationType, message string) {
	if post == nil || post.Author == nil || post.Author.ID == actorID {
		return
	}
	_, err := n.notificationRepository.AddNotification(c.Request().Context(), post.Author.ID, repositories.NotificationParams{
		Type:       kind,
		FromUserID: actorID,
		Message:    message,
		PostID:     post.ID,
	})
	if err != nil {
		log.Warn().Err(err).Str("post_id", post.ID).Str("type", string(kind)).Msg("Failed to deliver notification")
	}
}
