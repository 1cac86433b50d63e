package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/bluo/backend/internal/metrics"
	"github.com/anonto42/bluo/backend/internal/models"
	"github.com/anonto42/bluo/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles like and share toggles on posts
type LikeHandler struct {
	postRepository repositories.PostRepository
	notifier       authorNotifier
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(postRepo repositories.PostRepository, notificationRepo repositories.NotificationRepository) *LikeHandler {
	return &LikeHandler{
		postRepository: postRepo,
		notifier:       authorNotifier{notificationRepository: notificationRepo},
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.LikePost)
	g.POST("/posts/:id/share", h.SharePost)
}

// LikePost toggles the caller's like on a post
func (h *LikeHandler) LikePost(c echo.Context) error {
	userID := getUserIDFromContext(c)
	post, err := h.loadPost(c, userID)
	if err != nil {
		return err
	}

	result, err := h.postRepository.ToggleLike(c.Request().Context(), post.ID, userID)
	if err != nil {
		return h.toggleError(c, err)
	}

	if result.IsLiked {
		metrics.RecordInteraction("like")
		h.notifier.notify(c, post, userID, models.NotificationLike, "liked your post")
	} else {
		metrics.RecordInteraction("unlike")
	}
	return c.JSON(http.StatusOK, result)
}

// SharePost toggles the caller's share of a post
func (h *LikeHandler) SharePost(c echo.Context) error {
	userID := getUserIDFromContext(c)
	post, err := h.loadPost(c, userID)
	if err != nil {
		return err
	}

	result, err := h.postRepository.ToggleShare(c.Request().Context(), post.ID, userID)
	if err != nil {
		return h.toggleError(c, err)
	}

	if result.IsShared {
		metrics.RecordInteraction("share")
		h.notifier.notify(c, post, userID, models.NotificationShare, "shared your post")
	} else {
		metrics.RecordInteraction("unshare")
	}
	return c.JSON(http.StatusOK, result)
}

func (h *LikeHandler) loadPost(c echo.Context, userID string) (*models.Post, error) {
	post, err := h.postRepository.GetPost(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return nil, h.toggleError(c, err)
	}
	return post, nil
}

func (h *LikeHandler) toggleError(c echo.Context, err error) error {
	if errors.Is(err, repositories.ErrPostNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return internalError(c, err, "Failed to update post")
}
