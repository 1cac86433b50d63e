package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/anonto42/bluo/backend/internal/metrics"
	"github.com/anonto42/bluo/backend/internal/models"
	"github.com/anonto42/bluo/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	postRepository repositories.PostRepository
	notifier       authorNotifier
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(postRepo repositories.PostRepository, notificationRepo repositories.NotificationRepository) *CommentHandler {
	return &CommentHandler{
		postRepository: postRepo,
		notifier:       authorNotifier{notificationRepository: notificationRepo},
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:id/comments", h.CreateComment)
	g.POST("/posts/:id/comments/:commentId/like", h.LikeComment)
}

// CreateComment appends a comment to a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Content is required")
	}

	ctx := c.Request().Context()
	userID := getUserIDFromContext(c)
	post, err := h.postRepository.GetPost(ctx, c.Param("id"), userID)
	if err != nil {
		return h.commentError(c, err)
	}

	comment, err := h.postRepository.AddComment(ctx, post.ID, userID, content)
	if err != nil {
		return h.commentError(c, err)
	}

	metrics.RecordInteraction("comment")
	h.notifier.notify(c, post, userID, models.NotificationComment, "commented on your post")
	return c.JSON(http.StatusCreated, comment)
}

// LikeComment toggles the caller's like on a comment
func (h *CommentHandler) LikeComment(c echo.Context) error {
	result, err := h.postRepository.ToggleCommentLike(
		c.Request().Context(), c.Param("id"), c.Param("commentId"), getUserIDFromContext(c))
	if err != nil {
		return h.commentError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *CommentHandler) commentError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repositories.ErrPostNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	case errors.Is(err, repositories.ErrCommentNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}
	return internalError(c, err, "Failed to update comment")
}
