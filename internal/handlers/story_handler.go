package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/anonto42/bluo/backend/internal/models"
	"github.com/anonto42/bluo/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// StoryHandler handles story-related HTTP requests
type StoryHandler struct {
	storyRepository repositories.StoryRepository
}

// NewStoryHandler creates a new StoryHandler
func NewStoryHandler(storyRepo repositories.StoryRepository) *StoryHandler {
	return &StoryHandler{storyRepository: storyRepo}
}

// RegisterStoryRoutes registers story-related routes
func (h *StoryHandler) RegisterStoryRoutes(g *echo.Group) {
	g.GET("/stories", h.GetStories)
	g.POST("/stories", h.CreateStory)
	g.POST("/stories/:id/view", h.MarkAsViewed)
}

// GetStories returns active stories, newest first
func (h *StoryHandler) GetStories(c echo.Context) error {
	stories, err := h.storyRepository.GetStories(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return internalError(c, err, "Failed to load stories")
	}
	return c.JSON(http.StatusOK, stories)
}

// CreateStory creates a new story
func (h *StoryHandler) CreateStory(c echo.Context) error {
	var req models.CreateStoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Content is required")
	}

	story, err := h.storyRepository.CreateStory(c.Request().Context(), getUserIDFromContext(c), content)
	if err != nil {
		return internalError(c, err, "Failed to create story")
	}
	return c.JSON(http.StatusCreated, story)
}

// MarkAsViewed marks a story as viewed by the caller
func (h *StoryHandler) MarkAsViewed(c echo.Context) error {
	if err := h.storyRepository.MarkStoryViewed(c.Request().Context(), c.Param("id"), getUserIDFromContext(c)); err != nil {
		if errors.Is(err, repositories.ErrStoryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Story not found")
		}
		return internalError(c, err, "Failed to update story")
	}
	return c.NoContent(http.StatusNoContent)
}
