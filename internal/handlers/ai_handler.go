package handlers

import (
	"net/http"

	"github.com/anonto42/bluo/backend/internal/models"
	"github.com/anonto42/bluo/backend/internal/suggestions"
	"github.com/labstack/echo/v4"
)

// AIHandler serves the canned composition assistant
type AIHandler struct{}

func NewAIHandler() *AIHandler {
	return &AIHandler{}
}

func (h *AIHandler) RegisterAIRoutes(g *echo.Group) {
	g.POST("/text-suggestions", h.TextSuggestions)
	g.GET("/image-suggestions", h.ImageSuggestions)
	g.POST("/content-optimizations", h.ContentOptimizations)
}

func (h *AIHandler) TextSuggestions(c echo.Context) error {
	var req models.TextSuggestionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	list, ok := suggestions.Text(req.Type)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid suggestion type")
	}
	return c.JSON(http.StatusOK, list)
}

func (h *AIHandler) ImageSuggestions(c echo.Context) error {
	return c.JSON(http.StatusOK, suggestions.Images())
}

// ContentOptimizations ignores the submitted content; the tips are generic.
func (h *AIHandler) ContentOptimizations(c echo.Context) error {
	var req models.ContentOptimizationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, suggestions.ContentOptimizations())
}
