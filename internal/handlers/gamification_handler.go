package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/bluo/backend/internal/models"
	"github.com/anonto42/bluo/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// GamificationHandler handles achievements, points and the leaderboard
type GamificationHandler struct {
	gamificationRepository repositories.GamificationRepository
}

func NewGamificationHandler(gamificationRepo repositories.GamificationRepository) *GamificationHandler {
	return &GamificationHandler{gamificationRepository: gamificationRepo}
}

func (h *GamificationHandler) RegisterGamificationRoutes(g *echo.Group) {
	g.GET("/gamification/achievements", h.GetAchievements)
	g.GET("/gamification/leaderboard", h.GetLeaderboard)
	g.POST("/gamification/points", h.AddPoints)
}

func (h *GamificationHandler) GetAchievements(c echo.Context) error {
	achievements, err := h.gamificationRepository.GetAchievements(c.Request().Context())
	if err != nil {
		return internalError(c, err, "Failed to load achievements")
	}
	return c.JSON(http.StatusOK, achievements)
}

func (h *GamificationHandler) GetLeaderboard(c echo.Context) error {
	leaderboard, err := h.gamificationRepository.GetLeaderboard(c.Request().Context())
	if err != nil {
		return internalError(c, err, "Failed to load leaderboard")
	}
	return c.JSON(http.StatusOK, leaderboard)
}

// AddPoints credits a positive amount to the caller
func (h *GamificationHandler) AddPoints(c echo.Context) error {
	var req models.AddPointsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if req.Amount <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "A positive amount is required")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	userID := getUserIDFromContext(c)
	points, err := h.gamificationRepository.AddPoints(c.Request().Context(), userID, req.Amount)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return internalError(c, err, "Failed to add points")
	}

	log.Debug().Str("user_id", userID).Int("amount", req.Amount).Int("points", points).Msg("Points added")
	return c.JSON(http.StatusOK, models.PointsBalance{Points: points})
}
