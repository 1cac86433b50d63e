package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/bluo/backend/internal/models"
	"github.com/anonto42/bluo/backend/internal/repositories"
	"github.com/anonto42/bluo/backend/pkg/payments"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// SubscriptionHandler serves the plan catalog and checkout flow. A nil
// checkout provider means payments are not configured.
type SubscriptionHandler struct {
	checkout       payments.CheckoutProvider
	userRepository repositories.UserRepository
}

func NewSubscriptionHandler(checkout payments.CheckoutProvider, userRepo repositories.UserRepository) *SubscriptionHandler {
	return &SubscriptionHandler{
		checkout:       checkout,
		userRepository: userRepo,
	}
}

func (h *SubscriptionHandler) RegisterSubscriptionRoutes(g *echo.Group) {
	g.GET("/plans", h.GetPlans)
}

// RegisterPaymentRoutes registers checkout routes. Creating a session needs
// a signed-in user; verification is reached from the provider's redirect.
func (h *SubscriptionHandler) RegisterPaymentRoutes(g *echo.Group, authMW echo.MiddlewareFunc) {
	g.POST("/create-checkout-session", h.CreateCheckoutSession, authMW)
	g.GET("/verify-session/:id", h.VerifySession)
}

func (h *SubscriptionHandler) GetPlans(c echo.Context) error {
	return c.JSON(http.StatusOK, payments.Plans())
}

func (h *SubscriptionHandler) CreateCheckoutSession(c echo.Context) error {
	var req models.CreateCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if !payments.Purchasable(req.Tier) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid subscription tier")
	}
	if h.checkout == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Payment service not configured")
	}

	userID := getUserIDFromContext(c)
	session, err := h.checkout.CreateSession(c.Request().Context(), payments.SessionParams{
		Tier:   req.Tier,
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, payments.ErrPriceNotConfigured) {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid subscription tier")
		}
		return internalError(c, err, "Failed to create checkout session")
	}

	log.Info().Str("user_id", userID).Str("tier", string(req.Tier)).Str("session_id", session.ID).Msg("Checkout session created")
	return c.JSON(http.StatusOK, models.CheckoutSession{
		ID:     session.ID,
		URL:    session.URL,
		PlanID: models.PlanID(req.Tier),
		Tier:   req.Tier,
		Status: models.CheckoutOpen,
	})
}

// VerifySession reports a checkout session's status. A completed session
// upgrades the user recorded on it.
func (h *SubscriptionHandler) VerifySession(c echo.Context) error {
	if h.checkout == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Payment service not configured")
	}

	ctx := c.Request().Context()
	session, err := h.checkout.GetSession(ctx, c.Param("id"))
	if err != nil {
		return internalError(c, err, "Failed to verify session")
	}

	if session.Status == models.CheckoutComplete && session.UserID != "" && payments.Purchasable(session.Tier) {
		if _, err := h.userRepository.SetSubscriptionTier(ctx, session.UserID, session.Tier); err != nil {
			log.Warn().Err(err).Str("user_id", session.UserID).Str("session_id", session.ID).Msg("Failed to apply subscription tier")
		} else {
			log.Info().Str("user_id", session.UserID).Str("tier", string(session.Tier)).Msg("Subscription upgraded")
		}
	}

	return c.JSON(http.StatusOK, models.CheckoutSession{
		ID:     session.ID,
		URL:    "",
		PlanID: models.PlanID(session.Tier),
		Tier:   session.Tier,
		Status: session.Status,
	})
}
