package router

import (
	"github.com/anonto42/bluo/backend/internal/clock"
	"github.com/anonto42/bluo/backend/internal/handlers"
	"github.com/anonto42/bluo/backend/internal/middleware"
	"github.com/anonto42/bluo/backend/internal/repositories"
	"github.com/anonto42/bluo/backend/pkg/payments"
	"github.com/anonto42/bluo/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Dependencies are the collaborators shared by all handlers.
type Dependencies struct {
	Store *repositories.MemoryStore
	Clock clock.Clock
	// Checkout is nil when payments are not configured.
	Checkout payments.CheckoutProvider

	AIRateLimit float64
	AIRateBurst int
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, deps Dependencies) {
	e.HTTPErrorHandler = handlers.HTTPErrorHandler
	e.Validator = validators.NewValidator()

	clk := deps.Clock
	if clk == nil {
		clk = clock.NewReal()
	}
	store := deps.Store

	authMW := middleware.SessionAuth(store, store)

	api := e.Group("/api")

	// Health check - always accessible
	api.GET("/health", handlers.NewHealthHandler(clk).HealthCheck)

	authHandler := handlers.NewAuthHandler(store, store)
	authHandler.RegisterAuthRoutes(api.Group("/auth"), authMW)
	log.Debug().Msg("Auth routes configured.")

	subscriptionHandler := handlers.NewSubscriptionHandler(deps.Checkout, store)
	subscriptionHandler.RegisterSubscriptionRoutes(api.Group("/subscriptions"))
	subscriptionHandler.RegisterPaymentRoutes(api.Group("/payments"), authMW)
	log.Debug().Bool("checkout_enabled", deps.Checkout != nil).Msg("Subscription routes configured.")

	// --- Protected routes ---
	protected := api.Group("", authMW)

	handlers.NewUserHandler(store).RegisterProfileRoutes(protected)
	handlers.NewPostHandler(store).RegisterPostRoutes(protected)
	handlers.NewLikeHandler(store, store).RegisterLikeRoutes(protected)
	handlers.NewCommentHandler(store, store).RegisterCommentRoutes(protected)
	log.Debug().Msg("Post routes configured.")

	handlers.NewNotificationHandler(store).RegisterNotificationRoutes(protected)
	handlers.NewMessageHandler(store).RegisterMessageRoutes(protected)
	handlers.NewGamificationHandler(store).RegisterGamificationRoutes(protected)
	handlers.NewStoryHandler(store).RegisterStoryRoutes(protected)
	log.Debug().Msg("Social routes configured.")

	ai := api.Group("/ai", authMW, middleware.RateLimit(deps.AIRateLimit, deps.AIRateBurst))
	handlers.NewAIHandler().RegisterAIRoutes(ai)
	log.Debug().Float64("rate", deps.AIRateLimit).Int("burst", deps.AIRateBurst).Msg("AI routes configured.")

	log.Info().Int("routes", len(e.Routes())).Msg("All routes configured.")
}
