package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/anonto42/bluo/backend/internal/metrics"
	"github.com/anonto42/bluo/backend/internal/middleware"
	"github.com/anonto42/bluo/backend/internal/models"
	"github.com/anonto42/bluo/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository    repositories.UserRepository
	sessionRepository repositories.SessionRepository
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository) *AuthHandler {
	return &AuthHandler{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
	}
}

// RegisterAuthRoutes registers authentication-related routes. authMW guards
// the routes that need an existing session.
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group, authMW echo.MiddlewareFunc) {
	g.POST("/login", h.Login)
	g.POST("/register", h.Register)
	g.POST("/reset-password", h.ResetPassword)
	g.POST("/logout", h.Logout, authMW)
	g.GET("/me", h.Me, authMW)
}

// Login checks email and password and opens a new session
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	user, err := h.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
		}
		return internalError(c, err, "Failed to sign in")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := h.sessionRepository.CreateSession(ctx, user.ID)
	if err != nil {
		return internalError(c, err, "Failed to create session")
	}

	metrics.RecordSession("login")
	return c.JSON(http.StatusOK, models.AuthResponse{User: user.ToPublic(), Token: token})
}

// Register creates a local account and signs it in
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return internalError(c, err, "Failed to hash password")
	}

	user, err := h.userRepository.CreateUser(ctx, models.User{
		Username: strings.TrimSpace(req.Username),
		Email:    req.Email,
		Password: string(hashedPassword),
	})
	if err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return echo.NewHTTPError(http.StatusConflict, "User with this email already registered")
		}
		return internalError(c, err, "Failed to create user")
	}

	token, err := h.sessionRepository.CreateSession(ctx, user.ID)
	if err != nil {
		return internalError(c, err, "Failed to create session")
	}

	log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("User registered")
	metrics.RecordSession("register")
	return c.JSON(http.StatusCreated, models.AuthResponse{User: user.ToPublic(), Token: token})
}

// ResetPassword accepts any well-formed email. No mail is sent and the reply
// does not reveal whether the address is registered.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.userRepository.GetUserByEmail(c.Request().Context(), req.Email); err == nil {
		log.Info().Str("email", req.Email).Msg("Password reset requested")
	}
	return c.NoContent(http.StatusNoContent)
}

// Logout deletes the caller's session
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessionRepository.DeleteSession(c.Request().Context(), middleware.Token(c)); err != nil {
		return internalError(c, err, "Failed to sign out")
	}
	metrics.RecordSession("logout")
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated user
func (h *AuthHandler) Me(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return c.JSON(http.StatusOK, user.ToPublic())
}
