package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/anonto42/bluo/backend/internal/models"
	"github.com/anonto42/bluo/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	userIDKey = "userID"
	userKey   = "user"
	tokenKey  = "token"
)

// SessionAuth resolves the bearer token to a user and stores the user, its
// id and the token in the echo context.
func SessionAuth(sessions repositories.SessionRepository, users repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			ctx := c.Request().Context()
			userID, err := sessions.GetUserIDByToken(ctx, token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			user, err := users.GetUserByID(ctx, userID)
			if err != nil {
				if !errors.Is(err, repositories.ErrUserNotFound) {
					log.Error().Err(err).Str("user_id", userID).Msg("Failed to load session user")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
			}

			c.Set(userIDKey, user.ID)
			c.Set(userKey, user)
			c.Set(tokenKey, token)
			return next(c)
		}
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// UserID returns the authenticated user's id, or "" outside SessionAuth.
func UserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}

// CurrentUser returns the authenticated user loaded by SessionAuth.
func CurrentUser(c echo.Context) *models.User {
	u, _ := c.Get(userKey).(*models.User)
	return u
}

// Token returns the bearer token of the current request.
func Token(c echo.Context) string {
	t, _ := c.Get(tokenKey).(string)
	return t
}
