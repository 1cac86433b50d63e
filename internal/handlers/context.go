package handlers

import (
	"net/http"

	"github.com/anonto42/bluo/backend/internal/middleware"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

func getUserIDFromContext(c echo.Context) string {
	return middleware.UserID(c)
}

// bindAndValidate decodes the JSON body into req and runs the echo validator.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	return c.Validate(req)
}

// internalError logs err and hides it behind a generic 500.
func internalError(c echo.Context, err error, msg string) error {
	log.Error().Err(err).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Str("path", c.Path()).
		Msg(msg)
	return echo.NewHTTPError(http.StatusInternalServerError, msg)
}
