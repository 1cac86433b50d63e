package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{
			name: "http error",
			err:  echo.NewHTTPError(http.StatusNotFound, "Post not found"),
			code: http.StatusNotFound,
			body: `{"error":"Post not found"}`,
		},
		{
			name: "router not found",
			err:  echo.ErrNotFound,
			code: http.StatusNotFound,
			body: `{"error":"Not Found"}`,
		},
		{
			name: "plain error is hidden",
			err:  errors.New("boom"),
			code: http.StatusInternalServerError,
			body: `{"error":"Internal server error"}`,
		},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			HTTPErrorHandler(tt.err, c)

			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
