package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.Use(RequestLogger())
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/fail", func(_ echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, errors.New("short and stout"))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
