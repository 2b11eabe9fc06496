package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRecoverMiddleware(t *testing.T) {
	t.Run("should turn a panicking handler into a 500 response", func(t *testing.T) {
		e := echo.New()
		e.Use(recovermiddleware())
		e.GET("/boom", func(ctx echo.Context) error {
			panic("kaput")
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("should not recover http.ErrAbortHandler", func(t *testing.T) {
		e := echo.New()
		e.Use(recovermiddleware())
		e.GET("/abort", func(ctx echo.Context) error {
			panic(http.ErrAbortHandler)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/abort", nil)

		assert.Panics(t, func() {
			e.ServeHTTP(rec, req)
		})
	})
}
