package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestAdminTokenMiddleware(t *testing.T) {
	handler := func(ctx echo.Context) error {
		return ctx.NoContent(200)
	}

	t.Run("should return 503 if no token is configured", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		err := AdminTokenMiddleware("")(handler)(ctx)

		assert.NotNil(t, err)
		assert.Equal(t, 503, err.(*echo.HTTPError).Code)
	})

	t.Run("should return 401 for a missing token", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		err := AdminTokenMiddleware("secret")(handler)(ctx)

		assert.NotNil(t, err)
		assert.Equal(t, 401, err.(*echo.HTTPError).Code)
	})

	t.Run("should return 401 for a wrong token", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Admin-Token", "wrong")
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		err := AdminTokenMiddleware("secret")(handler)(ctx)

		assert.NotNil(t, err)
		assert.Equal(t, 401, err.(*echo.HTTPError).Code)
	})

	t.Run("should accept the token from the header", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Admin-Token", "secret")
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		err := AdminTokenMiddleware("secret")(handler)(ctx)

		assert.Nil(t, err)
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("should accept the token from the query parameter", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/?adminToken=secret", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		err := AdminTokenMiddleware("secret")(handler)(ctx)

		assert.Nil(t, err)
		assert.Equal(t, 200, rec.Code)
	})
}
