package middlewares

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/l3montree-dev/alertguard/monitoring"
	"github.com/labstack/echo/v4"
)

func recovermiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) (returnErr error) {
			defer func() {
				if r := recover(); r != nil {
					if r == http.ErrAbortHandler {
						panic(r)
					}
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}
					stack := make([]byte, 4<<10) // 4 KB
					length := runtime.Stack(stack, false)

					slog.Error("panic stack trace", "stack", string(stack[:length]))
					monitoring.RecoverAndAlert("recovered from panic in http handler", err)
					returnErr = echo.NewHTTPError(500, http.StatusText(500)).WithInternal(err)
				}
			}()
			return next(ctx)
		}
	}
}
