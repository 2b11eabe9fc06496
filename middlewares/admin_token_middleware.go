// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package middlewares

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
)

// AdminTokenMiddleware guards the operator endpoints with a single shared
// token, passed either as the X-Admin-Token header or the adminToken query
// parameter. An empty configured token locks the endpoints entirely.
func AdminTokenMiddleware(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if token == "" {
				return echo.NewHTTPError(503, "admin token is not configured")
			}

			provided := ctx.Request().Header.Get("X-Admin-Token")
			if provided == "" {
				provided = ctx.QueryParam("adminToken")
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				return echo.NewHTTPError(401, "invalid admin token")
			}

			return next(ctx)
		}
	}
}
