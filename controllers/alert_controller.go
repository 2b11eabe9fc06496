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

package controllers

import (
	"fmt"
	"strconv"

	"github.com/l3montree-dev/alertguard/dtos"
	"github.com/l3montree-dev/alertguard/shared"
	"github.com/l3montree-dev/alertguard/transformer"
	"github.com/labstack/echo/v4"
)

type AlertController struct {
	alertRepository  shared.AlertRepository
	dismissalService shared.DismissalService
}

func NewAlertController(alertRepository shared.AlertRepository, dismissalService shared.DismissalService) *AlertController {
	return &AlertController{
		alertRepository:  alertRepository,
		dismissalService: dismissalService,
	}
}

// List returns stored alerts, optionally filtered by the state and applicable
// query parameters.
func (controller *AlertController) List(ctx shared.Context) error {
	var state *dtos.AlertState
	if raw := ctx.QueryParam("state"); raw != "" {
		parsed := dtos.AlertState(raw)
		if !parsed.Valid() {
			return echo.NewHTTPError(400, fmt.Sprintf("invalid state %q", raw))
		}
		state = &parsed
	}

	var applicable *bool
	if raw := ctx.QueryParam("applicable"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(400, "applicable must be a boolean").WithInternal(err)
		}
		applicable = &parsed
	}

	alerts, err := controller.alertRepository.List(nil, state, applicable)
	if err != nil {
		return echo.NewHTTPError(500, "could not list alerts").WithInternal(err)
	}

	return ctx.JSON(200, transformer.AlertsToDTOs(alerts))
}

// Dismiss closes a single alert upstream on operator request.
func (controller *AlertController) Dismiss(ctx shared.Context) error {
	owner := ctx.Param("owner")
	repo := ctx.Param("repo")
	if owner == "" || repo == "" {
		return echo.NewHTTPError(400, "missing owner or repo")
	}

	upstreamID, err := strconv.ParseInt(ctx.Param("alertNumber"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(400, "alertNumber must be an integer").WithInternal(err)
	}

	var req dtos.DismissAlertRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not parse request body").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}
	if !req.Reason.Valid() {
		return echo.NewHTTPError(400, fmt.Sprintf("invalid dismiss reason %q", req.Reason))
	}

	alert, err := controller.dismissalService.DismissManually(ctx.Request().Context(), owner+"/"+repo, upstreamID, req.Reason, req.Comment)
	if err != nil {
		return echo.NewHTTPError(500, "could not dismiss alert").WithInternal(err)
	}

	return ctx.JSON(200, transformer.AlertToDTO(alert))
}

// Statistics returns the aggregated alert counters for dashboards.
func (controller *AlertController) Statistics(ctx shared.Context) error {
	stats, err := controller.alertRepository.Statistics(nil)
	if err != nil {
		return echo.NewHTTPError(500, "could not compute statistics").WithInternal(err)
	}

	return ctx.JSON(200, stats)
}
