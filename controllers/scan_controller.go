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
	"errors"

	"github.com/l3montree-dev/alertguard/dtos"
	"github.com/l3montree-dev/alertguard/services"
	"github.com/l3montree-dev/alertguard/shared"
	"github.com/l3montree-dev/alertguard/transformer"
	"github.com/labstack/echo/v4"
)

type ScanController struct {
	scanService       shared.ScanService
	scanRunRepository shared.ScanRunRepository
}

func NewScanController(scanService shared.ScanService, scanRunRepository shared.ScanRunRepository) *ScanController {
	return &ScanController{
		scanService:       scanService,
		scanRunRepository: scanRunRepository,
	}
}

// Trigger starts a full scan run and blocks until it finishes. Partial
// failures are reported inside the run, not as an HTTP error.
func (controller *ScanController) Trigger(ctx shared.Context) error {
	run, err := controller.scanService.Run(ctx.Request().Context(), dtos.TriggerManual)
	if err != nil {
		if errors.Is(err, services.ErrScanInProgress) {
			return echo.NewHTTPError(409, "a scan run is already in progress")
		}
		return echo.NewHTTPError(500, "could not start scan run").WithInternal(err)
	}

	return ctx.JSON(200, transformer.ScanRunToDTO(run))
}

func (controller *ScanController) ListRuns(ctx shared.Context) error {
	runs, err := controller.scanRunRepository.Recent(nil, 50)
	if err != nil {
		return echo.NewHTTPError(500, "could not list scan runs").WithInternal(err)
	}

	return ctx.JSON(200, transformer.ScanRunsToDTOs(runs))
}
