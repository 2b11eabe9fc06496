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

	"github.com/l3montree-dev/alertguard/database/models"
	"github.com/l3montree-dev/alertguard/dtos"
	"github.com/l3montree-dev/alertguard/services"
	"github.com/l3montree-dev/alertguard/shared"
	"github.com/l3montree-dev/alertguard/transformer"
	"github.com/l3montree-dev/alertguard/utils"
	"github.com/labstack/echo/v4"
)

type RuleController struct {
	ruleService services.RuleService
}

func NewRuleController(ruleService services.RuleService) *RuleController {
	return &RuleController{ruleService: ruleService}
}

func (controller *RuleController) List(ctx shared.Context) error {
	rules, err := controller.ruleService.All()
	if err != nil {
		return echo.NewHTTPError(500, "could not list rules").WithInternal(err)
	}

	return ctx.JSON(200, transformer.RulesToDTOs(rules))
}

func (controller *RuleController) Create(ctx shared.Context) error {
	var req dtos.CreateRuleRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not parse request body").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	rule := models.ApplicabilityRule{
		PackageName:   req.PackageName,
		Ecosystem:     req.Ecosystem,
		GHSAID:        req.GHSAID,
		CVEID:         req.CVEID,
		Severity:      req.Severity,
		Expression:    req.Expression,
		Applicable:    req.Applicable,
		Reason:        req.Reason,
		DismissReason: req.DismissReason,
		Priority:      req.Priority,
		Active:        utils.OrDefault(req.Active, true),
	}

	if err := controller.ruleService.Create(&rule); err != nil {
		return echo.NewHTTPError(400, err.Error()).WithInternal(err)
	}

	return ctx.JSON(201, transformer.RuleToDTO(rule))
}
