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
	"context"
	"log/slog"
	"os"

	"github.com/google/go-github/v62/github"
	"github.com/l3montree-dev/alertguard/dtos"
	"github.com/l3montree-dev/alertguard/shared"
	"github.com/l3montree-dev/alertguard/utils"
	"github.com/labstack/echo/v4"
)

type WebhookController struct {
	scanService shared.ScanService
	secret      []byte
	utils.FireAndForgetSynchronizer
}

func NewWebhookController(scanService shared.ScanService, synchronizer utils.FireAndForgetSynchronizer) *WebhookController {
	return &WebhookController{
		scanService:               scanService,
		secret:                    []byte(os.Getenv("GITHUB_WEBHOOK_SECRET")),
		FireAndForgetSynchronizer: synchronizer,
	}
}

// HandleWebhook verifies and dispatches upstream webhook deliveries. Alert
// events trigger a single-repository scan in the background; the delivery is
// acknowledged immediately.
func (controller *WebhookController) HandleWebhook(ctx shared.Context) error {
	if len(controller.secret) == 0 {
		return echo.NewHTTPError(503, "webhook secret is not configured")
	}

	payload, err := github.ValidatePayload(ctx.Request(), controller.secret)
	if err != nil {
		return echo.NewHTTPError(401, "invalid webhook signature").WithInternal(err)
	}

	event, err := github.ParseWebHook(github.WebHookType(ctx.Request()), payload)
	if err != nil {
		return echo.NewHTTPError(400, "could not parse webhook payload").WithInternal(err)
	}

	switch event := event.(type) {
	case *github.DependabotAlertEvent:
		action := event.GetAction()
		if action != "created" && action != "reopened" {
			break
		}
		repositoryFullName := event.GetRepo().GetFullName()
		if repositoryFullName == "" {
			break
		}
		controller.FireAndForget(func() {
			// the delivery is already acknowledged, so the scan runs on its
			// own context
			if _, err := controller.scanService.RunForRepository(context.Background(), repositoryFullName, dtos.TriggerWebhook); err != nil {
				slog.Error("webhook triggered scan failed", "repository", repositoryFullName, "err", err)
			}
		})
	case *github.PingEvent:
		// delivery test by the upstream, nothing to do
	default:
		slog.Debug("ignoring webhook event", "type", github.WebHookType(ctx.Request()))
	}

	return ctx.NoContent(202)
}
