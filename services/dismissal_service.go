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

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/l3montree-dev/alertguard/database/models"
	"github.com/l3montree-dev/alertguard/dtos"
	"github.com/l3montree-dev/alertguard/monitoring"
	"github.com/l3montree-dev/alertguard/shared"
)

// botCommentPrefix marks upstream dismissal comments written by the service
// itself, so they are distinguishable from human dismissals in the upstream UI.
const botCommentPrefix = "[alertguard] "

type dismissalService struct {
	githubClient    shared.GithubClient
	alertRepository shared.AlertRepository
}

func NewDismissalService(githubClient shared.GithubClient, alertRepository shared.AlertRepository) *dismissalService {
	return &dismissalService{
		githubClient:    githubClient,
		alertRepository: alertRepository,
	}
}

// AutoDismiss closes a non-applicable alert upstream and records the closure
// locally. The upstream call happens first: if it fails, the alert stays open
// on both sides and the next run retries.
func (service *dismissalService) AutoDismiss(ctx context.Context, alert *models.Alert, reason dtos.DismissReason, comment string) error {
	if alert.Applicable {
		return fmt.Errorf("refusing to auto-dismiss alert %s: it is classified as applicable", alert.UpstreamRef())
	}
	if !reason.Valid() {
		return fmt.Errorf("refusing to auto-dismiss alert %s: invalid dismiss reason %q", alert.UpstreamRef(), reason)
	}

	if err := service.githubClient.DismissAlert(ctx, alert.RepositoryFullName, alert.UpstreamID, reason, botCommentPrefix+comment); err != nil {
		return fmt.Errorf("could not dismiss alert %s upstream: %w", alert.UpstreamRef(), err)
	}

	if err := service.alertRepository.MarkAutoClosed(nil, alert, comment); err != nil {
		// upstream is already closed - surface loudly, the local row is now
		// behind reality until the next scan reconciles it
		monitoring.Alert("alert dismissed upstream but could not be marked closed locally", err)
		return fmt.Errorf("alert %s was dismissed upstream but could not be marked closed locally: %w", alert.UpstreamRef(), err)
	}

	monitoring.AlertsAutoClosed.Inc()
	slog.Info("auto-dismissed alert", "alert", alert.UpstreamRef(), "reason", reason, "comment", comment)
	return nil
}

// DismissManually dismisses a single alert on operator request. Unlike
// AutoDismiss it does not flag the alert as auto-closed.
func (service *dismissalService) DismissManually(ctx context.Context, repositoryFullName string, upstreamID int64, reason dtos.DismissReason, comment string) (models.Alert, error) {
	if !reason.Valid() {
		return models.Alert{}, fmt.Errorf("invalid dismiss reason %q", reason)
	}

	alert, err := service.alertRepository.FindByUpstreamIdentity(nil, repositoryFullName, dtos.AlertKindDependabot, upstreamID)
	if err != nil {
		return models.Alert{}, fmt.Errorf("could not find alert %s#%d: %w", repositoryFullName, upstreamID, err)
	}
	if alert.State != dtos.AlertStateOpen {
		return models.Alert{}, fmt.Errorf("alert %s is not open (state %s)", alert.UpstreamRef(), alert.State)
	}

	if err := service.githubClient.DismissAlert(ctx, repositoryFullName, upstreamID, reason, comment); err != nil {
		return models.Alert{}, fmt.Errorf("could not dismiss alert %s upstream: %w", alert.UpstreamRef(), err)
	}

	alert.State = dtos.AlertStateDismissed
	if err := service.alertRepository.Save(nil, &alert); err != nil {
		monitoring.Alert("alert dismissed upstream but could not be saved locally", err)
		return models.Alert{}, fmt.Errorf("alert %s was dismissed upstream but could not be saved locally: %w", alert.UpstreamRef(), err)
	}

	slog.Info("manually dismissed alert", "alert", alert.UpstreamRef(), "reason", reason)
	return alert, nil
}
