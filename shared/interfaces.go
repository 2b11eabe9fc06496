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

package shared

import (
	"context"

	"github.com/l3montree-dev/alertguard/database/models"
	"github.com/l3montree-dev/alertguard/dtos"
)

type AlertRepository interface {
	Save(tx DB, alert *models.Alert) error
	UpsertFromScan(tx DB, alert *models.Alert) error
	FindByUpstreamIdentity(tx DB, repositoryFullName string, kind dtos.AlertKind, upstreamID int64) (models.Alert, error)
	MarkAutoClosed(tx DB, alert *models.Alert, reason string) error
	List(tx DB, state *dtos.AlertState, applicable *bool) ([]models.Alert, error)
	Statistics(tx DB) (dtos.AlertStatisticsDTO, error)
}

type ApplicabilityRuleRepository interface {
	FindActive(tx DB) ([]models.ApplicabilityRule, error)
	FindAll(tx DB) ([]models.ApplicabilityRule, error)
	Create(tx DB, rule *models.ApplicabilityRule) error
}

type ScanRunRepository interface {
	Create(tx DB, run *models.ScanRun) error
	Save(tx DB, run *models.ScanRun) error
	Recent(tx DB, limit int) ([]models.ScanRun, error)
}

// InstallationTokenSource yields a currently valid installation token for the
// upstream API. Implementations cache aggressively; a returned token is good
// for at least another minute.
type InstallationTokenSource interface {
	Token(ctx context.Context) (string, error)
}

// GithubClient is the facade over the upstream vulnerability-alert API.
type GithubClient interface {
	// ListRepositories returns the full names of all repositories the
	// installation can see, read to pagination exhaustion.
	ListRepositories(ctx context.Context) ([]string, error)
	// ListOpenAlerts returns all open dependency alerts of one repository,
	// already mapped to the local model (without a verdict).
	ListOpenAlerts(ctx context.Context, repositoryFullName string) ([]models.Alert, error)
	// DismissAlert patches the upstream alert into the dismissed state.
	DismissAlert(ctx context.Context, repositoryFullName string, upstreamID int64, reason dtos.DismissReason, comment string) error
}

type ScanService interface {
	Run(ctx context.Context, trigger dtos.TriggerKind) (models.ScanRun, error)
	RunForRepository(ctx context.Context, repositoryFullName string, trigger dtos.TriggerKind) (models.ScanRun, error)
}

// DaemonRunner starts the background scan loop.
type DaemonRunner interface {
	Start()
}

type DismissalService interface {
	AutoDismiss(ctx context.Context, alert *models.Alert, reason dtos.DismissReason, comment string) error
	DismissManually(ctx context.Context, repositoryFullName string, upstreamID int64, reason dtos.DismissReason, comment string) (models.Alert, error)
}
