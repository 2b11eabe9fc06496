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
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/alertguard/database/models"
	"github.com/l3montree-dev/alertguard/dtos"
	"github.com/l3montree-dev/alertguard/monitoring"
	"github.com/l3montree-dev/alertguard/shared"
	"github.com/l3montree-dev/alertguard/triage"
	"github.com/l3montree-dev/alertguard/utils"
	"github.com/pkg/errors"
)

// ErrScanInProgress is returned when a run is requested while another full
// scan still holds the run lock.
var ErrScanInProgress = errors.New("a scan run is already in progress")

// scanAdvisoryLockID keys the postgres advisory lock that serializes full
// scan runs across all replicas of the service.
const scanAdvisoryLockID int64 = 0x616c677264 // "algrd"

const defaultRepositoryTimeout = 2 * time.Minute

type scanService struct {
	githubClient      shared.GithubClient
	alertRepository   shared.AlertRepository
	ruleRepository    shared.ApplicabilityRuleRepository
	scanRunRepository shared.ScanRunRepository
	dismissalService  shared.DismissalService
	engine            *triage.Engine

	// pool is used for the advisory run lock only. It may be nil in tests, in
	// which case runs are not serialized.
	pool              *pgxpool.Pool
	repositoryTimeout time.Duration
}

func NewScanService(githubClient shared.GithubClient, alertRepository shared.AlertRepository, ruleRepository shared.ApplicabilityRuleRepository, scanRunRepository shared.ScanRunRepository, dismissalService shared.DismissalService, pool *pgxpool.Pool) *scanService {
	repositoryTimeout := defaultRepositoryTimeout
	if raw := os.Getenv("REPOSITORY_SCAN_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			slog.Warn("invalid REPOSITORY_SCAN_TIMEOUT, using default", "value", raw, "default", defaultRepositoryTimeout)
		} else {
			repositoryTimeout = parsed
		}
	}

	return &scanService{
		githubClient:      githubClient,
		alertRepository:   alertRepository,
		ruleRepository:    ruleRepository,
		scanRunRepository: scanRunRepository,
		dismissalService:  dismissalService,
		engine:            triage.NewEngine(triage.BuiltinHeuristics()...),
		pool:              pool,
		repositoryTimeout: repositoryTimeout,
	}
}

// Run executes a full scan over every repository the installation can see.
// Failures of single repositories or single alerts are recorded on the run
// and do not stop the remaining work; only a failed repository enumeration
// marks the whole run as unsuccessful.
func (service *scanService) Run(ctx context.Context, trigger dtos.TriggerKind) (models.ScanRun, error) {
	unlock, err := service.tryLock(ctx)
	if err != nil {
		return models.ScanRun{}, err
	}
	defer unlock()

	run := models.ScanRun{
		Trigger:   trigger,
		StartedAt: time.Now(),
		Errors:    []string{},
	}
	if err := service.scanRunRepository.Create(nil, &run); err != nil {
		return models.ScanRun{}, errors.Wrap(err, "could not create scan run")
	}

	repositories, err := service.githubClient.ListRepositories(ctx)
	if err != nil {
		run.Errors = append(run.Errors, fmt.Sprintf("could not list repositories: %s", err))
		service.finalize(&run, false)
		return run, nil
	}

	rules, err := service.ruleRepository.FindActive(nil)
	if err != nil {
		run.Errors = append(run.Errors, fmt.Sprintf("could not load applicability rules: %s", err))
		service.finalize(&run, false)
		return run, nil
	}

	slog.Info("starting scan run", "trigger", trigger, "repositories", len(repositories), "rules", len(rules))

	for _, repositoryFullName := range repositories {
		if err := service.scanRepository(ctx, repositoryFullName, rules, &run); err != nil {
			run.Errors = append(run.Errors, fmt.Sprintf("%s: %s", repositoryFullName, err))
			continue
		}
		run.ReposScanned++
	}

	service.finalize(&run, true)
	return run, nil
}

// RunForRepository scans a single repository, typically in response to a
// webhook. It does not take the run lock: the upsert semantics make it safe
// to overlap with a full run.
func (service *scanService) RunForRepository(ctx context.Context, repositoryFullName string, trigger dtos.TriggerKind) (models.ScanRun, error) {
	run := models.ScanRun{
		Trigger:   trigger,
		StartedAt: time.Now(),
		Errors:    []string{},
	}
	if err := service.scanRunRepository.Create(nil, &run); err != nil {
		return models.ScanRun{}, errors.Wrap(err, "could not create scan run")
	}

	rules, err := service.ruleRepository.FindActive(nil)
	if err != nil {
		run.Errors = append(run.Errors, fmt.Sprintf("could not load applicability rules: %s", err))
		service.finalize(&run, false)
		return run, nil
	}

	if err := service.scanRepository(ctx, repositoryFullName, rules, &run); err != nil {
		run.Errors = append(run.Errors, fmt.Sprintf("%s: %s", repositoryFullName, err))
		service.finalize(&run, true)
		return run, nil
	}
	run.ReposScanned++

	service.finalize(&run, true)
	return run, nil
}

// scanRepository fetches, classifies and persists the open alerts of one
// repository. A returned error means the repository could not be processed at
// all; per-alert failures are appended to the run instead.
func (service *scanService) scanRepository(ctx context.Context, repositoryFullName string, rules []models.ApplicabilityRule, run *models.ScanRun) error {
	ctx, cancel := context.WithTimeout(ctx, service.repositoryTimeout)
	defer cancel()

	alerts, err := service.githubClient.ListOpenAlerts(ctx, repositoryFullName)
	if err != nil {
		return errors.Wrap(err, "could not list open alerts")
	}

	for i := range alerts {
		alert := &alerts[i]
		if err := service.processAlert(ctx, alert, rules, run); err != nil {
			run.Errors = append(run.Errors, fmt.Sprintf("%s: %s", alert.UpstreamRef(), err))
		}
	}

	return nil
}

func (service *scanService) processAlert(ctx context.Context, alert *models.Alert, rules []models.ApplicabilityRule, run *models.ScanRun) error {
	verdict := service.engine.Classify(*alert, rules)
	alert.Applicable = verdict.Applicable
	alert.ApplicabilityReason = verdict.Reason

	if err := service.alertRepository.UpsertFromScan(nil, alert); err != nil {
		return errors.Wrap(err, "could not persist alert")
	}
	run.AlertsFound++

	// only open, non-applicable alerts with an explicit dismiss reason are
	// auto-closed; everything else is left for a human
	if verdict.Applicable || verdict.DismissReason == nil || alert.State != dtos.AlertStateOpen {
		return nil
	}

	if err := service.dismissalService.AutoDismiss(ctx, alert, *verdict.DismissReason, verdict.Reason); err != nil {
		return err
	}
	run.AlertsAutoClosed++
	return nil
}

func (service *scanService) finalize(run *models.ScanRun, success bool) {
	run.CompletedAt = utils.Ptr(time.Now())
	run.Success = success
	if err := service.scanRunRepository.Save(nil, run); err != nil {
		monitoring.Alert("could not finalize scan run", err)
		slog.Error("could not finalize scan run", "runID", run.ID, "err", err)
	}

	duration := run.CompletedAt.Sub(run.StartedAt)
	monitoring.ScanRunDuration.Observe(duration.Seconds())
	if !success {
		monitoring.ScanRunErrors.Inc()
	}

	slog.Info("scan run finished", "runID", run.ID, "trigger", run.Trigger, "duration", duration,
		"reposScanned", run.ReposScanned, "alertsFound", run.AlertsFound,
		"alertsAutoClosed", run.AlertsAutoClosed, "errors", len(run.Errors), "success", run.Success)
}

// tryLock takes the postgres advisory lock that serializes full runs. The
// returned function releases the lock together with the underlying
// connection; advisory locks are session scoped, so the connection is pinned
// for the whole run.
func (service *scanService) tryLock(ctx context.Context) (func(), error) {
	if service.pool == nil {
		return func() {}, nil
	}

	conn, err := service.pool.Acquire(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not acquire connection for run lock")
	}

	var locked bool
	if err := conn.QueryRow(ctx, "SELECT pg_try_advisory_lock($1)", scanAdvisoryLockID).Scan(&locked); err != nil {
		conn.Release()
		return nil, errors.Wrap(err, "could not take run lock")
	}
	if !locked {
		conn.Release()
		return nil, ErrScanInProgress
	}

	return func() {
		// background context: the unlock has to happen even when the run
		// context is already canceled
		if _, err := conn.Exec(context.Background(), "SELECT pg_advisory_unlock($1)", scanAdvisoryLockID); err != nil {
			slog.Error("could not release run lock", "err", err)
		}
		conn.Release()
	}, nil
}
