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

package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/alertguard/database/models"
	"github.com/l3montree-dev/alertguard/dtos"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type alertRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Alert]
}

func NewAlertRepository(db *gorm.DB) *alertRepository {
	return &alertRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Alert](db),
	}
}

// alertUpsertColumns are the columns a re-scan is allowed to refresh. The
// identity columns, created_at and first_seen_at are deliberately absent so
// re-ingesting an unchanged alert is idempotent apart from last_checked_at.
var alertUpsertColumns = []string{
	"state", "severity", "severity_rank",
	"ecosystem", "package_name", "vulnerable_range", "patched_version", "scope",
	"ghsa_id", "cve_id", "summary", "description",
	"applicable", "applicability_reason",
	"last_checked_at", "updated_at",
}

// UpsertFromScan inserts the alert or, if the (repository, kind, upstream id)
// identity already exists, refreshes the mutable columns. After the call the
// alert carries the stored row's id and history fields.
func (r *alertRepository) UpsertFromScan(tx *gorm.DB, alert *models.Alert) error {
	now := time.Now()
	if alert.FirstSeenAt.IsZero() {
		alert.FirstSeenAt = now
	}
	alert.LastCheckedAt = now
	alert.SeverityRank = alert.Severity.Rank()

	err := r.GetDB(tx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "repository_full_name"},
			{Name: "kind"},
			{Name: "upstream_id"},
		},
		DoUpdates: clause.AssignmentColumns(alertUpsertColumns),
	}).Create(alert).Error
	if err != nil {
		return err
	}

	// the conflict path does not populate history fields on the struct
	stored, err := r.FindByUpstreamIdentity(tx, alert.RepositoryFullName, alert.Kind, alert.UpstreamID)
	if err != nil {
		return err
	}
	*alert = stored
	return nil
}

func (r *alertRepository) FindByUpstreamIdentity(tx *gorm.DB, repositoryFullName string, kind dtos.AlertKind, upstreamID int64) (models.Alert, error) {
	var alert models.Alert
	err := r.GetDB(tx).Where(
		"repository_full_name = ? AND kind = ? AND upstream_id = ?",
		repositoryFullName, kind, upstreamID,
	).First(&alert).Error
	return alert, err
}

// MarkAutoClosed records a successful upstream dismissal on the stored row.
func (r *alertRepository) MarkAutoClosed(tx *gorm.DB, alert *models.Alert, reason string) error {
	now := time.Now()
	alert.State = dtos.AlertStateAutoDismissed
	alert.AutoClosed = true
	alert.AutoClosedAt = &now
	alert.AutoClosedReason = reason

	return r.GetDB(tx).Model(alert).Updates(map[string]any{
		"state":              dtos.AlertStateAutoDismissed,
		"auto_closed":        true,
		"auto_closed_at":     now,
		"auto_closed_reason": reason,
	}).Error
}

// List returns alerts filtered by lifecycle state and/or applicability,
// ordered by severity then recency.
func (r *alertRepository) List(tx *gorm.DB, state *dtos.AlertState, applicable *bool) ([]models.Alert, error) {
	query := r.GetDB(tx).Model(&models.Alert{})
	if state != nil {
		query = query.Where("state = ?", *state)
	}
	if applicable != nil {
		query = query.Where("applicable = ?", *applicable)
	}

	var alerts []models.Alert
	err := query.Order("severity_rank DESC, last_checked_at DESC").Find(&alerts).Error
	return alerts, err
}

func (r *alertRepository) Statistics(tx *gorm.DB) (dtos.AlertStatisticsDTO, error) {
	stats := dtos.AlertStatisticsDTO{
		BySeverity:   map[string]int64{},
		ByRepository: map[string]int64{},
	}
	db := r.GetDB(tx)

	if err := db.Model(&models.Alert{}).Where("state = ?", dtos.AlertStateOpen).Count(&stats.TotalOpen).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&models.Alert{}).Where("state = ? AND applicable = true", dtos.AlertStateOpen).Count(&stats.ApplicableOpen).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&models.Alert{}).Where("auto_closed = true").Count(&stats.TotalAutoClosed).Error; err != nil {
		return stats, err
	}

	type bucket struct {
		Key   string
		Count int64
	}

	var severities []bucket
	if err := db.Model(&models.Alert{}).
		Select("severity as key, count(*) as count").
		Where("state = ?", dtos.AlertStateOpen).
		Group("severity").Scan(&severities).Error; err != nil {
		return stats, err
	}
	for _, b := range severities {
		stats.BySeverity[b.Key] = b.Count
	}

	var repos []bucket
	if err := db.Model(&models.Alert{}).
		Select("repository_full_name as key, count(*) as count").
		Where("state = ?", dtos.AlertStateOpen).
		Group("repository_full_name").Scan(&repos).Error; err != nil {
		return stats, err
	}
	for _, b := range repos {
		stats.ByRepository[b.Key] = b.Count
	}

	return stats, nil
}
