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

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/l3montree-dev/alertguard/dtos"
)

// Alert is one vulnerability finding on one repository. Alerts are unique per
// (repository, kind, upstream id) and are never hard-deleted - closure is a
// state transition so the audit trail survives.
type Alert struct {
	Model
	RepositoryFullName string         `json:"repositoryFullName" gorm:"type:text;not null;uniqueIndex:idx_alert_upstream_identity;index:idx_alert_repository"`
	Kind               dtos.AlertKind `json:"kind" gorm:"type:text;not null;uniqueIndex:idx_alert_upstream_identity"`
	UpstreamID         int64          `json:"upstreamId" gorm:"not null;uniqueIndex:idx_alert_upstream_identity"`

	State    dtos.AlertState `json:"state" gorm:"type:text;not null;index"`
	Severity dtos.Severity   `json:"severity" gorm:"type:text;not null"`
	// SeverityRank is denormalized so the alert list can be ordered by
	// severity without a case expression in every query.
	SeverityRank int `json:"-" gorm:"not null;default:0"`

	Ecosystem       string               `json:"ecosystem" gorm:"type:text"`
	PackageName     string               `json:"packageName" gorm:"type:text;index"`
	VulnerableRange string               `json:"vulnerableRange" gorm:"type:text"`
	PatchedVersion  string               `json:"patchedVersion" gorm:"type:text"`
	Scope           dtos.DependencyScope `json:"scope" gorm:"type:text"`

	GHSAID      string `json:"ghsaId" gorm:"type:text;index"`
	CVEID       string `json:"cveId" gorm:"type:text;index"`
	Summary     string `json:"summary" gorm:"type:text"`
	Description string `json:"description" gorm:"type:text"`

	Applicable          bool   `json:"applicable" gorm:"not null;default:true"`
	ApplicabilityReason string `json:"applicabilityReason" gorm:"type:text"`

	AutoClosed       bool       `json:"autoClosed" gorm:"not null;default:false"`
	AutoClosedAt     *time.Time `json:"autoClosedAt"`
	AutoClosedReason string     `json:"autoClosedReason" gorm:"type:text"`

	FirstSeenAt   time.Time `json:"firstSeenAt" gorm:"not null"`
	LastCheckedAt time.Time `json:"lastCheckedAt" gorm:"not null"`
}

func (Alert) TableName() string {
	return "alerts"
}

// Owner splits the repository full name into its owner and name parts.
func (a Alert) Owner() (owner string, name string) {
	owner, name, _ = strings.Cut(a.RepositoryFullName, "/")
	return owner, name
}

// UpstreamRef identifies the alert in log lines and error messages.
func (a Alert) UpstreamRef() string {
	return fmt.Sprintf("%s#%d", a.RepositoryFullName, a.UpstreamID)
}
