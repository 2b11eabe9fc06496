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

package dtos

import "time"

type AlertDTO struct {
	ID                 string          `json:"id"`
	RepositoryFullName string          `json:"repositoryFullName"`
	Kind               AlertKind       `json:"kind"`
	UpstreamID         int64           `json:"upstreamId"`
	State              AlertState      `json:"state"`
	Severity           Severity        `json:"severity"`
	Ecosystem          string          `json:"ecosystem"`
	PackageName        string          `json:"packageName"`
	VulnerableRange    string          `json:"vulnerableRange"`
	PatchedVersion     string          `json:"patchedVersion,omitempty"`
	Scope              DependencyScope `json:"scope,omitempty"`
	GHSAID             string          `json:"ghsaId,omitempty"`
	CVEID              string          `json:"cveId,omitempty"`
	Summary            string          `json:"summary"`
	Description        string          `json:"description,omitempty"`

	Applicable          bool   `json:"applicable"`
	ApplicabilityReason string `json:"applicabilityReason"`

	AutoClosed       bool       `json:"autoClosed"`
	AutoClosedAt     *time.Time `json:"autoClosedAt,omitempty"`
	AutoClosedReason string     `json:"autoClosedReason,omitempty"`

	FirstSeenAt   time.Time `json:"firstSeenAt"`
	LastCheckedAt time.Time `json:"lastCheckedAt"`
}
