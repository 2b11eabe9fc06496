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

type ApplicabilityRuleDTO struct {
	ID            string         `json:"id"`
	PackageName   *string        `json:"packageName,omitempty"`
	Ecosystem     *string        `json:"ecosystem,omitempty"`
	GHSAID        *string        `json:"ghsaId,omitempty"`
	CVEID         *string        `json:"cveId,omitempty"`
	Severity      *Severity      `json:"severity,omitempty"`
	Expression    *string        `json:"expression,omitempty"`
	Applicable    bool           `json:"applicable"`
	Reason        string         `json:"reason"`
	DismissReason *DismissReason `json:"dismissReason,omitempty"`
	Priority      int            `json:"priority"`
	Active        bool           `json:"active"`
	CreatedAt     time.Time      `json:"createdAt"`
}
