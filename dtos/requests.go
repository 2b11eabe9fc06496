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

type DismissAlertRequest struct {
	Reason  DismissReason `json:"reason" validate:"required"`
	Comment string        `json:"comment" validate:"required"`
}

type CreateRuleRequest struct {
	PackageName   *string        `json:"packageName"`
	Ecosystem     *string        `json:"ecosystem"`
	GHSAID        *string        `json:"ghsaId"`
	CVEID         *string        `json:"cveId"`
	Severity      *Severity      `json:"severity"`
	Expression    *string        `json:"expression"`
	Applicable    bool           `json:"applicable"`
	Reason        string         `json:"reason" validate:"required"`
	DismissReason *DismissReason `json:"dismissReason"`
	Priority      int            `json:"priority"`
	// Active defaults to true when omitted.
	Active *bool `json:"active"`
}
