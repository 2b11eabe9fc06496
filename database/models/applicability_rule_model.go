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
	"github.com/l3montree-dev/alertguard/dtos"
)

// ApplicabilityRule is an operator-authored classification rule. A nil match
// field means "match any". Rules are evaluated in descending priority order;
// the first rule whose non-nil fields all equal the alert wins. Rules are the
// single source of policy truth and are read fresh on every classification.
type ApplicabilityRule struct {
	Model
	PackageName *string        `json:"packageName" gorm:"type:text"`
	Ecosystem   *string        `json:"ecosystem" gorm:"type:text"`
	GHSAID      *string        `json:"ghsaId" gorm:"type:text"`
	CVEID       *string        `json:"cveId" gorm:"type:text"`
	Severity    *dtos.Severity `json:"severity" gorm:"type:text"`
	// Expression optionally narrows the rule further with an expr-lang
	// predicate over the alert fields. A rule with an expression matches only
	// if the expression evaluates to true.
	Expression *string `json:"expression" gorm:"type:text"`

	Applicable    bool                `json:"applicable" gorm:"not null"`
	Reason        string              `json:"reason" gorm:"type:text;not null"`
	DismissReason *dtos.DismissReason `json:"dismissReason" gorm:"type:text"`
	Priority      int                 `json:"priority" gorm:"not null;default:0;index"`
	Active        bool                `json:"active" gorm:"not null;default:true"`
	CreatedByID   string              `json:"createdById" gorm:"type:text"`
}

func (ApplicabilityRule) TableName() string {
	return "applicability_rules"
}
