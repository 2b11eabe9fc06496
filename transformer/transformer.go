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

// Package transformer maps database models to their API representations.
package transformer

import (
	"github.com/l3montree-dev/alertguard/database/models"
	"github.com/l3montree-dev/alertguard/dtos"
	"github.com/l3montree-dev/alertguard/utils"
)

func AlertToDTO(alert models.Alert) dtos.AlertDTO {
	return dtos.AlertDTO{
		ID:                 alert.ID.String(),
		RepositoryFullName: alert.RepositoryFullName,
		Kind:               alert.Kind,
		UpstreamID:         alert.UpstreamID,
		State:              alert.State,
		Severity:           alert.Severity,
		Ecosystem:          alert.Ecosystem,
		PackageName:        alert.PackageName,
		VulnerableRange:    alert.VulnerableRange,
		PatchedVersion:     alert.PatchedVersion,
		Scope:              alert.Scope,
		GHSAID:             alert.GHSAID,
		CVEID:              alert.CVEID,
		Summary:            alert.Summary,
		Description:        alert.Description,

		Applicable:          alert.Applicable,
		ApplicabilityReason: alert.ApplicabilityReason,

		AutoClosed:       alert.AutoClosed,
		AutoClosedAt:     alert.AutoClosedAt,
		AutoClosedReason: alert.AutoClosedReason,

		FirstSeenAt:   alert.FirstSeenAt,
		LastCheckedAt: alert.LastCheckedAt,
	}
}

func AlertsToDTOs(alerts []models.Alert) []dtos.AlertDTO {
	return utils.Map(alerts, AlertToDTO)
}

func RuleToDTO(rule models.ApplicabilityRule) dtos.ApplicabilityRuleDTO {
	return dtos.ApplicabilityRuleDTO{
		ID:            rule.ID.String(),
		PackageName:   rule.PackageName,
		Ecosystem:     rule.Ecosystem,
		GHSAID:        rule.GHSAID,
		CVEID:         rule.CVEID,
		Severity:      rule.Severity,
		Expression:    rule.Expression,
		Applicable:    rule.Applicable,
		Reason:        rule.Reason,
		DismissReason: rule.DismissReason,
		Priority:      rule.Priority,
		Active:        rule.Active,
		CreatedAt:     rule.CreatedAt,
	}
}

func RulesToDTOs(rules []models.ApplicabilityRule) []dtos.ApplicabilityRuleDTO {
	return utils.Map(rules, RuleToDTO)
}

func ScanRunToDTO(run models.ScanRun) dtos.ScanRunDTO {
	errs := run.Errors
	if errs == nil {
		errs = []string{}
	}
	return dtos.ScanRunDTO{
		ID:               run.ID.String(),
		Trigger:          run.Trigger,
		StartedAt:        run.StartedAt,
		CompletedAt:      run.CompletedAt,
		ReposScanned:     run.ReposScanned,
		AlertsFound:      run.AlertsFound,
		AlertsAutoClosed: run.AlertsAutoClosed,
		Errors:           errs,
		Success:          run.Success,
	}
}

func ScanRunsToDTOs(runs []models.ScanRun) []dtos.ScanRunDTO {
	return utils.Map(runs, ScanRunToDTO)
}
