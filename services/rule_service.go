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
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/l3montree-dev/alertguard/database/models"
	"github.com/l3montree-dev/alertguard/shared"
	"github.com/l3montree-dev/alertguard/triage"
)

type RuleService struct {
	ruleRepository shared.ApplicabilityRuleRepository
}

func NewRuleService(ruleRepository shared.ApplicabilityRuleRepository) RuleService {
	return RuleService{ruleRepository: ruleRepository}
}

// Create validates and stores a new rule. A broken expression is rejected
// here instead of silently never matching at classification time.
func (service RuleService) Create(rule *models.ApplicabilityRule) error {
	if rule.Reason == "" {
		return fmt.Errorf("a rule needs a reason")
	}
	if !rule.Applicable && rule.DismissReason == nil {
		return fmt.Errorf("a rule marking alerts as not applicable needs a dismiss reason")
	}
	if rule.Severity != nil && !rule.Severity.Valid() {
		return fmt.Errorf("invalid severity %q", *rule.Severity)
	}
	if rule.DismissReason != nil && !rule.DismissReason.Valid() {
		return fmt.Errorf("invalid dismiss reason %q", *rule.DismissReason)
	}
	if rule.Expression != nil && *rule.Expression != "" {
		if _, err := expr.Compile(*rule.Expression, expr.Env(triage.RuleEnv{}), expr.AsBool()); err != nil {
			return fmt.Errorf("invalid rule expression: %w", err)
		}
	}

	return service.ruleRepository.Create(nil, rule)
}

func (service RuleService) All() ([]models.ApplicabilityRule, error) {
	return service.ruleRepository.FindAll(nil)
}
