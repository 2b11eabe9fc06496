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

package triage

import (
	"log/slog"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/l3montree-dev/alertguard/database/models"
	"github.com/l3montree-dev/alertguard/dtos"
)

// FallbackReason is returned whenever neither a rule nor a heuristic produced
// a verdict.
const FallbackReason = "no matching rule"

// Verdict is the outcome of classifying a single alert.
type Verdict struct {
	Applicable bool
	Reason     string
	// DismissReason is the upstream reason code to use when the alert gets
	// auto-dismissed. Only meaningful for non-applicable verdicts.
	DismissReason *dtos.DismissReason
}

// Heuristic encodes stack-specific knowledge that is too fuzzy for the rule
// table. A nil result means "no opinion" and evaluation moves on.
type Heuristic interface {
	Match(alert models.Alert) *Verdict
}

type Engine struct {
	heuristics []Heuristic
}

func NewEngine(heuristics ...Heuristic) *Engine {
	if len(heuristics) == 0 {
		heuristics = BuiltinHeuristics()
	}
	return &Engine{heuristics: heuristics}
}

// Classify resolves the applicability of one alert.
//
// Rules are consulted first, in descending priority order - the first rule
// whose non-nil fields all match wins, regardless of the order the rules were
// inserted in. Specificity is expressed only through explicit priorities;
// nothing is inferred. When no rule matches, critical and high severity
// alerts stay applicable no matter what a heuristic would say. Below that
// floor the built-in heuristics run, and if they stay silent too the alert is
// applicable by default.
func (e *Engine) Classify(alert models.Alert, rules []models.ApplicabilityRule) Verdict {
	ordered := make([]models.ApplicabilityRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	for _, rule := range ordered {
		if !rule.Active {
			continue
		}
		if ruleMatches(rule, alert) {
			return Verdict{
				Applicable:    rule.Applicable,
				Reason:        rule.Reason,
				DismissReason: rule.DismissReason,
			}
		}
	}

	// hard severity floor: unmatched critical/high alerts never get
	// heuristically dismissed
	if alert.Severity == dtos.SeverityCritical || alert.Severity == dtos.SeverityHigh {
		return Verdict{Applicable: true, Reason: FallbackReason}
	}

	for _, heuristic := range e.heuristics {
		if verdict := heuristic.Match(alert); verdict != nil {
			return *verdict
		}
	}

	return Verdict{Applicable: true, Reason: FallbackReason}
}

// ruleMatches reports whether every non-nil field of the rule equals the
// corresponding alert field. Fields the rule leaves nil match anything.
func ruleMatches(rule models.ApplicabilityRule, alert models.Alert) bool {
	if rule.PackageName != nil && *rule.PackageName != alert.PackageName {
		return false
	}
	if rule.Ecosystem != nil && *rule.Ecosystem != alert.Ecosystem {
		return false
	}
	if rule.GHSAID != nil && *rule.GHSAID != alert.GHSAID {
		return false
	}
	if rule.CVEID != nil && *rule.CVEID != alert.CVEID {
		return false
	}
	if rule.Severity != nil && *rule.Severity != alert.Severity {
		return false
	}
	if rule.Expression != nil && *rule.Expression != "" {
		return expressionMatches(*rule.Expression, alert, rule.ID.String())
	}
	return true
}

// RuleEnv is the environment a rule expression is evaluated against.
type RuleEnv struct {
	Repository  string `expr:"repository"`
	PackageName string `expr:"packageName"`
	Ecosystem   string `expr:"ecosystem"`
	Severity    string `expr:"severity"`
	Scope       string `expr:"scope"`
	GHSAID      string `expr:"ghsaId"`
	CVEID       string `expr:"cveId"`
	Summary     string `expr:"summary"`
}

func expressionMatches(expression string, alert models.Alert, ruleID string) bool {
	program, err := expr.Compile(expression, expr.Env(RuleEnv{}), expr.AsBool())
	if err != nil {
		slog.Warn("could not compile rule expression, treating rule as not matching", "ruleID", ruleID, "err", err)
		return false
	}

	result, err := expr.Run(program, RuleEnv{
		Repository:  alert.RepositoryFullName,
		PackageName: alert.PackageName,
		Ecosystem:   alert.Ecosystem,
		Severity:    string(alert.Severity),
		Scope:       string(alert.Scope),
		GHSAID:      alert.GHSAID,
		CVEID:       alert.CVEID,
		Summary:     alert.Summary,
	})
	if err != nil {
		slog.Warn("could not evaluate rule expression, treating rule as not matching", "ruleID", ruleID, "err", err)
		return false
	}

	matched, ok := result.(bool)
	return ok && matched
}
