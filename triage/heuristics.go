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
	"strings"

	"github.com/l3montree-dev/alertguard/database/models"
	"github.com/l3montree-dev/alertguard/dtos"
	"github.com/l3montree-dev/alertguard/utils"
)

// BuiltinHeuristics returns the default heuristic chain in evaluation order:
// the general development-scope check first, then the per-package-family
// keyword checks.
func BuiltinHeuristics() []Heuristic {
	return []Heuristic{
		devScopeHeuristic{},
		packageFamilyHeuristic{families: knownFamilies},
	}
}

// devScopeHeuristic: alerts scoped to a development-only dependency are never
// reachable in a production deployment.
type devScopeHeuristic struct{}

func (devScopeHeuristic) Match(alert models.Alert) *Verdict {
	if alert.Scope != dtos.ScopeDevelopment {
		return nil
	}
	return &Verdict{
		Applicable:    false,
		Reason:        "dependency is development-scoped and not part of the production deployment",
		DismissReason: utils.Ptr(dtos.DismissReasonNotUsed),
	}
}

// packageFamily describes one known non-applicable condition for a named
// package: when the advisory summary mentions any of the keywords, the
// vulnerable code path is one our deployment stack does not execute.
type packageFamily struct {
	Ecosystem     string
	PackageName   string
	Keywords      []string
	Reason        string
	DismissReason dtos.DismissReason
}

// knownFamilies is deployment-stack knowledge: the fleet runs server-side on
// Linux. Keep entries narrow - a missed dismissal is cheaper than a wrong one.
var knownFamilies = []packageFamily{
	{
		Ecosystem:     "npm",
		PackageName:   "node-fetch",
		Keywords:      []string{"browser"},
		Reason:        "advisory only affects browser usage; the package runs server-side here",
		DismissReason: dtos.DismissReasonNotUsed,
	},
	{
		Ecosystem:     "pip",
		PackageName:   "waitress",
		Keywords:      []string{"windows"},
		Reason:        "advisory only affects Windows deployments; the fleet runs Linux",
		DismissReason: dtos.DismissReasonNotUsed,
	},
	{
		Ecosystem:     "npm",
		PackageName:   "ws",
		Keywords:      []string{"client mode", "websocket client"},
		Reason:        "advisory only affects the websocket client code path; the package is used as a server",
		DismissReason: dtos.DismissReasonNotUsed,
	},
}

type packageFamilyHeuristic struct {
	families []packageFamily
}

func (h packageFamilyHeuristic) Match(alert models.Alert) *Verdict {
	summary := strings.ToLower(alert.Summary)

	for _, family := range h.families {
		if family.Ecosystem != alert.Ecosystem || family.PackageName != alert.PackageName {
			continue
		}
		if !utils.Any(family.Keywords, func(keyword string) bool {
			return strings.Contains(summary, keyword)
		}) {
			continue
		}
		return &Verdict{
			Applicable:    false,
			Reason:        family.Reason,
			DismissReason: utils.Ptr(family.DismissReason),
		}
	}

	return nil
}
