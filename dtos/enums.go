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

// AlertKind identifies the upstream alert source. Currently only dependabot
// alerts are ingested, but code-scanning and secret-scanning alerts share the
// same uniqueness and lifecycle semantics.
type AlertKind string

const (
	AlertKindDependabot AlertKind = "dependabot"
)

type AlertState string

const (
	AlertStateOpen          AlertState = "open"
	AlertStateDismissed     AlertState = "dismissed"
	AlertStateFixed         AlertState = "fixed"
	AlertStateAutoDismissed AlertState = "auto_dismissed"
)

func (s AlertState) Valid() bool {
	switch s {
	case AlertStateOpen, AlertStateDismissed, AlertStateFixed, AlertStateAutoDismissed:
		return true
	}
	return false
}

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Rank orders severities for sorting, highest first. Unknown severities sort
// last.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

func (s Severity) Valid() bool {
	return s.Rank() > 0
}

// DependencyScope is reported by the upstream manifest analysis.
type DependencyScope string

const (
	ScopeRuntime     DependencyScope = "runtime"
	ScopeDevelopment DependencyScope = "development"
)

// DismissReason is the fixed enumeration the upstream API accepts when an
// alert is patched to the dismissed state.
type DismissReason string

const (
	DismissReasonFixStarted    DismissReason = "fix_started"
	DismissReasonInaccurate    DismissReason = "inaccurate"
	DismissReasonNoBandwidth   DismissReason = "no_bandwidth"
	DismissReasonNotUsed       DismissReason = "not_used"
	DismissReasonTolerableRisk DismissReason = "tolerable_risk"
)

func (r DismissReason) Valid() bool {
	switch r {
	case DismissReasonFixStarted, DismissReasonInaccurate, DismissReasonNoBandwidth, DismissReasonNotUsed, DismissReasonTolerableRisk:
		return true
	}
	return false
}

type TriggerKind string

const (
	TriggerScheduled TriggerKind = "scheduled"
	TriggerManual    TriggerKind = "manual"
	TriggerWebhook   TriggerKind = "webhook"
)
