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
	"time"

	"github.com/l3montree-dev/alertguard/dtos"
)

// ScanRun is the audit record of one orchestrator execution. It is created
// when the run starts and finalized when the run completes or fails - it is
// never left pending after a clean exit.
type ScanRun struct {
	Model
	Trigger     dtos.TriggerKind `json:"trigger" gorm:"type:text;not null"`
	StartedAt   time.Time        `json:"startedAt" gorm:"not null"`
	CompletedAt *time.Time       `json:"completedAt"`

	ReposScanned     int `json:"reposScanned" gorm:"not null;default:0"`
	AlertsFound      int `json:"alertsFound" gorm:"not null;default:0"`
	AlertsAutoClosed int `json:"alertsAutoClosed" gorm:"not null;default:0"`

	// Errors collects per-repository and per-alert failures in the order they
	// occurred. Success stays true for partial failures - callers have to
	// inspect the error list.
	Errors  []string `json:"errors" gorm:"type:jsonb;serializer:json"`
	Success bool     `json:"success" gorm:"not null;default:false"`
}

func (ScanRun) TableName() string {
	return "scan_runs"
}
