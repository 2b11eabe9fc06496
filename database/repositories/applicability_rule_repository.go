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

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/alertguard/database/models"
	"gorm.io/gorm"
)

type applicabilityRuleRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.ApplicabilityRule]
}

func NewApplicabilityRuleRepository(db *gorm.DB) *applicabilityRuleRepository {
	return &applicabilityRuleRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.ApplicabilityRule](db),
	}
}

// FindActive returns the active rules in evaluation order (priority
// descending). Looked up fresh on every classification - rule decisions are
// never cached across rule changes.
func (r *applicabilityRuleRepository) FindActive(tx *gorm.DB) ([]models.ApplicabilityRule, error) {
	var rules []models.ApplicabilityRule
	err := r.GetDB(tx).Where("active = true").Order("priority DESC, created_at ASC").Find(&rules).Error
	return rules, err
}

func (r *applicabilityRuleRepository) FindAll(tx *gorm.DB) ([]models.ApplicabilityRule, error) {
	var rules []models.ApplicabilityRule
	err := r.GetDB(tx).Order("priority DESC, created_at ASC").Find(&rules).Error
	return rules, err
}
