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

type scanRunRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.ScanRun]
}

func NewScanRunRepository(db *gorm.DB) *scanRunRepository {
	return &scanRunRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.ScanRun](db),
	}
}

func (r *scanRunRepository) Recent(tx *gorm.DB, limit int) ([]models.ScanRun, error) {
	var runs []models.ScanRun
	err := r.GetDB(tx).Order("started_at DESC").Limit(limit).Find(&runs).Error
	return runs, err
}
