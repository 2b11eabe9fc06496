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

package database

import (
	"fmt"

	"github.com/l3montree-dev/alertguard/database/models"
	"gorm.io/gorm"
)

// RunMigrationsWithDB brings the schema up to date using the existing
// connection. The schema is small enough that gorm's auto migration is the
// whole migration story.
func RunMigrationsWithDB(db *gorm.DB) error {
	// gen_random_uuid() needs pgcrypto on older postgres versions
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`).Error; err != nil {
		return fmt.Errorf("could not create pgcrypto extension: %w", err)
	}

	return db.AutoMigrate(
		&models.Alert{},
		&models.ApplicabilityRule{},
		&models.ScanRun{},
	)
}
