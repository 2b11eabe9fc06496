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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlertUpsertColumns(t *testing.T) {
	t.Run("should never refresh identity or history columns on re-ingestion", func(t *testing.T) {
		for _, column := range []string{
			"id", "created_at",
			"repository_full_name", "kind", "upstream_id",
			"first_seen_at",
			"auto_closed", "auto_closed_at", "auto_closed_reason",
		} {
			assert.NotContains(t, alertUpsertColumns, column)
		}
	})

	t.Run("should refresh the verdict and bookkeeping columns", func(t *testing.T) {
		for _, column := range []string{
			"state", "severity", "severity_rank",
			"applicable", "applicability_reason",
			"last_checked_at",
		} {
			assert.Contains(t, alertUpsertColumns, column)
		}
	})
}
