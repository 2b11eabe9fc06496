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

package commands

import (
	"fmt"
	"log/slog"

	"github.com/l3montree-dev/alertguard/database/models"
	"github.com/l3montree-dev/alertguard/database/repositories"
	"github.com/l3montree-dev/alertguard/dtos"
	"github.com/l3montree-dev/alertguard/services"
	"github.com/l3montree-dev/alertguard/shared"
	"github.com/l3montree-dev/alertguard/utils"
	"github.com/spf13/cobra"
)

func NewRulesCommand() *cobra.Command {
	rules := cobra.Command{
		Use:   "rules",
		Short: "Manage applicability rules",
	}

	rules.AddCommand(newRulesListCommand())
	rules.AddCommand(newRulesSeedCommand())
	return &rules
}

func newRulesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all applicability rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint
			db, _, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return err
			}

			ruleService := services.NewRuleService(repositories.NewApplicabilityRuleRepository(db))
			all, err := ruleService.All()
			if err != nil {
				return err
			}

			for _, rule := range all {
				fmt.Printf("%s\tpriority=%d\tactive=%t\tapplicable=%t\t%s\n", rule.ID, rule.Priority, rule.Active, rule.Applicable, rule.Reason)
			}
			return nil
		},
	}
}

// seedRules is a conservative starting point: everything is applicable unless
// an operator decides otherwise.
var seedRules = []models.ApplicabilityRule{
	{
		Applicable: true,
		Reason:     "applicable until reviewed",
		Priority:   -100,
		Active:     true,
	},
	{
		Severity:      utils.Ptr(dtos.SeverityLow),
		Expression:    utils.Ptr(`scope == "development"`),
		Applicable:    false,
		Reason:        "low severity finding in a development-only dependency",
		DismissReason: utils.Ptr(dtos.DismissReasonNotUsed),
		Priority:      -50,
		Active:        true,
	},
}

func newRulesSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default rule set",
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint
			db, _, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return err
			}

			ruleService := services.NewRuleService(repositories.NewApplicabilityRuleRepository(db))
			for i := range seedRules {
				rule := seedRules[i]
				rule.CreatedByID = "alertguard-cli"
				if err := ruleService.Create(&rule); err != nil {
					return err
				}
				slog.Info("seeded rule", "ruleID", rule.ID, "reason", rule.Reason)
			}
			return nil
		},
	}
}
