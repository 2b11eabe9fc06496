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
	"context"
	"log/slog"

	"github.com/l3montree-dev/alertguard/database/repositories"
	"github.com/l3montree-dev/alertguard/dtos"
	"github.com/l3montree-dev/alertguard/ghapi"
	"github.com/l3montree-dev/alertguard/services"
	"github.com/l3montree-dev/alertguard/shared"
	"github.com/spf13/cobra"
)

func NewScanCommand() *cobra.Command {
	scan := &cobra.Command{
		Use:   "scan",
		Short: "Run a scan against all repositories (or a single one via --repository)",
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint
			db, pool, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return err
			}

			credentialManager, err := ghapi.NewCredentialManager()
			if err != nil {
				slog.Error("could not initialize upstream credentials", "err", err)
				return err
			}

			githubClient := ghapi.NewGithubClient(credentialManager)
			alertRepository := repositories.NewAlertRepository(db)
			ruleRepository := repositories.NewApplicabilityRuleRepository(db)
			scanRunRepository := repositories.NewScanRunRepository(db)
			dismissalService := services.NewDismissalService(githubClient, alertRepository)
			scanService := services.NewScanService(githubClient, alertRepository, ruleRepository, scanRunRepository, dismissalService, pool)

			repository, _ := cmd.Flags().GetString("repository")

			if repository != "" {
				run, err := scanService.RunForRepository(context.Background(), repository, dtos.TriggerManual)
				if err != nil {
					return err
				}
				slog.Info("scan finished", "runID", run.ID, "alertsFound", run.AlertsFound, "alertsAutoClosed", run.AlertsAutoClosed, "errors", len(run.Errors))
				return nil
			}

			run, err := scanService.Run(context.Background(), dtos.TriggerManual)
			if err != nil {
				return err
			}
			slog.Info("scan finished", "runID", run.ID, "reposScanned", run.ReposScanned, "alertsFound", run.AlertsFound, "alertsAutoClosed", run.AlertsAutoClosed, "errors", len(run.Errors), "success", run.Success)
			return nil
		},
	}

	scan.Flags().StringP("repository", "r", "", "Scan a single repository (owner/name) instead of all")

	return scan
}
