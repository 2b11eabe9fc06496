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

package ghapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/l3montree-dev/alertguard/database/models"
	"github.com/l3montree-dev/alertguard/dtos"
	"github.com/l3montree-dev/alertguard/shared"
)

const pageSize = 100

type githubClient struct {
	gh *github.Client
}

func NewGithubClient(tokenSource shared.InstallationTokenSource) *githubClient {
	return &githubClient{
		gh: github.NewClient(newHTTPClient(tokenSource)),
	}
}

// ListRepositories returns the full names of every repository the
// installation has access to. Pages are followed until an empty page comes
// back.
func (c *githubClient) ListRepositories(ctx context.Context) ([]string, error) {
	fullNames := []string{}

	for page := 1; ; page++ {
		result, _, err := c.gh.Apps.ListRepos(ctx, &github.ListOptions{
			Page:    page,
			PerPage: pageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("could not list installation repositories: %w", err)
		}
		if len(result.Repositories) == 0 {
			break
		}

		for _, repo := range result.Repositories {
			fullNames = append(fullNames, repo.GetFullName())
		}
	}

	return fullNames, nil
}

func (c *githubClient) ListOpenAlerts(ctx context.Context, repositoryFullName string) ([]models.Alert, error) {
	owner, name, err := splitFullName(repositoryFullName)
	if err != nil {
		return nil, err
	}

	alerts := []models.Alert{}

	for page := 1; ; page++ {
		upstreamAlerts, _, err := c.gh.Dependabot.ListRepoAlerts(ctx, owner, name, &github.ListAlertsOptions{
			State: github.String("open"),
			ListOptions: github.ListOptions{
				Page:    page,
				PerPage: pageSize,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("could not list dependabot alerts for %s: %w", repositoryFullName, err)
		}
		if len(upstreamAlerts) == 0 {
			break
		}

		for _, upstreamAlert := range upstreamAlerts {
			alerts = append(alerts, toAlert(repositoryFullName, upstreamAlert))
		}
	}

	return alerts, nil
}

func (c *githubClient) DismissAlert(ctx context.Context, repositoryFullName string, upstreamID int64, reason dtos.DismissReason, comment string) error {
	owner, name, err := splitFullName(repositoryFullName)
	if err != nil {
		return err
	}

	_, _, err = c.gh.Dependabot.UpdateAlert(ctx, owner, name, int(upstreamID), &github.DependabotAlertState{
		State:            "dismissed",
		DismissedReason:  github.String(string(reason)),
		DismissedComment: github.String(comment),
	})
	if err != nil {
		return fmt.Errorf("could not dismiss alert %d on %s: %w", upstreamID, repositoryFullName, err)
	}
	return nil
}

func splitFullName(fullName string) (owner string, name string, err error) {
	owner, name, found := strings.Cut(fullName, "/")
	if !found || owner == "" || name == "" {
		return "", "", fmt.Errorf("%q is not an owner/name repository full name", fullName)
	}
	return owner, name, nil
}

func toAlert(repositoryFullName string, upstreamAlert *github.DependabotAlert) models.Alert {
	alert := models.Alert{
		RepositoryFullName: repositoryFullName,
		Kind:               dtos.AlertKindDependabot,
		UpstreamID:         int64(upstreamAlert.GetNumber()),
		State:              dtos.AlertState(upstreamAlert.GetState()),
		Scope:              dtos.DependencyScope(upstreamAlert.GetDependency().GetScope()),
	}

	if advisory := upstreamAlert.GetSecurityAdvisory(); advisory != nil {
		alert.Severity = dtos.Severity(advisory.GetSeverity())
		alert.GHSAID = advisory.GetGHSAID()
		alert.CVEID = advisory.GetCVEID()
		alert.Summary = advisory.GetSummary()
		alert.Description = advisory.GetDescription()
	}

	if vulnerability := upstreamAlert.GetSecurityVulnerability(); vulnerability != nil {
		alert.VulnerableRange = vulnerability.GetVulnerableVersionRange()
		alert.PatchedVersion = vulnerability.GetFirstPatchedVersion().GetIdentifier()
		if pkg := vulnerability.GetPackage(); pkg != nil {
			alert.Ecosystem = pkg.GetEcosystem()
			alert.PackageName = pkg.GetName()
		}
	}

	return alert
}
