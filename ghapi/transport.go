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
	"net/http"

	"github.com/l3montree-dev/alertguard/shared"
)

const apiVersion = "2022-11-28"

// installationTransport attaches the current installation token plus the API
// version header to every outgoing request. The token source is consulted per
// request so a cache refresh is picked up transparently.
type installationTransport struct {
	tokenSource shared.InstallationTokenSource
	base        http.RoundTripper
}

func newHTTPClient(tokenSource shared.InstallationTokenSource) *http.Client {
	return &http.Client{
		Transport: &installationTransport{
			tokenSource: tokenSource,
			base:        http.DefaultTransport,
		},
	}
}

func (t *installationTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.tokenSource.Token(req.Context())
	if err != nil {
		return nil, err
	}

	// RoundTrip must not mutate the original request
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)
	clone.Header.Set("X-GitHub-Api-Version", apiVersion)

	return t.base.RoundTrip(clone)
}
