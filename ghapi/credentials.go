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
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v62/github"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	tokenCacheKey = "installation-token"
	// real installation tokens last about an hour - the cache expires a bit
	// earlier so we never hand out a token the upstream would reject as stale
	tokenCacheTTL    = 58 * time.Minute
	minTokenValidity = time.Minute
)

type installationToken struct {
	token     string
	expiresAt time.Time
}

// CredentialManager exchanges a signed app-identity assertion for a scoped
// installation token and caches the result. The signed assertion (issued-at
// skewed into the past to tolerate clock drift, short expiry) is handled by
// the ghinstallation apps transport underneath.
//
// Constructed once per process and shared; refreshes are synchronized, a
// failure to sign or exchange is fatal to the calling operation - there is no
// unauthenticated fallback.
type CredentialManager struct {
	exchange     func(ctx context.Context) (string, time.Time, error)
	cache        *expirable.LRU[string, installationToken]
	refreshMutex sync.Mutex
}

func NewCredentialManager() (*CredentialManager, error) {
	appID, err := strconv.ParseInt(os.Getenv("GITHUB_APP_ID"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("GITHUB_APP_ID is not a valid app id: %w", err)
	}
	installationID, err := strconv.ParseInt(os.Getenv("GITHUB_APP_INSTALLATION_ID"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("GITHUB_APP_INSTALLATION_ID is not a valid installation id: %w", err)
	}

	appsTransport, err := ghinstallation.NewAppsTransportKeyFromFile(http.DefaultTransport, appID, os.Getenv("GITHUB_PRIVATE_KEY"))
	if err != nil {
		return nil, fmt.Errorf("could not load github app private key: %w", err)
	}

	appsClient := github.NewClient(&http.Client{Transport: appsTransport})

	return newCredentialManager(func(ctx context.Context) (string, time.Time, error) {
		token, _, err := appsClient.Apps.CreateInstallationToken(ctx, installationID, nil)
		if err != nil {
			return "", time.Time{}, err
		}
		return token.GetToken(), token.GetExpiresAt().Time, nil
	}), nil
}

func newCredentialManager(exchange func(ctx context.Context) (string, time.Time, error)) *CredentialManager {
	return &CredentialManager{
		exchange: exchange,
		cache:    expirable.NewLRU[string, installationToken](1, nil, tokenCacheTTL),
	}
}

// Token returns a valid installation token, from cache when at least a minute
// of validity remains, otherwise through a synchronized exchange.
func (m *CredentialManager) Token(ctx context.Context) (string, error) {
	if token, ok := m.cached(); ok {
		return token, nil
	}

	m.refreshMutex.Lock()
	defer m.refreshMutex.Unlock()

	// another caller might have refreshed while we waited for the lock
	if token, ok := m.cached(); ok {
		return token, nil
	}

	token, expiresAt, err := m.exchange(ctx)
	if err != nil {
		return "", fmt.Errorf("could not exchange app assertion for an installation token: %w", err)
	}

	m.cache.Add(tokenCacheKey, installationToken{token: token, expiresAt: expiresAt})
	return token, nil
}

func (m *CredentialManager) cached() (string, bool) {
	token, ok := m.cache.Get(tokenCacheKey)
	if !ok || time.Until(token.expiresAt) < minTokenValidity {
		return "", false
	}
	return token.token, true
}
