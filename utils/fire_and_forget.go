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

package utils

import "log/slog"

// FireAndForgetSynchronizer decouples request handling from background work.
// The async implementation is used in production; the sync one makes tests
// deterministic.
type FireAndForgetSynchronizer interface {
	FireAndForget(fn func())
}

type asyncFireAndForgetSynchronizer struct{}

func NewFireAndForgetSynchronizer() FireAndForgetSynchronizer {
	return asyncFireAndForgetSynchronizer{}
}

func (asyncFireAndForgetSynchronizer) FireAndForget(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered panic in fire and forget routine", "panic", r)
			}
		}()
		fn()
	}()
}

type syncFireAndForgetSynchronizer struct{}

func NewSyncFireAndForgetSynchronizer() FireAndForgetSynchronizer {
	return syncFireAndForgetSynchronizer{}
}

func (syncFireAndForgetSynchronizer) FireAndForget(fn func()) {
	fn()
}
