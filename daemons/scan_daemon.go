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

package daemons

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/l3montree-dev/alertguard/dtos"
	"github.com/l3montree-dev/alertguard/services"
	"github.com/l3montree-dev/alertguard/shared"
	"github.com/pkg/errors"
)

const defaultScanInterval = 6 * time.Hour

// DaemonRunner periodically triggers full scan runs.
type DaemonRunner struct {
	scanService shared.ScanService
	interval    time.Duration
}

func NewDaemonRunner(scanService shared.ScanService) *DaemonRunner {
	interval := defaultScanInterval
	if raw := os.Getenv("SCAN_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			slog.Warn("invalid SCAN_INTERVAL, using default", "value", raw, "default", defaultScanInterval)
		} else {
			interval = parsed
		}
	}

	return &DaemonRunner{
		scanService: scanService,
		interval:    interval,
	}
}

// Start initiates the background scan loop. The first run happens
// immediately, subsequent runs on every tick.
func (runner *DaemonRunner) Start() {
	go func() {
		runner.tick()
		ticker := time.NewTicker(runner.interval)
		defer ticker.Stop()
		for range ticker.C {
			runner.tick()
		}
	}()
}

func (runner *DaemonRunner) tick() {
	start := time.Now()
	slog.Info("starting scheduled scan run")

	run, err := runner.scanService.Run(context.Background(), dtos.TriggerScheduled)
	if err != nil {
		if errors.Is(err, services.ErrScanInProgress) {
			// another replica holds the run lock, its run covers this tick
			slog.Info("skipping scheduled scan run, another run is in progress")
			return
		}
		slog.Error("scheduled scan run failed", "err", err, "duration", time.Since(start))
		return
	}

	slog.Info("scheduled scan run finished", "runID", run.ID, "duration", time.Since(start), "success", run.Success)
}
