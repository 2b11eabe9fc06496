// Copyright 2026 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ScanRunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "alertguard_scan_run_duration_seconds",
	Help: "Duration of full alert scan runs in seconds",
	// full runs over a large org take minutes, not milliseconds
	Buckets: prometheus.ExponentialBuckets(1, 2, 12),
})

var AlertsAutoClosed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "alertguard_alerts_auto_closed_total",
	Help: "Number of alerts automatically dismissed upstream",
})

var ScanRunErrors = promauto.NewCounter(prometheus.CounterOpts{
	Name: "alertguard_scan_run_errors_total",
	Help: "Number of per-repository errors collected during scan runs",
})
