package router

import (
	"os"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/alertguard/cmd/alertguard/api"
	"github.com/l3montree-dev/alertguard/config"
	"github.com/l3montree-dev/alertguard/controllers"
	"github.com/l3montree-dev/alertguard/database"
	"github.com/l3montree-dev/alertguard/middlewares"
	"github.com/l3montree-dev/alertguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

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

type APIV1Router struct {
	*echo.Group
}

// NewAPIV1Router registers all routes. The health, info, metrics and webhook
// endpoints are public (the webhook authenticates via its HMAC signature);
// everything else sits behind the admin token.
func NewAPIV1Router(srv api.Server,
	db shared.DB,
	pool *pgxpool.Pool,
	healthController *controllers.HealthController,
	scanController *controllers.ScanController,
	alertController *controllers.AlertController,
	ruleController *controllers.RuleController,
	webhookController *controllers.WebhookController,
) APIV1Router {
	apiV1Router := srv.Echo.Group("/api/v1")

	apiV1Router.GET("/health/", healthController.Health)
	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	apiV1Router.POST("/webhook/", webhookController.HandleWebhook)

	apiV1Router.GET("/info/", func(c echo.Context) error {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		resp := InfoResponse{
			Build: BuildInfo{
				Version:   config.Version,
				Commit:    config.Commit,
				BuildDate: config.BuildDate,
			},
			Runtime: RuntimeInfo{
				GoVersion:     runtime.Version(),
				NumGoroutines: runtime.NumGoroutine(),
				Mem: MemStats{
					Alloc:      mem.Alloc,
					TotalAlloc: mem.TotalAlloc,
					Sys:        mem.Sys,
					HeapAlloc:  mem.HeapAlloc,
				},
			},
			Process: ProcessInfo{
				PID:           os.Getpid(),
				UptimeSeconds: int(time.Since(api.StartedAt).Seconds()),
			},
		}

		host, _ := os.Hostname()
		if host != "" {
			resp.Process.Hostname = host
		}

		poolCfg := database.GetPoolConfigFromEnv()
		poolInfo := PoolInfo{
			DBName:          poolCfg.DBName,
			MaxOpenConns:    poolCfg.MaxOpenConns,
			ConnMaxLifetime: poolCfg.ConnMaxLifetime.String(),
			ConnMaxIdleTime: poolCfg.ConnMaxIdleTime.String(),
		}

		dbInfo := DatabaseInfo{Status: "unknown"}
		sqlDB, err := db.DB()
		if err != nil {
			errMsg := "failed to get database instance"
			dbInfo.Status = "unhealthy"
			dbInfo.Error = &errMsg
		} else if err := sqlDB.Ping(); err != nil {
			errMsg := "database ping failed"
			dbInfo.Status = "unhealthy"
			dbInfo.Error = &errMsg
		} else {
			dbInfo.Status = "healthy"

			// prefer runtime stats from the pgx pool which backs the sql.DB
			if pool != nil {
				stats := pool.Stat()
				dbInfo.OpenConnections = int(stats.TotalConns())
				dbInfo.InUse = int(stats.AcquiredConns())
				dbInfo.Idle = int(stats.IdleConns())
				dbInfo.MaxOpenConnections = int(stats.MaxConns())

				poolInfo.TotalConns = int(stats.TotalConns())
				poolInfo.IdleConns = int(stats.IdleConns())
				poolInfo.AcquiredConns = int(stats.AcquiredConns())
				poolInfo.MaxConns = int(stats.MaxConns())
			} else {
				dbInfo.DBStats = sqlDB.Stats()
			}
		}
		dbInfo.Pool = &poolInfo
		resp.Database = dbInfo

		return c.JSON(200, resp)
	})

	adminRouter := apiV1Router.Group("", middlewares.AdminTokenMiddleware(os.Getenv("ADMIN_TOKEN")))
	adminRouter.POST("/scan/", scanController.Trigger)
	adminRouter.GET("/scans/", scanController.ListRuns)
	adminRouter.GET("/alerts/", alertController.List)
	adminRouter.POST("/alerts/:owner/:repo/:alertNumber/dismiss/", alertController.Dismiss)
	adminRouter.GET("/stats/", alertController.Statistics)
	adminRouter.GET("/rules/", ruleController.List)
	adminRouter.POST("/rules/", ruleController.Create)

	return APIV1Router{Group: apiV1Router}
}
