package handler

import (
	"net/http"

	"github.com/medibill/revenue-dashboard-api/internal/api/handler/router"
	"github.com/medibill/revenue-dashboard-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Revenue(service reporting.Reporter, snapshots *reporting.SnapshotStore) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/revenue-data",
			Method:  http.MethodPost,
			Handler: RevenueData(service),
		},
		{
			Path:    "/v1/reports/latest",
			Method:  http.MethodGet,
			Handler: LatestSnapshot(snapshots),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
