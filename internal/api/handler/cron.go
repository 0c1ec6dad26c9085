package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/medibill/revenue-dashboard-api/internal/scheduler"
	"github.com/medibill/revenue-dashboard-api/pkg/apiErrors"
)

// CronJobServices groups the background services the cron endpoints manage
type CronJobServices struct {
	ReportRefreshService *scheduler.ReportRefreshService
}

// RunCronJob triggers a background job outside its schedule
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch jobType {
		case "report-refresh":
			if err := services.ReportRefreshService.RunNow(); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "unknown cron job type: "+jobType, nil)
			return
		}

		logrus.WithField("job_type", jobType).Info("cron job triggered manually")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status": "started",
			"job":    jobType,
		})
	}
}

// GetCronStatus reports the state of the background jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"report_refresh": services.ReportRefreshService.Status(),
		})
	}
}
