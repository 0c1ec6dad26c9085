package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/medibill/revenue-dashboard-api/infrastructure/integrator/medibill"
	"github.com/medibill/revenue-dashboard-api/internal/domain"
	"github.com/medibill/revenue-dashboard-api/internal/usecases/reporting"
	"github.com/medibill/revenue-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RevenueDataRequest is the dashboard's report request payload
type RevenueDataRequest struct {
	SelectedMonthYear string `json:"selectedMonthYear"`
}

// RevenueDataResponse carries the aggregated rows the dashboard renders
type RevenueDataResponse struct {
	Data []domain.RevenueRow `json:"data"`
}

// RevenueData builds the revenue report for the requested month
func RevenueData(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RevenueDataRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		rows, err := service.BuildReport(r.Context(), req.SelectedMonthYear)
		if err != nil {
			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(RevenueDataResponse{Data: rows}); err != nil {
			logrus.WithError(err).Error("failed to encode revenue data response")
		}
	}
}

// handleReportError maps workflow failures to the dashboard error banner.
// Messages stay generic for upstream failures; the details live in the logs.
func handleReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reporting.ErrInvalidMonth):
		apiErrors.WriteError(w, apiErrors.ErrInvalidMonthFormat, "valid selected month and year (YYYY-MM) are required", nil)

	case errors.Is(err, reporting.ErrMissingCredentials):
		logrus.Error("MEDIBILL_EMAIL or MEDIBILL_PASSWORD are not set in the server environment")
		apiErrors.WriteError(w, apiErrors.ErrMissingCredentials, "server configuration error: API credentials not set", nil)

	case errors.Is(err, medibill.ErrAuthenticationFailed), errors.Is(err, medibill.ErrInvalidCredentialsInput):
		logrus.WithError(err).Error("MediBill API authentication failed")
		apiErrors.WriteError(w, apiErrors.ErrUpstreamAuthentication, "MediBill API authentication failed, please check server credentials configuration", nil)

	case errors.Is(err, medibill.ErrDirectoryFetchFailed):
		logrus.WithError(err).Error("failed to fetch doctor roster from the MediBill API")
		apiErrors.WriteError(w, apiErrors.ErrUpstreamDirectory, "failed to fetch the doctor roster from the MediBill API", nil)

	default:
		logrus.WithError(err).Error("revenue report workflow failed")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to fetch revenue data due to a server error", nil)
	}
}

// LatestSnapshot serves the last scheduler-built report snapshot
func LatestSnapshot(snapshots *reporting.SnapshotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := snapshots.Latest()
		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrSnapshotUnavailable, "no report snapshot available yet", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logrus.WithError(err).Error("failed to encode snapshot response")
		}
	}
}
