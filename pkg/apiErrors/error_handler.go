package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to the dashboard frontend
const (
	// Validation errors
	ErrInvalidRequest      = "VAL_001" // Malformed request body
	ErrMissingRequiredData = "VAL_002" // Required data absent
	ErrInvalidMonthFormat  = "VAL_003" // Month token is not a valid YYYY-MM

	// Server / configuration errors
	ErrInternalServer     = "SRV_001" // Internal server error
	ErrMissingCredentials = "SRV_002" // MediBill credentials not configured

	// Upstream (MediBill API) errors
	ErrUpstreamAuthentication = "UPS_001" // Login against the MediBill API failed
	ErrUpstreamDirectory      = "UPS_002" // Doctor roster fetch failed

	// Report errors
	ErrSnapshotUnavailable = "REP_001" // No report snapshot built yet
)

// Error code to HTTP status mapping
var httpStatusMap = map[string]int{
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrMissingRequiredData:    http.StatusBadRequest,
	ErrInvalidMonthFormat:     http.StatusBadRequest,
	ErrInternalServer:         http.StatusInternalServerError,
	ErrMissingCredentials:     http.StatusInternalServerError,
	ErrUpstreamAuthentication: http.StatusBadGateway,
	ErrUpstreamDirectory:      http.StatusBadGateway,
	ErrSnapshotUnavailable:    http.StatusNotFound,
}

// APIError is the standard error envelope. The "error" field carries the
// human-readable message the dashboard shows in its error banner.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standard error envelope to the HTTP response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error into an API error with the given code
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
