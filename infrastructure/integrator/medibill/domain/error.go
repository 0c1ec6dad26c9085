package medibilldomain

// ErrorResponse is the error envelope the MediBill API returns on failed
// requests. Some endpoints use "message", others "error".
type ErrorResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Text returns whichever upstream-supplied text is present, or ""
func (e *ErrorResponse) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// StatusSuccess is the success flag value used by every MediBill endpoint
const StatusSuccess = "success"
