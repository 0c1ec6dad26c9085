package reporting

import "errors"

// Input errors: surfaced immediately, no upstream call is attempted
var (
	ErrInvalidMonth       = errors.New("invalid reporting month, expected YYYY-MM")
	ErrMissingCredentials = errors.New("medibill API credentials are not configured")
)
