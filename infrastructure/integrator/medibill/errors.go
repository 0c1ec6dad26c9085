package medibill

import "errors"

var (
	// ErrInvalidCredentialsInput indicates empty credentials; no network
	// call is attempted in this case
	ErrInvalidCredentialsInput = errors.New("email and password are required for authentication")

	// ErrMissingToken indicates a call that structurally requires a token
	// was made without one
	ErrMissingToken = errors.New("a bearer token is required")

	// ErrAuthenticationFailed indicates the upstream login did not succeed
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrDirectoryFetchFailed indicates the doctor roster could not be
	// retrieved; no partial roster is usable
	ErrDirectoryFetchFailed = errors.New("failed to fetch doctor roster")
)
