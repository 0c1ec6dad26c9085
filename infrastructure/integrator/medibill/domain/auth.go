package medibilldomain

// LoginResponse is the envelope of POST /auth/login
type LoginResponse struct {
	Status  string `json:"status"`
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}
