package medibillclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	medibilldomain "github.com/medibill/revenue-dashboard-api/infrastructure/integrator/medibill/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges the service credentials for a bearer token
func (c *MedibillClient) Login(ctx context.Context, email, password string) (string, error) {
	endpoint, err := c.endpoint("/auth/login")
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("encoding login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if text := upstreamErrorText(resp.Body); text != "" {
			return "", fmt.Errorf("%s", text)
		}
		return "", fmt.Errorf("authentication failed with status: %d", resp.StatusCode)
	}

	var loginResp medibilldomain.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return "", fmt.Errorf("decoding login response: %w", err)
	}

	if loginResp.Status != medibilldomain.StatusSuccess || loginResp.Token == "" {
		if loginResp.Message != "" {
			return "", fmt.Errorf("%s", loginResp.Message)
		}
		return "", fmt.Errorf("authentication failed: no token received or status not success")
	}

	return loginResp.Token, nil
}
