package medibillclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	medibilldomain "github.com/medibill/revenue-dashboard-api/infrastructure/integrator/medibill/domain"
	"github.com/medibill/revenue-dashboard-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=../mocks/client_mock.go -package=mocks

// Client is the low-level HTTP client for the MediBill billing API
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	GetDoctors(ctx context.Context, token string) ([]medibilldomain.DoctorRecord, error)
	GetInvoicesReport(ctx context.Context, token, doctorID string) (*medibilldomain.InvoicesReport, error)
	GetReceivedReport(ctx context.Context, token, doctorID string) (*medibilldomain.ReceivedReport, error)
}

type MedibillClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient creates a new MediBill API client
func NewClient(cfg *config.Config) Client {
	return &MedibillClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// endpoint builds the full URL for an API path under the configured base URL
func (c *MedibillClient) endpoint(segments ...string) (string, error) {
	u, err := url.Parse(c.config.Medibill.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base URL: %w", err)
	}

	u.Path = path.Join(append([]string{u.Path}, segments...)...)

	return u.String(), nil
}

// doGet performs an authorized GET against the API
func (c *MedibillClient) doGet(ctx context.Context, token string, segments ...string) (*http.Response, error) {
	endpoint, err := c.endpoint(segments...)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// upstreamErrorText extracts the error text the API supplied in a failed
// response body, or "" when the body is not a recognizable error envelope
func upstreamErrorText(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 1<<16))
	if err != nil {
		return ""
	}

	var errResp medibilldomain.ErrorResponse
	if err := json.Unmarshal(data, &errResp); err != nil {
		return ""
	}

	return errResp.Text()
}
