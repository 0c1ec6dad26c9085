package medibillclient

import (
	"context"
	"encoding/json"
	"fmt"

	medibilldomain "github.com/medibill/revenue-dashboard-api/infrastructure/integrator/medibill/domain"
)

// GetDoctors retrieves the full doctor roster. Test-account filtering is the
// integrator service's concern, not the wire client's.
func (c *MedibillClient) GetDoctors(ctx context.Context, token string) ([]medibilldomain.DoctorRecord, error) {
	resp, err := c.doGet(ctx, token, "/doctors")
	if err != nil {
		return nil, fmt.Errorf("executing doctors request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if text := upstreamErrorText(resp.Body); text != "" {
			return nil, fmt.Errorf("%s", text)
		}
		return nil, fmt.Errorf("failed to fetch doctors with status: %d", resp.StatusCode)
	}

	var doctorsResp medibilldomain.DoctorsResponse
	if err := json.NewDecoder(resp.Body).Decode(&doctorsResp); err != nil {
		return nil, fmt.Errorf("decoding doctors response: %w", err)
	}

	if doctorsResp.Status != medibilldomain.StatusSuccess || doctorsResp.Doctors == nil {
		if doctorsResp.Message != "" {
			return nil, fmt.Errorf("%s", doctorsResp.Message)
		}
		return nil, fmt.Errorf("failed to parse doctors data or status not success")
	}

	return *doctorsResp.Doctors, nil
}
