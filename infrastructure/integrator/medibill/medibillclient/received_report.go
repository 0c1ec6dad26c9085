package medibillclient

import (
	"context"
	"encoding/json"
	"fmt"

	medibilldomain "github.com/medibill/revenue-dashboard-api/infrastructure/integrator/medibill/domain"
)

// GetReceivedReport retrieves the received-amount monthly series for one doctor
func (c *MedibillClient) GetReceivedReport(ctx context.Context, token, doctorID string) (*medibilldomain.ReceivedReport, error) {
	resp, err := c.doGet(ctx, token, "/reports/total-received", doctorID)
	if err != nil {
		return nil, fmt.Errorf("executing received report request for doctor %s: %w", doctorID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if text := upstreamErrorText(resp.Body); text != "" {
			return nil, fmt.Errorf("%s", text)
		}
		return nil, fmt.Errorf("failed to fetch total received for doctor %s (status: %d)", doctorID, resp.StatusCode)
	}

	var reportResp medibilldomain.ReceivedReportResponse
	if err := json.NewDecoder(resp.Body).Decode(&reportResp); err != nil {
		return nil, fmt.Errorf("decoding received report for doctor %s: %w", doctorID, err)
	}

	if reportResp.Status != medibilldomain.StatusSuccess || reportResp.Report == nil || reportResp.Report.PreviousMonths == nil {
		return nil, fmt.Errorf("malformed received data for doctor %s", doctorID)
	}

	return reportResp.Report, nil
}
