package reporting

import (
	"context"

	"github.com/medibill/revenue-dashboard-api/internal/domain"
)

// Reporter builds the aggregated revenue report for one reporting month
type Reporter interface {
	BuildReport(ctx context.Context, monthToken string) ([]domain.RevenueRow, error)
}
