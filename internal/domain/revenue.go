package domain

import (
	"github.com/medibill/revenue-dashboard-api/pkg/utils"
)

// RevenueRow is one aggregated dashboard row: a doctor's identity plus both
// monthly metrics. Rows are built fresh on every aggregation and never
// mutated afterwards.
type RevenueRow struct {
	Doctor
	InvoicedAmount float64 `json:"total_medibill_invoice"`
	ReceivedAmount float64 `json:"total_received"`
	MonthLabel     string  `json:"month_year"`
}

// AggregateRevenue joins the doctor roster with both metric batches into one
// row per doctor, preserving roster order. Metrics are looked up by doctor
// ID and default to 0 when absent; amounts are rounded to two decimal
// places for display. Pure function, no I/O.
func AggregateRevenue(doctors []Doctor, invoiced, received []MonthlyMetric, monthLabel string) []RevenueRow {
	invoicedByDoctor := AmountsByDoctor(invoiced)
	receivedByDoctor := AmountsByDoctor(received)

	rows := make([]RevenueRow, 0, len(doctors))
	for _, doctor := range doctors {
		rows = append(rows, RevenueRow{
			Doctor:         doctor,
			InvoicedAmount: utils.RoundWithTwoDecimalPlace(invoicedByDoctor[doctor.ID]),
			ReceivedAmount: utils.RoundWithTwoDecimalPlace(receivedByDoctor[doctor.ID]),
			MonthLabel:     monthLabel,
		})
	}

	return rows
}
