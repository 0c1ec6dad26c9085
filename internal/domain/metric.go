package domain

// MetricKind identifies one of the two monthly financial metrics the
// MediBill API reports per doctor
type MetricKind string

const (
	// MetricInvoiced is the amount billed through MediBill in a month
	MetricInvoiced MetricKind = "invoiced"
	// MetricReceived is the amount collected in a month
	MetricReceived MetricKind = "received"
)

// MonthlyMetric is one metric value for one doctor in one reporting month.
// Amount is 0 when the upstream record for the month is absent or the
// fetch for that doctor degraded.
type MonthlyMetric struct {
	DoctorID string
	Amount   float64
}

// AmountsByDoctor indexes a metric batch by doctor ID. Batches carry no
// ordering guarantee, so callers must always look amounts up by ID.
func AmountsByDoctor(metrics []MonthlyMetric) map[string]float64 {
	amounts := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		amounts[m.DoctorID] = m.Amount
	}
	return amounts
}
