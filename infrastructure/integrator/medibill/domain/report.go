package medibilldomain

// InvoiceMonth is one entry of the invoiced-amount monthly series
type InvoiceMonth struct {
	MonthYear            string  `json:"month_year"`
	TotalMedibillInvoice float64 `json:"total_medibill_invoice"`
}

// InvoicesReport is the "previous months" invoiced series for one doctor
type InvoicesReport struct {
	PreviousMonths []InvoiceMonth `json:"previous_months"`
}

// AmountFor returns the invoiced amount for the given "YYYY-MM" token, or
// (0, false) when the series has no entry for that month
func (r *InvoicesReport) AmountFor(monthToken string) (float64, bool) {
	for _, entry := range r.PreviousMonths {
		if entry.MonthYear == monthToken {
			return entry.TotalMedibillInvoice, true
		}
	}
	return 0, false
}

// InvoicesReportResponse is the envelope of GET /reports/medibill-invoices/{id}
type InvoicesReportResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Report  *InvoicesReport `json:"medibill_invoices_report"`
}

// ReceivedMonth is one entry of the received-amount monthly series
type ReceivedMonth struct {
	MonthYear           string  `json:"month_year"`
	TotalReceivedAmount float64 `json:"total_received_amount"`
}

// ReceivedReport is the "previous months" received series for one doctor
type ReceivedReport struct {
	PreviousMonths []ReceivedMonth `json:"previous_months"`
}

// AmountFor returns the received amount for the given "YYYY-MM" token, or
// (0, false) when the series has no entry for that month
func (r *ReceivedReport) AmountFor(monthToken string) (float64, bool) {
	for _, entry := range r.PreviousMonths {
		if entry.MonthYear == monthToken {
			return entry.TotalReceivedAmount, true
		}
	}
	return 0, false
}

// ReceivedReportResponse is the envelope of GET /reports/total-received/{id}
type ReceivedReportResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Report  *ReceivedReport `json:"total_received_report"`
}
