package domain

// Doctor is one practitioner account in the MediBill billing system.
// Identity is ID; instances are immutable once fetched from the roster.
type Doctor struct {
	ID            string `json:"user_id"`
	AccountNumber string `json:"account_number"`
	Name          string `json:"doctor_name"`
}
