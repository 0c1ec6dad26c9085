package medibilldomain

import "strings"

// DoctorRecord is one roster entry as the MediBill API returns it
type DoctorRecord struct {
	UserID        string  `json:"user_id"`
	AccountNumber string  `json:"account_number"`
	DoctorName    string  `json:"doctor_name"`
	PracticeName  *string `json:"practice_name,omitempty"`
}

// DoctorsResponse is the envelope of GET /doctors. Doctors is a pointer so
// an absent or null list can be told apart from an empty one.
type DoctorsResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Doctors *[]DoctorRecord `json:"doctors"`
}

// IsTestAccount reports whether the record belongs to an internal test
// practice. Records without a practice name are NOT treated as test
// accounts: absence is not evidence of being one.
func (d DoctorRecord) IsTestAccount() bool {
	if d.PracticeName == nil {
		return false
	}
	return strings.Contains(strings.ToUpper(*d.PracticeName), "TEST")
}
