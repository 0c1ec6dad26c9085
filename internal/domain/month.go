package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidMonthToken indicates a reporting-period token that is not a
// valid "YYYY-MM" value
var ErrInvalidMonthToken = errors.New("invalid month token, expected YYYY-MM")

var monthTokenPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Month is one reporting period. The external representation is the
// "YYYY-MM" token used both as UI value and upstream lookup key.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a "YYYY-MM" token. Tokens that match the pattern but
// name an impossible month (e.g. "2024-13") are rejected as well.
func ParseMonth(token string) (Month, error) {
	if !monthTokenPattern.MatchString(token) {
		return Month{}, ErrInvalidMonthToken
	}

	year, err := strconv.Atoi(token[:4])
	if err != nil {
		return Month{}, ErrInvalidMonthToken
	}

	month, err := strconv.Atoi(token[5:])
	if err != nil || month < 1 || month > 12 {
		return Month{}, ErrInvalidMonthToken
	}

	return Month{Year: year, Month: time.Month(month)}, nil
}

// MonthOf returns the Month containing the given instant
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Token returns the "YYYY-MM" representation
func (m Month) Token() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Label returns the display label shown in the dashboard, e.g. "January 2024"
func (m Month) Label() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// Previous returns the calendar month before m
func (m Month) Previous() Month {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return MonthOf(t)
}
