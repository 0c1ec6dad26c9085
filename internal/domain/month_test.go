package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    Month
		wantErr bool
	}{
		{
			name:  "valid token",
			token: "2024-01",
			want:  Month{Year: 2024, Month: time.January},
		},
		{
			name:  "valid december",
			token: "2023-12",
			want:  Month{Year: 2023, Month: time.December},
		},
		{
			name:    "month out of range",
			token:   "2024-13",
			wantErr: true,
		},
		{
			name:    "month zero",
			token:   "2024-00",
			wantErr: true,
		},
		{
			name:    "single digit month",
			token:   "2024-1",
			wantErr: true,
		},
		{
			name:    "two digit year",
			token:   "24-01",
			wantErr: true,
		},
		{
			name:    "not a token at all",
			token:   "january 2024",
			wantErr: true,
		},
		{
			name:    "empty token",
			token:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMonth(tt.token)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMonthToken)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonthToken(t *testing.T) {
	month := Month{Year: 2024, Month: time.March}
	assert.Equal(t, "2024-03", month.Token())

	// Round trip
	parsed, err := ParseMonth(month.Token())
	assert.NoError(t, err)
	assert.Equal(t, month, parsed)
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "January 2024", Month{Year: 2024, Month: time.January}.Label())
	assert.Equal(t, "December 2023", Month{Year: 2023, Month: time.December}.Label())
}

func TestMonthPrevious(t *testing.T) {
	assert.Equal(t, Month{Year: 2024, Month: time.February}, Month{Year: 2024, Month: time.March}.Previous())

	// Across the year boundary
	assert.Equal(t, Month{Year: 2023, Month: time.December}, Month{Year: 2024, Month: time.January}.Previous())
}
