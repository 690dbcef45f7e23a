package booking_test

import (
	"testing"
	"time"

	"aparthotel/internal/booking"
	bookingerrors "aparthotel/internal/booking/errors"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name       string
		aIn, aOut  string
		bIn, bOut  string
		wantResult bool
	}{
		{"inside", "2025-06-01", "2025-06-05", "2025-06-02", "2025-06-03", true},
		{"partial tail", "2025-06-01", "2025-06-05", "2025-06-04", "2025-06-08", true},
		{"partial head", "2025-06-04", "2025-06-08", "2025-06-01", "2025-06-05", true},
		{"checkout equals next checkin", "2025-06-01", "2025-06-05", "2025-06-05", "2025-06-08", false},
		{"checkin equals previous checkout", "2025-06-05", "2025-06-08", "2025-06-01", "2025-06-05", false},
		{"disjoint", "2025-06-01", "2025-06-03", "2025-06-10", "2025-06-12", false},
		{"identical", "2025-06-01", "2025-06-05", "2025-06-01", "2025-06-05", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.Overlaps(date(tt.aIn), date(tt.aOut), date(tt.bIn), date(tt.bOut))
			assert.Equal(t, tt.wantResult, got)
		})
	}
}

func TestNightsAndFullPrice(t *testing.T) {
	assert.Equal(t, 4, booking.Nights(date("2025-06-01"), date("2025-06-05")))
	assert.Equal(t, 400.0, booking.FullPrice(date("2025-06-01"), date("2025-06-05"), 100))
	assert.Equal(t, 300.0, booking.FullPrice(date("2025-06-05"), date("2025-06-08"), 100))

	in := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	out := time.Date(2025, 6, 3, 11, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, booking.Nights(in, out))

	assert.Equal(t, 0, booking.Nights(date("2025-06-05"), date("2025-06-01")))
}

func TestValidateStay(t *testing.T) {
	assert.NoError(t, booking.ValidateStay(date("2025-06-01"), date("2025-06-02")))
	assert.ErrorIs(t, booking.ValidateStay(date("2025-06-02"), date("2025-06-02")), bookingerrors.ErrInvalidDateRange)
	assert.ErrorIs(t, booking.ValidateStay(date("2025-06-03"), date("2025-06-02")), bookingerrors.ErrInvalidDateRange)
}

func TestCheckCapacity(t *testing.T) {
	assert.NoError(t, booking.CheckCapacity(2, 2))
	assert.ErrorIs(t, booking.CheckCapacity(3, 2), bookingerrors.ErrCapacityExceeded)
}
