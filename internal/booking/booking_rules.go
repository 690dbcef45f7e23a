package booking

import (
	"math"
	"time"

	bookingerrors "aparthotel/internal/booking/errors"
)

const day = 24 * time.Hour

// Overlaps is the half-open interval test. A stay ending on the day another
// begins does not overlap it.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// Nights rounds a partial day up. Non-positive ranges are zero nights.
func Nights(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(float64(d) / float64(day)))
}

func FullPrice(checkIn, checkOut time.Time, pricePerNight float64) float64 {
	return float64(Nights(checkIn, checkOut)) * pricePerNight
}

func ValidateStay(checkIn, checkOut time.Time) error {
	if !checkIn.Before(checkOut) {
		return bookingerrors.ErrInvalidDateRange
	}
	return nil
}

func CheckCapacity(numGuests, beds int) error {
	if numGuests > beds {
		return bookingerrors.ErrCapacityExceeded
	}
	return nil
}
