package owner

import (
	"math"
	"time"

	"aparthotel/internal/booking"
	"aparthotel/internal/shared/dateutil"
)

// MonthStats summarizes one calendar month of a property.
type MonthStats struct {
	Bookings      int
	Income        float64
	OccupancyRate float64
}

// ComputeMonthStats counts and sums bookings checking in during window and
// derives occupancy from the booked nights that fall inside it. Occupancy is
// a percentage of unitCount x nights in the window.
func ComputeMonthStats(bookings []booking.Booking, window dateutil.Window, unitCount int) MonthStats {
	var stats MonthStats
	var bookedNights float64

	for _, b := range bookings {
		if window.Contains(b.CheckIn) {
			stats.Bookings++
			stats.Income += b.FullPrice
		}
		if !booking.Overlaps(b.CheckIn, b.CheckOut, window.From, window.To) {
			continue
		}
		from := maxTime(b.CheckIn, window.From)
		to := minTime(b.CheckOut, window.To)
		bookedNights += to.Sub(from).Hours() / 24
	}

	stats.Income = round2(stats.Income)

	capacity := float64(unitCount) * window.To.Sub(window.From).Hours() / 24
	if capacity > 0 {
		stats.OccupancyRate = round2(math.Min(bookedNights/capacity*100, 100))
	}
	return stats
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
