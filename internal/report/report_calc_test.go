package report_test

import (
	"testing"
	"time"

	"aparthotel/internal/booking"
	"aparthotel/internal/report"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestComputeFinancials(t *testing.T) {
	bookings := []booking.Booking{{FullPrice: 400}, {FullPrice: 300}, {FullPrice: 300}}

	got := report.ComputeFinancials(bookings, 200, 30, 70)

	assert.Equal(t, 1000.0, got.RentalIncome)
	assert.Equal(t, 800.0, got.NetIncome)
	assert.Equal(t, 240.0, got.CompanyShare)
	assert.Equal(t, 560.0, got.OwnerShare)
	assert.Equal(t, 3, got.BookingCount)
}

func TestComputeFinancials_Loss(t *testing.T) {
	got := report.ComputeFinancials(nil, 150, 50, 50)

	assert.Equal(t, 0.0, got.RentalIncome)
	assert.Equal(t, -150.0, got.NetIncome)
	assert.Equal(t, -75.0, got.OwnerShare)
}

func TestBuildGeneralReport(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	bookings := []booking.Booking{
		{PropertyGroupID: a, CheckIn: day("2025-06-01"), CheckOut: day("2025-06-05"), NumGuests: 2, FullPrice: 400},
		{PropertyGroupID: a, CheckIn: day("2025-07-02"), CheckOut: day("2025-07-03"), NumGuests: 1, FullPrice: 100},
		{PropertyGroupID: b, CheckIn: day("2025-06-10"), CheckOut: day("2025-06-12"), NumGuests: 3, FullPrice: 250},
	}
	names := map[string]string{a.String(): "Beach", b.String(): "Alfama"}

	rep := report.BuildGeneralReport(bookings, names)

	assert.Equal(t, 750.0, rep.TotalIncome)
	assert.Equal(t, 3, rep.BookingCount)
	assert.Equal(t, 4*2+1*1+2*3, rep.GuestNights)

	assert.Equal(t, []report.MonthBucket{
		{Year: 2025, Month: 6, Income: 650, Bookings: 2},
		{Year: 2025, Month: 7, Income: 100, Bookings: 1},
	}, rep.ByMonth)

	if assert.Len(t, rep.ByProperty, 2) {
		assert.Equal(t, "Alfama", rep.ByProperty[0].Name)
		assert.Equal(t, 500.0, rep.ByProperty[1].Income)
	}
}

func TestBuildGeneralReport_Empty(t *testing.T) {
	rep := report.BuildGeneralReport(nil, nil)

	assert.Equal(t, 0, rep.BookingCount)
	assert.NotNil(t, rep.ByMonth)
	assert.NotNil(t, rep.ByProperty)
}
