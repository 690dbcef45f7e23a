package report

import (
	"math"
	"sort"

	"aparthotel/internal/booking"
)

// Financials is the split of one period's income.
type Financials struct {
	RentalIncome  float64
	TotalExpenses float64
	NetIncome     float64
	CompanyShare  float64
	OwnerShare    float64
	BookingCount  int
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeFinancials sums fullPrice, nets out expenses and splits the result by
// the stored percentages. A loss is split the same way.
func ComputeFinancials(bookings []booking.Booking, totalExpenses, companySharePct, ownerSharePct float64) Financials {
	var income float64
	for _, b := range bookings {
		income += b.FullPrice
	}

	net := income - totalExpenses
	return Financials{
		RentalIncome:  round2(income),
		TotalExpenses: round2(totalExpenses),
		NetIncome:     round2(net),
		CompanyShare:  round2(net * companySharePct / 100),
		OwnerShare:    round2(net * ownerSharePct / 100),
		BookingCount:  len(bookings),
	}
}

// BuildGeneralReport aggregates bookings by check-in month and by property
// group. names maps property group ids to display names.
func BuildGeneralReport(bookings []booking.Booking, names map[string]string) GeneralReport {
	type monthKey struct{ year, month int }

	months := map[monthKey]*MonthBucket{}
	props := map[string]*PropertyBucket{}
	rep := GeneralReport{
		ByMonth:    []MonthBucket{},
		ByProperty: []PropertyBucket{},
	}

	for _, b := range bookings {
		nights := booking.Nights(b.CheckIn, b.CheckOut)
		rep.TotalIncome += b.FullPrice
		rep.BookingCount++
		rep.GuestNights += nights * b.NumGuests

		k := monthKey{b.CheckIn.Year(), int(b.CheckIn.Month())}
		mb, ok := months[k]
		if !ok {
			mb = &MonthBucket{Year: k.year, Month: k.month}
			months[k] = mb
		}
		mb.Income += b.FullPrice
		mb.Bookings++

		pgID := b.PropertyGroupID.String()
		pb, ok := props[pgID]
		if !ok {
			pb = &PropertyBucket{PropertyGroupID: pgID, Name: names[pgID]}
			props[pgID] = pb
		}
		pb.Income += b.FullPrice
		pb.Bookings++
	}

	for _, mb := range months {
		mb.Income = round2(mb.Income)
		rep.ByMonth = append(rep.ByMonth, *mb)
	}
	sort.Slice(rep.ByMonth, func(i, j int) bool {
		if rep.ByMonth[i].Year != rep.ByMonth[j].Year {
			return rep.ByMonth[i].Year < rep.ByMonth[j].Year
		}
		return rep.ByMonth[i].Month < rep.ByMonth[j].Month
	})

	for _, pb := range props {
		pb.Income = round2(pb.Income)
		rep.ByProperty = append(rep.ByProperty, *pb)
	}
	sort.Slice(rep.ByProperty, func(i, j int) bool {
		if rep.ByProperty[i].Name != rep.ByProperty[j].Name {
			return rep.ByProperty[i].Name < rep.ByProperty[j].Name
		}
		return rep.ByProperty[i].PropertyGroupID < rep.ByProperty[j].PropertyGroupID
	})

	rep.TotalIncome = round2(rep.TotalIncome)
	return rep
}
