package dateutil

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD or RFC3339")

// Parse accepts a plain date or an RFC3339 timestamp and returns it in UTC.
func Parse(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(DateLayout, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDate
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Window is a half-open [From, To) range.
type Window struct {
	From time.Time
	To   time.Time
}

// Contains reports whether From <= t < To.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

var (
	ErrDayNeedsMonth  = errors.New("day requires month and year")
	ErrMonthNeedsYear = errors.New("month requires year")
	ErrInvalidPeriod  = errors.New("invalid day, month or year")
)

// PeriodWindow turns optional day/month/year filters into a window. Zero
// values mean "not set". All zero returns ok=false (no filter).
func PeriodWindow(day, month, year int) (w Window, ok bool, err error) {
	switch {
	case day == 0 && month == 0 && year == 0:
		return Window{}, false, nil
	case day != 0 && (month == 0 || year == 0):
		return Window{}, false, ErrDayNeedsMonth
	case month != 0 && year == 0:
		return Window{}, false, ErrMonthNeedsYear
	}
	if year < 1 || month < 0 || month > 12 || day < 0 || day > 31 {
		return Window{}, false, ErrInvalidPeriod
	}

	switch {
	case day != 0:
		from := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if from.Day() != day {
			return Window{}, false, ErrInvalidPeriod
		}
		return Window{From: from, To: from.AddDate(0, 0, 1)}, true, nil
	case month != 0:
		from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		return Window{From: from, To: from.AddDate(0, 1, 0)}, true, nil
	default:
		from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return Window{From: from, To: from.AddDate(1, 0, 0)}, true, nil
	}
}
