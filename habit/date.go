package habit

import (
	"fmt"
	"time"
)

// Date is a calendar day, independent of clock time and time zone.
//
// The zero value is not a valid date (year 0, month 0, day 0); construct
// values with struct literals or [DateOf].
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day on which t falls, in t's location.
func DateOf(t time.Time) Date {
	var d Date
	d.Year, d.Month, d.Day = t.Date()
	return d
}

// Compare returns a negative number when d is before o, zero when they are
// the same day, and a positive number when d is after o. Its signature
// matches the ordering functions taken by [algo.Sort] and [algo.Search].
func (d Date) Compare(o Date) int {
	if d.Year != o.Year {
		return d.Year - o.Year
	}
	if d.Month != o.Month {
		return int(d.Month) - int(o.Month)
	}
	return d.Day - o.Day
}

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly after o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// Prev returns the previous calendar day, handling month and year
// boundaries (Prev of March 1st in a leap year is February 29th).
func (d Date) Prev() Date {
	return DateOf(d.toTime().AddDate(0, 0, -1))
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// toTime anchors the date at midnight UTC for calendar arithmetic.
// UTC has no DST transitions, so AddDate steps exactly one calendar day.
func (d Date) toTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
