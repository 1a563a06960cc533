package calendar

import (
	"fmt"
	"time"
)

// IsLeapYear reports whether the given year is a leap year in the
// proleptic Gregorian calendar.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// LastDayOfMonth returns the number of days in the given month of the
// given year.
func LastDayOfMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// SafeDate builds a UTC midnight instant from the given year, month and
// day. It returns the zero time.Time when the triple does not name a real
// calendar date, instead of letting time.Date normalize it.
func SafeDate(year, month, day int) time.Time {
	return SafeDateTime(year, month, day, 0, 0, 0)
}

// SafeDateTime builds a UTC instant from the given date and time fields.
// It returns the zero time.Time when any field is out of range.
func SafeDateTime(year, month, day, hour, minute, second int) time.Time {
	if year < 1 || year > 9999 {
		return time.Time{}
	}
	if month < 1 || month > 12 {
		return time.Time{}
	}
	if day < 1 || day > LastDayOfMonth(year, month) {
		return time.Time{}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return time.Time{}
	}
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
}

// ISOWeekday returns the ISO weekday number of t: Monday=1 .. Sunday=7.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// ThisWeekday returns the date of the given ISO weekday within t's
// Monday-to-Sunday week.
func ThisWeekday(t time.Time, weekday int) time.Time {
	return t.AddDate(0, 0, weekday-ISOWeekday(t))
}

// NextWeekday returns the date of the given ISO weekday in the week after
// t's, always strictly after t's own week.
func NextWeekday(t time.Time, weekday int) time.Time {
	return ThisWeekday(t, weekday).AddDate(0, 0, 7)
}

// LastWeekday returns the date of the given ISO weekday in the week before
// t's, always strictly before t's own week.
func LastWeekday(t time.Time, weekday int) time.Time {
	return ThisWeekday(t, weekday).AddDate(0, 0, -7)
}

// WeekOfYear returns the ISO 8601 week number of t.
func WeekOfYear(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// WeekTimex renders t's ISO week as a TIMEX week expression, e.g.
// "2017-W37". The year is the ISO week-numbering year, which can differ
// from the calendar year around new year.
func WeekTimex(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// DayOfYear returns the ordinal day of t within its year, starting at 1.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// FutureDate returns the nearest occurrence of the year-less month/day at
// or after ref's date. February 29 walks forward to the nearest leap year
// rather than assuming the following year is valid.
func FutureDate(ref time.Time, month, day int) time.Time {
	today := SafeDate(ref.Year(), int(ref.Month()), ref.Day())
	for year := ref.Year(); year <= ref.Year()+8; year++ {
		d := SafeDate(year, month, day)
		if !d.IsZero() && !d.Before(today) {
			return d
		}
	}
	return time.Time{}
}

// PastDate returns the nearest occurrence of the year-less month/day
// strictly before ref's date. February 29 walks backward to the nearest
// leap year.
func PastDate(ref time.Time, month, day int) time.Time {
	today := SafeDate(ref.Year(), int(ref.Month()), ref.Day())
	for year := ref.Year(); year >= ref.Year()-8; year-- {
		d := SafeDate(year, month, day)
		if !d.IsZero() && d.Before(today) {
			return d
		}
	}
	return time.Time{}
}
