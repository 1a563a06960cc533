package timex

import (
	"math"
	"time"

	"github.com/microsoft/Recognizers-Text-sub003/pkg/calendar"
)

// TimexRange is a combined range expression split into its three
// independently formattable parts.
type TimexRange struct {
	Start    Timex
	End      Timex
	Duration Timex
}

// Expand splits a range-shaped entity into start, end and duration parts.
//
// An entity carrying both point fields and a duration expands by adding
// the duration to the start; a pure date range (year, month, ISO week,
// weekend) expands to its first day, its exclusive end day and the
// covering duration; a named time-of-day range expands via the fixed
// hour-bounds table. Entities that are not range shaped, or whose range
// has no concrete expansion (a bare season, a year-less month), report
// ok=false.
func (t Timex) Expand() (TimexRange, bool) {
	types := t.Types()
	if types.Contains(TypeDuration) && types.Any(TypeDateTimeRange, TypeDateRange, TypeTimeRange) {
		start := t.cloneWithoutDuration()
		duration := t.cloneDurationOnly()
		return TimexRange{Start: start, End: addDuration(start, duration), Duration: duration}, true
	}
	switch {
	case t.Year != nil && t.WeekOfYear != nil:
		monday := mondayOfISOWeek(*t.Year, *t.WeekOfYear)
		if t.Weekend != nil && *t.Weekend {
			days := 2.0
			return TimexRange{
				Start:    FromDate(monday.AddDate(0, 0, 5)),
				End:      FromDate(monday.AddDate(0, 0, 7)),
				Duration: Timex{Days: &days},
			}, true
		}
		weeks := 1.0
		return TimexRange{
			Start:    FromDate(monday),
			End:      FromDate(monday.AddDate(0, 0, 7)),
			Duration: Timex{Weeks: &weeks},
		}, true
	case t.Year != nil && t.Month != nil && t.DayOfMonth == nil:
		first := calendar.SafeDate(*t.Year, *t.Month, 1)
		if first.IsZero() {
			return TimexRange{}, false
		}
		months := 1.0
		return TimexRange{
			Start:    FromDate(first),
			End:      FromDate(first.AddDate(0, 1, 0)),
			Duration: Timex{Months: &months},
		}, true
	case t.Year != nil && t.Season == nil && t.Month == nil:
		first := calendar.SafeDate(*t.Year, 1, 1)
		years := 1.0
		return TimexRange{
			Start:    FromDate(first),
			End:      FromDate(first.AddDate(1, 0, 0)),
			Duration: Timex{Years: &years},
		}, true
	case t.PartOfDay != nil:
		tod, ok := ResolveTimeOfDay(*t.PartOfDay)
		if !ok {
			return TimexRange{}, false
		}
		var start, end Timex
		start.SetHour(tod.BeginHour)
		start.SetMinute(0)
		start.SetSecond(0)
		end.SetHour(tod.EndHour)
		end.SetMinute(tod.EndMin)
		end.SetSecond(0)
		hours := float64(tod.EndHour - tod.BeginHour)
		return TimexRange{Start: start, End: end, Duration: Timex{Hours: &hours}}, true
	}
	return TimexRange{}, false
}

func (t Timex) cloneWithoutDuration() Timex {
	c := t.Clone()
	c.Years, c.Months, c.Weeks, c.Days = nil, nil, nil, nil
	c.Hours, c.Minutes, c.Seconds = nil, nil, nil
	return c
}

func (t Timex) cloneDurationOnly() Timex {
	return Timex{
		Years:   clonePtr(t.Years),
		Months:  clonePtr(t.Months),
		Weeks:   clonePtr(t.Weeks),
		Days:    clonePtr(t.Days),
		Hours:   clonePtr(t.Hours),
		Minutes: clonePtr(t.Minutes),
		Seconds: clonePtr(t.Seconds),
	}
}

// addDuration shifts a point entity forward by a duration entity,
// preserving the start's field shape: a date stays a date, a fuzzy date
// stays year-less, a bare weekday stays a weekday, a clock stays a clock.
func addDuration(start, duration Timex) Timex {
	switch {
	case start.Year != nil && start.Month != nil && start.DayOfMonth != nil:
		base := startInstant(start)
		shifted := addToInstant(base, duration)
		if start.isTime() {
			return FromDateTime(shifted)
		}
		return FromDate(shifted)
	case start.Month != nil && start.DayOfMonth != nil:
		// Year-less date: compute in a leap reference year so Feb 29
		// survives, then drop the year again.
		base := time.Date(2000, time.Month(*start.Month), *start.DayOfMonth, 0, 0, 0, 0, time.UTC)
		shifted := addToInstant(base, duration)
		month, day := int(shifted.Month()), shifted.Day()
		return Timex{Month: &month, DayOfMonth: &day}
	case start.DayOfWeek != nil:
		days := int(durationValue(duration, UnitDay))
		dow := (*start.DayOfWeek-1+days)%7 + 1
		return Timex{DayOfWeek: &dow}
	case start.isTime():
		base := time.Date(2000, 1, 1, *start.Clock.Hour, *start.Clock.Minute, *start.Clock.Second, 0, time.UTC)
		return FromTime(addToInstant(base, duration))
	}
	return start.Clone()
}

func startInstant(start Timex) time.Time {
	hour, minute, second := 0, 0, 0
	if start.isTime() {
		hour, minute, second = *start.Clock.Hour, *start.Clock.Minute, *start.Clock.Second
	}
	return calendar.SafeDateTime(*start.Year, *start.Month, *start.DayOfMonth, hour, minute, second)
}

// addToInstant applies the duration fields of d to base in decreasing
// granularity. Whole years and months use calendar arithmetic; fractional
// remainders degrade to days and hours.
func addToInstant(base time.Time, d Timex) time.Time {
	out := base
	if d.Years != nil {
		whole, frac := math.Modf(*d.Years)
		out = out.AddDate(int(whole), 0, 0)
		out = out.AddDate(0, int(math.Round(frac*12)), 0)
	}
	if d.Months != nil {
		whole, frac := math.Modf(*d.Months)
		out = out.AddDate(0, int(whole), 0)
		out = out.AddDate(0, 0, int(math.Round(frac*30)))
	}
	if d.Weeks != nil {
		out = addDays(out, *d.Weeks*7)
	}
	if d.Days != nil {
		out = addDays(out, *d.Days)
	}
	if d.Hours != nil {
		out = out.Add(time.Duration(*d.Hours * float64(time.Hour)))
	}
	if d.Minutes != nil {
		out = out.Add(time.Duration(*d.Minutes * float64(time.Minute)))
	}
	if d.Seconds != nil {
		out = out.Add(time.Duration(*d.Seconds * float64(time.Second)))
	}
	return out
}

func addDays(base time.Time, days float64) time.Time {
	whole, frac := math.Modf(days)
	out := base.AddDate(0, 0, int(whole))
	return out.Add(time.Duration(frac * 24 * float64(time.Hour)))
}

func durationValue(d Timex, unit string) float64 {
	switch unit {
	case UnitDay:
		if d.Days != nil {
			return *d.Days
		}
		if d.Weeks != nil {
			return *d.Weeks * 7
		}
	}
	return 0
}

// mondayOfISOWeek returns the Monday starting the given ISO week.
func mondayOfISOWeek(year, week int) time.Time {
	// January 4 is always inside ISO week 1.
	jan4 := time.Date(year, 1, 4, 0, 0, 0, 0, time.UTC)
	week1Monday := calendar.ThisWeekday(jan4, 1)
	return week1Monday.AddDate(0, 0, (week-1)*7)
}
