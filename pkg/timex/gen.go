package timex

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// unitOrder fixes the granularity ordering of duration units, coarsest
// first. Compound durations always render in this order regardless of the
// order their fragments were produced in.
var unitOrder = []string{UnitYear, UnitMonth, UnitWeek, UnitDay, UnitHour, UnitMinute, UnitSecond}

var unitCodes = map[string]string{
	UnitYear:   "Y",
	UnitMonth:  "M",
	UnitWeek:   "W",
	UnitDay:    "D",
	UnitHour:   "H",
	UnitMinute: "M",
	UnitSecond: "S",
}

// DurationFromUnit renders a duration TIMEX from an amount and a unit
// name. Decades, fortnights and weekends are aliased onto years, weeks and
// the two-day "WE" block before rendering; sub-day units are prefixed with
// "PT". An unknown unit yields the empty string.
func DurationFromUnit(amount float64, unit string) string {
	unit = strings.ToLower(unit)
	switch unit {
	case UnitDecade:
		amount *= 10
		unit = UnitYear
	case UnitFortnight:
		amount *= 2
		unit = UnitWeek
	case UnitWeekend:
		return "P" + formatAmount(amount) + "WE"
	}
	code, ok := unitCodes[unit]
	if !ok {
		return ""
	}
	if IsLessThanDay(unit) {
		return "PT" + formatAmount(amount) + code
	}
	return "P" + formatAmount(amount) + code
}

// CompoundDuration merges per-unit duration fragments into one compound
// TIMEX, sorted by decreasing granularity: {"day": "P21D", "month": "P1M"}
// renders as "P1M21D" whatever the map order. Fragments that do not parse
// as durations are skipped.
func CompoundDuration(parts map[string]string) string {
	units := make([]string, 0, len(parts))
	for unit := range parts {
		if slices.Contains(unitOrder, strings.ToLower(unit)) {
			units = append(units, strings.ToLower(unit))
		}
	}
	slices.SortFunc(units, func(a, b string) int {
		return slices.Index(unitOrder, a) - slices.Index(unitOrder, b)
	})

	var date, clock strings.Builder
	for _, unit := range units {
		for _, c := range ResolveDurationTimex(parts[unit]) {
			section := &date
			if c.IsTime {
				section = &clock
			}
			section.WriteString(formatAmount(c.Amount))
			section.WriteString(c.Unit)
		}
	}
	if date.Len() == 0 && clock.Len() == 0 {
		return ""
	}
	out := "P" + date.String()
	if clock.Len() > 0 {
		out += "T" + clock.String()
	}
	return out
}

// DateRangeWithUnitCount renders a date range with its covering duration,
// counting whole or fractional units between the two instants: days as
// elapsed days, weeks as days over seven, months as the calendar-month
// difference, and years as the year difference plus the fractional month
// remainder. An unknown unit yields the empty string.
func DateRangeWithUnitCount(begin, end time.Time, unit string) string {
	unit = strings.ToLower(unit)
	var count float64
	switch unit {
	case UnitDay:
		count = end.Sub(begin).Hours() / 24
	case UnitWeek:
		count = end.Sub(begin).Hours() / 24 / 7
	case UnitMonth:
		count = float64((end.Year()-begin.Year())*12 + int(end.Month()) - int(begin.Month()))
	case UnitYear:
		months := int(end.Month()) - int(begin.Month())
		count = float64(end.Year()-begin.Year()) + float64(months)/12
	default:
		return ""
	}
	return fmt.Sprintf("(%s,%s,P%s%s)",
		DateTimex(begin), DateTimex(end), formatAmount(count), unitCodes[unit])
}

// DateTimex renders the date fields of d as a full date expression.
func DateTimex(d time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(d.Month()), d.Day())
}

// TimeTimex renders the clock fields of d as a time expression.
func TimeTimex(d time.Time) string {
	return FromTime(d).TimexValue()
}

// DateTimeTimex renders d as a combined date and time expression.
func DateTimeTimex(d time.Time) string {
	return FromDateTime(d).TimexValue()
}

// YearTimex renders a year expression, falling back to the fuzzy
// placeholder when the year is not known (non-positive).
func YearTimex(year int) string {
	if year <= 0 {
		return FuzzyYear
	}
	return fmt.Sprintf("%04d", year)
}

// MonthTimex renders a year-less month range expression, e.g. "XXXX-05".
func MonthTimex(month int) string {
	return fmt.Sprintf("%s-%02d", FuzzyYear, month)
}

// YearMonthTimex renders a month range expression, falling back to the
// fuzzy year placeholder when the year is not known.
func YearMonthTimex(year, month int) string {
	if year <= 0 {
		return MonthTimex(month)
	}
	return fmt.Sprintf("%04d-%02d", year, month)
}

// WeekdayTimex renders a bare weekday expression from an ISO weekday
// number, e.g. "XXXX-WXX-6" for Saturday.
func WeekdayTimex(weekday int) string {
	return fmt.Sprintf("%s-%s-%d", FuzzyYear, FuzzyWeek, weekday)
}

// WeekOfYearTimex renders an ISO week range expression, falling back to
// the fuzzy placeholders when the year is not known.
func WeekOfYearTimex(year, week int) string {
	if year <= 0 {
		return fmt.Sprintf("%s-W%02d", FuzzyYear, week)
	}
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// WeekendTimex renders a weekend range expression, falling back to the
// fully fuzzy form when the week is not known.
func WeekendTimex(year, week int) string {
	if year <= 0 || week <= 0 {
		return fmt.Sprintf("%s-%s-WE", FuzzyYear, FuzzyWeek)
	}
	return fmt.Sprintf("%04d-W%02d-WE", year, week)
}
