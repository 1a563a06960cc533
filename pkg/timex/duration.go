package timex

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Canonical duration unit names used at the recognizer boundary.
const (
	UnitYear   = "year"
	UnitMonth  = "month"
	UnitWeek   = "week"
	UnitDay    = "day"
	UnitHour   = "hour"
	UnitMinute = "minute"
	UnitSecond = "second"

	// Aliased units, resolved before rendering.
	UnitDecade    = "decade"
	UnitFortnight = "fortnight"
	UnitWeekend   = "weekend"

	// BusinessDayUnit marks day counts that skip weekends.
	BusinessDayUnit = "BD"
)

// UnitAmount is one component of a decomposed duration TIMEX.
type UnitAmount struct {
	Unit   string // single-letter code, or "BD" for business days
	Amount float64
	IsTime bool // the component appeared after the "T" marker
}

// ResolveDurationTimex decomposes a duration TIMEX string into its ordered
// unit components. Order is preserved because it matters for shifting:
// adding a month then a day is not the same as adding a day then a month
// across month-length boundaries. A trailing business-day marker is kept
// as its own "BD" unit. Input that is not a duration yields nil.
func ResolveDurationTimex(s string) []UnitAmount {
	if !strings.HasPrefix(s, "P") {
		return nil
	}
	var out []UnitAmount
	inTime := false
	i := 1
	for i < len(s) {
		if s[i] == 'T' {
			inTime = true
			i++
			continue
		}
		start := i
		for i < len(s) && (isDigits(s[i:i+1]) || s[i] == '.') {
			i++
		}
		if i == start || i == len(s) {
			return nil
		}
		amount, err := strconv.ParseFloat(s[start:i], 64)
		if err != nil {
			return nil
		}
		unit := s[i : i+1]
		i++
		if unit == "B" && i < len(s) && s[i] == 'D' {
			unit = BusinessDayUnit
			i++
		}
		if unit == "W" && i < len(s) && s[i] == 'E' {
			unit = "WE"
			i++
		}
		out = append(out, UnitAmount{Unit: unit, Amount: amount, IsTime: inTime})
	}
	return out
}

// ShiftDateTime applies a duration TIMEX to a reference instant, forward
// when future is true and backward otherwise. Each component uses true
// calendar arithmetic in the order it appears in the string; business days
// step one day at a time, skipping Saturdays and Sundays.
func ShiftDateTime(timexStr string, ref time.Time, future bool) time.Time {
	sign := 1.0
	if !future {
		sign = -1.0
	}
	out := ref
	for _, c := range ResolveDurationTimex(timexStr) {
		amount := c.Amount * sign
		switch {
		case c.Unit == BusinessDayUnit:
			out = shiftBusinessDays(out, int(amount))
		case c.IsTime && c.Unit == "H":
			out = out.Add(time.Duration(amount * float64(time.Hour)))
		case c.IsTime && c.Unit == "M":
			out = out.Add(time.Duration(amount * float64(time.Minute)))
		case c.IsTime && c.Unit == "S":
			out = out.Add(time.Duration(amount * float64(time.Second)))
		case c.Unit == "Y":
			whole, frac := math.Modf(amount)
			out = out.AddDate(int(whole), int(math.Round(frac*12)), 0)
		case c.Unit == "M":
			whole, frac := math.Modf(amount)
			out = out.AddDate(0, int(whole), int(math.Round(frac*30)))
		case c.Unit == "W":
			out = addDays(out, amount*7)
		case c.Unit == "D":
			out = addDays(out, amount)
		case c.Unit == "WE":
			out = addDays(out, amount*2)
		}
	}
	return out
}

// shiftBusinessDays walks day by day in the sign of n, counting only
// Monday through Friday.
func shiftBusinessDays(ref time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	out := ref
	for remaining := n; remaining > 0; {
		out = out.AddDate(0, 0, step)
		if wd := out.Weekday(); wd != time.Saturday && wd != time.Sunday {
			remaining--
		}
	}
	return out
}

// ParseInexactNumberWithUnit turns a vague quantity phrase ("a few days",
// "a couple of weeks") or a literal number into a duration TIMEX. Two-term
// phrasings resolve to 2, everything else to 3. Counts above 1000 of week
// or coarser units are rejected as nonsensical magnitudes.
func ParseInexactNumberWithUnit(phrase, unit string) (string, bool) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(phrase), 64)
	if err != nil {
		if strings.Contains(strings.ToLower(phrase), "couple") {
			amount = 2
		} else {
			amount = 3
		}
	}
	switch strings.ToLower(unit) {
	case UnitWeek, UnitMonth, UnitYear, UnitDecade:
		if amount > 1000 {
			return "", false
		}
	}
	s := DurationFromUnit(amount, unit)
	if s == "" {
		return "", false
	}
	return s, true
}

// IsTimeDurationUnit reports whether the single-letter duration code names
// a sub-day unit. "M" is minutes here; the code only appears in the time
// section of a duration TIMEX.
func IsTimeDurationUnit(code string) bool {
	switch code {
	case "H", "M", "S":
		return true
	}
	return false
}

// IsLessThanDay reports whether the unit name is finer than a day.
func IsLessThanDay(unit string) bool {
	switch strings.ToLower(unit) {
	case UnitHour, UnitMinute, UnitSecond:
		return true
	}
	return false
}
