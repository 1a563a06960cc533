package resolver

import (
	"fmt"
	"time"

	"github.com/microsoft/Recognizers-Text-sub003/pkg/timex"
)

// Resolution types, matching the TIMEX shape vocabulary.
const (
	TypeDate          = "date"
	TypeTime          = "time"
	TypeDateRange     = "daterange"
	TypeTimeRange     = "timerange"
	TypeDateTime      = "datetime"
	TypeDateTimeRange = "datetimerange"
	TypeDuration      = "duration"
)

// Resolution is one concrete value produced for a candidate. It is never
// mutated after construction. Point shapes carry Value; range shapes carry
// Start and End. Empty strings mean "not applicable to this shape".
type Resolution struct {
	Timex string
	Type  string
	Value string
	Start string
	End   string
}

// Seconds per unit for duration values, using the fixed 30-day month and
// 365-day year the resolution format prescribes.
var unitSeconds = map[string]int64{
	"Y": 31536000,
	"M": 2592000,
	"W": 604800,
	"D": 86400,
	"H": 3600,
	"S": 1,
}

// From builds the resolution of a single already-concrete TIMEX string:
// a fixed date, time or datetime, an expandable range, a duration, or the
// present reference. Strings with no concrete resolution report ok=false.
func From(s string) (Resolution, bool) {
	tx := timex.Parse(s)
	types := tx.Types()
	switch {
	case types.Contains(timex.TypePresent):
		return Resolution{Timex: s, Type: TypeDateTime, Value: timex.PresentRef}, true
	case types.Contains(timex.TypeDuration) && !types.Any(timex.TypeDateRange, timex.TypeTimeRange, timex.TypeDateTimeRange):
		return Resolution{Timex: s, Type: TypeDuration, Value: fmt.Sprintf("%d", durationSeconds(s))}, true
	case types.Contains(timex.TypeDateTime) && tx.Year != nil:
		d, ok := dateOf(tx)
		if !ok {
			return Resolution{}, false
		}
		return datetimeResolution(d), true
	case types.Contains(timex.TypeDate) && tx.Year != nil:
		d, ok := dateOf(tx)
		if !ok {
			return Resolution{}, false
		}
		return dateResolution(d), true
	case types.Contains(timex.TypeTime) && !types.Contains(timex.TypeDate):
		return timeResolution(tx), true
	case types.Any(timex.TypeDateRange, timex.TypeTimeRange):
		r, ok := tx.Expand()
		if !ok {
			return Resolution{}, false
		}
		if types.Contains(timex.TypeTimeRange) && !types.Contains(timex.TypeDateRange) {
			return Resolution{
				Timex: s,
				Type:  TypeTimeRange,
				Start: clockValue(r.Start),
				End:   clockValue(r.End),
			}, true
		}
		start, ok1 := dateOf(r.Start)
		end, ok2 := dateOf(r.End)
		if !ok1 || !ok2 {
			return Resolution{}, false
		}
		return Resolution{
			Timex: s,
			Type:  TypeDateRange,
			Start: start.Format("2006-01-02"),
			End:   end.Format("2006-01-02"),
		}, true
	}
	return Resolution{}, false
}

func durationSeconds(s string) int64 {
	var total int64
	for _, c := range timex.ResolveDurationTimex(s) {
		unit := c.Unit
		if unit == timex.BusinessDayUnit {
			unit = "D"
		}
		if unit == "WE" {
			unit = "D"
			c.Amount *= 2
		}
		if c.IsTime && unit == "M" {
			total += int64(c.Amount * 60)
			continue
		}
		total += int64(c.Amount * float64(unitSeconds[unit]))
	}
	return total
}

func dateResolution(d time.Time) Resolution {
	return Resolution{
		Timex: timex.DateTimex(d),
		Type:  TypeDate,
		Value: d.Format("2006-01-02"),
	}
}

func timeResolution(tx timex.Timex) Resolution {
	return Resolution{
		Timex: tx.TimexValue(),
		Type:  TypeTime,
		Value: clockValue(tx),
	}
}

func datetimeResolution(d time.Time) Resolution {
	return Resolution{
		Timex: timex.DateTimeTimex(d),
		Type:  TypeDateTime,
		Value: d.Format("2006-01-02 15:04:05"),
	}
}

func clockValue(tx timex.Timex) string {
	if tx.Clock == nil || tx.Clock.Hour == nil {
		return ""
	}
	minute, second := 0, 0
	if tx.Clock.Minute != nil {
		minute = *tx.Clock.Minute
	}
	if tx.Clock.Second != nil {
		second = *tx.Clock.Second
	}
	return fmt.Sprintf("%02d:%02d:%02d", *tx.Clock.Hour, minute, second)
}
