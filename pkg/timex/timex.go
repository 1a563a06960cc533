package timex

import (
	"strconv"
	"strings"
	"time"
)

// PresentRef is the TIMEX literal denoting "now".
const PresentRef = "PRESENT_REF"

// Fuzzy placeholder tokens for deliberately unknown fields.
const (
	FuzzyYear  = "XXXX"
	FuzzyMonth = "XX"
	FuzzyDay   = "XX"
	FuzzyWeek  = "WXX"
)

// Clock is the lazily materialized time-point composite of a Timex. It is
// created the first time any of hour, minute or second is set, and dropped
// again when all three are cleared.
type Clock struct {
	Hour   *int
	Minute *int
	Second *int
}

// Timex is a TIMEX3 temporal expression value. Fields are pointers so that
// "not populated" is distinguishable from zero; at most one field group is
// expected to be populated at a time, except for the legitimate range plus
// duration combination.
type Timex struct {
	// Present-reference flag.
	Now bool

	// Duration group.
	Years   *float64
	Months  *float64
	Weeks   *float64
	Days    *float64
	Hours   *float64
	Minutes *float64
	Seconds *float64

	// Date-point group. DayOfWeek uses ISO numbering, Monday=1..Sunday=7.
	Year        *int
	Month       *int
	DayOfMonth  *int
	DayOfWeek   *int
	Season      *string
	WeekOfYear  *int
	Weekend     *bool
	WeekOfMonth *int

	// Time-point group.
	Clock *Clock

	// Named time-of-day label, e.g. "EV" for evening. Present on
	// time-range shapes.
	PartOfDay *string
}

// Parse builds a Timex from a TIMEX string. See the package documentation
// for the accepted grammar. Input that matches no recognized shape yields
// the zero Timex; Parse never fails.
func Parse(s string) Timex {
	var t Timex
	parseInto(s, &t)
	return t
}

// Clone returns a deep copy. The copy shares no pointers with the
// original, in particular not the nested Clock.
func (t Timex) Clone() Timex {
	c := t
	c.Years = clonePtr(t.Years)
	c.Months = clonePtr(t.Months)
	c.Weeks = clonePtr(t.Weeks)
	c.Days = clonePtr(t.Days)
	c.Hours = clonePtr(t.Hours)
	c.Minutes = clonePtr(t.Minutes)
	c.Seconds = clonePtr(t.Seconds)
	c.Year = clonePtr(t.Year)
	c.Month = clonePtr(t.Month)
	c.DayOfMonth = clonePtr(t.DayOfMonth)
	c.DayOfWeek = clonePtr(t.DayOfWeek)
	c.Season = clonePtr(t.Season)
	c.WeekOfYear = clonePtr(t.WeekOfYear)
	c.Weekend = clonePtr(t.Weekend)
	c.WeekOfMonth = clonePtr(t.WeekOfMonth)
	if t.Clock != nil {
		c.Clock = &Clock{
			Hour:   clonePtr(t.Clock.Hour),
			Minute: clonePtr(t.Clock.Minute),
			Second: clonePtr(t.Clock.Second),
		}
	}
	c.PartOfDay = clonePtr(t.PartOfDay)
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// SetHour assigns the hour, materializing the Clock if absent.
func (t *Timex) SetHour(h int) {
	t.clock().Hour = &h
}

// SetMinute assigns the minute, materializing the Clock if absent.
func (t *Timex) SetMinute(m int) {
	t.clock().Minute = &m
}

// SetSecond assigns the second, materializing the Clock if absent.
func (t *Timex) SetSecond(s int) {
	t.clock().Second = &s
}

// ClearClock clears hour, minute and second and drops the composite.
func (t *Timex) ClearClock() {
	t.Clock = nil
}

func (t *Timex) clock() *Clock {
	if t.Clock == nil {
		t.Clock = &Clock{}
	}
	return t.Clock
}

// FromDate builds a date-point Timex from the date fields of d.
func FromDate(d time.Time) Timex {
	year, month, day := d.Year(), int(d.Month()), d.Day()
	return Timex{Year: &year, Month: &month, DayOfMonth: &day}
}

// FromTime builds a time-point Timex from the clock fields of d.
func FromTime(d time.Time) Timex {
	var t Timex
	t.SetHour(d.Hour())
	t.SetMinute(d.Minute())
	t.SetSecond(d.Second())
	return t
}

// FromDateTime builds a Timex carrying both the date and the clock of d.
func FromDateTime(d time.Time) Timex {
	t := FromDate(d)
	t.SetHour(d.Hour())
	t.SetMinute(d.Minute())
	t.SetSecond(d.Second())
	return t
}

// AssignProperties applies the given partial-match key/value pairs to the
// entity. Recognized keys are year, month, dayOfMonth, dayOfWeek, season,
// weekOfYear, weekend, weekOfMonth, hour, minute, second, partOfDay, and
// the dateUnit/timeUnit plus amount pair, which resolves to exactly one
// duration field. Unknown keys and unparseable values are ignored.
func (t *Timex) AssignProperties(props map[string]string) {
	for key, value := range props {
		switch key {
		case "year":
			assignInt(&t.Year, value)
		case "month":
			assignInt(&t.Month, value)
		case "dayOfMonth":
			assignInt(&t.DayOfMonth, value)
		case "dayOfWeek":
			assignInt(&t.DayOfWeek, value)
		case "season":
			season := value
			t.Season = &season
		case "weekOfYear":
			assignInt(&t.WeekOfYear, value)
		case "weekend":
			weekend := strings.EqualFold(value, "true") || value == "WE"
			t.Weekend = &weekend
		case "weekOfMonth":
			assignInt(&t.WeekOfMonth, value)
		case "hour":
			if v, err := strconv.Atoi(value); err == nil {
				t.SetHour(v)
			}
		case "minute":
			if v, err := strconv.Atoi(value); err == nil {
				t.SetMinute(v)
			}
		case "second":
			if v, err := strconv.Atoi(value); err == nil {
				t.SetSecond(v)
			}
		case "partOfDay":
			label := value
			t.PartOfDay = &label
		case "dateUnit", "timeUnit":
			amount, err := strconv.ParseFloat(props["amount"], 64)
			if err != nil {
				continue
			}
			t.assignDuration(value, amount)
		case "amount":
			// Consumed together with dateUnit/timeUnit.
		}
	}
}

func (t *Timex) assignDuration(unit string, amount float64) {
	switch strings.ToLower(unit) {
	case UnitYear:
		t.Years = &amount
	case UnitMonth:
		t.Months = &amount
	case UnitWeek:
		t.Weeks = &amount
	case UnitDay:
		t.Days = &amount
	case UnitHour:
		t.Hours = &amount
	case UnitMinute:
		t.Minutes = &amount
	case UnitSecond:
		t.Seconds = &amount
	}
}

func assignInt(field **int, value string) {
	if v, err := strconv.Atoi(value); err == nil {
		*field = &v
	}
}
