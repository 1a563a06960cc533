package timex

import (
	"fmt"
	"strconv"
)

// TimexValue renders the entity as its canonical TIMEX string. Dispatch is
// ordered over the inferred shape tags, first match wins; an entity with no
// populated fields renders as the empty string.
func (t Timex) TimexValue() string {
	types := t.Types()
	switch {
	case types.Contains(TypePresent):
		return PresentRef
	case types.Any(TypeDateTimeRange, TypeDateRange, TypeTimeRange) && types.Contains(TypeDuration):
		r, ok := t.Expand()
		if !ok {
			return ""
		}
		return fmt.Sprintf("(%s,%s,%s)", r.Start.TimexValue(), r.End.TimexValue(), r.Duration.TimexValue())
	case types.Contains(TypeDateTimeRange):
		return t.formatDate() + t.formatTimeRange()
	case types.Contains(TypeDateRange):
		return t.formatDateRange()
	case types.Contains(TypeTimeRange):
		return t.formatTimeRange()
	case types.Contains(TypeDateTime):
		return t.formatDate() + t.formatTime()
	case types.Contains(TypeDuration):
		return t.formatDuration()
	case types.Contains(TypeDate):
		return t.formatDate()
	case types.Contains(TypeTime):
		return t.formatTime()
	}
	return ""
}

func (t Timex) formatDate() string {
	switch {
	case t.Year != nil && t.Month != nil && t.DayOfMonth != nil:
		return fmt.Sprintf("%04d-%02d-%02d", *t.Year, *t.Month, *t.DayOfMonth)
	case t.Month != nil && t.DayOfMonth != nil:
		return fmt.Sprintf("%s-%02d-%02d", FuzzyYear, *t.Month, *t.DayOfMonth)
	case t.DayOfWeek != nil:
		return fmt.Sprintf("%s-%s-%d", FuzzyYear, FuzzyWeek, *t.DayOfWeek)
	}
	return ""
}

func (t Timex) formatTime() string {
	if !t.isTime() {
		return ""
	}
	hour, minute, second := *t.Clock.Hour, *t.Clock.Minute, *t.Clock.Second
	switch {
	case minute == 0 && second == 0:
		return fmt.Sprintf("T%02d", hour)
	case second == 0:
		return fmt.Sprintf("T%02d:%02d", hour, minute)
	}
	return fmt.Sprintf("T%02d:%02d:%02d", hour, minute, second)
}

func (t Timex) formatDateRange() string {
	switch {
	case t.Year != nil && t.WeekOfYear != nil && t.Weekend != nil && *t.Weekend:
		return fmt.Sprintf("%04d-W%02d-WE", *t.Year, *t.WeekOfYear)
	case t.Year != nil && t.WeekOfYear != nil:
		return fmt.Sprintf("%04d-W%02d", *t.Year, *t.WeekOfYear)
	case t.Year != nil && t.Season != nil:
		return fmt.Sprintf("%04d-%s", *t.Year, *t.Season)
	case t.Season != nil:
		return *t.Season
	case t.Year != nil && t.Month != nil:
		return fmt.Sprintf("%04d-%02d", *t.Year, *t.Month)
	case t.Year != nil:
		return fmt.Sprintf("%04d", *t.Year)
	case t.Month != nil && t.WeekOfMonth != nil && t.DayOfWeek != nil:
		return fmt.Sprintf("%s-%02d-%s-%d-%d", FuzzyYear, *t.Month, FuzzyWeek, *t.WeekOfMonth, *t.DayOfWeek)
	case t.Month != nil && t.WeekOfMonth != nil:
		return fmt.Sprintf("%s-%02d-%s-%d", FuzzyYear, *t.Month, FuzzyWeek, *t.WeekOfMonth)
	case t.Month != nil:
		return fmt.Sprintf("%s-%02d", FuzzyYear, *t.Month)
	}
	return ""
}

func (t Timex) formatTimeRange() string {
	if t.PartOfDay != nil {
		return "T" + *t.PartOfDay
	}
	return ""
}

// formatDuration renders the first populated duration field in fixed
// priority order. Duration fields are expected mutually exclusive here;
// compound durations are produced as strings by the generation helpers,
// not through entity formatting.
func (t Timex) formatDuration() string {
	switch {
	case t.Years != nil:
		return "P" + formatAmount(*t.Years) + "Y"
	case t.Months != nil:
		return "P" + formatAmount(*t.Months) + "M"
	case t.Weeks != nil:
		return "P" + formatAmount(*t.Weeks) + "W"
	case t.Days != nil:
		return "P" + formatAmount(*t.Days) + "D"
	case t.Hours != nil:
		return "PT" + formatAmount(*t.Hours) + "H"
	case t.Minutes != nil:
		return "PT" + formatAmount(*t.Minutes) + "M"
	case t.Seconds != nil:
		return "PT" + formatAmount(*t.Seconds) + "S"
	}
	return ""
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
