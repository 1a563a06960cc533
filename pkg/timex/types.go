package timex

// Type is a shape tag inferred from the populated field groups of a Timex.
type Type string

const (
	TypePresent       Type = "present"
	TypeDate          Type = "date"
	TypeTime          Type = "time"
	TypeDateTime      Type = "datetime"
	TypeDateRange     Type = "daterange"
	TypeTimeRange     Type = "timerange"
	TypeDateTimeRange Type = "datetimerange"
	TypeDuration      Type = "duration"
)

// TypeSet is the set of shape tags carried by one Timex. A value can
// legitimately carry more than one tag; a date range combined with a
// duration carries both, which is what range formatting keys on.
type TypeSet map[Type]struct{}

// Contains reports whether the set carries the given tag.
func (s TypeSet) Contains(t Type) bool {
	_, ok := s[t]
	return ok
}

// Any reports whether the set carries at least one of the given tags.
func (s TypeSet) Any(types ...Type) bool {
	for _, t := range types {
		if s.Contains(t) {
			return true
		}
	}
	return false
}

// Types classifies the populated field groups of t. The classification is
// total: every field combination maps to a defined, possibly empty, set.
func (t Timex) Types() TypeSet {
	types := make(TypeSet)
	if t.Now {
		types[TypePresent] = struct{}{}
	}
	duration := t.isDuration()
	date := t.isDate()
	clock := t.isTime()
	dateRange := t.isDateRangeBase() || (date && duration && !clock)
	timeRange := t.PartOfDay != nil || (clock && duration && !date)
	if duration {
		types[TypeDuration] = struct{}{}
	}
	if dateRange {
		types[TypeDateRange] = struct{}{}
	}
	if timeRange {
		types[TypeTimeRange] = struct{}{}
	}
	if (date && duration && clock) ||
		(date && t.PartOfDay != nil) ||
		(t.isDateRangeBase() && (timeRange || clock)) {
		types[TypeDateTimeRange] = struct{}{}
	}
	if date && clock {
		types[TypeDateTime] = struct{}{}
	}
	if date {
		types[TypeDate] = struct{}{}
	}
	if clock {
		types[TypeTime] = struct{}{}
	}
	return types
}

func (t Timex) isDuration() bool {
	return t.Years != nil || t.Months != nil || t.Weeks != nil || t.Days != nil ||
		t.Hours != nil || t.Minutes != nil || t.Seconds != nil
}

func (t Timex) isDate() bool {
	return (t.Month != nil && t.DayOfMonth != nil) || t.DayOfWeek != nil
}

func (t Timex) isTime() bool {
	return t.Clock != nil && t.Clock.Hour != nil && t.Clock.Minute != nil && t.Clock.Second != nil
}

func (t Timex) isDateRangeBase() bool {
	return (t.Year != nil && t.DayOfMonth == nil) ||
		(t.Month != nil && t.DayOfMonth == nil) ||
		t.Season != nil || t.WeekOfYear != nil || t.WeekOfMonth != nil
}
