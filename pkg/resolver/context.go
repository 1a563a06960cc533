package resolver

import (
	"fmt"
	"regexp"
	"time"

	"github.com/microsoft/Recognizers-Text-sub003/pkg/calendar"
	"github.com/microsoft/Recognizers-Text-sub003/pkg/timex"
)

// DateContext carries a year recovered from surrounding text. A non-empty
// context substitutes that year into fuzzy-year expressions and their
// resolutions; an empty context leaves everything untouched.
type DateContext struct {
	Year int
}

// fuzzyYearDate matches a fuzzy-year placeholder that is followed by a
// concrete month, the only position where a bare year substitution is
// well formed.
var fuzzyYearDate = regexp.MustCompile(`^XXXX-(\d{2})`)

// IsEmpty reports whether the context carries no year.
func (dc DateContext) IsEmpty() bool {
	return dc.Year == 0
}

// SubstituteTimex replaces the fuzzy-year placeholder of a month-led
// expression with the context year. Expressions without such a
// placeholder, and empty contexts, pass through unchanged.
func (dc DateContext) SubstituteTimex(timexStr string) string {
	if dc.IsEmpty() || !fuzzyYearDate.MatchString(timexStr) {
		return timexStr
	}
	return fmt.Sprintf("%04d%s", dc.Year, timexStr[len(timex.FuzzyYear):])
}

// SubstituteResolution applies the context year to a resolution's timex
// and to its value bounds.
func (dc DateContext) SubstituteResolution(res Resolution) Resolution {
	if dc.IsEmpty() {
		return res
	}
	res.Timex = dc.SubstituteTimex(res.Timex)
	res.Value = dc.substituteValue(res.Value)
	res.Start = dc.substituteValue(res.Start)
	res.End = dc.substituteValue(res.End)
	return res
}

// substituteValue rewrites the year of a concrete "YYYY-MM-DD..." value.
func (dc DateContext) substituteValue(value string) string {
	if len(value) < 5 || value[4] != '-' {
		return value
	}
	if !isYearRun(value[:4]) {
		return value
	}
	return fmt.Sprintf("%04d%s", dc.Year, value[4:])
}

// SwiftDateObject keeps a single-year context internally consistent: when
// a resolved begin lands after its end, the begin belongs to the previous
// year.
func (dc DateContext) SwiftDateObject(begin, end time.Time) (time.Time, time.Time) {
	if begin.After(end) {
		begin = begin.AddDate(-1, 0, 0)
	}
	return begin, end
}

// SyncYear aligns a year-less sibling with a resolved February 29: the
// leap day's year is the only year the pair can share.
func (dc DateContext) SyncYear(first, second time.Time) (time.Time, time.Time) {
	if !dc.IsEmpty() {
		return first, second
	}
	if isLeapDay(first) && !isLeapDay(second) {
		second = calendar.SafeDate(first.Year(), int(second.Month()), second.Day())
	} else if isLeapDay(second) && !isLeapDay(first) {
		first = calendar.SafeDate(second.Year(), int(first.Month()), first.Day())
	}
	return first, second
}

func isLeapDay(d time.Time) bool {
	return d.Month() == time.February && d.Day() == 29
}

func isYearRun(s string) bool {
	for i := 0; i < len(s); i++ {
		if (s[i] < '0' || s[i] > '9') && s[i] != 'X' {
			return false
		}
	}
	return true
}
