package timex

import (
	"fmt"
	"strings"
	"time"

	"github.com/microsoft/Recognizers-Text-sub003/pkg/calendar"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var seasonNames = map[string]string{
	"SP": "spring",
	"SU": "summer",
	"FA": "fall",
	"WI": "winter",
}

var partOfDayNames = map[string]string{
	PartEarlyMorning: "early morning",
	PartMorning:      "morning",
	PartMidDay:       "midday",
	PartAfternoon:    "afternoon",
	PartEvening:      "evening",
	PartNight:        "night",
	PartDaytime:      "daytime",
	PartBusinessHour: "business hours",
	PartBreakfast:    "breakfast",
	PartBrunch:       "brunch",
	PartLunch:        "lunch",
	PartDinner:       "dinner",
}

// ToNaturalLanguage renders the entity as an absolute English phrase:
// "29th May 2017", "5:30PM", "2 weeks". Shapes with no defined phrase
// render as the empty string.
func ToNaturalLanguage(t Timex) string {
	types := t.Types()
	switch {
	case types.Contains(TypePresent):
		return "now"
	case types.Contains(TypeDateTimeRange):
		return join(convertDate(t), convertTimeRange(t))
	case types.Contains(TypeDateRange):
		return convertDateRange(t)
	case types.Contains(TypeTimeRange):
		return convertTimeRange(t)
	case types.Contains(TypeDateTime):
		return join(convertDate(t), convertTime(t))
	case types.Contains(TypeDuration):
		return convertDuration(t)
	case types.Contains(TypeDate):
		return convertDate(t)
	case types.Contains(TypeTime):
		return convertTime(t)
	}
	return ""
}

// ToNaturalLanguageRelative renders the entity relative to a reference
// instant: "today", "tomorrow", "next Wednesday", "last week". Entities
// too far from the reference fall back to the absolute phrase.
func ToNaturalLanguageRelative(t Timex, ref time.Time) string {
	types := t.Types()
	switch {
	case types.Contains(TypeDateTime) && t.Year != nil && t.Month != nil && t.DayOfMonth != nil:
		return join(relativeDate(t, ref), convertTime(t))
	case types.Contains(TypeDate) && t.Year != nil && t.Month != nil && t.DayOfMonth != nil:
		return relativeDate(t, ref)
	case types.Contains(TypeDateRange):
		return relativeDateRange(t, ref)
	}
	return ToNaturalLanguage(t)
}

func relativeDate(t Timex, ref time.Time) string {
	date := calendar.SafeDate(*t.Year, *t.Month, *t.DayOfMonth)
	if date.IsZero() {
		return convertDate(t)
	}
	today := calendar.SafeDate(ref.Year(), int(ref.Month()), ref.Day())
	switch days := int(date.Sub(today).Hours() / 24); days {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	case -1:
		return "yesterday"
	}
	name := weekdayNames[calendar.ISOWeekday(date)-1]
	switch weekDelta(date, ref) {
	case 0:
		return "this " + name
	case 1:
		return "next " + name
	case -1:
		return "last " + name
	}
	return convertDate(t)
}

func relativeDateRange(t Timex, ref time.Time) string {
	switch {
	case t.Year != nil && t.WeekOfYear != nil:
		noun := "week"
		if t.Weekend != nil && *t.Weekend {
			noun = "weekend"
		}
		monday := mondayOfISOWeek(*t.Year, *t.WeekOfYear)
		switch weekDelta(monday, ref) {
		case 0:
			return "this " + noun
		case 1:
			return "next " + noun
		case -1:
			return "last " + noun
		}
	case t.Year != nil && t.Season != nil:
		name := seasonNames[*t.Season]
		switch *t.Year - ref.Year() {
		case 0:
			return "this " + name
		case 1:
			return "next " + name
		case -1:
			return "last " + name
		}
	case t.Year != nil && t.Month != nil:
		switch (*t.Year*12 + *t.Month) - (ref.Year()*12 + int(ref.Month())) {
		case 0:
			return "this month"
		case 1:
			return "next month"
		case -1:
			return "last month"
		}
	case t.Year != nil:
		switch *t.Year - ref.Year() {
		case 0:
			return "this year"
		case 1:
			return "next year"
		case -1:
			return "last year"
		}
	}
	return convertDateRange(t)
}

// weekDelta counts whole ISO weeks between the week containing d and the
// week containing ref.
func weekDelta(d, ref time.Time) int {
	dMonday := calendar.ThisWeekday(d, 1)
	refMonday := calendar.ThisWeekday(calendar.SafeDate(ref.Year(), int(ref.Month()), ref.Day()), 1)
	return int(dMonday.Sub(refMonday).Hours() / 24 / 7)
}

func convertDate(t Timex) string {
	switch {
	case t.Month != nil && t.DayOfMonth != nil:
		phrase := fmt.Sprintf("%s %s", ordinal(*t.DayOfMonth), monthNames[*t.Month-1])
		if t.Year != nil {
			phrase += fmt.Sprintf(" %d", *t.Year)
		}
		return phrase
	case t.DayOfWeek != nil && *t.DayOfWeek >= 1 && *t.DayOfWeek <= 7:
		return weekdayNames[*t.DayOfWeek-1]
	}
	return ""
}

func convertTime(t Timex) string {
	if !t.isTime() {
		return ""
	}
	hour, minute, second := *t.Clock.Hour, *t.Clock.Minute, *t.Clock.Second
	if minute == 0 && second == 0 {
		switch hour {
		case 0:
			return "midnight"
		case 12:
			return "midday"
		}
	}
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	switch {
	case second != 0:
		return fmt.Sprintf("%d:%02d:%02d%s", hour12, minute, second, period)
	case minute != 0:
		return fmt.Sprintf("%d:%02d%s", hour12, minute, period)
	}
	return fmt.Sprintf("%d%s", hour12, period)
}

func convertDateRange(t Timex) string {
	switch {
	case t.Year != nil && t.WeekOfYear != nil:
		return fmt.Sprintf("week %d of %d", *t.WeekOfYear, *t.Year)
	case t.Year != nil && t.Season != nil:
		return fmt.Sprintf("%s %d", seasonNames[*t.Season], *t.Year)
	case t.Season != nil:
		return seasonNames[*t.Season]
	case t.Year != nil && t.Month != nil:
		return fmt.Sprintf("%s %d", monthNames[*t.Month-1], *t.Year)
	case t.Year != nil:
		return fmt.Sprintf("%d", *t.Year)
	case t.Month != nil:
		return monthNames[*t.Month-1]
	}
	return ""
}

func convertTimeRange(t Timex) string {
	if t.PartOfDay == nil {
		return ""
	}
	return partOfDayNames[*t.PartOfDay]
}

func convertDuration(t Timex) string {
	render := func(v float64, noun string) string {
		s := formatAmount(v) + " " + noun
		if v != 1 {
			s += "s"
		}
		return s
	}
	switch {
	case t.Years != nil:
		return render(*t.Years, "year")
	case t.Months != nil:
		return render(*t.Months, "month")
	case t.Weeks != nil:
		return render(*t.Weeks, "week")
	case t.Days != nil:
		return render(*t.Days, "day")
	case t.Hours != nil:
		return render(*t.Hours, "hour")
	case t.Minutes != nil:
		return render(*t.Minutes, "minute")
	case t.Seconds != nil:
		return render(*t.Seconds, "second")
	}
	return ""
}

func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

func join(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
