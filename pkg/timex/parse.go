package timex

import (
	"strconv"
	"strings"
)

var seasons = map[string]struct{}{"SP": {}, "SU": {}, "FA": {}, "WI": {}}

// parseInto applies the TIMEX grammar to s, assigning fields on t. The
// grammar is the inverse of the formatter: every canonical form round
// trips. Unrecognized input leaves t untouched.
func parseInto(s string, t *Timex) {
	switch {
	case s == PresentRef:
		t.Now = true
	case strings.HasPrefix(s, "P"):
		parseDuration(s, t)
	case strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")"):
		parseRange(s, t)
	default:
		parseDateTime(s, t)
	}
}

// parseRange splits a "(start,end,duration)" expression. The start's
// fields and the duration's fields are both assigned to t; the end is
// implied by start plus duration and is recomputed on expansion, so all
// three sub-expressions remain readable.
func parseRange(s string, t *Timex) {
	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 3 {
		return
	}
	parseInto(parts[0], t)
	if strings.HasPrefix(parts[2], "P") {
		parseDuration(parts[2], t)
	}
}

func parseDateTime(s string, t *Timex) {
	if idx := strings.Index(s, "T"); idx >= 0 {
		parseDate(s[:idx], t)
		parseTime(s[idx:], t)
		return
	}
	parseDate(s, t)
}

func parseDate(s string, t *Timex) {
	switch {
	case s == "":
		return
	case strings.HasPrefix(s, FuzzyYear+"-"):
		parseFuzzyYearDate(s[len(FuzzyYear)+1:], t)
	case len(s) >= 4 && isDigits(s[:4]):
		year, _ := strconv.Atoi(s[:4])
		t.Year = &year
		if len(s) > 4 && s[4] == '-' {
			parseYearRest(s[5:], t)
		}
	default:
		if _, ok := seasons[s]; ok {
			season := s
			t.Season = &season
		}
	}
}

// parseFuzzyYearDate handles the year-less shapes: XXXX-WXX-d,
// XXXX-MM-WXX-w[-d], XXXX-MM-DD and XXXX-MM.
func parseFuzzyYearDate(rest string, t *Timex) {
	if weekday, ok := strings.CutPrefix(rest, FuzzyWeek+"-"); ok {
		assignDigit(&t.DayOfWeek, weekday)
		return
	}
	if len(rest) < 2 || !isDigits(rest[:2]) {
		return
	}
	month, _ := strconv.Atoi(rest[:2])
	t.Month = &month
	switch {
	case len(rest) == 2:
	case strings.HasPrefix(rest[2:], "-"+FuzzyWeek+"-"):
		weekRest := rest[3+len(FuzzyWeek)+1:]
		if len(weekRest) >= 1 {
			assignDigit(&t.WeekOfMonth, weekRest[:1])
		}
		if len(weekRest) == 3 && weekRest[1] == '-' {
			assignDigit(&t.DayOfWeek, weekRest[2:])
		}
	case len(rest) == 5 && rest[2] == '-' && isDigits(rest[3:]):
		day, _ := strconv.Atoi(rest[3:])
		t.DayOfMonth = &day
	}
}

// parseYearRest handles what follows "YYYY-": Www[-WE], a season token,
// MM, or MM-DD.
func parseYearRest(rest string, t *Timex) {
	if week, ok := strings.CutPrefix(rest, "W"); ok {
		weekend := strings.HasSuffix(week, "-WE")
		week = strings.TrimSuffix(week, "-WE")
		if !isDigits(week) {
			return
		}
		w, _ := strconv.Atoi(week)
		t.WeekOfYear = &w
		if weekend {
			t.Weekend = &weekend
		}
		return
	}
	if _, ok := seasons[rest]; ok {
		season := rest
		t.Season = &season
		return
	}
	if len(rest) < 2 || !isDigits(rest[:2]) {
		return
	}
	month, _ := strconv.Atoi(rest[:2])
	t.Month = &month
	if len(rest) == 5 && rest[2] == '-' && isDigits(rest[3:]) {
		day, _ := strconv.Atoi(rest[3:])
		t.DayOfMonth = &day
	}
}

// parseTime handles THH, THH:MM, THH:MM:SS and the named time-of-day
// label form T{label}. Missing trailing clock components default to zero,
// so "T16" and "T16:00" format identically.
func parseTime(s string, t *Timex) {
	rest := s[1:]
	if rest == "" {
		return
	}
	if !isDigits(rest[:1]) {
		label := rest
		t.PartOfDay = &label
		return
	}
	var hour, minute, second int
	switch len(rest) {
	case 2:
		if !isDigits(rest) {
			return
		}
		hour, _ = strconv.Atoi(rest)
	case 5:
		if !isDigits(rest[:2]) || rest[2] != ':' || !isDigits(rest[3:]) {
			return
		}
		hour, _ = strconv.Atoi(rest[:2])
		minute, _ = strconv.Atoi(rest[3:])
	case 8:
		if !isDigits(rest[:2]) || rest[2] != ':' || !isDigits(rest[3:5]) || rest[5] != ':' || !isDigits(rest[6:]) {
			return
		}
		hour, _ = strconv.Atoi(rest[:2])
		minute, _ = strconv.Atoi(rest[3:5])
		second, _ = strconv.Atoi(rest[6:])
	default:
		return
	}
	t.SetHour(hour)
	t.SetMinute(minute)
	t.SetSecond(second)
}

// parseDuration walks a duration expression left to right, assigning each
// amount/unit pair to its duration field. The "T" marker switches unit
// letters from date to time meaning, which is what disambiguates months
// from minutes.
func parseDuration(s string, t *Timex) {
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
			return
		}
		amount, err := strconv.ParseFloat(s[start:i], 64)
		if err != nil {
			return
		}
		unit := s[i : i+1]
		i++
		// Two-letter markers: business days and weekends.
		if i < len(s) && (unit == "B" || unit == "W") && (s[i] == 'D' || s[i] == 'E') {
			unit += s[i : i+1]
			i++
		}
		assignDurationField(t, unit, amount, inTime)
	}
}

func assignDurationField(t *Timex, unit string, amount float64, inTime bool) {
	switch unit {
	case "Y":
		t.Years = &amount
	case "M":
		if inTime {
			t.Minutes = &amount
		} else {
			t.Months = &amount
		}
	case "W":
		t.Weeks = &amount
	case "WE":
		// A weekend is carried as its two-day block.
		days := amount * 2
		t.Days = &days
	case "D", "BD":
		t.Days = &amount
	case "H":
		t.Hours = &amount
	case "S":
		t.Seconds = &amount
	}
}

func assignDigit(field **int, s string) {
	if len(s) == 1 && isDigits(s) {
		v := int(s[0] - '0')
		*field = &v
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
