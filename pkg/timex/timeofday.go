package timex

import "strings"

// TimeOfDayResolution maps a named time-of-day label to its hour bounds.
type TimeOfDayResolution struct {
	Timex     string
	BeginHour int
	EndHour   int
	EndMin    int
}

// Part-of-day label tokens, as they appear after the "T" in a TIMEX
// time-range expression.
const (
	PartEarlyMorning = "EM"
	PartMorning      = "MO"
	PartMidDay       = "MI"
	PartAfternoon    = "AF"
	PartEvening      = "EV"
	PartNight        = "NI"
	PartDaytime      = "DT"
	PartBusinessHour = "BH"
	PartBreakfast    = "MEB"
	PartBrunch       = "MEBR"
	PartLunch        = "MEL"
	PartDinner       = "MED"
)

// timeOfDayTable is the fixed mapping from named periods to hour bounds.
// It is process-wide read-only data, never mutated after initialization.
var timeOfDayTable = map[string]TimeOfDayResolution{
	PartEarlyMorning: {Timex: "T" + PartEarlyMorning, BeginHour: 4, EndHour: 8},
	PartMorning:      {Timex: "T" + PartMorning, BeginHour: 8, EndHour: 12},
	PartMidDay:       {Timex: "T" + PartMidDay, BeginHour: 11, EndHour: 13},
	PartAfternoon:    {Timex: "T" + PartAfternoon, BeginHour: 12, EndHour: 16},
	PartEvening:      {Timex: "T" + PartEvening, BeginHour: 16, EndHour: 20},
	PartNight:        {Timex: "T" + PartNight, BeginHour: 20, EndHour: 23, EndMin: 59},
	PartDaytime:      {Timex: "T" + PartDaytime, BeginHour: 8, EndHour: 18},
	PartBusinessHour: {Timex: "T" + PartBusinessHour, BeginHour: 8, EndHour: 18},
	PartBreakfast:    {Timex: "T" + PartBreakfast, BeginHour: 8, EndHour: 12},
	PartBrunch:       {Timex: "T" + PartBrunch, BeginHour: 10, EndHour: 14},
	PartLunch:        {Timex: "T" + PartLunch, BeginHour: 11, EndHour: 13},
	PartDinner:       {Timex: "T" + PartDinner, BeginHour: 16, EndHour: 20},
}

// ResolveTimeOfDay looks up the hour bounds of a named time-of-day label.
// The label may carry the leading "T". An unknown label reports ok=false
// rather than an error.
func ResolveTimeOfDay(label string) (TimeOfDayResolution, bool) {
	label = strings.TrimPrefix(label, "T")
	tod, ok := timeOfDayTable[label]
	return tod, ok
}
