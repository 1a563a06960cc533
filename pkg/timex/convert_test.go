package timex_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/microsoft/Recognizers-Text-sub003/pkg/timex"
)

func TestToNaturalLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"PRESENT_REF", "now"},
		{"2017-05-29", "29th May 2017"},
		{"XXXX-05-05", "5th May"},
		{"XXXX-05-01", "1st May"},
		{"XXXX-05-02", "2nd May"},
		{"XXXX-05-03", "3rd May"},
		{"XXXX-05-11", "11th May"},
		{"XXXX-05-21", "21st May"},
		{"XXXX-WXX-6", "Saturday"},
		{"T16", "4PM"},
		{"T16:30", "4:30PM"},
		{"T16:30:05", "4:30:05PM"},
		{"T09", "9AM"},
		{"T00", "midnight"},
		{"T12", "midday"},
		{"T00:30", "12:30AM"},
		{"2017-05-29T16:30", "29th May 2017 4:30PM"},
		{"2017", "2017"},
		{"2017-05", "May 2017"},
		{"XXXX-05", "May"},
		{"2017-SU", "summer 2017"},
		{"SU", "summer"},
		{"2017-W37", "week 37 of 2017"},
		{"TEV", "evening"},
		{"2017-05-29TEV", "29th May 2017 evening"},
		{"P2Y", "2 years"},
		{"P1M", "1 month"},
		{"PT30M", "30 minutes"},
		{"banana", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, timex.ToNaturalLanguage(timex.Parse(tt.input)))
		})
	}
}

func TestToNaturalLanguageRelative(t *testing.T) {
	// 2017-09-22 is a Friday in ISO week 38.
	ref := time.Date(2017, 9, 22, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		input    string
		expected string
	}{
		{"2017-09-22", "today"},
		{"2017-09-23", "tomorrow"},
		{"2017-09-21", "yesterday"},
		{"2017-09-18", "this Monday"},
		{"2017-09-25", "next Monday"},
		{"2017-09-15", "last Friday"},
		{"2017-10-22", "22nd October 2017"}, // too far: absolute fallback
		{"2017-W38", "this week"},
		{"2017-W39", "next week"},
		{"2017-W37", "last week"},
		{"2017-W39-WE", "next weekend"},
		{"2017-09", "this month"},
		{"2017-10", "next month"},
		{"2017-08", "last month"},
		{"2018", "next year"},
		{"2016", "last year"},
		{"2017-SU", "this summer"},
		{"2018-WI", "next winter"},
		{"2017-09-23T16", "tomorrow 4PM"},
		{"P2Y", "2 years"}, // durations have no relative form
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, timex.ToNaturalLanguageRelative(timex.Parse(tt.input), ref))
		})
	}
}

func TestRelativeAcrossWeekBoundary(t *testing.T) {
	// Reference in ISO week 39; 2017-W40 must be "next week" even though
	// the dates are only days apart.
	ref := time.Date(2017, 9, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "next week", timex.ToNaturalLanguageRelative(timex.Parse("2017-W40"), ref))
}

func TestTimeOfDayTable(t *testing.T) {
	tod, ok := timex.ResolveTimeOfDay("EV")
	assert.True(t, ok)
	assert.Equal(t, 16, tod.BeginHour)
	assert.Equal(t, 20, tod.EndHour)
	assert.Equal(t, 0, tod.EndMin)

	tod, ok = timex.ResolveTimeOfDay("TNI")
	assert.True(t, ok)
	assert.Equal(t, 20, tod.BeginHour)
	assert.Equal(t, 59, tod.EndMin)

	_, ok = timex.ResolveTimeOfDay("XX")
	assert.False(t, ok, "unknown labels miss instead of erroring")
}
