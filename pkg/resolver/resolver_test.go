package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microsoft/Recognizers-Text-sub003/pkg/resolver"
)

func values(resolutions []resolver.Resolution) []string {
	out := make([]string, len(resolutions))
	for i, r := range resolutions {
		out[i] = r.Value
	}
	return out
}

func TestResolveWeekdayAgainstMonth(t *testing.T) {
	got := resolver.Resolve([]string{"XXXX-WXX-6"}, []string{"2017-09"})

	assert.Equal(t, []string{
		"2017-09-02",
		"2017-09-09",
		"2017-09-16",
		"2017-09-23",
		"2017-09-30",
	}, values(got))

	for _, r := range got {
		assert.Equal(t, resolver.TypeDate, r.Type)
		assert.Equal(t, r.Value, r.Timex)
	}
}

func TestResolveWeekdayAgainstWeek(t *testing.T) {
	got := resolver.Resolve([]string{"XXXX-WXX-3"}, []string{"2017-W37"})
	require.Len(t, got, 1)
	assert.Equal(t, "2017-09-13", got[0].Value)
}

func TestResolveWeekdayWithoutConstraint(t *testing.T) {
	assert.Empty(t, resolver.Resolve([]string{"XXXX-WXX-6"}, nil),
		"an underspecified date has nothing to enumerate against")
}

func TestResolveEmptyIntersection(t *testing.T) {
	// September and October share no days; the intersection is empty,
	// which is an empty result, not an error.
	got := resolver.Resolve([]string{"XXXX-WXX-6"}, []string{"2017-09", "2017-10"})
	assert.Empty(t, got)
}

func TestResolveTimeAgainstWindow(t *testing.T) {
	t.Run("inside one window", func(t *testing.T) {
		got := resolver.Resolve([]string{"T16"}, []string{"(T14,T18,PT4H)"})
		require.Len(t, got, 1)
		assert.Equal(t, "T16", got[0].Timex)
		assert.Equal(t, resolver.TypeTime, got[0].Type)
		assert.Equal(t, "16:00:00", got[0].Value)
	})

	t.Run("conflicting windows exclude the boundary", func(t *testing.T) {
		windows := []string{"(T14,T18,PT4H)", "(T16,T20,PT4H)"}

		assert.Empty(t, resolver.Resolve([]string{"T16"}, windows))

		got := resolver.Resolve([]string{"T17"}, windows)
		require.Len(t, got, 1)
		assert.Equal(t, "T17", got[0].Timex)
	})

	t.Run("outside the window", func(t *testing.T) {
		assert.Empty(t, resolver.Resolve([]string{"T20"}, []string{"(T14,T18,PT4H)"}))
	})

	t.Run("no constraint passes through", func(t *testing.T) {
		got := resolver.Resolve([]string{"T16"}, nil)
		require.Len(t, got, 1)
		assert.Equal(t, "16:00:00", got[0].Value)
	})
}

func TestResolveDuration(t *testing.T) {
	t.Run("no anchor resolves to nothing", func(t *testing.T) {
		assert.Empty(t, resolver.Resolve([]string{"P2Y"}, nil))
	})

	t.Run("datetime constraint anchors the shift", func(t *testing.T) {
		got := resolver.Resolve([]string{"P2Y"}, []string{"2017-09-07T00"})
		require.Len(t, got, 1)
		assert.Equal(t, resolver.TypeDateTime, got[0].Type)
		assert.Equal(t, "2019-09-07 00:00:00", got[0].Value)
	})

	t.Run("sub-day duration", func(t *testing.T) {
		got := resolver.Resolve([]string{"PT5M"}, []string{"2017-09-07T14:30"})
		require.Len(t, got, 1)
		assert.Equal(t, "2017-09-07 14:35:00", got[0].Value)
	})
}

func TestResolveConcreteCandidates(t *testing.T) {
	t.Run("date inside range passes through", func(t *testing.T) {
		got := resolver.Resolve([]string{"2017-09-16"}, []string{"2017-09"})
		require.Len(t, got, 1)
		assert.Equal(t, "2017-09-16", got[0].Value)
	})

	t.Run("date outside range is dropped", func(t *testing.T) {
		assert.Empty(t, resolver.Resolve([]string{"2017-10-16"}, []string{"2017-09"}))
	})

	t.Run("datetime checked against both kinds", func(t *testing.T) {
		got := resolver.Resolve([]string{"2017-09-16T16"}, []string{"2017-09", "(T14,T18,PT4H)"})
		require.Len(t, got, 1)
		assert.Equal(t, "2017-09-16 16:00:00", got[0].Value)

		assert.Empty(t, resolver.Resolve([]string{"2017-09-16T20"}, []string{"2017-09", "(T14,T18,PT4H)"}))
	})
}

func TestResolveDateTimeCrossProduct(t *testing.T) {
	// A date-only candidate crossed with a time-of-day constraint borrows
	// the constraint's bounds for each qualifying day.
	got := resolver.Resolve([]string{"XXXX-WXX-6"}, []string{"2017-W37", "TEV"})
	require.Len(t, got, 1)
	assert.Equal(t, resolver.TypeDateTimeRange, got[0].Type)
	assert.Equal(t, "2017-09-16 16:00:00", got[0].Start)
	assert.Equal(t, "2017-09-16 20:00:00", got[0].End)
}

func TestResolveFuzzyDate(t *testing.T) {
	got := resolver.Resolve([]string{"XXXX-09-16"}, []string{"2017"})
	require.Len(t, got, 1)
	assert.Equal(t, "2017-09-16", got[0].Value)
}

func TestResolveRangeCandidate(t *testing.T) {
	t.Run("overlap is kept", func(t *testing.T) {
		got := resolver.Resolve([]string{"2017-W36"}, []string{"2017-09"})
		require.Len(t, got, 1)
		assert.Equal(t, resolver.TypeDateRange, got[0].Type)
		// Week 36 starts on 2017-09-04 and lies inside September.
		assert.Equal(t, "2017-09-04", got[0].Start)
		assert.Equal(t, "2017-09-11", got[0].End)
	})

	t.Run("disjoint range is dropped", func(t *testing.T) {
		assert.Empty(t, resolver.Resolve([]string{"2017-W02"}, []string{"2017-09"}))
	})
}

func TestResolveOrderingAndDuplicates(t *testing.T) {
	// Same candidate twice: duplicates are suppressed. Two candidates:
	// grouped by candidate order, ascending within each.
	got := resolver.Resolve(
		[]string{"XXXX-WXX-7", "XXXX-WXX-6", "XXXX-WXX-7"},
		[]string{"2017-W37"},
	)
	assert.Equal(t, []string{"2017-09-17", "2017-09-16"}, values(got),
		"candidate order first, no duplicates")
}

func TestResolveUnrecognizedInputs(t *testing.T) {
	assert.Empty(t, resolver.Resolve([]string{"banana"}, []string{"2017-09"}))
	assert.Empty(t, resolver.Resolve(nil, []string{"2017-09"}))

	// Malformed constraints are ignored rather than fatal.
	got := resolver.Resolve([]string{"2017-09-16"}, []string{"banana"})
	require.Len(t, got, 1)
	assert.Equal(t, "2017-09-16", got[0].Value)
}

func TestFrom(t *testing.T) {
	t.Run("date", func(t *testing.T) {
		res, ok := resolver.From("2017-09-07")
		require.True(t, ok)
		assert.Equal(t, resolver.TypeDate, res.Type)
		assert.Equal(t, "2017-09-07", res.Value)
	})

	t.Run("duration value is total seconds", func(t *testing.T) {
		res, ok := resolver.From("P2D")
		require.True(t, ok)
		assert.Equal(t, resolver.TypeDuration, res.Type)
		assert.Equal(t, "172800", res.Value)

		res, ok = resolver.From("PT1H30M")
		require.True(t, ok)
		assert.Equal(t, "5400", res.Value)

		// A weekend spans two days.
		res, ok = resolver.From("P1WE")
		require.True(t, ok)
		assert.Equal(t, "172800", res.Value)
	})

	t.Run("daterange", func(t *testing.T) {
		res, ok := resolver.From("2017-09")
		require.True(t, ok)
		assert.Equal(t, resolver.TypeDateRange, res.Type)
		assert.Equal(t, "2017-09-01", res.Start)
		assert.Equal(t, "2017-10-01", res.End)
	})

	t.Run("timerange", func(t *testing.T) {
		res, ok := resolver.From("TEV")
		require.True(t, ok)
		assert.Equal(t, resolver.TypeTimeRange, res.Type)
		assert.Equal(t, "16:00:00", res.Start)
		assert.Equal(t, "20:00:00", res.End)
	})

	t.Run("present reference", func(t *testing.T) {
		res, ok := resolver.From("PRESENT_REF")
		require.True(t, ok)
		assert.Equal(t, "PRESENT_REF", res.Value)
	})

	t.Run("no concrete resolution", func(t *testing.T) {
		_, ok := resolver.From("banana")
		assert.False(t, ok)
		_, ok = resolver.From("XXXX-WXX-6")
		assert.False(t, ok)
	})
}
