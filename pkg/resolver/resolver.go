package resolver

import (
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/microsoft/Recognizers-Text-sub003/pkg/calendar"
	"github.com/microsoft/Recognizers-Text-sub003/pkg/timex"
)

// Option configures a resolution run.
type Option func(*resolver)

// WithLogger attaches a logger for constraint-evaluation tracing. Without
// it the resolver stays silent.
func WithLogger(l *slog.Logger) Option {
	return func(r *resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// Resolve evaluates each candidate TIMEX fragment against the given
// constraints and returns the concrete resolutions, grouped by input
// candidate order and sorted chronologically within a candidate.
// Candidates that satisfy no constraint contribute nothing; Resolve never
// fails.
func Resolve(candidates, constraints []string, opts ...Option) []Resolution {
	r := &resolver{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(r)
	}
	r.addConstraints(constraints)

	var out []Resolution
	seen := make(map[Resolution]struct{})
	for _, candidate := range candidates {
		resolved := r.resolveCandidate(candidate)
		slices.SortFunc(resolved, compareResolutions)
		for _, res := range resolved {
			if _, dup := seen[res]; dup {
				continue
			}
			seen[res] = struct{}{}
			out = append(out, res)
		}
	}
	return out
}

// ResolveWithContext substitutes the context's year into fuzzy-year
// candidates before resolving them.
func ResolveWithContext(candidates, constraints []string, dc DateContext, opts ...Option) []Resolution {
	substituted := make([]string, len(candidates))
	for i, c := range candidates {
		substituted[i] = dc.SubstituteTimex(c)
	}
	return Resolve(substituted, constraints, opts...)
}

func compareResolutions(a, b Resolution) int {
	ka := a.Value + a.Start
	kb := b.Value + b.Start
	return strings.Compare(ka, kb)
}

// dateSpan is a half-open day range: Start inclusive, End exclusive.
type dateSpan struct {
	Start time.Time
	End   time.Time
}

// timeSpan is a clock window in seconds since midnight.
type timeSpan struct {
	Start int
	End   int
}

type resolver struct {
	log *slog.Logger

	dates   *dateSpan // intersection of all date-typed constraints
	times   *timeSpan // intersection of all time-typed constraints
	anchors []time.Time
}

// addConstraints classifies each constraint as date-typed or time-typed
// and folds it into the running intersection of its kind. Fixed dates and
// datetimes additionally serve as anchors for bare-duration candidates.
func (r *resolver) addConstraints(constraints []string) {
	for _, c := range constraints {
		tx := timex.Parse(c)
		types := tx.Types()
		switch {
		case types.Contains(timex.TypeDateTime) && tx.Year != nil:
			d, ok := dateOf(tx)
			if !ok {
				continue
			}
			r.anchors = append(r.anchors, d)
			day := d.Truncate(24 * time.Hour)
			r.intersectDates(dateSpan{Start: day, End: day.AddDate(0, 0, 1)})
		case types.Contains(timex.TypeDate) && tx.Year != nil && !types.Contains(timex.TypeDateRange):
			d, ok := dateOf(tx)
			if !ok {
				continue
			}
			r.anchors = append(r.anchors, d)
			r.intersectDates(dateSpan{Start: d, End: d.AddDate(0, 0, 1)})
		case types.Contains(timex.TypeDateRange):
			expanded, ok := tx.Expand()
			if !ok {
				r.log.Debug("skipping constraint with no concrete expansion", "timex", c)
				continue
			}
			start, ok1 := dateOf(expanded.Start)
			end, ok2 := dateOf(expanded.End)
			if !ok1 || !ok2 {
				continue
			}
			r.intersectDates(dateSpan{Start: start, End: end})
		case types.Contains(timex.TypeTimeRange):
			expanded, ok := tx.Expand()
			if !ok {
				continue
			}
			r.intersectTimes(timeSpan{Start: clockSeconds(expanded.Start), End: clockSeconds(expanded.End)})
		case types.Contains(timex.TypeTime):
			sec := clockSeconds(tx)
			r.intersectTimes(timeSpan{Start: sec, End: sec})
		default:
			r.log.Debug("ignoring unrecognized constraint", "timex", c)
		}
	}
}

func (r *resolver) intersectDates(span dateSpan) {
	if r.dates == nil {
		r.dates = &span
		return
	}
	if span.Start.After(r.dates.Start) {
		r.dates.Start = span.Start
	}
	if span.End.Before(r.dates.End) {
		r.dates.End = span.End
	}
}

func (r *resolver) intersectTimes(span timeSpan) {
	if r.times == nil {
		r.times = &span
		return
	}
	r.times.Start = max(r.times.Start, span.Start)
	r.times.End = min(r.times.End, span.End)
}

func (r *resolver) resolveCandidate(candidate string) []Resolution {
	tx := timex.Parse(candidate)
	types := tx.Types()
	r.log.Debug("resolving candidate", "timex", candidate, "types", len(types))

	switch {
	case types.Contains(timex.TypePresent):
		return nil
	case types.Contains(timex.TypeDuration) && !types.Any(timex.TypeDateRange, timex.TypeTimeRange, timex.TypeDateTimeRange):
		return r.resolveDuration(candidate)
	case types.Contains(timex.TypeDuration) && types.Any(timex.TypeDateRange, timex.TypeDateTimeRange):
		return r.resolveDateRange(candidate, tx)
	case types.Contains(timex.TypeDuration):
		return r.resolveTimeRange(candidate, tx)
	case tx.Year != nil && tx.Month != nil && tx.DayOfMonth != nil:
		return r.resolveConcreteDate(tx)
	case tx.DayOfWeek != nil:
		return r.resolveEnumerable(tx, func(d time.Time) bool {
			return calendar.ISOWeekday(d) == *tx.DayOfWeek
		})
	case tx.Month != nil && tx.DayOfMonth != nil:
		return r.resolveEnumerable(tx, func(d time.Time) bool {
			return int(d.Month()) == *tx.Month && d.Day() == *tx.DayOfMonth
		})
	case types.Contains(timex.TypeDateRange):
		return r.resolveDateRange(candidate, tx)
	case types.Contains(timex.TypeTimeRange):
		return r.resolveTimeRange(candidate, tx)
	case types.Contains(timex.TypeTime):
		return r.resolveTime(tx)
	}
	return nil
}

// resolveDuration anchors a bare duration on each constraint that names a
// concrete instant. With no anchor an ambiguous duration resolves to
// nothing.
func (r *resolver) resolveDuration(candidate string) []Resolution {
	var out []Resolution
	for _, anchor := range r.anchors {
		shifted := timex.ShiftDateTime(candidate, anchor, true)
		out = append(out, datetimeResolution(shifted))
	}
	return out
}

// resolveConcreteDate passes a fully specified date or datetime through,
// provided it lies within every constraint's bounds.
func (r *resolver) resolveConcreteDate(tx timex.Timex) []Resolution {
	d, ok := dateOf(tx)
	if !ok {
		return nil
	}
	day := calendar.SafeDate(d.Year(), int(d.Month()), d.Day())
	if !r.dayAllowed(day) {
		return nil
	}
	if tx.Types().Contains(timex.TypeDateTime) {
		if r.times != nil && !strictlyInside(clockSeconds(tx), *r.times) {
			return nil
		}
		return []Resolution{datetimeResolution(d)}
	}
	return r.withTimeWindows(day, dateResolution(day))
}

// resolveEnumerable walks every day of the date-constraint intersection
// and keeps those matching the candidate's field filter. Without a date
// constraint an underspecified date has nothing to enumerate against.
func (r *resolver) resolveEnumerable(tx timex.Timex, match func(time.Time) bool) []Resolution {
	if r.dates == nil {
		return nil
	}
	var out []Resolution
	for d := r.dates.Start; d.Before(r.dates.End); d = d.AddDate(0, 0, 1) {
		if !match(d) {
			continue
		}
		if tx.Clock != nil && tx.Clock.Hour != nil {
			if r.times != nil && !strictlyInside(clockSeconds(tx), *r.times) {
				continue
			}
			hour, minute, second := clockFields(tx)
			out = append(out, datetimeResolution(
				time.Date(d.Year(), d.Month(), d.Day(), hour, minute, second, 0, time.UTC)))
			continue
		}
		out = append(out, r.withTimeWindows(d, dateResolution(d))...)
	}
	return out
}

// withTimeWindows cross-combines a qualifying day with the time-constraint
// window: a dateless time constraint turns a date resolution into a dated
// range using the constraint's own bounds.
func (r *resolver) withTimeWindows(day time.Time, dateRes Resolution) []Resolution {
	if r.times == nil {
		return []Resolution{dateRes}
	}
	if r.times.Start > r.times.End {
		return nil
	}
	start := day.Add(time.Duration(r.times.Start) * time.Second)
	end := day.Add(time.Duration(r.times.End) * time.Second)
	return []Resolution{{
		Timex: dateRes.Timex + timex.TimeTimex(start),
		Type:  TypeDateTimeRange,
		Start: start.Format("2006-01-02 15:04:05"),
		End:   end.Format("2006-01-02 15:04:05"),
	}}
}

// resolveDateRange intersects a range-shaped candidate with the date
// constraints and keeps the overlap.
func (r *resolver) resolveDateRange(candidate string, tx timex.Timex) []Resolution {
	expanded, ok := tx.Expand()
	if !ok {
		return nil
	}
	start, ok1 := dateOf(expanded.Start)
	end, ok2 := dateOf(expanded.End)
	if !ok1 || !ok2 {
		return nil
	}
	if r.dates != nil {
		if r.dates.Start.After(start) {
			start = r.dates.Start
		}
		if r.dates.End.Before(end) {
			end = r.dates.End
		}
		if !start.Before(end) {
			return nil
		}
	}
	return []Resolution{{
		Timex: candidate,
		Type:  TypeDateRange,
		Start: start.Format("2006-01-02"),
		End:   end.Format("2006-01-02"),
	}}
}

// resolveTimeRange intersects a named time-of-day candidate with the time
// constraints.
func (r *resolver) resolveTimeRange(candidate string, tx timex.Timex) []Resolution {
	expanded, ok := tx.Expand()
	if !ok {
		return nil
	}
	span := timeSpan{Start: clockSeconds(expanded.Start), End: clockSeconds(expanded.End)}
	if r.times != nil {
		span.Start = max(span.Start, r.times.Start)
		span.End = min(span.End, r.times.End)
		if span.Start >= span.End {
			return nil
		}
	}
	return []Resolution{{
		Timex: candidate,
		Type:  TypeTimeRange,
		Start: secondsValue(span.Start),
		End:   secondsValue(span.End),
	}}
}

// resolveTime checks an exact time candidate against the time-constraint
// window; the candidate keeps its own value, it is never replaced by the
// constraint's bounds.
func (r *resolver) resolveTime(tx timex.Timex) []Resolution {
	if r.times != nil && !strictlyInside(clockSeconds(tx), *r.times) {
		return nil
	}
	return []Resolution{timeResolution(tx)}
}

func (r *resolver) dayAllowed(day time.Time) bool {
	if r.dates == nil {
		return true
	}
	return !day.Before(r.dates.Start) && day.Before(r.dates.End)
}

// strictlyInside excludes both window boundaries: a time on the edge of
// its window is not inside it.
func strictlyInside(sec int, span timeSpan) bool {
	return sec > span.Start && sec < span.End
}

func dateOf(tx timex.Timex) (time.Time, bool) {
	if tx.Year == nil || tx.Month == nil || tx.DayOfMonth == nil {
		return time.Time{}, false
	}
	hour, minute, second := clockFields(tx)
	d := calendar.SafeDateTime(*tx.Year, *tx.Month, *tx.DayOfMonth, hour, minute, second)
	return d, !d.IsZero()
}

func clockFields(tx timex.Timex) (hour, minute, second int) {
	if tx.Clock == nil {
		return 0, 0, 0
	}
	if tx.Clock.Hour != nil {
		hour = *tx.Clock.Hour
	}
	if tx.Clock.Minute != nil {
		minute = *tx.Clock.Minute
	}
	if tx.Clock.Second != nil {
		second = *tx.Clock.Second
	}
	return hour, minute, second
}

func clockSeconds(tx timex.Timex) int {
	hour, minute, second := clockFields(tx)
	return hour*3600 + minute*60 + second
}

func secondsValue(sec int) string {
	return time.Date(2000, 1, 1, 0, 0, sec, 0, time.UTC).Format("15:04:05")
}
