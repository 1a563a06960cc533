// Package calendar provides the calendar arithmetic primitives shared by the
// TIMEX temporal-expression engine: leap-year handling, ISO week numbering,
// weekday navigation, and safe date construction.
//
// All functions are pure and operate on the standard library's time.Time.
// Weekdays use ISO 8601 numbering throughout: Monday=1 .. Sunday=7.
//
// Construction never panics. Invalid calendar input (month 13, February 30,
// hour 25) yields the zero time.Time sentinel rather than a normalized or
// wrapped value, so a faulty upstream extraction degrades to an obviously
// wrong value instead of aborting a recognition pass.
package calendar
