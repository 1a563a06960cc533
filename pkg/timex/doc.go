// Package timex implements the TIMEX3-style temporal expression value type
// and its string grammar.
//
// A Timex carries at most one of four field groups: a duration (years down
// to seconds), a date point (year/month/day, weekday, season, week), a time
// point (the lazily materialized Clock composite), or the present-reference
// flag. Some combinations legitimately co-occur; a date plus a duration is a
// date range, which is how "(start,end,duration)" expressions are carried.
//
// The package provides:
//
//   - Parse: TIMEX string to Timex. Parsing never fails; an unrecognized
//     shape yields the zero value so malformed fragments degrade to an empty
//     formatted string instead of crashing a recognition pipeline.
//   - Timex.TimexValue: precedence-ordered rendering back to the canonical
//     TIMEX string. For every canonical form, Parse followed by TimexValue
//     is the identity.
//   - Timex.Types: total classification of the populated field groups into
//     shape tags (date, time, daterange, ...), used by both the formatter
//     and the range resolver.
//   - Generation helpers for duration, compound-duration, date-range and
//     fuzzy week/weekend/month expressions, plus the fixed named
//     time-of-day lookup table.
//   - Duration arithmetic: ordered decomposition of a duration TIMEX and
//     calendar-correct shifting of a reference instant, including
//     business-day stepping.
//   - Natural-language rendering, absolute and relative to a reference
//     instant.
//
// All values are plain data and all functions are pure; everything is safe
// for concurrent use.
package timex
