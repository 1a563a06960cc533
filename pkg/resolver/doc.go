// Package resolver evaluates underspecified TIMEX candidates against
// constraint ranges to produce concrete dated resolutions.
//
// Candidates are TIMEX fragments a recognizer extracted: a bare weekday
// ("every Saturday" is XXXX-WXX-6), a bare time, a bare duration, a fuzzy
// date. Constraints narrow them down: date-typed constraints (a month, a
// week, a fixed date, an expanded range) are intersected with each other,
// time-typed constraints likewise, and the two kinds cross-combine — the
// date constraints pick the qualifying days, the time constraints the
// time of day each qualifying day is paired with.
//
// Unsatisfiable input is not an error: a candidate that fits no
// constraint simply contributes no resolutions, so a recognizer composing
// many fragments degrades gracefully per fragment.
//
// The package also carries the two boundary helpers that surround
// resolution in a recognition pipeline: DateContext, which substitutes a
// known year into fuzzy-year expressions and keeps paired begin/end
// resolutions consistent, and the ago/later utilities, which anchor a
// duration to a reference instant in the direction indicated by a trigger
// token ("3 days ago", "in 3 days").
package resolver
