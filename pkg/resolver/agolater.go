package resolver

import (
	"regexp"
	"strings"
	"time"

	"github.com/microsoft/Recognizers-Text-sub003/pkg/timex"
)

// Span is a byte range inside the raw text a recognizer matched.
type Span struct {
	Start  int
	Length int
}

// End returns the exclusive end offset of the span.
func (s Span) End() int {
	return s.Start + s.Length
}

// Direction indicates which side of the reference instant a trigger token
// points to.
type Direction int

const (
	DirNone Direction = iota
	DirBefore
	DirAfter
)

// Modifiers tagging a shifted duration resolution, so downstream
// formatting can render "more than"/"less than" semantics.
const (
	ModBefore = "before"
	ModAfter  = "after"
)

// TriggerSet holds the per-culture trigger token patterns searched around
// a duration match. Ago patterns follow the duration and point backward;
// Later patterns follow it and point forward; In patterns precede it and
// point forward; Within patterns precede it and bound a forward window.
type TriggerSet struct {
	Ago    []*regexp.Regexp
	Later  []*regexp.Regexp
	In     []*regexp.Regexp
	Within []*regexp.Regexp
}

// ExtractAgoLater searches the text on both sides of a duration match for
// a trigger token. On a hit it returns the match span extended over the
// trigger, the direction the trigger points to, and ok=true. Only
// whitespace may separate the trigger from the duration.
func ExtractAgoLater(text string, match Span, triggers TriggerSet) (Span, Direction, bool) {
	if match.Start < 0 || match.End() > len(text) {
		return match, DirNone, false
	}
	after := text[match.End():]
	if ext, ok := matchLeading(after, triggers.Ago); ok {
		return Span{Start: match.Start, Length: match.Length + ext}, DirBefore, true
	}
	if ext, ok := matchLeading(after, triggers.Later); ok {
		return Span{Start: match.Start, Length: match.Length + ext}, DirAfter, true
	}
	before := text[:match.Start]
	for _, patterns := range [][]*regexp.Regexp{triggers.In, triggers.Within} {
		if ext, ok := matchTrailing(before, patterns); ok {
			return Span{Start: match.Start - ext, Length: match.Length + ext}, DirAfter, true
		}
	}
	return match, DirNone, false
}

// matchLeading finds a pattern at the start of s, allowing only leading
// whitespace, and returns how many bytes of s the trigger consumes.
func matchLeading(s string, patterns []*regexp.Regexp) (int, bool) {
	for _, p := range patterns {
		loc := p.FindStringIndex(s)
		if loc == nil {
			continue
		}
		if strings.TrimSpace(s[:loc[0]]) != "" {
			continue
		}
		return loc[1], true
	}
	return 0, false
}

// matchTrailing finds a pattern at the end of s, allowing only trailing
// whitespace, and returns how many bytes of s the trigger consumes.
func matchTrailing(s string, patterns []*regexp.Regexp) (int, bool) {
	for _, p := range patterns {
		var last []int
		for _, loc := range p.FindAllStringIndex(s, -1) {
			last = loc
		}
		if last == nil {
			continue
		}
		if strings.TrimSpace(s[last[1]:]) != "" {
			continue
		}
		return len(s) - last[0], true
	}
	return 0, false
}

// ParseAgoLater shifts the reference instant by the extracted duration in
// the trigger's direction and returns the modifier tagging the underlying
// duration resolution.
func ParseAgoLater(durationTimex string, ref time.Time, dir Direction) (time.Time, string) {
	switch dir {
	case DirBefore:
		return timex.ShiftDateTime(durationTimex, ref, false), ModBefore
	case DirAfter:
		return timex.ShiftDateTime(durationTimex, ref, true), ModAfter
	}
	return ref, ""
}
