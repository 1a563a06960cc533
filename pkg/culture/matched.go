package culture

// MatchedTimex is the return shape of a recognizer rule: Matched reports
// whether the rule fired, Timex carries the TIMEX fragment when it did.
// The zero value is the unmatched marker.
type MatchedTimex struct {
	Matched bool
	Timex   string
}

// Matched wraps a fired rule's TIMEX fragment.
func Matched(timexStr string) MatchedTimex {
	return MatchedTimex{Matched: true, Timex: timexStr}
}

// NoMatch marks a rule that did not fire.
func NoMatch() MatchedTimex {
	return MatchedTimex{}
}
