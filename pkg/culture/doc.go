// Package culture is the engine boundary toward per-culture recognizers.
//
// A recognizer front-end is culture specific: its rules, trigger tokens
// and resource files differ per language, while the TIMEX machinery
// behind it is culture neutral. This package carries the pieces that sit
// on that boundary:
//
//   - Culture-tag handling: ParseCulture validates a BCP 47 culture code
//     against the supported set with base-language fallback (en-GB
//     resolves to en-US when no British resources exist), MatchCulture
//     negotiates a list of requested codes the same way, and DisplayName
//     renders a human-readable name.
//   - MatchedTimex, the standard return shape of a recognizer rule: a
//     fired flag plus the TIMEX fragment the rule produced.
//   - Per-culture ago/later trigger resources: regular-expression token
//     sets ("ago", "later", "in", "within" and their translations)
//     embedded as YAML, parsed and compiled once on first use, and
//     handed to the resolver's ago/later extraction.
package culture
