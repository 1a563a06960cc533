package culture

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultCulture is used when negotiation finds no supported culture.
var DefaultCulture = language.AmericanEnglish

// supportedCultures lists the cultures with recognizer resources, most
// widely used first. Negotiation preserves this order on ties.
var supportedCultures = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.MustParse("es-ES"),
	language.MustParse("es-MX"),
	language.MustParse("fr-FR"),
	language.MustParse("de-DE"),
	language.MustParse("it-IT"),
	language.MustParse("pt-BR"),
	language.MustParse("zh-CN"),
	language.MustParse("nl-NL"),
	language.MustParse("ja-JP"),
	language.MustParse("ko-KR"),
	language.MustParse("tr-TR"),
	language.MustParse("hi-IN"),
}

// englishNames feed DisplayName; stored lowercase, title-cased on output.
var englishNames = map[string]string{
	"en-US": "english (united states)",
	"en-GB": "english (united kingdom)",
	"es-ES": "spanish (spain)",
	"es-MX": "spanish (mexico)",
	"fr-FR": "french (france)",
	"de-DE": "german (germany)",
	"it-IT": "italian (italy)",
	"pt-BR": "portuguese (brazil)",
	"zh-CN": "chinese (simplified)",
	"nl-NL": "dutch (netherlands)",
	"ja-JP": "japanese (japan)",
	"ko-KR": "korean (korea)",
	"tr-TR": "turkish (turkey)",
	"hi-IN": "hindi (india)",
}

// SupportedCultures returns the supported culture tags in negotiation
// order. The returned slice is a copy.
func SupportedCultures() []language.Tag {
	out := make([]language.Tag, len(supportedCultures))
	copy(out, supportedCultures)
	return out
}

// ParseCulture validates a culture code against the supported set. An
// exact match wins; otherwise the code's base language picks the first
// supported culture of that language, so "en-AU" resolves to en-US.
// Malformed and unsupported codes return ErrUnsupportedCulture.
func ParseCulture(code string) (language.Tag, error) {
	if code == "" {
		return language.Und, fmt.Errorf("%w: empty culture code", ErrUnsupportedCulture)
	}
	tag, err := language.Parse(code)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedCulture, code)
	}
	for _, s := range supportedCultures {
		if strings.EqualFold(tag.String(), s.String()) {
			return s, nil
		}
	}
	base, _ := tag.Base()
	for _, s := range supportedCultures {
		if sb, _ := s.Base(); sb == base {
			return s, nil
		}
	}
	return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedCulture, code)
}

// MatchCulture negotiates a list of requested culture codes against the
// supported set: exact matches across all requests first, then base
// language fallback, mirroring Accept-Language negotiation. With no
// usable request it returns DefaultCulture.
func MatchCulture(requested ...string) language.Tag {
	parsed := make([]language.Tag, 0, len(requested))
	for _, code := range requested {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		parsed = append(parsed, tag)
	}

	for _, tag := range parsed {
		for _, s := range supportedCultures {
			if strings.EqualFold(tag.String(), s.String()) {
				return s
			}
		}
	}
	for _, tag := range parsed {
		base, _ := tag.Base()
		for _, s := range supportedCultures {
			if sb, _ := s.Base(); sb == base {
				return s
			}
		}
	}
	return DefaultCulture
}

// DisplayName renders a human-readable English name for a supported
// culture tag; unsupported tags fall back to the raw tag string.
func DisplayName(tag language.Tag) string {
	name, ok := englishNames[tag.String()]
	if !ok {
		return tag.String()
	}
	return cases.Title(language.English).String(name)
}
