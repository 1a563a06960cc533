package culture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/microsoft/Recognizers-Text-sub003/pkg/culture"
)

func TestParseCulture(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		tag, err := culture.ParseCulture("en-US")
		require.NoError(t, err)
		assert.Equal(t, language.AmericanEnglish, tag)
	})

	t.Run("case insensitive", func(t *testing.T) {
		tag, err := culture.ParseCulture("EN-us")
		require.NoError(t, err)
		assert.Equal(t, language.AmericanEnglish, tag)
	})

	t.Run("base language fallback", func(t *testing.T) {
		tag, err := culture.ParseCulture("en-AU")
		require.NoError(t, err)
		assert.Equal(t, language.AmericanEnglish, tag, "first supported culture of the base language")

		tag, err = culture.ParseCulture("es-AR")
		require.NoError(t, err)
		assert.Equal(t, "es-ES", tag.String())
	})

	t.Run("unsupported language", func(t *testing.T) {
		_, err := culture.ParseCulture("da-DK")
		assert.ErrorIs(t, err, culture.ErrUnsupportedCulture)
	})

	t.Run("malformed code", func(t *testing.T) {
		_, err := culture.ParseCulture("not a culture")
		assert.ErrorIs(t, err, culture.ErrUnsupportedCulture)
	})

	t.Run("empty code", func(t *testing.T) {
		_, err := culture.ParseCulture("")
		assert.ErrorIs(t, err, culture.ErrUnsupportedCulture)
	})
}

func TestMatchCulture(t *testing.T) {
	t.Run("exact beats base fallback", func(t *testing.T) {
		// en-AU would fall back to en-US, but es-MX matches exactly and
		// exact matches are exhausted first.
		got := culture.MatchCulture("en-AU", "es-MX")
		assert.Equal(t, "es-MX", got.String())
	})

	t.Run("base fallback when nothing exact", func(t *testing.T) {
		got := culture.MatchCulture("da-DK", "fr-CA")
		assert.Equal(t, "fr-FR", got.String())
	})

	t.Run("default when nothing matches", func(t *testing.T) {
		assert.Equal(t, culture.DefaultCulture, culture.MatchCulture("da-DK"))
		assert.Equal(t, culture.DefaultCulture, culture.MatchCulture())
		assert.Equal(t, culture.DefaultCulture, culture.MatchCulture("garbage!!"))
	})
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "English (United States)", culture.DisplayName(language.AmericanEnglish))
	assert.Equal(t, "Spanish (Spain)", culture.DisplayName(language.MustParse("es-ES")))
	assert.Equal(t, "da-DK", culture.DisplayName(language.MustParse("da-DK")),
		"unsupported tags fall back to the raw code")
}

func TestSupportedCulturesIsACopy(t *testing.T) {
	first := culture.SupportedCultures()
	first[0] = language.MustParse("da-DK")
	assert.Equal(t, language.AmericanEnglish, culture.SupportedCultures()[0])
}

func TestMatchedTimex(t *testing.T) {
	m := culture.Matched("XXXX-WXX-6")
	assert.True(t, m.Matched)
	assert.Equal(t, "XXXX-WXX-6", m.Timex)

	assert.Equal(t, culture.MatchedTimex{}, culture.NoMatch())
}
