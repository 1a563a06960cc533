package culture_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/microsoft/Recognizers-Text-sub003/pkg/culture"
	"github.com/microsoft/Recognizers-Text-sub003/pkg/resolver"
)

func TestTriggers(t *testing.T) {
	t.Run("full tag falls back to base resource", func(t *testing.T) {
		set, err := culture.Triggers(language.AmericanEnglish)
		require.NoError(t, err)
		assert.NotEmpty(t, set.Ago)
		assert.NotEmpty(t, set.Later)
		assert.NotEmpty(t, set.In)
		assert.NotEmpty(t, set.Within)
	})

	t.Run("spanish resource", func(t *testing.T) {
		set, err := culture.Triggers(language.MustParse("es-MX"))
		require.NoError(t, err)
		assert.NotEmpty(t, set.Ago)
	})

	t.Run("no resource for the culture", func(t *testing.T) {
		_, err := culture.Triggers(language.MustParse("ja-JP"))
		assert.ErrorIs(t, err, culture.ErrUnsupportedCulture)
	})

	t.Run("loads are cached", func(t *testing.T) {
		first, err := culture.Triggers(language.BritishEnglish)
		require.NoError(t, err)
		second, err := culture.Triggers(language.BritishEnglish)
		require.NoError(t, err)
		require.Len(t, second.Ago, len(first.Ago))
		for i := range first.Ago {
			assert.Same(t, first.Ago[i], second.Ago[i])
		}
	})
}

func TestTriggersDriveExtraction(t *testing.T) {
	set, err := culture.Triggers(language.AmericanEnglish)
	require.NoError(t, err)

	text := "she left two days ago"
	span, dir, ok := resolver.ExtractAgoLater(text, resolver.Span{Start: 9, Length: 8}, set)
	require.True(t, ok)
	assert.Equal(t, resolver.DirBefore, dir)
	assert.Equal(t, "two days ago", text[span.Start:span.End()])

	shifted, mod := resolver.ParseAgoLater("P2D",
		time.Date(2017, time.September, 7, 0, 0, 0, 0, time.UTC), dir)
	assert.Equal(t, time.Date(2017, time.September, 5, 0, 0, 0, 0, time.UTC), shifted)
	assert.Equal(t, resolver.ModBefore, mod)

	text = "she will leave in two days"
	span, dir, ok = resolver.ExtractAgoLater(text, resolver.Span{Start: 18, Length: 8}, set)
	require.True(t, ok)
	assert.Equal(t, resolver.DirAfter, dir)
	assert.Equal(t, "in two days", text[span.Start:span.End()])
}
