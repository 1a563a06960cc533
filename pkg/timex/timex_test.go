package timex_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microsoft/Recognizers-Text-sub003/pkg/timex"
)

func TestClone(t *testing.T) {
	original := timex.Parse("2017-09-07T16:30")
	clone := original.Clone()

	require.NotNil(t, clone.Clock)
	clone.SetHour(9)
	*clone.Year = 1999

	assert.Equal(t, 16, *original.Clock.Hour, "clone must not alias the nested clock")
	assert.Equal(t, 2017, *original.Year)
	assert.Equal(t, "2017-09-07T16:30", original.TimexValue())
}

func TestClockMaterialization(t *testing.T) {
	var tx timex.Timex
	require.Nil(t, tx.Clock)

	tx.SetMinute(30)
	require.NotNil(t, tx.Clock, "setting any clock field materializes the composite")
	assert.Nil(t, tx.Clock.Hour)
	assert.Equal(t, 30, *tx.Clock.Minute)

	tx.ClearClock()
	assert.Nil(t, tx.Clock)
}

func TestAssignProperties(t *testing.T) {
	t.Run("date fields", func(t *testing.T) {
		var tx timex.Timex
		tx.AssignProperties(map[string]string{
			"year":       "2017",
			"month":      "9",
			"dayOfMonth": "7",
		})
		assert.Equal(t, "2017-09-07", tx.TimexValue())
	})

	t.Run("weekday and weekend", func(t *testing.T) {
		var tx timex.Timex
		tx.AssignProperties(map[string]string{"dayOfWeek": "6"})
		assert.Equal(t, "XXXX-WXX-6", tx.TimexValue())

		var we timex.Timex
		we.AssignProperties(map[string]string{
			"year":       "2017",
			"weekOfYear": "37",
			"weekend":    "true",
		})
		assert.Equal(t, "2017-W37-WE", we.TimexValue())
	})

	t.Run("clock fields", func(t *testing.T) {
		var tx timex.Timex
		tx.AssignProperties(map[string]string{"hour": "16", "minute": "30", "second": "0"})
		assert.Equal(t, "T16:30", tx.TimexValue())
	})

	t.Run("unit and amount resolve to one duration field", func(t *testing.T) {
		var tx timex.Timex
		tx.AssignProperties(map[string]string{"dateUnit": "week", "amount": "2"})
		require.NotNil(t, tx.Weeks)
		assert.Equal(t, 2.0, *tx.Weeks)
		assert.Nil(t, tx.Days)
		assert.Equal(t, "P2W", tx.TimexValue())

		var tm timex.Timex
		tm.AssignProperties(map[string]string{"timeUnit": "minute", "amount": "5"})
		assert.Equal(t, "PT5M", tm.TimexValue())
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		var tx timex.Timex
		tx.AssignProperties(map[string]string{"flavour": "strawberry", "year": "2017"})
		assert.Equal(t, "2017", tx.TimexValue())
	})

	t.Run("unparseable values are ignored", func(t *testing.T) {
		var tx timex.Timex
		tx.AssignProperties(map[string]string{"year": "not-a-year"})
		assert.Equal(t, "", tx.TimexValue())
	})
}

func TestFromConstructors(t *testing.T) {
	d := time.Date(2017, 9, 7, 16, 30, 45, 0, time.UTC)

	assert.Equal(t, "2017-09-07", timex.FromDate(d).TimexValue())
	assert.Equal(t, "T16:30:45", timex.FromTime(d).TimexValue())
	assert.Equal(t, "2017-09-07T16:30:45", timex.FromDateTime(d).TimexValue())
}

func TestEmptyEntityFormatsEmpty(t *testing.T) {
	var tx timex.Timex
	assert.Equal(t, "", tx.TimexValue())
	assert.Empty(t, tx.Types())
}
