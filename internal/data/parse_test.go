package data

import (
	"testing"
	"time"

	"windfarm-analytics/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeParser(t *testing.T) {
	p, err := NewTimeParser("Europe/Oslo")
	require.NoError(t, err)
	oslo := p.Location

	t.Run("Naive layouts use the configured zone", func(t *testing.T) {
		want := time.Date(2024, 3, 5, 13, 0, 0, 0, oslo)
		for _, cell := range []string{
			"2024-03-05 13:00:00",
			"2024-03-05T13:00",
			"05.03.2024 13:00",
			" 2024-03-05 13:00 ",
		} {
			got, ok := p.Parse(cell)
			require.True(t, ok, cell)
			assert.True(t, want.Equal(got), cell)
		}
	})

	t.Run("Explicit offsets are honoured", func(t *testing.T) {
		got, ok := p.Parse("2024-03-05T12:00:00Z")
		require.True(t, ok)
		assert.True(t, time.Date(2024, 3, 5, 13, 0, 0, 0, oslo).Equal(got))
		assert.Equal(t, oslo, got.Location())
	})

	t.Run("Excel serial day numbers", func(t *testing.T) {
		got, ok := p.Parse("45292.5")
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, oslo), got)
	})

	t.Run("Skipped spring hour does not exist", func(t *testing.T) {
		// Clocks in Oslo jump from 02:00 to 03:00 on 2024-03-31.
		for _, cell := range []string{"2024-03-31 02:00:00", "2024-03-31T02:30", "45382.083333333336"} {
			_, ok := p.Parse(cell)
			assert.False(t, ok, cell)
		}
		before, ok := p.Parse("2024-03-31 01:00:00")
		require.True(t, ok)
		after, ok := p.Parse("2024-03-31 03:00:00")
		require.True(t, ok)
		assert.Equal(t, time.Hour, after.Sub(before))
		assert.Equal(t, 3, after.Hour())
	})

	t.Run("Default zone keeps every label", func(t *testing.T) {
		utc, err := NewTimeParser("UTC")
		require.NoError(t, err)
		got, ok := utc.Parse("2024-03-31 02:00:00")
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 3, 31, 2, 0, 0, 0, time.UTC), got)
	})

	t.Run("Rejects non timestamps", func(t *testing.T) {
		for _, cell := range []string{"", "Time", "MWh", "0", "-3", "NaN"} {
			_, ok := p.Parse(cell)
			assert.False(t, ok, cell)
		}
	})

	t.Run("Unknown zone", func(t *testing.T) {
		_, err := NewTimeParser("Mars/Olympus")
		assert.Error(t, err)
	})
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 12.5, ParseNumber(" 12.5 "))
	assert.Equal(t, -3.0, ParseNumber("-3"))
	for _, cell := range []string{"", "abc", "1,5", "Inf"} {
		assert.True(t, model.IsMissing(ParseNumber(cell)), cell)
	}
}
