package analysis

import (
	"testing"

	"windfarm-analytics/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizePrices(t *testing.T) {
	p := priceTable(40, model.Missing, -10, 70)
	s := SummarizePrices(p, 2)

	assert.Equal(t, 4, s.Rows)
	require.NotNil(t, s.AvgPrice)
	assert.InDelta(t, 100.0/3.0, *s.AvgPrice, 1e-12)
	assert.Equal(t, -10.0, *s.MinPrice)
	assert.Equal(t, 70.0, *s.MaxPrice)

	require.Len(t, s.Monthly, 1)
	assert.InDelta(t, 100.0/3.0, s.Monthly[0].Value, 1e-12)

	require.Len(t, s.Top, 2)
	assert.Equal(t, 70.0, s.Top[0].Value)
	require.Len(t, s.Bottom, 2)
	assert.Equal(t, -10.0, s.Bottom[0].Value)

	empty := SummarizePrices(&model.PriceTable{}, 2)
	assert.Nil(t, empty.AvgPrice)
	assert.Empty(t, empty.Monthly)
}

func TestFilterPriceYear(t *testing.T) {
	p := priceTable(1, 2, 3)
	p.Index[2] = p.Index[2].AddDate(1, 0, 0)

	out := FilterPriceYear(p, 2024)
	assert.Equal(t, []float64{1, 2}, out.Price)
	assert.Equal(t, 0, FilterPriceYear(p, 1999).Len())
}
