package analysis

import (
	"testing"

	"windfarm-analytics/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopBottomN(t *testing.T) {
	values := []float64{5, 1, 9, 3, 9, 7, model.Missing, 2}
	index := hours(len(values))

	t.Run("Ordering and ties", func(t *testing.T) {
		top := TopN(index, values, 3)
		require.Len(t, top, 3)
		assert.Equal(t, []float64{9, 9, 7}, []float64{top[0].Value, top[1].Value, top[2].Value})
		// Equal values keep the earlier hour first.
		assert.Equal(t, index[2], top[0].Timestamp)
		assert.Equal(t, index[4], top[1].Timestamp)
		assert.Equal(t, []int{1, 2, 3}, []int{top[0].Rank, top[1].Rank, top[2].Rank})

		bottom := BottomN(index, values, 3)
		require.Len(t, bottom, 3)
		assert.Equal(t, []float64{1, 2, 3}, []float64{bottom[0].Value, bottom[1].Value, bottom[2].Value})
	})

	t.Run("Disjoint when 2n does not exceed the row count", func(t *testing.T) {
		top := TopN(index, values, 3)
		bottom := BottomN(index, values, 3)
		seen := map[int64]bool{}
		for _, h := range top {
			seen[h.Timestamp.Unix()] = true
		}
		for _, h := range bottom {
			assert.False(t, seen[h.Timestamp.Unix()], h.Timestamp)
		}
	})

	t.Run("Default and short inputs", func(t *testing.T) {
		many := make([]float64, 30)
		for i := range many {
			many[i] = float64(i)
		}
		assert.Len(t, TopN(hours(30), many, 0), DefaultTopN)
		assert.Len(t, TopN(index, values, 100), 7)
		assert.Empty(t, BottomN(nil, nil, 5))
	})
}
