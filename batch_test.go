package coomat

import (
	"context"
	"testing"

	"github.com/hupe1980/coomat/testutil"
	"github.com/stretchr/testify/require"
)

func TestBatchInsert(t *testing.T) {
	ctx := context.Background()

	t.Run("stages all entries", func(t *testing.T) {
		m := New[float64]()

		rng := testutil.NewRNG(42)
		coords := rng.Coordinates(10000, 500, 500)

		entries := make([]Entry[float64], len(coords))
		for i, c := range coords {
			entries[i] = Entry[float64]{Row: c.Row, Col: c.Col, Value: c.Value}
		}

		require.NoError(t, m.BatchInsert(ctx, entries))

		n, err := m.Commit(ctx)
		require.NoError(t, err)
		require.Equal(t, n, m.NumEntries())
		require.LessOrEqual(t, n, len(entries))

		// Committed output is canonical regardless of staging order.
		s := m.Structure()
		for k := 1; k < s.NumEntries(); k++ {
			pr, pc, _ := s.Entry(k - 1)
			r, c, _ := s.Entry(k)
			require.True(t, pr < r || (pr == r && pc < c))
		}
	})

	t.Run("validation happens before staging", func(t *testing.T) {
		m := New[float64]()

		err := m.BatchInsert(ctx, []Entry[float64]{
			{Row: 0, Col: 0, Value: 1},
			{Row: -1, Col: 0, Value: 2},
		})

		var idxErr *ErrIndexOutOfRange
		require.ErrorAs(t, err, &idxErr)
		require.Equal(t, 0, m.Pending())
	})

	t.Run("empty batch", func(t *testing.T) {
		m := New[float64]()
		require.NoError(t, m.BatchInsert(ctx, nil))
		require.Equal(t, 0, m.Pending())
	})

	t.Run("records batch metrics", func(t *testing.T) {
		collector := NewBasicMetricsCollector()
		m := New[float64](WithMetricsCollector(collector))

		require.NoError(t, m.BatchInsert(ctx, []Entry[float64]{
			{Row: 0, Col: 0, Value: 1},
			{Row: 1, Col: 1, Value: 2},
		}))
		require.Equal(t, int64(2), collector.GetStats().InsertCount)
	})
}
