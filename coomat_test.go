package coomat

import (
	"context"
	"testing"

	"github.com/hupe1980/coomat/coo"
	"github.com/stretchr/testify/require"
)

func TestInsertCommit(t *testing.T) {
	ctx := context.Background()

	t.Run("last insert wins", func(t *testing.T) {
		m := New[float64]()
		require.NoError(t, m.Insert(0, 0, 5))
		require.NoError(t, m.Insert(0, 0, 7))

		n, err := m.Commit(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, n)

		_, _, v := m.Structure().Entry(0)
		require.Equal(t, 7.0, v)
	})

	t.Run("explicit zero dropped at commit", func(t *testing.T) {
		m := New[float64]()
		require.NoError(t, m.Insert(1, 2, 0))
		require.Equal(t, 1, m.Pending())

		n, err := m.Commit(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, n)
		require.Equal(t, 0, m.NumEntries())
	})

	t.Run("remove unstages", func(t *testing.T) {
		m := New[float64]()
		require.NoError(t, m.Insert(0, 0, 1))
		require.NoError(t, m.Remove(0, 0))
		require.NoError(t, m.Remove(9, 9)) // absent, no-op

		n, err := m.Commit(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, n)
	})

	t.Run("commit clears staging", func(t *testing.T) {
		m := New[float64]()
		require.NoError(t, m.Insert(0, 0, 1))

		_, err := m.Commit(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, m.Pending())
	})

	t.Run("empty commit", func(t *testing.T) {
		m := New[float64]()
		n, err := m.Commit(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, n)
		require.Equal(t, 0, m.NumRows())
		require.Equal(t, 0, m.NumCols())
	})

	t.Run("dimensions inferred", func(t *testing.T) {
		m := New[float64]()
		require.NoError(t, m.Insert(4, 2, 1))

		_, err := m.Commit(ctx)
		require.NoError(t, err)
		require.Equal(t, 5, m.NumRows())
		require.Equal(t, 3, m.NumCols())
	})

	t.Run("canonical order", func(t *testing.T) {
		m := New[float64]()
		require.NoError(t, m.Insert(1, 1, 4))
		require.NoError(t, m.Insert(0, 1, 2))
		require.NoError(t, m.Insert(1, 0, 3))
		require.NoError(t, m.Insert(0, 0, 1))

		_, err := m.Commit(ctx)
		require.NoError(t, err)

		s := m.Structure()
		require.Equal(t, []uint32{0, 0, 1, 1}, s.RowIndices())
		require.Equal(t, []uint32{0, 1, 0, 1}, s.ColIndices())
		require.Equal(t, []float64{1, 2, 3, 4}, s.Values())
	})
}

func TestIndexValidation(t *testing.T) {
	m := New[float64]()

	var idxErr *ErrIndexOutOfRange
	require.ErrorAs(t, m.Insert(-1, 0, 1), &idxErr)
	require.ErrorAs(t, m.Insert(0, -1, 1), &idxErr)
	require.ErrorAs(t, m.Remove(-1, 0), &idxErr)
	require.Equal(t, 0, m.Pending())
}

func TestReset(t *testing.T) {
	ctx := context.Background()

	m := New[float64]()
	require.NoError(t, m.Insert(0, 0, 1))
	_, err := m.Commit(ctx)
	require.NoError(t, err)
	require.NoError(t, m.Insert(1, 1, 2))

	require.NoError(t, m.Reset(ctx))
	require.Equal(t, 0, m.Pending())
	require.Equal(t, 0, m.NumEntries())
	require.Equal(t, 0, m.NumRows())
}

func TestCommitReplacesStructure(t *testing.T) {
	ctx := context.Background()

	m := New[float64]()
	require.NoError(t, m.Insert(0, 0, 1))
	_, err := m.Commit(ctx)
	require.NoError(t, err)

	old := m.Structure()

	require.NoError(t, m.Insert(2, 2, 9))
	_, err = m.Commit(ctx)
	require.NoError(t, err)

	// The new structure holds only the entries staged since the last
	// commit; the old one is untouched.
	require.Equal(t, 1, m.NumEntries())
	require.Equal(t, 3, m.NumRows())
	require.Equal(t, 1, old.NumEntries())
	_, _, v := old.Entry(0)
	require.Equal(t, 1.0, v)
}

func TestFromStructure(t *testing.T) {
	s, err := coo.NewStructure(
		[]uint32{0, 1},
		[]uint32{1, 0},
		[]float64{2, 3},
		4, 4,
	)
	require.NoError(t, err)

	m := FromStructure(s)
	require.Equal(t, 4, m.NumRows())
	require.Equal(t, 4, m.NumCols())
	require.Equal(t, 2, m.NumEntries())
	require.Equal(t, 0, m.Pending())

	y := make([]float64, 4)
	require.NoError(t, m.Apply(y, []float64{1, 1, 0, 0}))
	require.Equal(t, []float64{2, 3, 0, 0}, y)
}

func TestStats(t *testing.T) {
	ctx := context.Background()

	m := New[float64]()
	require.NoError(t, m.Insert(0, 0, 1))
	require.NoError(t, m.Insert(2, 1, 2))
	_, err := m.Commit(ctx)
	require.NoError(t, err)
	require.NoError(t, m.Insert(5, 5, 3))

	stats := m.Stats()
	require.Equal(t, 3, stats.NumRows)
	require.Equal(t, 2, stats.NumCols)
	require.Equal(t, 2, stats.NumEntries)
	require.Equal(t, 2, stats.OccupiedRows)
	require.Equal(t, 2, stats.OccupiedCols)
	require.Equal(t, 1, stats.Pending)
	require.InDelta(t, 2.0/6.0, stats.Density, 1e-15)
}

func TestMetrics(t *testing.T) {
	ctx := context.Background()

	collector := NewBasicMetricsCollector()
	m := New[float64](WithMetricsCollector(collector))

	require.NoError(t, m.Insert(0, 0, 1))
	require.NoError(t, m.Insert(1, 1, 2))
	require.NoError(t, m.Remove(1, 1))
	_, err := m.Commit(ctx)
	require.NoError(t, err)

	y := make([]float64, 1)
	require.NoError(t, m.Apply(y, []float64{1}))

	stats := collector.GetStats()
	require.Equal(t, int64(2), stats.InsertCount)
	require.Equal(t, int64(1), stats.RemoveCount)
	require.Equal(t, int64(1), stats.CommitCount)
	require.Equal(t, int64(1), stats.ApplyCount)
}
