package entrymap

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyRoundtrip(t *testing.T) {
	tests := []struct {
		row, col uint32
	}{
		{0, 0},
		{1, 2},
		{0, 4294967295},
		{4294967295, 0},
		{4294967295, 4294967295},
	}
	for _, tt := range tests {
		row, col := Encode(tt.row, tt.col).Decode()
		require.Equal(t, tt.row, row)
		require.Equal(t, tt.col, col)
	}
}

func TestKeyOrdering(t *testing.T) {
	// Integer key order must equal row-major, column-ascending order.
	require.True(t, Encode(0, 5) < Encode(1, 0))
	require.True(t, Encode(2, 3) < Encode(2, 4))
	require.True(t, Encode(0, 4294967295) < Encode(1, 0))
}

func TestMapLastWriterWins(t *testing.T) {
	m := New[float64]()
	k := Encode(0, 0)

	m.Set(k, 5)
	m.Set(k, 7)
	require.Equal(t, 1, m.Len())

	m.Drain(func(entries map[Key]float64) {
		require.Equal(t, 7.0, entries[k])
	})
	require.Equal(t, 0, m.Len())
}

func TestMapDeleteAbsent(t *testing.T) {
	m := New[float64]()
	m.Delete(Encode(3, 3))
	require.Equal(t, 0, m.Len())
}

func TestMapSetBatch(t *testing.T) {
	m := New[int]()
	m.SetBatch(
		[]Key{Encode(0, 0), Encode(1, 1), Encode(0, 0)},
		[]int{1, 2, 3},
	)
	require.Equal(t, 2, m.Len())

	m.Drain(func(entries map[Key]int) {
		require.Equal(t, 3, entries[Encode(0, 0)])
		require.Equal(t, 2, entries[Encode(1, 1)])
	})
}

func TestMapConcurrentMutation(t *testing.T) {
	m := New[int]()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				m.Set(Encode(uint32(g), uint32(i)), g*100+i)
			}
		}(g)
	}
	wg.Wait()

	require.Equal(t, 800, m.Len())
}

func TestMapDrainResets(t *testing.T) {
	m := New[int]()
	m.Set(Encode(0, 0), 1)

	m.Drain(func(entries map[Key]int) {
		require.Len(t, entries, 1)
	})

	// A drained map accepts new entries.
	m.Set(Encode(1, 1), 2)
	require.Equal(t, 1, m.Len())
}
