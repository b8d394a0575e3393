package coomat

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/hupe1980/coomat/coo"
	"github.com/hupe1980/coomat/internal/entrymap"
	"github.com/hupe1980/coomat/numeric"
)

// Matrix is a sparse matrix assembled from coordinate updates.
//
// Staging mutators (Insert, Remove, BatchInsert) are safe for
// concurrent use with each other and with Commit. Reads of the
// committed structure (Apply, ScaledAccumulate, Structure, the
// dimension queries) are safe for concurrent use with each other but
// must not overlap a Commit or Reset; the caller sequences those.
type Matrix[T numeric.Value] struct {
	entries *entrymap.Map[T]

	structMu  sync.RWMutex
	structure *coo.Structure[T]
	transpose *coo.TransposeView[T]

	logger      *Logger
	metrics     MetricsCollector
	compression Compression
}

// New creates an empty Matrix.
func New[T numeric.Value](optFns ...Option) *Matrix[T] {
	opts := applyOptions(optFns)

	structure := coo.Empty[T]()

	return &Matrix[T]{
		entries:     entrymap.New[T](),
		structure:   structure,
		transpose:   structure.Transpose(),
		logger:      opts.logger,
		metrics:     opts.metrics,
		compression: opts.compression,
	}
}

// FromStructure creates a Matrix whose committed state is the given
// structure. The staging area starts empty.
func FromStructure[T numeric.Value](s *coo.Structure[T], optFns ...Option) *Matrix[T] {
	opts := applyOptions(optFns)

	return &Matrix[T]{
		entries:     entrymap.New[T](),
		structure:   s,
		transpose:   s.Transpose(),
		logger:      opts.logger,
		metrics:     opts.metrics,
		compression: opts.compression,
	}
}

func checkIndex(row, col int) error {
	if row < 0 || col < 0 || uint64(row) > math.MaxUint32 || uint64(col) > math.MaxUint32 {
		return &ErrIndexOutOfRange{Row: row, Col: col}
	}
	return nil
}

// Insert stages the value v at (row, col), overwriting any staged value
// for the same coordinate. Explicit zeros are staged like any other
// value and dropped at Commit.
func (m *Matrix[T]) Insert(row, col int, v T) error {
	if err := checkIndex(row, col); err != nil {
		return err
	}

	m.entries.Set(entrymap.Encode(uint32(row), uint32(col)), v)
	m.metrics.RecordInsert()
	return nil
}

// Remove unstages the entry at (row, col). Removing an absent
// coordinate is a no-op. Remove never affects the committed structure.
func (m *Matrix[T]) Remove(row, col int) error {
	if err := checkIndex(row, col); err != nil {
		return err
	}

	m.entries.Delete(entrymap.Encode(uint32(row), uint32(col)))
	m.metrics.RecordRemove()
	return nil
}

// Pending returns the number of staged, uncommitted entries.
func (m *Matrix[T]) Pending() int {
	return m.entries.Len()
}

// NumRows returns the number of rows of the committed structure.
func (m *Matrix[T]) NumRows() int {
	m.structMu.RLock()
	defer m.structMu.RUnlock()

	return m.structure.NumRows()
}

// NumCols returns the number of columns of the committed structure.
func (m *Matrix[T]) NumCols() int {
	m.structMu.RLock()
	defer m.structMu.RUnlock()

	return m.structure.NumCols()
}

// NumEntries returns the number of entries of the committed structure.
func (m *Matrix[T]) NumEntries() int {
	m.structMu.RLock()
	defer m.structMu.RUnlock()

	return m.structure.NumEntries()
}

// Structure returns the committed structure. The returned value is
// immutable and remains valid after later commits replace it.
func (m *Matrix[T]) Structure() *coo.Structure[T] {
	m.structMu.RLock()
	defer m.structMu.RUnlock()

	return m.structure
}

func (m *Matrix[T]) snapshot() (*coo.Structure[T], *coo.TransposeView[T]) {
	m.structMu.RLock()
	defer m.structMu.RUnlock()

	return m.structure, m.transpose
}

func (m *Matrix[T]) publish(s *coo.Structure[T], t *coo.TransposeView[T]) {
	m.structMu.Lock()
	defer m.structMu.Unlock()

	m.structure = s
	m.transpose = t
}

// Commit drains all staged entries and replaces the committed structure
// with their canonical compaction. Explicit zeros are dropped;
// dimensions are inferred from the maximum indices. Committing an empty
// staging area publishes the empty structure. Returns the number of
// entries in the new structure.
func (m *Matrix[T]) Commit(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	start := time.Now()

	var structure *coo.Structure[T]
	m.entries.Drain(func(staged map[entrymap.Key]T) {
		rows := make([]uint32, 0, len(staged))
		cols := make([]uint32, 0, len(staged))
		values := make([]T, 0, len(staged))
		for k, v := range staged {
			r, c := k.Decode()
			rows = append(rows, r)
			cols = append(cols, c)
			values = append(values, v)
		}

		structure = coo.Build(rows, cols, values)
		m.publish(structure, structure.Transpose())
	})

	duration := time.Since(start)
	m.metrics.RecordCommit(structure.NumEntries(), duration)
	m.logger.LogCommit(structure.NumEntries(), structure.NumRows(), structure.NumCols(), duration)

	return structure.NumEntries(), nil
}

// Reset discards both the staged entries and the committed structure,
// returning the matrix to its initial empty state.
func (m *Matrix[T]) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	discarded := 0
	m.entries.Drain(func(staged map[entrymap.Key]T) {
		discarded = len(staged)

		empty := coo.Empty[T]()
		m.publish(empty, empty.Transpose())
	})

	m.logger.LogReset(discarded)
	return nil
}
