package coomat

import (
	"context"
	"runtime"
	"time"

	"github.com/hupe1980/coomat/internal/entrymap"
	"github.com/hupe1980/coomat/numeric"
	"golang.org/x/sync/errgroup"
)

// Entry is a coordinate update for bulk staging.
type Entry[T numeric.Value] struct {
	Row   int
	Col   int
	Value T
}

// batchChunkSize is the number of entries staged per lock acquisition.
const batchChunkSize = 4096

// BatchInsert stages many entries concurrently, chunked so that each
// worker takes the staging lock once per chunk. Entries are validated
// before any staging happens, so a bad coordinate leaves the staging
// area untouched.
//
// When the same coordinate appears in multiple chunks, which write wins
// is unspecified; callers that need last-writer-wins across a batch
// must deduplicate first or use Insert.
func (m *Matrix[T]) BatchInsert(ctx context.Context, entries []Entry[T]) error {
	for _, e := range entries {
		if err := checkIndex(e.Row, e.Col); err != nil {
			return err
		}
	}

	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for begin := 0; begin < len(entries); begin += batchChunkSize {
		end := min(begin+batchChunkSize, len(entries))
		chunk := entries[begin:end]

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			keys := make([]entrymap.Key, len(chunk))
			values := make([]T, len(chunk))
			for i, e := range chunk {
				keys[i] = entrymap.Encode(uint32(e.Row), uint32(e.Col))
				values[i] = e.Value
			}

			m.entries.SetBatch(keys, values)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	m.metrics.RecordBatchInsert(len(entries))
	m.logger.LogBatchInsert(len(entries), time.Since(start))
	return nil
}
