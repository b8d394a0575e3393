package coomat

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/coomat/blobstore"
	"github.com/hupe1980/coomat/coo"
	"github.com/hupe1980/coomat/numeric"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// SaveSnapshot persists the committed structure to the store under the
// given name. Staged, uncommitted entries are not included. The payload
// is compressed per the matrix's snapshot compression option.
func (m *Matrix[T]) SaveSnapshot(ctx context.Context, store blobstore.Store, name string) error {
	structure, _ := m.snapshot()

	start := time.Now()

	blob, err := store.Create(ctx, name)
	if err != nil {
		return fmt.Errorf("create snapshot blob: %w", err)
	}

	if _, err := blob.Write([]byte{byte(m.compression)}); err != nil {
		blob.Close()
		return fmt.Errorf("write snapshot header: %w", err)
	}

	w, closeCompressor, err := compressWriter(blob, m.compression)
	if err != nil {
		blob.Close()
		return err
	}

	if err := structure.Encode(w); err != nil {
		closeCompressor()
		blob.Close()
		return fmt.Errorf("encode structure: %w", err)
	}

	if err := closeCompressor(); err != nil {
		blob.Close()
		return fmt.Errorf("flush compressor: %w", err)
	}

	if err := blob.Close(); err != nil {
		return fmt.Errorf("close snapshot blob: %w", err)
	}

	m.logger.LogSnapshot("save", name, structure.NumEntries(), time.Since(start))
	return nil
}

// LoadSnapshot restores a Matrix from a snapshot previously written by
// SaveSnapshot. The value type must match the one the snapshot was
// written with.
func LoadSnapshot[T numeric.Value](ctx context.Context, store blobstore.Store, name string, optFns ...Option) (*Matrix[T], error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open snapshot blob: %w", err)
	}
	defer blob.Close()

	start := time.Now()

	var header [1]byte
	if _, err := blob.ReadAt(header[:], 0); err != nil {
		return nil, fmt.Errorf("read snapshot header: %w", err)
	}

	payload := io.NewSectionReader(blob, 1, blob.Size()-1)

	r, closeReader, err := compressReader(payload, Compression(header[0]))
	if err != nil {
		return nil, err
	}
	defer closeReader()

	structure, err := coo.DecodeStructure[T](r)
	if err != nil {
		return nil, fmt.Errorf("decode structure: %w", err)
	}

	m := FromStructure(structure, optFns...)
	m.logger.LogSnapshot("load", name, structure.NumEntries(), time.Since(start))
	return m, nil
}

func compressWriter(w io.Writer, c Compression) (io.Writer, func() error, error) {
	switch c {
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, fmt.Errorf("create zstd writer: %w", err)
		}
		return zw, zw.Close, nil
	case CompressionLZ4:
		lw := lz4.NewWriter(w)
		return lw, lw.Close, nil
	case CompressionNone:
		return w, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown compression codec: %d", c)
	}
}

func compressReader(r io.Reader, c Compression) (io.Reader, func(), error) {
	switch c {
	case CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("create zstd reader: %w", err)
		}
		return zr, zr.Close, nil
	case CompressionLZ4:
		return lz4.NewReader(r), func() {}, nil
	case CompressionNone:
		return r, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown compression codec: %d", c)
	}
}
