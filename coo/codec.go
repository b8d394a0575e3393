package coo

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/coomat/numeric"
)

// Binary encoding of a structure, little-endian:
// [Magic:4][Version:1][Kind:1][NumRows:8][NumCols:8][NumEntries:8]
// [Rows:N*4][Cols:N*4][Values:N*sizeof(T)]
const (
	codecMagic   uint32 = 0x434f4f31 // "COO1"
	codecVersion uint8  = 1
)

// Encode writes the binary form of s to w.
func (s *Structure[T]) Encode(w io.Writer) error {
	header := []any{
		codecMagic,
		codecVersion,
		uint8(numeric.KindOf[T]()),
		uint64(s.numRows),
		uint64(s.numCols),
		uint64(len(s.values)),
	}
	for _, v := range header {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("encode header: %w", err)
		}
	}

	if err := binary.Write(w, binary.LittleEndian, s.rows); err != nil {
		return fmt.Errorf("encode rows: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, s.cols); err != nil {
		return fmt.Errorf("encode cols: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, s.values); err != nil {
		return fmt.Errorf("encode values: %w", err)
	}

	return nil
}

// DecodeStructure reads a structure encoded by Encode. The blob's value
// kind must match the instantiation T; decoded entries pass through the
// same validation as NewStructure.
func DecodeStructure[T numeric.Value](r io.Reader) (*Structure[T], error) {
	var (
		magic   uint32
		version uint8
		kind    uint8
		numRows uint64
		numCols uint64
		nnz     uint64
	)
	for _, v := range []any{&magic, &version, &kind, &numRows, &numCols, &nnz} {
		if err := binary.Read(r, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("decode header: %w", err)
		}
	}

	if magic != codecMagic {
		return nil, fmt.Errorf("%w: magic 0x%08x", ErrBadMagic, magic)
	}
	if version != codecVersion {
		return nil, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, version)
	}
	if want := numeric.KindOf[T](); numeric.Kind(kind) != want {
		return nil, fmt.Errorf("%w: blob holds %s, want %s", ErrKindMismatch, numeric.Kind(kind), want)
	}
	if nnz > uint64(numRows*numCols) && numRows > 0 && numCols > 0 {
		return nil, fmt.Errorf("%w: %d entries in %dx%d", ErrIndexOutOfBounds, nnz, numRows, numCols)
	}

	rows := make([]uint32, nnz)
	cols := make([]uint32, nnz)
	values := make([]T, nnz)
	if err := binary.Read(r, binary.LittleEndian, rows); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, cols); err != nil {
		return nil, fmt.Errorf("decode cols: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, values); err != nil {
		return nil, fmt.Errorf("decode values: %w", err)
	}

	return NewStructure(rows, cols, values, int(numRows), int(numCols))
}
