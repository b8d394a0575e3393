package coo

import "errors"

var (
	// ErrLengthMismatch is returned when the row, column and value arrays
	// of a pre-built structure do not have equal lengths.
	ErrLengthMismatch = errors.New("row/col/value arrays differ in length")

	// ErrBadShape is returned for negative dimensions.
	ErrBadShape = errors.New("dimensions must be non-negative")

	// ErrIndexOutOfBounds is returned when an entry references an index
	// at or beyond the declared dimensions.
	ErrIndexOutOfBounds = errors.New("entry index out of bounds")

	// ErrNotCanonical is returned when pre-built entries are not strictly
	// ordered row-major, column-ascending (duplicates included).
	ErrNotCanonical = errors.New("entries not in canonical order")

	// ErrExplicitZero is returned when a pre-built structure stores the
	// additive identity; compacted structures never hold explicit zeros.
	ErrExplicitZero = errors.New("explicit zero value in structure")

	// ErrBadMagic is returned when decoding a blob that is not a
	// serialized structure.
	ErrBadMagic = errors.New("unrecognized structure encoding")

	// ErrUnsupportedVersion is returned for encoding versions newer than
	// this package understands.
	ErrUnsupportedVersion = errors.New("unsupported structure encoding version")

	// ErrKindMismatch is returned when a blob's value kind differs from
	// the requested instantiation.
	ErrKindMismatch = errors.New("structure value kind mismatch")
)
