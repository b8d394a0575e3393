package coomat

import "fmt"

// ErrIndexOutOfRange is returned when an entry coordinate is negative
// or exceeds the addressable index range.
type ErrIndexOutOfRange struct {
	Row int
	Col int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: (%d, %d)", e.Row, e.Col)
}

// ErrDimensionMismatch is returned when a vector length does not match
// the operator dimension it is applied against.
type ErrDimensionMismatch struct {
	Vector   string
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: %s has length %d, want %d", e.Vector, e.Actual, e.Expected)
}
