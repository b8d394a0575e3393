package coo

import "github.com/RoaringBitmap/roaring/v2"

// Pattern describes the sparsity pattern of a structure: the sets of
// rows and columns that hold at least one entry, as compressed bitmaps.
type Pattern struct {
	rows *roaring.Bitmap
	cols *roaring.Bitmap
}

// Pattern builds the sparsity pattern of s.
func (s *Structure[T]) Pattern() *Pattern {
	p := &Pattern{
		rows: roaring.New(),
		cols: roaring.New(),
	}
	p.rows.AddMany(s.rows)
	p.cols.AddMany(s.cols)

	return p
}

// OccupiedRows returns the number of rows with at least one entry.
func (p *Pattern) OccupiedRows() int {
	return int(p.rows.GetCardinality())
}

// OccupiedCols returns the number of columns with at least one entry.
func (p *Pattern) OccupiedCols() int {
	return int(p.cols.GetCardinality())
}

// HasRow reports whether the given row holds at least one entry.
func (p *Pattern) HasRow(row uint32) bool {
	return p.rows.Contains(row)
}

// HasCol reports whether the given column holds at least one entry.
func (p *Pattern) HasCol(col uint32) bool {
	return p.cols.Contains(col)
}

// Equal reports whether two patterns occupy the same rows and columns.
// Note that patterns carry no dimensions, so structures differing only
// in trailing empty rows/columns compare equal.
func (p *Pattern) Equal(other *Pattern) bool {
	return p.rows.Equals(other.rows) && p.cols.Equals(other.cols)
}
