package coomat

// Stats describes the committed structure and the staging area.
type Stats struct {
	NumRows      int
	NumCols      int
	NumEntries   int
	OccupiedRows int
	OccupiedCols int
	Density      float64
	Pending      int
}

// Stats returns a point-in-time summary. Occupancy is computed from the
// committed sparsity pattern.
func (m *Matrix[T]) Stats() Stats {
	structure, _ := m.snapshot()
	pattern := structure.Pattern()

	stats := Stats{
		NumRows:      structure.NumRows(),
		NumCols:      structure.NumCols(),
		NumEntries:   structure.NumEntries(),
		OccupiedRows: pattern.OccupiedRows(),
		OccupiedCols: pattern.OccupiedCols(),
		Pending:      m.entries.Len(),
	}

	if cells := stats.NumRows * stats.NumCols; cells > 0 {
		stats.Density = float64(stats.NumEntries) / float64(cells)
	}
	return stats
}
